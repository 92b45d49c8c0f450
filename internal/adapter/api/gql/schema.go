package gql

import (
	"time"

	"github.com/graphql-go/graphql"

	"blooddonor/internal/infrastructure/metrics"
	"blooddonor/internal/usecase"
)

// Resolver binds the GraphQL fields to the use cases.
type Resolver struct {
	users     *usecase.UserUseCase
	donations *usecase.DonationUseCase
	metrics   *metrics.Recorder
}

func NewResolver(users *usecase.UserUseCase, donations *usecase.DonationUseCase, recorder *metrics.Recorder) *Resolver {
	return &Resolver{
		users:     users,
		donations: donations,
		metrics:   recorder,
	}
}

// NewSchema builds the executable schema served at /graphql.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := newUserType(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"id": {Type: graphql.ID}},
				Resolve: r.instrument("user", r.user),
			},
			"findUserByFirebaseUID": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"firebaseUID": {Type: graphql.String}},
				Resolve: r.instrument("findUserByFirebaseUID", r.findUserByFirebaseUID),
			},
			"findUserByPhoneNumber": &graphql.Field{
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"phone": {Type: graphql.String}},
				Resolve: r.instrument("findUserByPhoneNumber", r.findUserByPhoneNumber),
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.instrument("users", r.listUsers),
			},
			"donation": &graphql.Field{
				Type:    donationType,
				Args:    graphql.FieldConfigArgument{"id": {Type: graphql.ID}},
				Resolve: r.instrument("donation", r.donation),
			},
			"donations": &graphql.Field{
				Type:    graphql.NewList(donationType),
				Resolve: r.instrument("donations", r.listDonations),
			},
			"donationsInYourArea": &graphql.Field{
				Type:    graphql.NewList(donationType),
				Args:    graphql.FieldConfigArgument{"city": {Type: graphql.NewNonNull(graphql.String)}},
				Resolve: r.instrument("donationsInYourArea", r.donationsInYourArea),
			},
			"donationRequestsForYou": &graphql.Field{
				Type:    graphql.NewList(donationType),
				Args:    graphql.FieldConfigArgument{"receiverId": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.instrument("donationRequestsForYou", r.donationRequestsForYou),
			},
			"previousDonations": &graphql.Field{
				Type:    graphql.NewList(previousDonationType),
				Args:    graphql.FieldConfigArgument{"userId": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.instrument("previousDonations", r.previousDonations),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: userType,
				Args: requiredStrings(
					"firebaseUID", "fullName", "email", "phone", "age",
					"gender", "bloodType", "city", "pincode",
				),
				Resolve: r.instrument("register", r.register),
			},
			"login": &graphql.Field{
				Type:    userType,
				Args:    requiredStrings("email", "password"),
				Resolve: r.instrument("login", r.login),
			},
			"updateActiveForDonation": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":                {Type: graphql.NewNonNull(graphql.ID)},
					"activeForDonation": {Type: graphql.NewNonNull(graphql.Boolean)},
				},
				Resolve: r.instrument("updateActiveForDonation", r.updateActiveForDonation),
			},
			"addUserCoords": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":  {Type: graphql.NewNonNull(graphql.ID)},
					"lat": {Type: graphql.NewNonNull(graphql.Float)},
					"lng": {Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: r.instrument("addUserCoords", r.addUserCoords),
			},
			"updateAge":       userFieldMutation(r, userType, "updateAge", "age", r.users.UpdateAge),
			"updateBloodType": userFieldMutation(r, userType, "updateBloodType", "bloodType", r.users.UpdateBloodType),
			"updateCity":      userFieldMutation(r, userType, "updateCity", "city", r.users.UpdateCity),
			"updatePincode":   userFieldMutation(r, userType, "updatePincode", "pincode", r.users.UpdatePincode),
			"addDonation": &graphql.Field{
				Type:    donationType,
				Args:    donationArgs(false),
				Resolve: r.instrument("addDonation", r.addDonation),
			},
			"updateDonation": &graphql.Field{
				Type:    donationType,
				Args:    donationArgs(true),
				Resolve: r.instrument("updateDonation", r.updateDonation),
			},
			"deleteDonation": &graphql.Field{
				Type:    donationType,
				Args:    graphql.FieldConfigArgument{"id": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.instrument("deleteDonation", r.deleteDonation),
			},
			"addPreviousDonation": &graphql.Field{
				Type: previousDonationType,
				Args: graphql.FieldConfigArgument{
					"userId":       {Type: graphql.NewNonNull(graphql.ID)},
					"receiverId":   {Type: graphql.ID},
					"donationDate": {Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.instrument("addPreviousDonation", r.addPreviousDonation),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// instrument records the call in the metrics recorder and converts
// application errors so their code reaches the response extensions.
func (r *Resolver) instrument(field string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		result, err := fn(p)
		r.metrics.ObserveResolver(field, start, err)
		if err != nil {
			return nil, toFieldError(err)
		}
		return result, nil
	}
}

func requiredStrings(names ...string) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{}
	for _, name := range names {
		args[name] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
	}
	return args
}

func donationArgs(withID bool) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"userId":       {Type: graphql.NewNonNull(graphql.ID)},
		"receiverId":   {Type: graphql.ID},
		"donationDate": {Type: graphql.NewNonNull(graphql.String)},
		"donationType": {Type: graphql.NewNonNull(graphql.String)},
		"bloodType":    {Type: graphql.String},
		"city":         {Type: graphql.String},
		"status":       {Type: graphql.String},
	}
	if withID {
		args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	}
	return args
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func floatArg(p graphql.ResolveParams, name string) float64 {
	switch v := p.Args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
