package gql

import (
	"context"

	"github.com/graphql-go/graphql"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/usecase"
)

// userResult keeps a missing user as a plain null rather than a typed nil.
func userResult(user *entity.User, err error) (interface{}, error) {
	if err != nil || user == nil {
		return nil, err
	}
	return user, nil
}

func (r *Resolver) user(p graphql.ResolveParams) (interface{}, error) {
	return userResult(r.users.GetByID(p.Context, stringArg(p, "id")))
}

func (r *Resolver) findUserByFirebaseUID(p graphql.ResolveParams) (interface{}, error) {
	return userResult(r.users.GetByFirebaseUID(p.Context, stringArg(p, "firebaseUID")))
}

func (r *Resolver) findUserByPhoneNumber(p graphql.ResolveParams) (interface{}, error) {
	return userResult(r.users.GetByPhone(p.Context, stringArg(p, "phone")))
}

func (r *Resolver) listUsers(p graphql.ResolveParams) (interface{}, error) {
	users, err := r.users.List(p.Context)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Resolver) userPreviousDonations(p graphql.ResolveParams) (interface{}, error) {
	user, ok := p.Source.(*entity.User)
	if !ok {
		return nil, nil
	}
	donations, err := r.users.PreviousDonations(p.Context, user.ID)
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *Resolver) register(p graphql.ResolveParams) (interface{}, error) {
	return userResult(r.users.Register(p.Context, usecase.RegisterInput{
		FirebaseUID: stringArg(p, "firebaseUID"),
		FullName:    stringArg(p, "fullName"),
		Email:       stringArg(p, "email"),
		Phone:       stringArg(p, "phone"),
		Age:         stringArg(p, "age"),
		Gender:      stringArg(p, "gender"),
		BloodType:   stringArg(p, "bloodType"),
		City:        stringArg(p, "city"),
		Pincode:     stringArg(p, "pincode"),
	}))
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	return userResult(r.users.Login(p.Context, stringArg(p, "email"), stringArg(p, "password")))
}

func (r *Resolver) updateActiveForDonation(p graphql.ResolveParams) (interface{}, error) {
	active, _ := p.Args["activeForDonation"].(bool)
	return userResult(r.users.UpdateActiveForDonation(p.Context, stringArg(p, "id"), active))
}

func (r *Resolver) addUserCoords(p graphql.ResolveParams) (interface{}, error) {
	return userResult(r.users.AddUserCoords(p.Context, stringArg(p, "id"), floatArg(p, "lat"), floatArg(p, "lng")))
}

type userFieldUpdate func(ctx context.Context, id, value string) (*entity.User, error)

// userFieldMutation builds the single-field setters: (id, <arg>) -> User.
func userFieldMutation(r *Resolver, userType *graphql.Object, name, arg string, update userFieldUpdate) *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Args: graphql.FieldConfigArgument{
			"id": {Type: graphql.NewNonNull(graphql.ID)},
			arg:  {Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: r.instrument(name, func(p graphql.ResolveParams) (interface{}, error) {
			return userResult(update(p.Context, stringArg(p, "id"), stringArg(p, arg)))
		}),
	}
}
