package gql

import (
	"time"

	"github.com/graphql-go/graphql"

	"blooddonor/internal/domain/entity"
)

var coordsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Coords",
	Fields: graphql.Fields{
		"lat": &graphql.Field{Type: graphql.Float},
		"lng": &graphql.Field{Type: graphql.Float},
	},
})

var addressType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Address",
	Fields: graphql.Fields{
		"city":    &graphql.Field{Type: graphql.String},
		"pincode": &graphql.Field{Type: graphql.String},
		"coords": &graphql.Field{
			Type: coordsType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if address, ok := p.Source.(entity.Address); ok && address.Coords != nil {
					return address.Coords, nil
				}
				return nil, nil
			},
		},
	},
})

var previousDonationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PreviousDonation",
	Fields: graphql.Fields{
		"id":     &graphql.Field{Type: graphql.ID},
		"userId": &graphql.Field{Type: graphql.ID},
		"receiverId": &graphql.Field{
			Type: graphql.ID,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if d, ok := p.Source.(*entity.PreviousDonation); ok {
					return optional(d.ReceiverID), nil
				}
				return nil, nil
			},
		},
		"donationDate": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if d, ok := p.Source.(*entity.PreviousDonation); ok {
					return d.DonationDate.UTC().Format(time.RFC3339), nil
				}
				return nil, nil
			},
		},
	},
})

var donationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Donation",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.ID},
		"userId":       &graphql.Field{Type: graphql.ID},
		"receiverId":   donationOptional(graphql.ID, func(d *entity.Donation) string { return d.ReceiverID }),
		"donationDate": &graphql.Field{Type: graphql.String},
		"donationType": &graphql.Field{Type: graphql.String},
		"bloodType":    donationOptional(graphql.String, func(d *entity.Donation) string { return string(d.BloodType) }),
		"city":         donationOptional(graphql.String, func(d *entity.Donation) string { return d.City }),
		"status":       &graphql.Field{Type: graphql.String},
	},
})

func donationOptional(t graphql.Output, get func(*entity.Donation) string) *graphql.Field {
	return &graphql.Field{
		Type: t,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if d, ok := p.Source.(*entity.Donation); ok {
				return optional(get(d)), nil
			}
			return nil, nil
		},
	}
}

// optional maps the empty string to null.
func optional(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// newUserType needs the resolver because previousDonations is fetched per
// parent user, only when the client selects it.
func newUserType(r *Resolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.ID},
			"firebaseUID":       &graphql.Field{Type: graphql.String},
			"fullName":          &graphql.Field{Type: graphql.String},
			"email":             &graphql.Field{Type: graphql.String},
			"phone":             &graphql.Field{Type: graphql.String},
			"age":               &graphql.Field{Type: graphql.String},
			"gender":            &graphql.Field{Type: graphql.String},
			"bloodType":         &graphql.Field{Type: graphql.String},
			"activeForDonation": &graphql.Field{Type: graphql.Boolean},
			"address":           &graphql.Field{Type: addressType},
			"avatar":            &graphql.Field{Type: graphql.String},
			"token": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if u, ok := p.Source.(*entity.User); ok {
						return optional(u.Token), nil
					}
					return nil, nil
				},
			},
			"coords": &graphql.Field{
				Type: coordsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if u, ok := p.Source.(*entity.User); ok && u.Address.Coords != nil {
						return u.Address.Coords, nil
					}
					return nil, nil
				},
			},
			"previousDonations": &graphql.Field{
				Type:    graphql.NewList(previousDonationType),
				Resolve: r.instrument("User.previousDonations", r.userPreviousDonations),
			},
		},
	})
}
