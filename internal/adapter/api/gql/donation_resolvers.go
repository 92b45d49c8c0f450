package gql

import (
	"github.com/graphql-go/graphql"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/usecase"
)

func donationResult(donation *entity.Donation, err error) (interface{}, error) {
	if err != nil || donation == nil {
		return nil, err
	}
	return donation, nil
}

func donationList(donations []*entity.Donation, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func donationInput(p graphql.ResolveParams) usecase.DonationInput {
	return usecase.DonationInput{
		UserID:       stringArg(p, "userId"),
		ReceiverID:   stringArg(p, "receiverId"),
		DonationDate: stringArg(p, "donationDate"),
		DonationType: stringArg(p, "donationType"),
		BloodType:    stringArg(p, "bloodType"),
		City:         stringArg(p, "city"),
		Status:       stringArg(p, "status"),
	}
}

func (r *Resolver) donation(p graphql.ResolveParams) (interface{}, error) {
	return donationResult(r.donations.GetByID(p.Context, stringArg(p, "id")))
}

func (r *Resolver) listDonations(p graphql.ResolveParams) (interface{}, error) {
	return donationList(r.donations.List(p.Context))
}

func (r *Resolver) donationsInYourArea(p graphql.ResolveParams) (interface{}, error) {
	return donationList(r.donations.InYourArea(p.Context, stringArg(p, "city")))
}

func (r *Resolver) donationRequestsForYou(p graphql.ResolveParams) (interface{}, error) {
	return donationList(r.donations.RequestsForYou(p.Context, stringArg(p, "receiverId")))
}

func (r *Resolver) previousDonations(p graphql.ResolveParams) (interface{}, error) {
	donations, err := r.users.PreviousDonations(p.Context, stringArg(p, "userId"))
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *Resolver) addDonation(p graphql.ResolveParams) (interface{}, error) {
	return donationResult(r.donations.AddDonation(p.Context, donationInput(p)))
}

func (r *Resolver) updateDonation(p graphql.ResolveParams) (interface{}, error) {
	return donationResult(r.donations.UpdateDonation(p.Context, stringArg(p, "id"), donationInput(p)))
}

func (r *Resolver) deleteDonation(p graphql.ResolveParams) (interface{}, error) {
	return donationResult(r.donations.DeleteDonation(p.Context, stringArg(p, "id")))
}

func (r *Resolver) addPreviousDonation(p graphql.ResolveParams) (interface{}, error) {
	previous, err := r.donations.AddPreviousDonation(p.Context, usecase.PreviousDonationInput{
		UserID:       stringArg(p, "userId"),
		ReceiverID:   stringArg(p, "receiverId"),
		DonationDate: stringArg(p, "donationDate"),
	})
	if err != nil || previous == nil {
		return nil, err
	}
	return previous, nil
}
