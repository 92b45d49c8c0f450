package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blooddonor/internal/domain/entity"
)

// MongoDB collection names.
const (
	usersCollection             = "users"
	donationsCollection         = "donations"
	previousDonationsCollection = "previousdonations"
)

type coordsDocument struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}

type addressDocument struct {
	City    string          `bson:"city,omitempty"`
	Pincode string          `bson:"pincode,omitempty"`
	Coords  *coordsDocument `bson:"coords,omitempty"`
}

type userDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	FirebaseUID       string             `bson:"firebaseUID"`
	Email             string             `bson:"email"`
	FullName          string             `bson:"fullName"`
	Token             string             `bson:"token,omitempty"`
	Phone             string             `bson:"phone"`
	Age               string             `bson:"age"`
	BloodType         string             `bson:"bloodType"`
	ActiveForDonation bool               `bson:"activeForDonation"`
	Address           addressDocument    `bson:"address"`
	Gender            string             `bson:"gender"`
	Avatar            string             `bson:"avatar"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func newUserDocument(u *entity.User) *userDocument {
	doc := &userDocument{
		FirebaseUID:       u.FirebaseUID,
		Email:             u.Email,
		FullName:          u.FullName,
		Token:             u.Token,
		Phone:             u.Phone,
		Age:               u.Age,
		BloodType:         string(u.BloodType),
		ActiveForDonation: u.ActiveForDonation,
		Address: addressDocument{
			City:    u.Address.City,
			Pincode: u.Address.Pincode,
		},
		Gender:    u.Gender,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Address.Coords != nil {
		doc.Address.Coords = &coordsDocument{Lat: u.Address.Coords.Lat, Lng: u.Address.Coords.Lng}
	}
	return doc
}

func (d *userDocument) toEntity() *entity.User {
	u := &entity.User{
		ID:                d.ID.Hex(),
		FirebaseUID:       d.FirebaseUID,
		FullName:          d.FullName,
		Email:             d.Email,
		Phone:             d.Phone,
		Age:               d.Age,
		Gender:            d.Gender,
		BloodType:         entity.BloodType(d.BloodType),
		ActiveForDonation: d.ActiveForDonation,
		Address: entity.Address{
			City:    d.Address.City,
			Pincode: d.Address.Pincode,
		},
		Avatar:    d.Avatar,
		Token:     d.Token,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Address.Coords != nil {
		u.Address.Coords = &entity.Coords{Lat: d.Address.Coords.Lat, Lng: d.Address.Coords.Lng}
	}
	return u
}

type donationDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	UserID       primitive.ObjectID  `bson:"userId"`
	ReceiverID   *primitive.ObjectID `bson:"receiverId,omitempty"`
	DonationDate string              `bson:"donationDate"`
	DonationType string              `bson:"donationType"`
	BloodType    string              `bson:"bloodType,omitempty"`
	City         string              `bson:"city,omitempty"`
	Status       string              `bson:"status"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

func (d *donationDocument) toEntity() *entity.Donation {
	donation := &entity.Donation{
		ID:           d.ID.Hex(),
		UserID:       d.UserID.Hex(),
		DonationDate: d.DonationDate,
		DonationType: entity.DonationType(d.DonationType),
		BloodType:    entity.BloodType(d.BloodType),
		City:         d.City,
		Status:       entity.DonationStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.ReceiverID != nil {
		donation.ReceiverID = d.ReceiverID.Hex()
	}
	return donation
}

type previousDonationDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	UserID       primitive.ObjectID  `bson:"userId"`
	ReceiverID   *primitive.ObjectID `bson:"receiverId,omitempty"`
	DonationDate time.Time           `bson:"donationDate"`
	CreatedAt    time.Time           `bson:"createdAt"`
}

func (d *previousDonationDocument) toEntity() *entity.PreviousDonation {
	previous := &entity.PreviousDonation{
		ID:           d.ID.Hex(),
		UserID:       d.UserID.Hex(),
		DonationDate: d.DonationDate,
		CreatedAt:    d.CreatedAt,
	}
	if d.ReceiverID != nil {
		previous.ReceiverID = d.ReceiverID.Hex()
	}
	return previous
}

// objectID parses a hex id. ok is false for anything that cannot be an id,
// which callers treat as "no such record".
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func optionalObjectID(id string) (*primitive.ObjectID, bool) {
	if id == "" {
		return nil, true
	}
	oid, ok := objectID(id)
	if !ok {
		return nil, false
	}
	return &oid, true
}
