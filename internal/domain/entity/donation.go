package entity

import "time"

type DonationType string

const (
	DonationTypePrevious        DonationType = "previous-donation"
	DonationTypeRequestForDonor DonationType = "request-for-donor"
	DonationTypeRequestInArea   DonationType = "request-in-your-area"
)

var DonationTypes = []DonationType{
	DonationTypePrevious,
	DonationTypeRequestForDonor,
	DonationTypeRequestInArea,
}

func (t DonationType) IsValid() bool {
	for _, dt := range DonationTypes {
		if t == dt {
			return true
		}
	}
	return false
}

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusCancelled DonationStatus = "cancelled"
)

var DonationStatuses = []DonationStatus{
	DonationStatusPending,
	DonationStatusCompleted,
	DonationStatusCancelled,
}

func (s DonationStatus) IsValid() bool {
	for _, st := range DonationStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Donation is a past donation, a request addressed to one receiver, or a
// request broadcast to donors in a city.
type Donation struct {
	ID           string         `json:"id" firestore:"id"`
	UserID       string         `json:"userId" firestore:"userId"`
	ReceiverID   string         `json:"receiverId,omitempty" firestore:"receiverId,omitempty"`
	DonationDate string         `json:"donationDate" firestore:"donationDate"`
	DonationType DonationType   `json:"donationType" firestore:"donationType"`
	BloodType    BloodType      `json:"bloodType,omitempty" firestore:"bloodType,omitempty"`
	City         string         `json:"city,omitempty" firestore:"city,omitempty"`
	Status       DonationStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

// PreviousDonation is the historical record listed under a user's profile.
// It is written independently of Donation.
type PreviousDonation struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"userId" firestore:"userId"`
	ReceiverID   string    `json:"receiverId,omitempty" firestore:"receiverId,omitempty"`
	DonationDate time.Time `json:"donationDate" firestore:"donationDate"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}
