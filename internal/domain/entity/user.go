package entity

import "time"

type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

var BloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

func (b BloodType) IsValid() bool {
	for _, bt := range BloodTypes {
		if b == bt {
			return true
		}
	}
	return false
}

type Coords struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

type Address struct {
	City    string  `json:"city" firestore:"city"`
	Pincode string  `json:"pincode" firestore:"pincode"`
	Coords  *Coords `json:"coords,omitempty" firestore:"coords,omitempty"`
}

type User struct {
	ID                string    `json:"id" firestore:"id"`
	FirebaseUID       string    `json:"firebaseUID" firestore:"firebaseUID"`
	FullName          string    `json:"fullName" firestore:"fullName"`
	Email             string    `json:"email" firestore:"email"`
	Phone             string    `json:"phone" firestore:"phone"`
	Age               string    `json:"age" firestore:"age"`
	Gender            string    `json:"gender" firestore:"gender"`
	BloodType         BloodType `json:"bloodType" firestore:"bloodType"`
	ActiveForDonation bool      `json:"activeForDonation" firestore:"activeForDonation"`
	Address           Address   `json:"address" firestore:"address"`
	Avatar            string    `json:"avatar" firestore:"avatar"`

	// Token is issued at registration and stored on the record. Nothing
	// verifies it on later requests.
	Token string `json:"token,omitempty" firestore:"token,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
