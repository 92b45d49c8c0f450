package usecase

import (
	"context"
	"strings"
	"time"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository"
	"blooddonor/pkg/errors"
	"blooddonor/pkg/validation"
)

type DonationUseCase struct {
	donationRepo repository.DonationRepository
	previousRepo repository.PreviousDonationRepository
}

func NewDonationUseCase(donationRepo repository.DonationRepository, previousRepo repository.PreviousDonationRepository) *DonationUseCase {
	return &DonationUseCase{
		donationRepo: donationRepo,
		previousRepo: previousRepo,
	}
}

// DonationInput is the full field set accepted by addDonation and
// updateDonation. Enum membership is checked by the store, not here.
type DonationInput struct {
	UserID       string `json:"userId" validate:"notblank"`
	ReceiverID   string `json:"receiverId"`
	DonationDate string `json:"donationDate" validate:"notblank"`
	DonationType string `json:"donationType" validate:"notblank"`
	BloodType    string `json:"bloodType"`
	City         string `json:"city"`
	Status       string `json:"status"`
}

type PreviousDonationInput struct {
	UserID       string `json:"userId" validate:"notblank"`
	ReceiverID   string `json:"receiverId"`
	DonationDate string `json:"donationDate" validate:"notblank"`
}

func (uc *DonationUseCase) AddDonation(ctx context.Context, input DonationInput) (*entity.Donation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	donation := input.toEntity()
	if err := uc.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// UpdateDonation overwrites the stored fields of the donation with id.
// An empty status keeps the stored one. Unknown ids return nil.
func (uc *DonationUseCase) UpdateDonation(ctx context.Context, id string, input DonationInput) (*entity.Donation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Validation("All fields are required: id", "id")
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	donation := input.toEntity()
	donation.ID = id
	return uc.donationRepo.Update(ctx, donation)
}

func (uc *DonationUseCase) DeleteDonation(ctx context.Context, id string) (*entity.Donation, error) {
	return uc.donationRepo.Delete(ctx, id)
}

func (uc *DonationUseCase) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	return uc.donationRepo.GetByID(ctx, id)
}

func (uc *DonationUseCase) List(ctx context.Context) ([]*entity.Donation, error) {
	return uc.donationRepo.List(ctx)
}

// InYourArea matches city exactly; no case or whitespace folding is applied.
func (uc *DonationUseCase) InYourArea(ctx context.Context, city string) ([]*entity.Donation, error) {
	return uc.donationRepo.ListByCity(ctx, city)
}

func (uc *DonationUseCase) RequestsForYou(ctx context.Context, receiverID string) ([]*entity.Donation, error) {
	return uc.donationRepo.ListByReceiver(ctx, receiverID)
}

func (uc *DonationUseCase) AddPreviousDonation(ctx context.Context, input PreviousDonationInput) (*entity.PreviousDonation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	date, err := ParseDonationDate(input.DonationDate)
	if err != nil {
		return nil, errors.Validation("donationDate must be an RFC3339 timestamp or YYYY-MM-DD date", "donationDate")
	}

	previous := &entity.PreviousDonation{
		UserID:       strings.TrimSpace(input.UserID),
		ReceiverID:   strings.TrimSpace(input.ReceiverID),
		DonationDate: date,
	}
	if err := uc.previousRepo.Create(ctx, previous); err != nil {
		return nil, err
	}

	return previous, nil
}

func ParseDonationDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}

func (in DonationInput) toEntity() *entity.Donation {
	return &entity.Donation{
		UserID:       strings.TrimSpace(in.UserID),
		ReceiverID:   strings.TrimSpace(in.ReceiverID),
		DonationDate: in.DonationDate,
		DonationType: entity.DonationType(in.DonationType),
		BloodType:    entity.BloodType(in.BloodType),
		City:         in.City,
		Status:       entity.DonationStatus(in.Status),
	}
}
