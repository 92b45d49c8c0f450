package repository

import (
	"context"

	"blooddonor/internal/domain/entity"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	GetByID(ctx context.Context, id string) (*entity.Donation, error)
	List(ctx context.Context) ([]*entity.Donation, error)
	ListByCity(ctx context.Context, city string) ([]*entity.Donation, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Donation, error)
	// Update overwrites every mutable field of the stored record with the
	// values on donation and returns the stored result.
	Update(ctx context.Context, donation *entity.Donation) (*entity.Donation, error)
	Delete(ctx context.Context, id string) (*entity.Donation, error)
}

type PreviousDonationRepository interface {
	Create(ctx context.Context, donation *entity.PreviousDonation) error
	ListByUser(ctx context.Context, userID string) ([]*entity.PreviousDonation, error)
}
