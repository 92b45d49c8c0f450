package repository

import (
	"context"

	"blooddonor/internal/domain/entity"
)

// UserRepository lookups and field updates return (nil, nil) when no record
// matches the given key.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)

	UpdateToken(ctx context.Context, id, token string) (*entity.User, error)
	UpdateActiveForDonation(ctx context.Context, id string, active bool) (*entity.User, error)
	UpdateCoords(ctx context.Context, id string, coords entity.Coords) (*entity.User, error)
	UpdateAge(ctx context.Context, id, age string) (*entity.User, error)
	UpdateBloodType(ctx context.Context, id string, bloodType entity.BloodType) (*entity.User, error)
	UpdateCity(ctx context.Context, id, city string) (*entity.User, error)
	UpdatePincode(ctx context.Context, id, pincode string) (*entity.User, error)

	Ping(ctx context.Context) error
}
