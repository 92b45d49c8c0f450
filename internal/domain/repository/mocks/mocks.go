// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blooddonor/internal/domain/entity"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*entity.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) GetByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return m.user(m.Called(ctx, uid))
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return m.user(m.Called(ctx, phone))
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	return m.user(m.Called(ctx, email, password))
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateToken(ctx context.Context, id, token string) (*entity.User, error) {
	return m.user(m.Called(ctx, id, token))
}

func (m *MockUserRepository) UpdateActiveForDonation(ctx context.Context, id string, active bool) (*entity.User, error) {
	return m.user(m.Called(ctx, id, active))
}

func (m *MockUserRepository) UpdateCoords(ctx context.Context, id string, coords entity.Coords) (*entity.User, error) {
	return m.user(m.Called(ctx, id, coords))
}

func (m *MockUserRepository) UpdateAge(ctx context.Context, id, age string) (*entity.User, error) {
	return m.user(m.Called(ctx, id, age))
}

func (m *MockUserRepository) UpdateBloodType(ctx context.Context, id string, bloodType entity.BloodType) (*entity.User, error) {
	return m.user(m.Called(ctx, id, bloodType))
}

func (m *MockUserRepository) UpdateCity(ctx context.Context, id, city string) (*entity.User, error) {
	return m.user(m.Called(ctx, id, city))
}

func (m *MockUserRepository) UpdatePincode(ctx context.Context, id, pincode string) (*entity.User, error) {
	return m.user(m.Called(ctx, id, pincode))
}

func (m *MockUserRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) donation(args mock.Arguments) (*entity.Donation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Donation), args.Error(1)
}

func (m *MockDonationRepository) donations(args mock.Arguments) ([]*entity.Donation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Donation), args.Error(1)
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	return m.donation(m.Called(ctx, id))
}

func (m *MockDonationRepository) List(ctx context.Context) ([]*entity.Donation, error) {
	return m.donations(m.Called(ctx))
}

func (m *MockDonationRepository) ListByCity(ctx context.Context, city string) ([]*entity.Donation, error) {
	return m.donations(m.Called(ctx, city))
}

func (m *MockDonationRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Donation, error) {
	return m.donations(m.Called(ctx, receiverID))
}

func (m *MockDonationRepository) Update(ctx context.Context, donation *entity.Donation) (*entity.Donation, error) {
	return m.donation(m.Called(ctx, donation))
}

func (m *MockDonationRepository) Delete(ctx context.Context, id string) (*entity.Donation, error) {
	return m.donation(m.Called(ctx, id))
}

type MockPreviousDonationRepository struct {
	mock.Mock
}

func (m *MockPreviousDonationRepository) Create(ctx context.Context, donation *entity.PreviousDonation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockPreviousDonationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PreviousDonation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PreviousDonation), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID, email, fullName string) (string, error) {
	args := m.Called(userID, email, fullName)
	return args.String(0), args.Error(1)
}
