package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository/mocks"
	"blooddonor/pkg/errors"
)

func TestDonationUseCase_AddDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields are listed", func(t *testing.T) {
		donationRepo := new(mocks.MockDonationRepository)
		uc := NewDonationUseCase(donationRepo, nil)

		_, err := uc.AddDonation(ctx, DonationInput{UserID: " ", City: "Pune"})
		require.True(t, errors.Is(err, errors.CodeValidation))

		appErr, _ := errors.As(err)
		assert.ElementsMatch(t, []string{"userId", "donationDate", "donationType"}, appErr.Fields)
		donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("enum membership is left to the store", func(t *testing.T) {
		donationRepo := new(mocks.MockDonationRepository)
		uc := NewDonationUseCase(donationRepo, nil)

		storeErr := errors.Validation("donationType must be one of previous-donation, request-for-donor, request-in-your-area", "donationType")
		donationRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Donation) bool {
			return d.DonationType == "request-donation"
		})).Return(storeErr).Once()

		_, err := uc.AddDonation(ctx, DonationInput{
			UserID:       "u1",
			DonationDate: "2024-05-01",
			DonationType: "request-donation",
		})
		assert.Same(t, storeErr, err)
	})

	t.Run("creates donation", func(t *testing.T) {
		donationRepo := new(mocks.MockDonationRepository)
		uc := NewDonationUseCase(donationRepo, nil)

		donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Donation")).
			Run(func(args mock.Arguments) {
				d := args.Get(1).(*entity.Donation)
				d.ID = "d1"
				d.Status = entity.DonationStatusPending
			}).Return(nil).Once()

		donation, err := uc.AddDonation(ctx, DonationInput{
			UserID:       "u1",
			ReceiverID:   "u2",
			DonationDate: "2024-05-01",
			DonationType: string(entity.DonationTypeRequestForDonor),
			City:         "Pune",
		})
		require.NoError(t, err)
		assert.Equal(t, "d1", donation.ID)
		assert.Equal(t, "u2", donation.ReceiverID)
		assert.Equal(t, "Pune", donation.City)
		assert.Equal(t, entity.DonationStatusPending, donation.Status)
	})
}

func TestDonationUseCase_UpdateDonation(t *testing.T) {
	ctx := context.Background()
	donationRepo := new(mocks.MockDonationRepository)
	uc := NewDonationUseCase(donationRepo, nil)

	donationRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *entity.Donation) bool {
		return d.ID == "d1" && d.City == "Mumbai" && d.UserID == "u1" && d.ReceiverID == "u3"
	})).Return(&entity.Donation{ID: "d1", City: "Mumbai", UserID: "u1", ReceiverID: "u3"}, nil).Once()
	donationRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *entity.Donation) bool {
		return d.ID == "ghost"
	})).Return(nil, nil).Once()

	input := DonationInput{
		UserID:       "u1",
		ReceiverID:   "u3",
		DonationDate: "2024-06-01",
		DonationType: string(entity.DonationTypePrevious),
		City:         "Mumbai",
	}

	donation, err := uc.UpdateDonation(ctx, "d1", input)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", donation.City)
	assert.Equal(t, "u1", donation.UserID)

	donation, err = uc.UpdateDonation(ctx, "ghost", input)
	assert.NoError(t, err)
	assert.Nil(t, donation)

	_, err = uc.UpdateDonation(ctx, "", input)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	donationRepo.AssertExpectations(t)
}

func TestDonationUseCase_Reads(t *testing.T) {
	ctx := context.Background()
	donationRepo := new(mocks.MockDonationRepository)
	uc := NewDonationUseCase(donationRepo, nil)

	pune := []*entity.Donation{{ID: "d1", City: "Pune"}}
	donationRepo.On("ListByCity", mock.Anything, "Pune").Return(pune, nil).Once()
	donationRepo.On("ListByReceiver", mock.Anything, "u2").Return([]*entity.Donation{}, nil).Once()
	donationRepo.On("Delete", mock.Anything, "d1").Return(pune[0], nil).Once()

	got, err := uc.InYourArea(ctx, "Pune")
	require.NoError(t, err)
	assert.Equal(t, pune, got)

	got, err = uc.RequestsForYou(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, got)

	deleted, err := uc.DeleteDonation(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", deleted.ID)

	donationRepo.AssertExpectations(t)
}

func TestDonationUseCase_AddPreviousDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid date", func(t *testing.T) {
		previousRepo := new(mocks.MockPreviousDonationRepository)
		uc := NewDonationUseCase(nil, previousRepo)

		_, err := uc.AddPreviousDonation(ctx, PreviousDonationInput{UserID: "u1", DonationDate: "last tuesday"})
		require.True(t, errors.Is(err, errors.CodeValidation))
		previousRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates record", func(t *testing.T) {
		previousRepo := new(mocks.MockPreviousDonationRepository)
		uc := NewDonationUseCase(nil, previousRepo)
		want := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

		previousRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.PreviousDonation) bool {
			return p.UserID == "u1" && p.DonationDate.Equal(want)
		})).Return(nil).Once()

		previous, err := uc.AddPreviousDonation(ctx, PreviousDonationInput{UserID: "u1", DonationDate: "2024-03-14"})
		require.NoError(t, err)
		assert.Equal(t, "u1", previous.UserID)
		previousRepo.AssertExpectations(t)
	})
}

func TestParseDonationDate(t *testing.T) {
	got, err := ParseDonationDate("2024-03-14T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 5, 0, 0, 0, time.UTC), got)

	got, err = ParseDonationDate(" 2024-03-14 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDonationDate("14/03/2024")
	assert.Error(t, err)
}
