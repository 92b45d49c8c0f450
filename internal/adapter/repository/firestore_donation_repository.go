package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository"
	"blooddonor/pkg/errors"
)

const (
	firestoreDonationsCollection         = "donations"
	firestorePreviousDonationsCollection = "previous_donations"
)

type firestoreDonationRepository struct {
	client *firestore.Client
}

func NewFirestoreDonationRepository(client *firestore.Client) repository.DonationRepository {
	return &firestoreDonationRepository{
		client: client,
	}
}

func (r *firestoreDonationRepository) donations() *firestore.CollectionRef {
	return r.client.Collection(firestoreDonationsCollection)
}

// checkDonation applies the enum constraints Firestore cannot express itself.
func checkDonation(d *entity.Donation) error {
	if !d.DonationType.IsValid() {
		return errors.Validation(fmt.Sprintf("donationType must be one of %s", joinEnum(entity.DonationTypes)), "donationType")
	}
	if !d.Status.IsValid() {
		return errors.Validation(fmt.Sprintf("status must be one of %s", joinEnum(entity.DonationStatuses)), "status")
	}
	if d.BloodType != "" && !d.BloodType.IsValid() {
		return errors.Validation(fmt.Sprintf("`%s` is not a valid bloodType", d.BloodType), "bloodType")
	}
	return nil
}

func joinEnum[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}

func (r *firestoreDonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	if donation.Status == "" {
		donation.Status = entity.DonationStatusPending
	}
	if err := checkDonation(donation); err != nil {
		return err
	}

	if donation.ID == "" {
		donation.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	donation.CreatedAt = now
	donation.UpdatedAt = now

	if _, err := r.donations().Doc(donation.ID).Set(ctx, donation); err != nil {
		return errors.Internal("Failed to create donation", err)
	}

	return nil
}

func (r *firestoreDonationRepository) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	if id == "" {
		return nil, nil
	}

	doc, err := r.donations().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var donation entity.Donation
	if err := doc.DataTo(&donation); err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *firestoreDonationRepository) List(ctx context.Context) ([]*entity.Donation, error) {
	return r.collect(r.donations().Documents(ctx))
}

func (r *firestoreDonationRepository) ListByCity(ctx context.Context, city string) ([]*entity.Donation, error) {
	return r.collect(r.donations().Where("city", "==", city).Documents(ctx))
}

func (r *firestoreDonationRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Donation, error) {
	return r.collect(r.donations().Where("receiverId", "==", receiverID).Documents(ctx))
}

func (r *firestoreDonationRepository) Update(ctx context.Context, donation *entity.Donation) (*entity.Donation, error) {
	if donation.ID == "" {
		return nil, nil
	}

	var updated *entity.Donation
	ref := r.donations().Doc(donation.ID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		updated = nil

		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return err
		}

		var current entity.Donation
		if err := doc.DataTo(&current); err != nil {
			return err
		}

		next := *donation
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = time.Now().UTC()
		if next.Status == "" {
			next.Status = current.Status
		}
		if err := checkDonation(&next); err != nil {
			return err
		}

		if err := tx.Set(ref, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *firestoreDonationRepository) Delete(ctx context.Context, id string) (*entity.Donation, error) {
	if id == "" {
		return nil, nil
	}

	var deleted *entity.Donation
	ref := r.donations().Doc(id)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		deleted = nil

		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return err
		}

		var current entity.Donation
		if err := doc.DataTo(&current); err != nil {
			return err
		}

		if err := tx.Delete(ref); err != nil {
			return err
		}
		deleted = &current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func (r *firestoreDonationRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Donation, error) {
	defer iter.Stop()

	donations := []*entity.Donation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var donation entity.Donation
		if err := doc.DataTo(&donation); err != nil {
			return nil, err
		}
		donations = append(donations, &donation)
	}

	return donations, nil
}

type firestorePreviousDonationRepository struct {
	client *firestore.Client
}

func NewFirestorePreviousDonationRepository(client *firestore.Client) repository.PreviousDonationRepository {
	return &firestorePreviousDonationRepository{
		client: client,
	}
}

func (r *firestorePreviousDonationRepository) Create(ctx context.Context, donation *entity.PreviousDonation) error {
	if donation.ID == "" {
		donation.ID = uuid.New().String()
	}
	donation.CreatedAt = time.Now().UTC()

	_, err := r.client.Collection(firestorePreviousDonationsCollection).Doc(donation.ID).Set(ctx, donation)
	if err != nil {
		return errors.Internal("Failed to create previous donation", err)
	}

	return nil
}

func (r *firestorePreviousDonationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PreviousDonation, error) {
	iter := r.client.Collection(firestorePreviousDonationsCollection).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	donations := []*entity.PreviousDonation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var donation entity.PreviousDonation
		if err := doc.DataTo(&donation); err != nil {
			return nil, err
		}
		donations = append(donations, &donation)
	}

	return donations, nil
}
