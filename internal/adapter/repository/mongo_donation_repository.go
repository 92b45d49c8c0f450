package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository"
	apperrors "blooddonor/pkg/errors"
)

type mongoDonationRepository struct {
	coll *mongo.Collection
}

func NewMongoDonationRepository(db *mongo.Database) repository.DonationRepository {
	return &mongoDonationRepository{
		coll: db.Collection(donationsCollection),
	}
}

func (r *mongoDonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	if donation.Status == "" {
		donation.Status = entity.DonationStatusPending
	}
	now := time.Now().UTC()
	donation.CreatedAt = now
	donation.UpdatedAt = now

	doc, err := newDonationDocument(donation)
	if err != nil {
		return err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return mapWriteError("Donation", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		donation.ID = oid.Hex()
	}
	return nil
}

func (r *mongoDonationRepository) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	var doc donationDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find donation: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *mongoDonationRepository) List(ctx context.Context) ([]*entity.Donation, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoDonationRepository) ListByCity(ctx context.Context, city string) ([]*entity.Donation, error) {
	return r.find(ctx, bson.M{"city": city})
}

func (r *mongoDonationRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Donation, error) {
	oid, ok := objectID(receiverID)
	if !ok {
		return []*entity.Donation{}, nil
	}
	return r.find(ctx, bson.M{"receiverId": oid})
}

func (r *mongoDonationRepository) Update(ctx context.Context, donation *entity.Donation) (*entity.Donation, error) {
	oid, ok := objectID(donation.ID)
	if !ok {
		return nil, nil
	}

	doc, err := newDonationDocument(donation)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"userId":       doc.UserID,
		"donationDate": doc.DonationDate,
		"donationType": doc.DonationType,
		"updatedAt":    time.Now().UTC(),
	}
	unset := bson.M{}

	optional := map[string]interface{}{
		"receiverId": doc.ReceiverID,
		"city":       doc.City,
		"bloodType":  doc.BloodType,
	}
	for field, value := range optional {
		switch v := value.(type) {
		case *primitive.ObjectID:
			if v == nil {
				unset[field] = ""
				continue
			}
		case string:
			if v == "" {
				unset[field] = ""
				continue
			}
		}
		set[field] = value
	}
	if doc.Status != "" {
		set["status"] = doc.Status
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated donationDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, mapWriteError("Donation", err)
	}
	return updated.toEntity(), nil
}

func (r *mongoDonationRepository) Delete(ctx context.Context, id string) (*entity.Donation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	var doc donationDocument
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete donation: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *mongoDonationRepository) find(ctx context.Context, filter bson.M) ([]*entity.Donation, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find donations: %w", err)
	}

	var docs []donationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode donations: %w", err)
	}

	donations := make([]*entity.Donation, 0, len(docs))
	for i := range docs {
		donations = append(donations, docs[i].toEntity())
	}
	return donations, nil
}

func newDonationDocument(d *entity.Donation) (*donationDocument, error) {
	userID, ok := objectID(d.UserID)
	if !ok {
		return nil, apperrors.Validation("userId is not a valid id", "userId")
	}
	receiverID, ok := optionalObjectID(d.ReceiverID)
	if !ok {
		return nil, apperrors.Validation("receiverId is not a valid id", "receiverId")
	}

	return &donationDocument{
		UserID:       userID,
		ReceiverID:   receiverID,
		DonationDate: d.DonationDate,
		DonationType: string(d.DonationType),
		BloodType:    string(d.BloodType),
		City:         d.City,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

type mongoPreviousDonationRepository struct {
	coll *mongo.Collection
}

func NewMongoPreviousDonationRepository(db *mongo.Database) repository.PreviousDonationRepository {
	return &mongoPreviousDonationRepository{
		coll: db.Collection(previousDonationsCollection),
	}
}

func (r *mongoPreviousDonationRepository) Create(ctx context.Context, donation *entity.PreviousDonation) error {
	userID, ok := objectID(donation.UserID)
	if !ok {
		return apperrors.Validation("userId is not a valid id", "userId")
	}
	receiverID, ok := optionalObjectID(donation.ReceiverID)
	if !ok {
		return apperrors.Validation("receiverId is not a valid id", "receiverId")
	}

	donation.CreatedAt = time.Now().UTC()
	doc := &previousDonationDocument{
		UserID:       userID,
		ReceiverID:   receiverID,
		DonationDate: donation.DonationDate,
		CreatedAt:    donation.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return mapWriteError("Previous donation", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		donation.ID = oid.Hex()
	}
	return nil
}

// ListByUser is the per-parent lookup behind User.previousDonations.
func (r *mongoPreviousDonationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PreviousDonation, error) {
	oid, ok := objectID(userID)
	if !ok {
		return []*entity.PreviousDonation{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"userId": oid})
	if err != nil {
		return nil, fmt.Errorf("find previous donations: %w", err)
	}

	var docs []previousDonationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode previous donations: %w", err)
	}

	donations := make([]*entity.PreviousDonation, 0, len(docs))
	for i := range docs {
		donations = append(donations, docs[i].toEntity())
	}
	return donations, nil
}
