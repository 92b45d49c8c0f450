package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blooddonor/internal/domain/entity"
	apperrors "blooddonor/pkg/errors"
	"blooddonor/pkg/logger"
)

const (
	codeNamespaceExists    = 48
	codeDocumentValidation = 121
)

func enumValues[T ~string](values []T) bson.A {
	out := make(bson.A, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func collectionValidators() map[string]bson.M {
	return map[string]bson.M{
		usersCollection: {
			"bsonType": "object",
			"required": bson.A{"firebaseUID", "email", "fullName", "phone", "age", "bloodType"},
			"properties": bson.M{
				"firebaseUID":       bson.M{"bsonType": "string"},
				"email":             bson.M{"bsonType": "string"},
				"fullName":          bson.M{"bsonType": "string"},
				"phone":             bson.M{"bsonType": "string"},
				"age":               bson.M{"bsonType": "string"},
				"bloodType":         bson.M{"enum": enumValues(entity.BloodTypes)},
				"activeForDonation": bson.M{"bsonType": "bool"},
			},
		},
		donationsCollection: {
			"bsonType": "object",
			"required": bson.A{"userId", "donationDate", "donationType", "status"},
			"properties": bson.M{
				"userId":       bson.M{"bsonType": "objectId"},
				"receiverId":   bson.M{"bsonType": "objectId"},
				"donationDate": bson.M{"bsonType": "string"},
				"donationType": bson.M{"enum": enumValues(entity.DonationTypes)},
				"status":       bson.M{"enum": enumValues(entity.DonationStatuses)},
				"bloodType":    bson.M{"enum": enumValues(entity.BloodTypes)},
				"city":         bson.M{"bsonType": "string"},
			},
		},
		previousDonationsCollection: {
			"bsonType": "object",
			"required": bson.A{"userId", "donationDate"},
			"properties": bson.M{
				"userId":       bson.M{"bsonType": "objectId"},
				"receiverId":   bson.M{"bsonType": "objectId"},
				"donationDate": bson.M{"bsonType": "date"},
			},
		},
	}
}

func collectionIndexes() map[string][]mongo.IndexModel {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(field + "_unique"),
		}
	}
	plain := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetName(field + "_idx"),
		}
	}

	return map[string][]mongo.IndexModel{
		usersCollection:             {unique("firebaseUID"), unique("email"), unique("phone"), plain("fullName")},
		donationsCollection:         {plain("city"), plain("receiverId")},
		previousDonationsCollection: {plain("userId")},
	}
}

// EnsureSchema creates the collections with their validators and the unique
// indexes the stores rely on. It is safe to run against an existing database.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	for name, schema := range collectionValidators() {
		validator := bson.M{"$jsonSchema": schema}
		opts := options.CreateCollection().
			SetValidator(validator).
			SetValidationLevel("strict").
			SetValidationAction("error")

		err := db.CreateCollection(ctx, name, opts)
		var cmdErr mongo.CommandError
		switch {
		case err == nil:
			logger.Info("Created collection %s", name)
		case errors.As(err, &cmdErr) && cmdErr.HasErrorCode(codeNamespaceExists):
			cmd := bson.D{
				{Key: "collMod", Value: name},
				{Key: "validator", Value: validator},
				{Key: "validationLevel", Value: "strict"},
				{Key: "validationAction", Value: "error"},
			}
			if err := db.RunCommand(ctx, cmd).Err(); err != nil {
				return fmt.Errorf("update validator for %s: %w", name, err)
			}
		default:
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}

	for name, models := range collectionIndexes() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}

	return nil
}

// mapWriteError turns constraint violations raised by the server into
// application errors. Anything else is returned as is.
func mapWriteError(resource string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Conflict(resource+" already exists", err)
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(codeDocumentValidation) {
		appErr := apperrors.Validation(resource + " failed document validation")
		appErr.Err = err
		return appErr
	}
	return err
}
