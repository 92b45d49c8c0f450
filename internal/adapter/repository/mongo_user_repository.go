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
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository"
)

type mongoUserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		db:   db,
		coll: db.Collection(usersCollection),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := newUserDocument(user)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return mapWriteError("User", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) GetByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"firebaseUID": uid})
}

func (r *mongoUserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

// FindByCredentials compares the plaintext password field. User documents
// written by this service have no such field.
func (r *mongoUserRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	return r.findOne(ctx, bson.M{"email": email, "password": password}, opts)
}

func (r *mongoUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toEntity())
	}
	return users, nil
}

func (r *mongoUserRepository) UpdateToken(ctx context.Context, id, token string) (*entity.User, error) {
	return r.set(ctx, id, bson.M{"token": token})
}

func (r *mongoUserRepository) UpdateActiveForDonation(ctx context.Context, id string, active bool) (*entity.User, error) {
	return r.set(ctx, id, bson.M{"activeForDonation": active})
}

func (r *mongoUserRepository) UpdateCoords(ctx context.Context, id string, coords entity.Coords) (*entity.User, error) {
	return r.set(ctx, id, bson.M{
		"address.coords.lat": coords.Lat,
		"address.coords.lng": coords.Lng,
	})
}

func (r *mongoUserRepository) UpdateAge(ctx context.Context, id, age string) (*entity.User, error) {
	return r.set(ctx, id, bson.M{"age": age})
}

func (r *mongoUserRepository) UpdateBloodType(ctx context.Context, id string, bloodType entity.BloodType) (*entity.User, error) {
	return r.set(ctx, id, bson.M{"bloodType": string(bloodType)})
}

func (r *mongoUserRepository) UpdateCity(ctx context.Context, id, city string) (*entity.User, error) {
	return r.set(ctx, id, bson.M{"address.city": city})
}

func (r *mongoUserRepository) UpdatePincode(ctx context.Context, id, pincode string) (*entity.User, error) {
	return r.set(ctx, id, bson.M{"address.pincode": pincode})
}

func (r *mongoUserRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter, opts...).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toEntity(), nil
}

// set applies fields with $set and returns the document after the update,
// or nil when id matches nothing.
func (r *mongoUserRepository) set(ctx context.Context, id string, fields bson.M) (*entity.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	fields["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, mapWriteError("User", err)
	}
	return doc.toEntity(), nil
}
