package repository

import (
	"context"
	"fmt"
	"net/url"
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
	firestoreUsersCollection      = "users"
	firestoreUniqueKeysCollection = "user_unique_keys"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) users() *firestore.CollectionRef {
	return r.client.Collection(firestoreUsersCollection)
}

// uniqueKey is the guard document that reserves value for field. Firestore has
// no unique indexes, so Create writes one guard per unique field in the same
// transaction as the user.
func (r *firestoreUserRepository) uniqueKey(field, value string) *firestore.DocumentRef {
	return r.client.Collection(firestoreUniqueKeysCollection).Doc(field + ":" + url.PathEscape(value))
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if !user.BloodType.IsValid() {
		return errors.Validation(fmt.Sprintf("`%s` is not a valid bloodType", user.BloodType), "bloodType")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	guards := map[string]string{
		"firebaseUID": user.FirebaseUID,
		"email":       user.Email,
		"phone":       user.Phone,
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for field, value := range guards {
			if err := tx.Create(r.uniqueKey(field, value), map[string]interface{}{"userId": user.ID}); err != nil {
				return err
			}
		}
		return tx.Create(r.users().Doc(user.ID), user)
	})
	if status.Code(err) == codes.AlreadyExists {
		return errors.Conflict("User already exists", err)
	}
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, nil
	}

	doc, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return r.first(ctx, r.users().Where("firebaseUID", "==", uid).Limit(1))
}

func (r *firestoreUserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.first(ctx, r.users().Where("phone", "==", phone).Limit(1))
}

func (r *firestoreUserRepository) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	query := r.users().Where("email", "==", email).Where("password", "==", password).Limit(1)
	return r.first(ctx, query)
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	iter := r.users().Documents(ctx)
	defer iter.Stop()

	users := []*entity.User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, nil
}

func (r *firestoreUserRepository) UpdateToken(ctx context.Context, id, token string) (*entity.User, error) {
	return r.update(ctx, id, []firestore.Update{{Path: "token", Value: token}})
}

func (r *firestoreUserRepository) UpdateActiveForDonation(ctx context.Context, id string, active bool) (*entity.User, error) {
	return r.update(ctx, id, []firestore.Update{{Path: "activeForDonation", Value: active}})
}

func (r *firestoreUserRepository) UpdateCoords(ctx context.Context, id string, coords entity.Coords) (*entity.User, error) {
	return r.update(ctx, id, []firestore.Update{
		{Path: "address.coords.lat", Value: coords.Lat},
		{Path: "address.coords.lng", Value: coords.Lng},
	})
}

func (r *firestoreUserRepository) UpdateAge(ctx context.Context, id, age string) (*entity.User, error) {
	return r.update(ctx, id, []firestore.Update{{Path: "age", Value: age}})
}

func (r *firestoreUserRepository) UpdateBloodType(ctx context.Context, id string, bloodType entity.BloodType) (*entity.User, error) {
	if !bloodType.IsValid() {
		return nil, errors.Validation(fmt.Sprintf("`%s` is not a valid bloodType", bloodType), "bloodType")
	}
	return r.update(ctx, id, []firestore.Update{{Path: "bloodType", Value: string(bloodType)}})
}

func (r *firestoreUserRepository) UpdateCity(ctx context.Context, id, city string) (*entity.User, error) {
	return r.update(ctx, id, []firestore.Update{{Path: "address.city", Value: city}})
}

func (r *firestoreUserRepository) UpdatePincode(ctx context.Context, id, pincode string) (*entity.User, error) {
	return r.update(ctx, id, []firestore.Update{{Path: "address.pincode", Value: pincode}})
}

func (r *firestoreUserRepository) Ping(ctx context.Context) error {
	iter := r.users().Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

// update returns nil when the document does not exist; DocumentRef.Update
// fails with NotFound instead of creating it.
func (r *firestoreUserRepository) update(ctx context.Context, id string, updates []firestore.Update) (*entity.User, error) {
	if id == "" {
		return nil, nil
	}

	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})
	if _, err := r.users().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *firestoreUserRepository) first(ctx context.Context, query firestore.Query) (*entity.User, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
