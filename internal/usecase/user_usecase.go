package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"blooddonor/internal/domain/entity"
	"blooddonor/internal/domain/repository"
	"blooddonor/pkg/errors"
	"blooddonor/pkg/logger"
	"blooddonor/pkg/validation"
)

type UserUseCase struct {
	userRepo      repository.UserRepository
	previousRepo  repository.PreviousDonationRepository
	tokens        TokenIssuer
	avatarBaseURL string
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	previousRepo repository.PreviousDonationRepository,
	tokens TokenIssuer,
	avatarBaseURL string,
) *UserUseCase {
	return &UserUseCase{
		userRepo:      userRepo,
		previousRepo:  previousRepo,
		tokens:        tokens,
		avatarBaseURL: avatarBaseURL,
	}
}

type RegisterInput struct {
	FirebaseUID string `json:"firebaseUID" validate:"notblank"`
	FullName    string `json:"fullName" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`
	Phone       string `json:"phone" validate:"notblank"`
	Age         string `json:"age" validate:"notblank"`
	Gender      string `json:"gender" validate:"notblank"`
	BloodType   string `json:"bloodType" validate:"notblank"`
	City        string `json:"city" validate:"notblank"`
	Pincode     string `json:"pincode" validate:"notblank"`
}

// Register persists a new user, issues its auth token and stores the token on
// the record. Blood type membership and uniqueness are enforced by the store.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(input.FullName)
	user := &entity.User{
		FirebaseUID: strings.TrimSpace(input.FirebaseUID),
		FullName:    fullName,
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		Age:         input.Age,
		Gender:      input.Gender,
		BloodType:   entity.BloodType(input.BloodType),
		Address: entity.Address{
			City:    input.City,
			Pincode: input.Pincode,
		},
		Avatar: uc.defaultAvatar(fullName),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	updated, err := uc.userRepo.UpdateToken(ctx, user.ID, token)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		user.Token = token
		return user, nil
	}

	logger.Debug("Registered user %s", updated.ID)
	return updated, nil
}

// Login matches email and the plaintext password field. Registration never
// stores a password, so in practice this finds nothing and returns nil.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	var missing []string
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, errors.Validation("All fields are required", missing...)
	}

	return uc.userRepo.FindByCredentials(ctx, strings.ToLower(strings.TrimSpace(email)), password)
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) GetByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByFirebaseUID(ctx, uid)
}

func (uc *UserUseCase) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return uc.userRepo.GetByPhone(ctx, phone)
}

func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) PreviousDonations(ctx context.Context, userID string) ([]*entity.PreviousDonation, error) {
	donations, err := uc.previousRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []*entity.PreviousDonation{}
	}
	return donations, nil
}

func (uc *UserUseCase) UpdateActiveForDonation(ctx context.Context, id string, active bool) (*entity.User, error) {
	return uc.userRepo.UpdateActiveForDonation(ctx, id, active)
}

// AddUserCoords is the one update path that reports a missing user and wraps
// store failures instead of returning nil.
func (uc *UserUseCase) AddUserCoords(ctx context.Context, id string, lat, lng float64) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}

	updated, err := uc.userRepo.UpdateCoords(ctx, id, entity.Coords{Lat: lat, Lng: lng})
	if err != nil {
		logger.Error("Updating coordinates for user %s: %v", id, err)
		return nil, errors.Internal("Error updating user coordinates", err)
	}
	if updated == nil {
		return nil, errors.NotFound("User", nil)
	}

	return updated, nil
}

func (uc *UserUseCase) UpdateAge(ctx context.Context, id, age string) (*entity.User, error) {
	return uc.userRepo.UpdateAge(ctx, id, age)
}

func (uc *UserUseCase) UpdateBloodType(ctx context.Context, id, bloodType string) (*entity.User, error) {
	return uc.userRepo.UpdateBloodType(ctx, id, entity.BloodType(bloodType))
}

func (uc *UserUseCase) UpdateCity(ctx context.Context, id, city string) (*entity.User, error) {
	return uc.userRepo.UpdateCity(ctx, id, city)
}

func (uc *UserUseCase) UpdatePincode(ctx context.Context, id, pincode string) (*entity.User, error) {
	return uc.userRepo.UpdatePincode(ctx, id, pincode)
}

func (uc *UserUseCase) defaultAvatar(fullName string) string {
	return fmt.Sprintf("%s?username=%s", uc.avatarBaseURL, url.QueryEscape(fullName))
}
