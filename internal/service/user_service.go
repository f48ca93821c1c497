package service

import (
	"context"
	"errors"
	"strings"

	"tastemap/internal/models"
	"tastemap/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	locationRepo repository.LocationRepository
}

// UpdateProfileInput carries the allowed self-service profile fields.
// Nil pointers mean "leave as is".
type UpdateProfileInput struct {
	Name       *string
	AvatarURL  *string
	LocationID *uint
}

// Profile bundles a user with their authored posts for the profile endpoints.
type Profile struct {
	User  *models.User
	Posts []*models.Post
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	locationRepo repository.LocationRepository,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		locationRepo: locationRepo,
	}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	// Emails are matched case-sensitively, exactly as stored.
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, models.NewValidationError("Name, email and password are required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same error so the response never reveals which accounts exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("Invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, models.NewValidationError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID, currentUserID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, err
	}
	posts, err := s.postRepo.GetByUserID(ctx, userID, currentUserID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Posts: posts}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	fields := map[string]interface{}{}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.AvatarURL != nil {
		fields["avatar_url"] = *in.AvatarURL
	}
	if in.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *in.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewValidationError("Invalid locationId")
			}
			return nil, err
		}
		fields["location_id"] = *in.LocationID
	}
	if len(fields) == 0 {
		return nil, models.NewValidationError("No valid fields to update")
	}

	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// SetLocation points the user's profile at an existing location.
func (s *UserService) SetLocation(ctx context.Context, userID, locationID uint) (*models.User, error) {
	if locationID == 0 {
		return nil, models.NewValidationError("locationId is required")
	}
	if _, err := s.locationRepo.GetByID(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("Invalid locationId")
		}
		return nil, err
	}
	if err := s.userRepo.UpdateFields(ctx, userID, map[string]interface{}{"location_id": locationID}); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserService) ListLocations(ctx context.Context) ([]*models.Location, error) {
	return s.locationRepo.List(ctx)
}
