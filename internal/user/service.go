// Package user implements registration, login and the doctor directory
// listing.
package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medicore/hospital-api/internal/media"
	"github.com/medicore/hospital-api/internal/models"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/utils"
)

// TokenGenerator issues role-scoped session tokens.
type TokenGenerator interface {
	Generate(userID, role string) (string, error)
}

// RegisterInput carries the demographic fields shared by every role.
type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required,min=3"`
	LastName  string `json:"lastName" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,len=10,numeric"`
	AdharID   string `json:"adharId" binding:"required,len=12,numeric"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female Other"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginInput is the credential check request. Role scopes the login: a valid
// password under the wrong role is rejected.
type LoginInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// Service is the identity and credential service.
type Service struct {
	users    repository.UserRepository
	uploader media.Uploader
	tokens   TokenGenerator
}

func NewService(users repository.UserRepository, uploader media.Uploader, tokens TokenGenerator) *Service {
	return &Service{users: users, uploader: uploader, tokens: tokens}
}

// RegisterPatient creates a Patient identity and returns it with a session
// token.
func (s *Service) RegisterPatient(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	created, err := s.register(ctx, in, models.RolePatient, "", nil)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Generate(created.ID.Hex(), string(created.Role))
	if err != nil {
		return nil, "", models.NewInternalError("Could not generate token")
	}
	return created, token, nil
}

// AddAdmin creates an Admin identity. Admin-gated at the route.
func (s *Service) AddAdmin(ctx context.Context, in RegisterInput) (*models.User, error) {
	return s.register(ctx, in, models.RoleAdmin, "", nil)
}

// AddDoctor creates a Doctor identity with a department and an uploaded
// avatar. Admin-gated at the route.
func (s *Service) AddDoctor(ctx context.Context, in RegisterInput, department string, avatar io.Reader) (*models.User, error) {
	if department == "" {
		return nil, models.NewValidationError("Please fill all required fields")
	}
	if avatar == nil {
		return nil, models.NewValidationError("Please upload doctor's photo")
	}
	if s.uploader == nil {
		return nil, models.NewInternalError("Avatar upload is not configured")
	}

	uploaded, err := s.uploader.Upload(ctx, avatar)
	if err != nil {
		return nil, models.NewInternalError("Avatar upload failed")
	}

	return s.register(ctx, in, models.RoleDoctor, department, &models.Avatar{
		PublicID: uploaded.PublicID,
		URL:      uploaded.URL,
	})
}

// Login verifies a role+password combination and issues a session token.
func (s *Service) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	if in.Email == "" || in.Password == "" || in.ConfirmPassword == "" || in.Role == "" {
		return nil, "", models.NewValidationError("Please fill all required fields")
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", models.NewValidationError("Passwords do not match")
	}

	found, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", models.NewInternalError("Failed to look up user")
	}
	if found == nil {
		return nil, "", models.NewValidationError("Invalid email or password")
	}
	if !utils.CheckPasswordHash(in.Password, found.Password) {
		return nil, "", models.NewValidationError("Invalid email or password")
	}
	if models.Role(in.Role) != found.Role {
		return nil, "", models.NewValidationError("User with this Role Not Found!")
	}

	token, err := s.tokens.Generate(found.ID.Hex(), string(found.Role))
	if err != nil {
		return nil, "", models.NewInternalError("Could not generate token")
	}
	return found, token, nil
}

// ListDoctors returns every Doctor identity.
func (s *Service) ListDoctors(ctx context.Context) ([]models.User, error) {
	doctors, err := s.users.FindDoctors(ctx)
	if err != nil {
		return nil, models.NewInternalError("Failed to retrieve doctors")
	}
	if doctors == nil {
		doctors = make([]models.User, 0)
	}
	return doctors, nil
}

// GetByID fetches one identity record.
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	found, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, models.NewInternalError("Failed to look up user")
	}
	if found == nil {
		return nil, models.NewNotFoundError("User not found")
	}
	return found, nil
}

// register is shared by all three roles. The password is hashed exactly once
// here; no other write path touches it.
func (s *Service) register(ctx context.Context, in RegisterInput, role models.Role, department string, avatar *models.Avatar) (*models.User, error) {
	dob, err := utils.ParseDate(in.DOB)
	if err != nil {
		return nil, models.NewValidationError("Invalid date of birth")
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, models.NewInternalError("Failed to look up user")
	}
	if existing != nil {
		if role == models.RolePatient {
			return nil, models.NewValidationError("User already exists with this email")
		}
		return nil, models.NewValidationError(fmt.Sprintf("%s already exists with this email", existing.Role))
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError("Failed to hash password")
	}

	created, err := s.users.Create(ctx, &models.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		AdharID:          in.AdharID,
		DOB:              dob,
		Gender:           in.Gender,
		Password:         hashed,
		Role:             role,
		DoctorDepartment: department,
		DocAvatar:        avatar,
		CreatedAt:        time.Now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, models.NewValidationError("User already exists with this email")
		}
		return nil, models.NewInternalError("Failed to create user")
	}
	return created, nil
}
