package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "serenispa/database/repository/user"
	"serenispa/models"
	"serenispa/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens stay valid for three days; the site has no refresh flow.
const tokenTTL = 72 * time.Hour

var (
	// ErrValidation wraps missing or malformed request fields.
	ErrValidation = errors.New("validation failed")
	// ErrExists signals that the email is already registered.
	ErrExists = userRepo.ErrExists
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound signals that no user matches the given email.
	ErrNotFound = userRepo.ErrNotFound
)

// Profile is the public view of a user.
type Profile struct {
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Role            string  `json:"role"`
	PreferredMaster *string `json:"preferredMaster"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	User  Profile `json:"user"`
	Token string  `json:"token"`
}

// UserService defines account registration, login and profile operations.
type UserService interface {
	// Register creates an account and returns a session token.
	Register(email, password, name, phone string) (*AuthResponse, error)
	// Login verifies credentials and returns a session token.
	Login(email, password string) (*AuthResponse, error)
	// UpdateProfile sets the user's name and phone.
	UpdateProfile(email, name, phone string) error
	// GetProfile retrieves the user's public profile.
	GetProfile(email string) (*Profile, error)
	// IsAdmin reports whether the account holds the admin role.
	IsAdmin(email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	// AdminEmail is granted the admin role on registration.
	AdminEmail string
}

// Register creates an account and returns a session token.
func (s *DefaultUserService) Register(email, password, name, phone string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if email == s.AdminEmail {
		role = models.RoleAdmin
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        phone,
		Role:         role,
		// No master assigned until the first booking.
		PreferredMaster: nil,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	return s.authResponse(u)
}

// Login verifies credentials and returns a session token.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(u)
}

// UpdateProfile sets the user's name and phone.
func (s *DefaultUserService) UpdateProfile(email, name, phone string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return s.Repo.UpdateProfile(email, name, phone)
}

// GetProfile retrieves the user's public profile.
func (s *DefaultUserService) GetProfile(email string) (*Profile, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	p := profileOf(u)
	return &p, nil
}

// IsAdmin reports whether the account holds the admin role.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == models.RoleAdmin, nil
}

func (s *DefaultUserService) authResponse(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{User: profileOf(u), Token: token}, nil
}

func profileOf(u *models.User) Profile {
	role := u.Role
	if role == "" {
		role = models.RoleUser
	}
	return Profile{
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		Role:            role,
		PreferredMaster: u.PreferredMaster,
	}
}
