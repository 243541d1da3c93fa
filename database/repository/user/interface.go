package userRepo

import (
	"errors"

	"serenispa/models"
)

// ErrExists is returned by Create when the email is already registered.
var ErrExists = errors.New("user already exists")

// ErrNotFound is returned when no user matches the given email.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByEmail retrieves a user by email, or nil when none exists.
	GetByEmail(email string) (*models.User, error)
	// UpdateProfile sets the name and phone of the user with the given email.
	UpdateProfile(email, name, phone string) error
	// SetPreferredMaster assigns the master to the user unless one is
	// already set. Setting it for an unknown email is not an error: guests
	// may book before registering.
	SetPreferredMaster(email, master string) error
	// ListWithPreferredMaster retrieves users whose preferred master is set.
	ListWithPreferredMaster() ([]models.User, error)
}
