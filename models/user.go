package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or administrator.
// PreferredMaster is assigned on the user's first booking and never
// overwritten afterwards.
type User struct {
	ID              string    `bson:"id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	PasswordHash    string    `bson:"passwordHash" json:"-"`
	Name            string    `bson:"name" json:"name"`
	Phone           string    `bson:"phone" json:"phone"`
	Role            string    `bson:"role" json:"role"`
	PreferredMaster *string   `bson:"preferredMaster" json:"preferredMaster"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
