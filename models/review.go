package models

import "time"

// Review statuses.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// Review is a customer review. Only approved reviews are listed publicly.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserName  string    `bson:"userName" json:"userName"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	Rating    int       `bson:"rating" json:"rating"` // 1-5
	Comment   string    `bson:"comment" json:"comment"`
	Service   string    `bson:"service,omitempty" json:"service,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
