package models

import "time"

// Event is a salon event users may register for. RegisteredParticipants has
// set semantics; MaxParticipants of 0 means unlimited capacity.
type Event struct {
	ID                     string    `bson:"id" json:"id"`
	Title                  string    `bson:"title" json:"title"`
	Description            string    `bson:"description" json:"description"`
	Date                   string    `bson:"date" json:"date"`
	Time                   string    `bson:"time" json:"time"`
	Location               string    `bson:"location" json:"location"`
	Image                  string    `bson:"image,omitempty" json:"image,omitempty"`
	MaxParticipants        int       `bson:"maxParticipants,omitempty" json:"maxParticipants,omitempty"`
	RegisteredParticipants []string  `bson:"registeredParticipants" json:"registeredParticipants"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
}
