package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking represents one appointment slot reserved with a master.
// The (date, time, master) triple is unique among non-cancelled bookings.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time      string    `bson:"time" json:"time"` // slot label, e.g. "10:00"
	Service   string    `bson:"service" json:"service"`
	Master    string    `bson:"master" json:"master"`
	UserName  string    `bson:"userName" json:"userName"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	UserPhone string    `bson:"userPhone" json:"userPhone"`
	Duration  int       `bson:"duration" json:"duration"` // minutes
	Price     string    `bson:"price" json:"price"`       // display string, e.g. "1150 ₴"
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
