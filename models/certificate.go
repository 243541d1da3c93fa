package models

import "time"

// Certificate types and statuses.
const (
	CertificateTypeService = "service"
	CertificateTypeAmount  = "amount"

	CertificatePending = "pending"
	CertificateIssued  = "issued"
)

// Contact identifies a certificate buyer or recipient.
type Contact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Certificate is a purchasable voucher redeemable for a service or a
// monetary amount. Display numbers are strictly increasing integers
// rendered with a fixed prefix and zero-padding.
type Certificate struct {
	ID                string    `bson:"id" json:"id"`
	CertificateNumber string    `bson:"certificateNumber" json:"certificateNumber"`
	Type              string    `bson:"type" json:"type"`
	Service           string    `bson:"service,omitempty" json:"service,omitempty"`
	Duration          string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Amount            string    `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency          string    `bson:"currency,omitempty" json:"currency,omitempty"`
	Recipient         Contact   `bson:"recipient" json:"recipient"`
	Buyer             Contact   `bson:"buyer" json:"buyer"`
	Message           string    `bson:"message,omitempty" json:"message,omitempty"`
	Total             string    `bson:"total" json:"total"` // display string
	MasterName        string    `bson:"masterName,omitempty" json:"masterName,omitempty"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
