package certificateRepo

import (
	"errors"
	"time"

	"serenispa/models"
)

// ErrDuplicateNumber is returned by Create when the unique index on
// certificateNumber rejects an insert. Callers regenerate and retry.
var ErrDuplicateNumber = errors.New("certificate number already exists")

// ErrNotFound is returned when no certificate matches the given id.
var ErrNotFound = errors.New("certificate not found")

// CertificateRepository defines methods for certificate data access.
type CertificateRepository interface {
	// Create inserts a new certificate record.
	Create(cert *models.Certificate) error
	// Latest returns the most recently created certificate, or nil when the
	// collection is empty.
	Latest() (*models.Certificate, error)
	// ListCreatedSince retrieves certificates created at or after from,
	// newest first. A zero time returns everything.
	ListCreatedSince(from time.Time) ([]models.Certificate, error)
	// ListByBuyerEmail retrieves a buyer's certificates, newest first.
	ListByBuyerEmail(email string) ([]models.Certificate, error)
	// UpdateStatus sets the status of the certificate with the given id.
	UpdateStatus(id, status string) error
}
