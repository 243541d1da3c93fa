package certificate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	certificateRepo "serenispa/database/repository/certificate"
	"serenispa/models"
	"serenispa/services/mailer"
	"serenispa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Display numbers look like "GSN-000042".
const (
	numberPrefix = "GSN-"
	numberWidth  = 6
)

// How many times CreateOrder re-reads the latest number after losing a
// duplicate-key race before giving up.
const maxNumberAttempts = 3

var (
	// ErrValidation wraps missing or malformed request fields.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals that no certificate matches the given id.
	ErrNotFound = certificateRepo.ErrNotFound
)

// CreateOrderRequest carries the fields of a gift certificate order.
type CreateOrderRequest struct {
	Type       string         `json:"type"`
	Service    string         `json:"service"`
	Duration   string         `json:"duration"`
	Amount     string         `json:"amount"`
	Currency   string         `json:"currency"`
	Recipient  models.Contact `json:"recipient"`
	Buyer      models.Contact `json:"buyer"`
	Message    string         `json:"message"`
	Total      string         `json:"total"`
	MasterName string         `json:"masterName"`
}

// CertificateService defines certificate numbering, orders and statistics.
type CertificateService interface {
	// CreateOrder assigns the next display number and persists the order
	// with status pending.
	CreateOrder(req CreateOrderRequest) (*models.Certificate, error)
	// UpdateStatus advances a certificate's status, e.g. pending to issued
	// once printed.
	UpdateStatus(id, status string) error
	// Stats aggregates certificates created within the period.
	Stats(period string) (*models.CertificateStats, error)
	// ListForBuyer retrieves a buyer's certificates, newest first.
	ListForBuyer(email string) ([]models.Certificate, error)
}

// DefaultCertificateService is the production implementation.
type DefaultCertificateService struct {
	Repo   certificateRepo.CertificateRepository
	Mailer mailer.Mailer
	Logger *zap.Logger
}

// CreateOrder assigns the next display number and persists the order.
// The unique index on certificateNumber is the guard against concurrent
// writers drawing the same number; a loser re-reads and retries.
func (s *DefaultCertificateService) CreateOrder(req CreateOrderRequest) (*models.Certificate, error) {
	if req.Type != models.CertificateTypeService && req.Type != models.CertificateTypeAmount {
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrValidation,
			models.CertificateTypeService, models.CertificateTypeAmount)
	}
	if req.Buyer.Email == "" {
		return nil, fmt.Errorf("%w: missing buyer email", ErrValidation)
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		latest, err := s.Repo.Latest()
		if err != nil {
			return nil, err
		}

		cert := &models.Certificate{
			ID:                uuid.NewString(),
			CertificateNumber: NextNumber(latest),
			Type:              req.Type,
			Service:           req.Service,
			Duration:          req.Duration,
			Amount:            req.Amount,
			Currency:          req.Currency,
			Recipient:         req.Recipient,
			Buyer:             req.Buyer,
			Message:           req.Message,
			Total:             req.Total,
			MasterName:        req.MasterName,
			Status:            models.CertificatePending,
			CreatedAt:         time.Now(),
		}

		if err := s.Repo.Create(cert); err != nil {
			if errors.Is(err, certificateRepo.ErrDuplicateNumber) {
				lastErr = err
				continue
			}
			return nil, err
		}

		s.sendOrderConfirmation(cert)
		return cert, nil
	}
	return nil, fmt.Errorf("could not allocate certificate number after %d attempts: %w",
		maxNumberAttempts, lastErr)
}

// UpdateStatus advances a certificate's status.
func (s *DefaultCertificateService) UpdateStatus(id, status string) error {
	if status != models.CertificatePending && status != models.CertificateIssued {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.Repo.UpdateStatus(id, status)
}

// Stats aggregates certificates created within the period.
func (s *DefaultCertificateService) Stats(period string) (*models.CertificateStats, error) {
	from := utils.PeriodStart(period, time.Now())
	certs, err := s.Repo.ListCreatedSince(from)
	if err != nil {
		return nil, err
	}
	return BuildStats(certs), nil
}

// ListForBuyer retrieves a buyer's certificates, newest first.
func (s *DefaultCertificateService) ListForBuyer(email string) ([]models.Certificate, error) {
	return s.Repo.ListByBuyerEmail(email)
}

// NextNumber derives the next display number from the most recent
// certificate: parse the trailing integer, increment, zero-pad. A nil or
// unparsable predecessor starts the sequence at 1.
func NextNumber(latest *models.Certificate) string {
	next := 1
	if latest != nil {
		if _, tail, ok := strings.Cut(latest.CertificateNumber, "-"); ok {
			if n, err := strconv.Atoi(tail); err == nil {
				next = n + 1
			}
		}
	}
	return fmt.Sprintf("%s%0*d", numberPrefix, numberWidth, next)
}

// BuildStats computes the admin aggregation over an already-fetched
// certificate set: totals, revenue from the display totals, and counts
// partitioned by type, distinct service and distinct amount+currency.
func BuildStats(certs []models.Certificate) *models.CertificateStats {
	stats := &models.CertificateStats{
		TotalCertificates: len(certs),
		ByAmount:          map[string]int{},
		ByService:         map[string]int{},
		Certificates:      certs,
	}
	if stats.Certificates == nil {
		stats.Certificates = []models.Certificate{}
	}

	for _, cert := range certs {
		stats.TotalRevenue += utils.ParseMoney(cert.Total)

		switch cert.Type {
		case models.CertificateTypeService:
			stats.ByType.Service++
			serviceKey := cert.Service
			if serviceKey == "" {
				serviceKey = "Unknown Service"
			}
			stats.ByService[serviceKey]++
		case models.CertificateTypeAmount:
			stats.ByType.Amount++
			amountKey := fmt.Sprintf("%s %s", cert.Amount, cert.Currency)
			stats.ByAmount[amountKey]++
		}
	}
	return stats
}

// sendOrderConfirmation emails the buyer and, when distinct, the recipient.
// Failures are logged only; the order is already persisted.
func (s *DefaultCertificateService) sendOrderConfirmation(cert *models.Certificate) {
	if s.Mailer == nil {
		return
	}
	body := fmt.Sprintf(
		"<p>Your gift certificate <b>%s</b> has been ordered.</p><p>Total: %s</p>",
		cert.CertificateNumber, cert.Total,
	)
	msgs := []mailer.Message{{To: cert.Buyer.Email, Subject: "Gift certificate order", HTML: body}}
	if cert.Recipient.Email != "" && cert.Recipient.Email != cert.Buyer.Email {
		msgs = append(msgs, mailer.Message{
			To:      cert.Recipient.Email,
			Subject: "You received a gift certificate",
			HTML:    body,
		})
	}
	if err := s.Mailer.Send(msgs); err != nil && s.Logger != nil {
		s.Logger.Warn("Failed to send certificate emails",
			zap.String("certificateNumber", cert.CertificateNumber), zap.Error(err))
	}
}
