package certificate

import (
	"testing"
	"time"

	certificateRepo "serenispa/database/repository/certificate"
	"serenispa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCertificateRepo is an in-memory CertificateRepository enforcing the
// unique number constraint the Mongo index provides.
type stubCertificateRepo struct {
	certs []models.Certificate
}

func (s *stubCertificateRepo) Create(cert *models.Certificate) error {
	for _, existing := range s.certs {
		if existing.CertificateNumber == cert.CertificateNumber {
			return certificateRepo.ErrDuplicateNumber
		}
	}
	s.certs = append(s.certs, *cert)
	return nil
}

func (s *stubCertificateRepo) Latest() (*models.Certificate, error) {
	if len(s.certs) == 0 {
		return nil, nil
	}
	latest := s.certs[0]
	for _, c := range s.certs[1:] {
		if c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	return &latest, nil
}

func (s *stubCertificateRepo) ListCreatedSince(from time.Time) ([]models.Certificate, error) {
	var out []models.Certificate
	for _, c := range s.certs {
		if from.IsZero() || !c.CreatedAt.Before(from) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCertificateRepo) ListByBuyerEmail(email string) ([]models.Certificate, error) {
	var out []models.Certificate
	for _, c := range s.certs {
		if c.Buyer.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCertificateRepo) UpdateStatus(id, status string) error {
	for i := range s.certs {
		if s.certs[i].ID == id {
			s.certs[i].Status = status
			return nil
		}
	}
	return certificateRepo.ErrNotFound
}

func validOrder() CreateOrderRequest {
	return CreateOrderRequest{
		Type:     models.CertificateTypeService,
		Service:  "Классический массаж",
		Duration: "60 мин",
		Total:    "800 ₴",
		Buyer:    models.Contact{Name: "Anna", Email: "anna@example.com"},
	}
}

func TestNextNumber(t *testing.T) {
	assert.Equal(t, "GSN-000001", NextNumber(nil))
	assert.Equal(t, "GSN-000002", NextNumber(&models.Certificate{CertificateNumber: "GSN-000001"}))
	assert.Equal(t, "GSN-000043", NextNumber(&models.Certificate{CertificateNumber: "GSN-000042"}))
	assert.Equal(t, "GSN-001000", NextNumber(&models.Certificate{CertificateNumber: "GSN-000999"}))
	// A malformed predecessor restarts the sequence rather than failing.
	assert.Equal(t, "GSN-000001", NextNumber(&models.Certificate{CertificateNumber: "garbage"}))
}

func TestCreateOrderAssignsSequentialNumbers(t *testing.T) {
	repo := &stubCertificateRepo{}
	svc := &DefaultCertificateService{Repo: repo}

	first, err := svc.CreateOrder(validOrder())
	require.NoError(t, err)
	assert.Equal(t, "GSN-000001", first.CertificateNumber)
	assert.Equal(t, models.CertificatePending, first.Status)

	second, err := svc.CreateOrder(validOrder())
	require.NoError(t, err)
	assert.Equal(t, "GSN-000002", second.CertificateNumber)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := &DefaultCertificateService{Repo: &stubCertificateRepo{}}

	req := validOrder()
	req.Type = "voucher"
	_, err := svc.CreateOrder(req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validOrder()
	req.Buyer.Email = ""
	_, err = svc.CreateOrder(req)
	assert.ErrorIs(t, err, ErrValidation)
}

// collidingRepo rejects the first insert with a duplicate number, mimicking
// a concurrent writer that claimed the same number first.
type collidingRepo struct {
	stubCertificateRepo
	collisions int
}

func (r *collidingRepo) Create(cert *models.Certificate) error {
	if r.collisions > 0 {
		r.collisions--
		// The concurrent winner now occupies the number.
		r.certs = append(r.certs, models.Certificate{
			CertificateNumber: cert.CertificateNumber,
			CreatedAt:         time.Now(),
		})
		return certificateRepo.ErrDuplicateNumber
	}
	return r.stubCertificateRepo.Create(cert)
}

func TestCreateOrderRetriesAfterLosingRace(t *testing.T) {
	repo := &collidingRepo{collisions: 1}
	svc := &DefaultCertificateService{Repo: repo}

	cert, err := svc.CreateOrder(validOrder())
	require.NoError(t, err)
	// GSN-000001 went to the concurrent winner; the retry drew the next one.
	assert.Equal(t, "GSN-000002", cert.CertificateNumber)
}

func TestCreateOrderGivesUpAfterMaxAttempts(t *testing.T) {
	repo := &collidingRepo{collisions: maxNumberAttempts}
	svc := &DefaultCertificateService{Repo: repo}

	_, err := svc.CreateOrder(validOrder())
	require.Error(t, err)
	assert.ErrorIs(t, err, certificateRepo.ErrDuplicateNumber)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := &DefaultCertificateService{Repo: &stubCertificateRepo{}}
	err := svc.UpdateStatus("some-id", "redeemed")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildStats(t *testing.T) {
	certs := []models.Certificate{
		{Type: models.CertificateTypeService, Service: "Классический массаж", Total: "800 ₴"},
		{Type: models.CertificateTypeService, Service: "Классический массаж", Total: "800 ₴"},
		{Type: models.CertificateTypeService, Total: "1 150 ₴"},
		{Type: models.CertificateTypeAmount, Amount: "65", Currency: "EUR", Total: "€65"},
		{Type: "unknown", Total: "100"},
	}

	stats := BuildStats(certs)

	assert.Equal(t, 5, stats.TotalCertificates)
	assert.Equal(t, 800+800+1150+65+100, stats.TotalRevenue)
	assert.Equal(t, 3, stats.ByType.Service)
	assert.Equal(t, 1, stats.ByType.Amount)
	assert.Equal(t, 2, stats.ByService["Классический массаж"])
	assert.Equal(t, 1, stats.ByService["Unknown Service"])
	assert.Equal(t, 1, stats.ByAmount["65 EUR"])
	assert.Len(t, stats.Certificates, 5)
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil)
	assert.Equal(t, 0, stats.TotalCertificates)
	assert.Equal(t, 0, stats.TotalRevenue)
	assert.NotNil(t, stats.Certificates, "empty set must marshal as [], not null")
	assert.NotNil(t, stats.ByAmount)
	assert.NotNil(t, stats.ByService)
}
