package reminder

import (
	"testing"
	"time"

	bookingRepo "serenispa/database/repository/booking"
	"serenispa/models"
	"serenispa/services/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingRepo serves a fixed set of confirmed bookings per date.
type stubBookingRepo struct {
	byDate map[string][]models.Booking
}

func (s *stubBookingRepo) Create(b *models.Booking) error               { return nil }
func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error)   { return nil, nil }
func (s *stubBookingRepo) List(f bookingRepo.ListFilter) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) FindActiveSlot(date, timeSlot, master string) (*models.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) CountByUserEmail(email string) (int64, error) { return 0, nil }
func (s *stubBookingRepo) UpdateStatus(id, status string) error         { return nil }
func (s *stubBookingRepo) ListActiveSince(fromDate string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) ListConfirmedForDate(date string) ([]models.Booking, error) {
	return s.byDate[date], nil
}

type stubMailer struct {
	sent []mailer.Message
}

func (s *stubMailer) Send(msgs []mailer.Message) error {
	s.sent = append(s.sent, msgs...)
	return nil
}

func TestSendReminders(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	repo := &stubBookingRepo{byDate: map[string][]models.Booking{
		tomorrow: {
			{UserName: "Anna", UserEmail: "anna@example.com", Service: "Классический массаж",
				Master: "Лариса Павлова", Date: tomorrow, Time: "10:00", Status: models.BookingConfirmed},
			{UserName: "Olga", UserEmail: "olga@example.com", Service: "Массаж лица",
				Master: "Марина Пакулова", Date: tomorrow, Time: "12:00", Status: models.BookingConfirmed},
		},
	}}
	m := &stubMailer{}
	svc := &Service{Bookings: repo, Mailer: m, Logger: zap.NewNop()}

	svc.SendReminders()

	require.Len(t, m.sent, 2)
	assert.Equal(t, "anna@example.com", m.sent[0].To)
	assert.Equal(t, "Appointment reminder", m.sent[0].Subject)
	assert.Contains(t, m.sent[0].HTML, "10:00")
	assert.Equal(t, "olga@example.com", m.sent[1].To)
}

func TestSendRemindersNothingTomorrow(t *testing.T) {
	m := &stubMailer{}
	svc := &Service{
		Bookings: &stubBookingRepo{byDate: map[string][]models.Booking{}},
		Mailer:   m,
		Logger:   zap.NewNop(),
	}

	svc.SendReminders()
	assert.Empty(t, m.sent)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	svc := &Service{
		Bookings: &stubBookingRepo{},
		Mailer:   &stubMailer{},
		Schedule: "not a cron spec",
		Logger:   zap.NewNop(),
	}
	assert.Error(t, svc.Start())
}

func TestStartAndStop(t *testing.T) {
	svc := &Service{
		Bookings: &stubBookingRepo{},
		Mailer:   &stubMailer{},
		Schedule: "0 9 * * *",
		Logger:   zap.NewNop(),
	}
	require.NoError(t, svc.Start())
	svc.Stop()
}
