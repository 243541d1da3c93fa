package reminder

import (
	"fmt"
	"time"

	bookingRepo "serenispa/database/repository/booking"
	"serenispa/services/mailer"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Service emails customers a reminder for their next-day appointments on a
// cron schedule.
type Service struct {
	Bookings bookingRepo.BookingRepository
	Mailer   mailer.Mailer
	Schedule string
	Logger   *zap.Logger

	c *cron.Cron
}

// Start schedules the reminder job.
func (s *Service) Start() error {
	s.c = cron.New()
	if _, err := s.c.AddFunc(s.Schedule, s.SendReminders); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.c.Start()
	s.Logger.Sugar().Infof("Reminder job scheduled (%s)", s.Schedule)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Service) Stop() {
	if s.c != nil {
		<-s.c.Stop().Done()
	}
}

// SendReminders mails every customer with a confirmed booking tomorrow.
// A mail failure only logs; the next run covers nothing retroactively, which
// is acceptable for a courtesy reminder.
func (s *Service) SendReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	bookings, err := s.Bookings.ListConfirmedForDate(tomorrow)
	if err != nil {
		s.Logger.Error("Reminder job: failed to fetch bookings", zap.Error(err))
		return
	}
	if len(bookings) == 0 {
		return
	}

	messages := make([]mailer.Message, 0, len(bookings))
	for _, b := range bookings {
		messages = append(messages, mailer.Message{
			To:      b.UserEmail,
			Subject: "Appointment reminder",
			HTML: fmt.Sprintf(
				"<p>Dear %s,</p><p>This is a reminder of your <b>%s</b> appointment with %s tomorrow, %s at %s.</p>",
				b.UserName, b.Service, b.Master, b.Date, b.Time,
			),
		})
	}

	if err := s.Mailer.Send(messages); err != nil {
		s.Logger.Warn("Reminder job: some reminders failed", zap.Error(err))
		return
	}
	s.Logger.Sugar().Infof("Reminder job: sent %d reminders for %s", len(messages), tomorrow)
}
