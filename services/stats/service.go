package stats

import (
	"time"

	bookingRepo "serenispa/database/repository/booking"
	certificateRepo "serenispa/database/repository/certificate"
	userRepo "serenispa/database/repository/user"
	"serenispa/models"
	"serenispa/utils"
)

// StatsService computes the per-master admin statistics.
type StatsService interface {
	// MasterStats aggregates clients, bookings and certificates per master
	// for the given period ("month", "year" or "all").
	MasterStats(period string) (map[string]*models.MasterStats, error)
}

// DefaultStatsService is the production implementation.
type DefaultStatsService struct {
	Bookings     bookingRepo.BookingRepository
	Certificates certificateRepo.CertificateRepository
	Users        userRepo.UserRepository

	// Masters enumerates the staff that statistics are attributed to;
	// bookings and certificates naming anyone else are ignored, matching
	// how attribution always worked on the site.
	Masters []string
	// Prices is the shared service price list used for booking revenue.
	Prices map[string]int

	// Cache is optional; nil disables caching.
	Cache *utils.StatsCache
}

// MasterStats aggregates clients, bookings and certificates per master.
// Results are cached per period for a short TTL since the admin dashboard
// polls this endpoint.
func (s *DefaultStatsService) MasterStats(period string) (map[string]*models.MasterStats, error) {
	cacheKey := "stats:masters:" + period
	cached := map[string]*models.MasterStats{}
	if s.Cache.Get(cacheKey, &cached) {
		return cached, nil
	}

	from := utils.PeriodStart(period, time.Now())
	fromDate := ""
	if !from.IsZero() {
		fromDate = from.Format("2006-01-02")
	}

	users, err := s.Users.ListWithPreferredMaster()
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListActiveSince(fromDate)
	if err != nil {
		return nil, err
	}
	certs, err := s.Certificates.ListCreatedSince(from)
	if err != nil {
		return nil, err
	}

	result := Aggregate(s.Masters, s.Prices, users, bookings, certs)
	s.Cache.Set(cacheKey, result)
	return result, nil
}

// Aggregate is the pure aggregation over already-materialized query results:
// one pass each over users, bookings and certificates.
//
// Booking revenue comes from the configured price list, not the display
// price stored on the booking; certificate revenue is parsed from the stored
// display total and counted into both certificateRevenue and totalRevenue.
func Aggregate(
	masters []string,
	prices map[string]int,
	users []models.User,
	bookings []models.Booking,
	certs []models.Certificate,
) map[string]*models.MasterStats {
	result := make(map[string]*models.MasterStats, len(masters))
	for _, m := range masters {
		result[m] = &models.MasterStats{
			Clients:  []string{},
			Services: map[string]*models.ServiceStats{},
		}
	}

	for _, u := range users {
		if u.PreferredMaster == nil {
			continue
		}
		st, ok := result[*u.PreferredMaster]
		if !ok {
			continue
		}
		st.TotalClients++
		st.Clients = append(st.Clients, u.Email)
	}

	for _, b := range bookings {
		st, ok := result[b.Master]
		if !ok {
			continue
		}
		st.TotalBookings++

		price := prices[b.Service]
		st.TotalRevenue += price

		svc, ok := st.Services[b.Service]
		if !ok {
			svc = &models.ServiceStats{Duration: b.Duration}
			st.Services[b.Service] = svc
		}
		svc.Count++
		svc.Revenue += price
	}

	for _, c := range certs {
		st, ok := result[c.MasterName]
		if !ok {
			continue
		}
		st.TotalCertificates++

		value := utils.ParseMoney(c.Total)
		st.CertificateRevenue += value
		st.TotalRevenue += value
	}

	return result
}
