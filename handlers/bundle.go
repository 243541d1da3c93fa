package handlers

// HandlerBundle groups the entity handlers for route registration.
type HandlerBundle struct {
	Booking     *BookingHandler
	Certificate *CertificateHandler
	User        *UserHandler
	Event       *EventHandler
	Review      *ReviewHandler
	Stats       *StatsHandler
}
