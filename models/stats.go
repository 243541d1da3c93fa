package models

// CertificateTypeCounts partitions certificate counts by type.
type CertificateTypeCounts struct {
	Service int `json:"service"`
	Amount  int `json:"amount"`
}

// CertificateStats is the admin aggregation over a period of certificates.
type CertificateStats struct {
	TotalCertificates int                   `json:"totalCertificates"`
	TotalRevenue      int                   `json:"totalRevenue"`
	ByType            CertificateTypeCounts `json:"byType"`
	ByAmount          map[string]int        `json:"byAmount"`  // "100 EUR" -> count
	ByService         map[string]int        `json:"byService"` // service name -> count
	Certificates      []Certificate         `json:"certificates"`
}

// ServiceStats is the per-service breakdown inside a master's statistics.
type ServiceStats struct {
	Count    int `json:"count"`
	Duration int `json:"duration"` // minutes, as quoted on the booking
	Revenue  int `json:"revenue"`
}

// MasterStats aggregates one master's clients, bookings and certificates.
type MasterStats struct {
	TotalClients       int                      `json:"totalClients"`
	TotalBookings      int                      `json:"totalBookings"`
	TotalRevenue       int                      `json:"totalRevenue"`
	TotalCertificates  int                      `json:"totalCertificates"`
	CertificateRevenue int                      `json:"certificateRevenue"`
	Clients            []string                 `json:"clients"`
	Services           map[string]*ServiceStats `json:"services"`
}
