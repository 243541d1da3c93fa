package stats

import (
	"testing"

	"serenispa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAggregate(t *testing.T) {
	masters := []string{"Лариса Павлова", "Марина Пакулова"}
	prices := map[string]int{
		"Классический массаж": 800,
		"Массаж лица":         600,
	}
	users := []models.User{
		{Email: "anna@example.com", PreferredMaster: strPtr("Лариса Павлова")},
		{Email: "olga@example.com", PreferredMaster: strPtr("Лариса Павлова")},
		{Email: "ivan@example.com", PreferredMaster: strPtr("Марина Пакулова")},
		{Email: "none@example.com"},
		{Email: "gone@example.com", PreferredMaster: strPtr("Бывший Мастер")},
	}
	bookings := []models.Booking{
		{Master: "Лариса Павлова", Service: "Классический массаж", Duration: 60},
		{Master: "Лариса Павлова", Service: "Классический массаж", Duration: 60},
		{Master: "Лариса Павлова", Service: "Массаж лица", Duration: 30},
		{Master: "Марина Пакулова", Service: "Классический массаж", Duration: 60},
		{Master: "Бывший Мастер", Service: "Классический массаж", Duration: 60},
	}
	certs := []models.Certificate{
		{MasterName: "Лариса Павлова", Total: "1 150 ₴"},
		{MasterName: "Марина Пакулова", Total: "€65"},
		{MasterName: "", Total: "999"},
	}

	result := Aggregate(masters, prices, users, bookings, certs)
	require.Len(t, result, 2)

	larisa := result["Лариса Павлова"]
	require.NotNil(t, larisa)
	assert.Equal(t, 2, larisa.TotalClients)
	assert.ElementsMatch(t, []string{"anna@example.com", "olga@example.com"}, larisa.Clients)
	assert.Equal(t, 3, larisa.TotalBookings)
	assert.Equal(t, 1, larisa.TotalCertificates)
	assert.Equal(t, 1150, larisa.CertificateRevenue)
	// Booking revenue from the price list plus certificate revenue.
	assert.Equal(t, 800+800+600+1150, larisa.TotalRevenue)

	classic := larisa.Services["Классический массаж"]
	require.NotNil(t, classic)
	assert.Equal(t, 2, classic.Count)
	assert.Equal(t, 60, classic.Duration)
	assert.Equal(t, 1600, classic.Revenue)

	face := larisa.Services["Массаж лица"]
	require.NotNil(t, face)
	assert.Equal(t, 1, face.Count)
	assert.Equal(t, 30, face.Duration)
	assert.Equal(t, 600, face.Revenue)

	marina := result["Марина Пакулова"]
	require.NotNil(t, marina)
	assert.Equal(t, 1, marina.TotalClients)
	assert.Equal(t, 1, marina.TotalBookings)
	assert.Equal(t, 1, marina.TotalCertificates)
	assert.Equal(t, 65, marina.CertificateRevenue)
	assert.Equal(t, 800+65, marina.TotalRevenue)
}

func TestAggregateUnknownServicePricesAsZero(t *testing.T) {
	result := Aggregate(
		[]string{"Лариса Павлова"},
		map[string]int{},
		nil,
		[]models.Booking{{Master: "Лариса Павлова", Service: "Пилатес", Duration: 45}},
		nil,
	)

	st := result["Лариса Павлова"]
	require.NotNil(t, st)
	assert.Equal(t, 1, st.TotalBookings)
	assert.Equal(t, 0, st.TotalRevenue)
	require.NotNil(t, st.Services["Пилатес"])
	assert.Equal(t, 0, st.Services["Пилатес"].Revenue)
}

func TestAggregateEmptyInputs(t *testing.T) {
	result := Aggregate([]string{"Лариса Павлова"}, nil, nil, nil, nil)

	st := result["Лариса Павлова"]
	require.NotNil(t, st)
	assert.Zero(t, st.TotalClients)
	assert.Zero(t, st.TotalBookings)
	assert.Zero(t, st.TotalRevenue)
	assert.NotNil(t, st.Clients, "clients must marshal as [], not null")
	assert.NotNil(t, st.Services)
}
