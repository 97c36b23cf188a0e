package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRevenueBreakdown(t *testing.T) {
	reservations := []models.Reservation{
		{Status: constants.ReservationStatusAccepted, StartDate: day(5), TotalPrice: 500},
		{Status: constants.ReservationStatusAccepted, StartDate: day(20), TotalPrice: 300},
		{Status: constants.ReservationStatusAccepted, StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), TotalPrice: 700},
		// Không tính các trạng thái khác
		{Status: constants.ReservationStatusPending, StartDate: day(7), TotalPrice: 999},
		{Status: constants.ReservationStatusCancelled, StartDate: day(8), TotalPrice: 999},
		// Năm khác
		{Status: constants.ReservationStatusAccepted, StartDate: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), TotalPrice: 999},
	}

	months := MonthlyRevenueBreakdown(reservations, 2025)
	require.Len(t, months, 12)

	assert.Equal(t, 1, months[0].Month)
	assert.Equal(t, 800.0, months[0].Revenue)
	assert.Equal(t, 2, months[0].ReservationCount)

	assert.Equal(t, 700.0, months[2].Revenue)
	assert.Equal(t, 1, months[2].ReservationCount)

	for _, m := range []int{1, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
		assert.Zero(t, months[m].Revenue, "tháng %d phải rỗng", m+1)
	}
}

func TestMonthlyRevenueBreakdownEmptyYear(t *testing.T) {
	months := MonthlyRevenueBreakdown(nil, 2025)
	require.Len(t, months, 12)
	for i, m := range months {
		assert.Equal(t, i+1, m.Month)
		assert.Zero(t, m.Revenue)
		assert.Zero(t, m.ReservationCount)
	}
}
