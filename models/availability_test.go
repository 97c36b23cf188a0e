package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityOverlaps(t *testing.T) {
	a := Availability{FromDate: date(10), ToDate: date(20)}

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"giao một phần bên trái", date(5), date(15), true},
		{"giao một phần bên phải", date(15), date(25), true},
		{"nằm trọn bên trong", date(12), date(18), true},
		{"bao trọn availability", date(5), date(25), true},
		{"liền kề bên trái không giao", date(1), date(10), false},
		{"liền kề bên phải không giao", date(20), date(25), false},
		{"hoàn toàn tách rời", date(1), date(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.from, tt.to))
		})
	}
}

func TestAvailabilityClip(t *testing.T) {
	a := Availability{FromDate: date(10), ToDate: date(20)}

	start, end := a.Clip(date(5), date(15))
	assert.Equal(t, date(10), start)
	assert.Equal(t, date(15), end)

	start, end = a.Clip(date(12), date(25))
	assert.Equal(t, date(12), start)
	assert.Equal(t, date(20), end)

	start, end = a.Clip(date(1), date(30))
	assert.Equal(t, date(10), start)
	assert.Equal(t, date(20), end)
}

func TestReservationIsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: 0}).IsActive())
	assert.True(t, (&Reservation{Status: 1}).IsActive())
	assert.False(t, (&Reservation{Status: 2}).IsActive())
	assert.False(t, (&Reservation{Status: 3}).IsActive())
}

func TestReviewValidateTarget(t *testing.T) {
	accID := uint(1)
	hostID := uint(2)

	assert.NoError(t, (&Review{AccommodationID: &accID}).ValidateTarget())
	assert.NoError(t, (&Review{HostID: &hostID}).ValidateTarget())
	assert.Error(t, (&Review{}).ValidateTarget())
	assert.Error(t, (&Review{AccommodationID: &accID, HostID: &hostID}).ValidateTarget())
}
