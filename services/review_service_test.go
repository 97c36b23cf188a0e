package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func reservation(status int, start, end time.Time) models.Reservation {
	return models.Reservation{Status: status, StartDate: start, EndDate: end}
}

func TestCountEndedStaysWithWindow(t *testing.T) {
	now := day(20)

	tests := []struct {
		name         string
		reservations []models.Reservation
		want         int
	}{
		{
			name: "kết thúc trong cửa sổ 7 ngày",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusAccepted, day(10), day(15)),
			},
			want: 1,
		},
		{
			name: "kết thúc quá 7 ngày trước",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusAccepted, day(1), day(5)),
			},
			want: 0,
		},
		{
			name: "kết thúc đúng mốc 7 ngày không tính, cửa sổ mở",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusAccepted, day(8), day(13)),
			},
			want: 0,
		},
		{
			name: "chưa kết thúc",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusAccepted, day(18), day(25)),
			},
			want: 0,
		},
		{
			name: "PENDING và CANCELLED không tính",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusPending, day(10), day(15)),
				reservation(constants.ReservationStatusCancelled, day(10), day(15)),
			},
			want: 0,
		},
		{
			name: "DECLINED đã kết thúc vẫn tính",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusDeclined, day(10), day(15)),
			},
			want: 1,
		},
		{
			name: "mỗi lần ở tính một lượt",
			reservations: []models.Reservation{
				reservation(constants.ReservationStatusAccepted, day(10), day(14)),
				reservation(constants.ReservationStatusAccepted, day(15), day(18)),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountEndedStays(tt.reservations, now, constants.ReviewWindowDays))
		})
	}
}

func TestCountEndedStaysNoWindow(t *testing.T) {
	now := day(20)

	// Đánh giá chủ nhà không giới hạn 7 ngày
	reservations := []models.Reservation{
		reservation(constants.ReservationStatusAccepted, day(1), day(5)),
	}
	assert.Equal(t, 1, CountEndedStays(reservations, now, 0))
	assert.Equal(t, 0, CountEndedStays(reservations, now, constants.ReviewWindowDays))
}

func TestCanReview(t *testing.T) {
	assert.False(t, CanReview(0, 0))
	assert.True(t, CanReview(1, 0))
	assert.False(t, CanReview(1, 1))
	assert.True(t, CanReview(2, 1))
	assert.False(t, CanReview(2, 2))
	assert.False(t, CanReview(2, 3))
}
