package services

import (
	"sync"
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func avail(from, to int, price float64) models.Availability {
	return models.Availability{FromDate: day(from), ToDate: day(to), Price: price}
}

func TestIsRangeCovered(t *testing.T) {
	tests := []struct {
		name           string
		availabilities []models.Availability
		from, to       time.Time
		want           bool
	}{
		{
			name:           "khoảng nằm trọn trong một availability",
			availabilities: []models.Availability{avail(1, 20, 100)},
			from:           day(5), to: day(15),
			want: true,
		},
		{
			name:           "khớp đúng biên của availability",
			availabilities: []models.Availability{avail(1, 10, 100)},
			from:           day(1), to: day(10),
			want: true,
		},
		{
			name:           "hai khoảng liền kề ghép kín",
			availabilities: []models.Availability{avail(1, 10, 100), avail(10, 20, 120)},
			from:           day(5), to: day(15),
			want: true,
		},
		{
			name:           "thứ tự trong slice không quan trọng",
			availabilities: []models.Availability{avail(10, 20, 120), avail(1, 10, 100)},
			from:           day(5), to: day(15),
			want: true,
		},
		{
			name:           "hở một ngày giữa hai khoảng",
			availabilities: []models.Availability{avail(1, 10, 100), avail(11, 20, 120)},
			from:           day(5), to: day(15),
			want: false,
		},
		{
			name:           "vượt quá đuôi availability cuối",
			availabilities: []models.Availability{avail(1, 10, 100), avail(10, 20, 120)},
			from:           day(1), to: day(21),
			want: false,
		},
		{
			name:           "bắt đầu trước availability đầu tiên",
			availabilities: []models.Availability{avail(5, 20, 100)},
			from:           day(1), to: day(10),
			want: false,
		},
		{
			name:           "không có availability nào",
			availabilities: nil,
			from:           day(1), to: day(5),
			want: false,
		},
		{
			name:           "khoảng rỗng không bao giờ được phủ",
			availabilities: []models.Availability{avail(1, 20, 100)},
			from:           day(5), to: day(5),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRangeCovered(tt.availabilities, tt.from, tt.to))
		})
	}
}

func TestOverlappingSegments(t *testing.T) {
	availabilities := []models.Availability{
		avail(10, 20, 120),
		avail(1, 10, 100),
		avail(25, 30, 200),
	}

	segments := OverlappingSegments(availabilities, day(5), day(15))
	require.Len(t, segments, 2)

	// Cắt theo khoảng truy vấn và sắp theo ngày bắt đầu
	assert.Equal(t, day(5), segments[0].From)
	assert.Equal(t, day(10), segments[0].To)
	assert.Equal(t, 100.0, segments[0].Price)

	assert.Equal(t, day(10), segments[1].From)
	assert.Equal(t, day(15), segments[1].To)
	assert.Equal(t, 120.0, segments[1].Price)
}

func TestOverlappingSegmentsEmpty(t *testing.T) {
	segments := OverlappingSegments([]models.Availability{avail(1, 5, 100)}, day(10), day(15))
	assert.Empty(t, segments)
}

func TestCountBlockingReservations(t *testing.T) {
	stay := func(start, end, status int) models.Reservation {
		return models.Reservation{StartDate: day(start), EndDate: day(end), Status: status}
	}

	tests := []struct {
		name         string
		reservations []models.Reservation
		want         int
	}{
		{
			name:         "reservation ACCEPTED giao khoảng thì chặn",
			reservations: []models.Reservation{stay(5, 8, constants.ReservationStatusAccepted)},
			want:         1,
		},
		{
			name:         "reservation PENDING giao khoảng cũng chặn",
			reservations: []models.Reservation{stay(5, 8, constants.ReservationStatusPending)},
			want:         1,
		},
		{
			name:         "hủy xong thì gỡ được",
			reservations: []models.Reservation{stay(5, 8, constants.ReservationStatusCancelled)},
			want:         0,
		},
		{
			name:         "DECLINED không chặn",
			reservations: []models.Reservation{stay(5, 8, constants.ReservationStatusDeclined)},
			want:         0,
		},
		{
			name:         "ACCEPTED nhưng liền kề không giao thì không chặn",
			reservations: []models.Reservation{stay(10, 15, constants.ReservationStatusAccepted)},
			want:         0,
		},
		{
			name: "chỉ đếm reservation còn hiệu lực trong các reservation giao",
			reservations: []models.Reservation{
				stay(1, 5, constants.ReservationStatusAccepted),
				stay(5, 8, constants.ReservationStatusCancelled),
				stay(8, 12, constants.ReservationStatusPending),
			},
			want: 2,
		},
		{
			name:         "không có reservation nào",
			reservations: nil,
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountBlockingReservations(tt.reservations, day(1), day(10)))
		})
	}
}

func TestConcurrentOverlappingAddsOneWins(t *testing.T) {
	// Hai goroutine cùng thêm khoảng chồng lấn lên một accommodation: critical
	// section kiểm-tra-rồi-ghi phải đảm bảo đúng một bên thành công.
	var existing []models.Availability
	tryAdd := func(from, to time.Time, price float64) bool {
		mu := lockAccommodation(42)
		mu.Lock()
		defer mu.Unlock()

		for _, availability := range existing {
			if availability.Overlaps(from, to) {
				return false
			}
		}
		existing = append(existing, models.Availability{FromDate: from, ToDate: to, Price: price})
		return true
	}

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tryAdd(day(1), day(10), 100)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Len(t, existing, 1)
}

func TestMinNightlyPrice(t *testing.T) {
	assert.Equal(t, 0.0, MinNightlyPrice(nil))
	assert.Equal(t, 100.0, MinNightlyPrice([]models.Availability{avail(1, 5, 100)}))
	assert.Equal(t, 80.0, MinNightlyPrice([]models.Availability{
		avail(1, 5, 100),
		avail(5, 10, 80),
		avail(10, 15, 120),
	}))
}
