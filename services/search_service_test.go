package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func acceptedAccommodation() models.Accommodation {
	return models.Accommodation{
		ID:        1,
		Title:     "Căn hộ view biển",
		Location:  "Đà Nẵng",
		MinGuests: 1,
		MaxGuests: 4,
		Type:      "apartment",
		Status:    constants.AccommodationStatusAccepted,
		Benefits:  []models.Benefit{{ID: 1, Name: "wifi"}, {ID: 2, Name: "hồ bơi"}},
		Availabilities: []models.Availability{
			avail(1, 10, 100),
			avail(10, 20, 120),
		},
	}
}

func TestMatchesStructural(t *testing.T) {
	acc := acceptedAccommodation()

	tests := []struct {
		name    string
		mutate  func(*models.Accommodation)
		filters dto.SearchFilters
		want    bool
	}{
		{name: "bộ lọc rỗng", filters: dto.SearchFilters{}, want: true},
		{
			name:    "chưa duyệt thì không hiện",
			mutate:  func(a *models.Accommodation) { a.Status = constants.AccommodationStatusPending },
			filters: dto.SearchFilters{},
			want:    false,
		},
		{
			name:    "không có availability thì không hiện",
			mutate:  func(a *models.Accommodation) { a.Availabilities = nil },
			filters: dto.SearchFilters{},
			want:    false,
		},
		{name: "số khách trong khoảng", filters: dto.SearchFilters{Guests: intPtr(3)}, want: true},
		{name: "số khách vượt max", filters: dto.SearchFilters{Guests: intPtr(5)}, want: false},
		{name: "đúng loại không phân biệt hoa thường", filters: dto.SearchFilters{Type: "Apartment"}, want: true},
		{name: "sai loại", filters: dto.SearchFilters{Type: "villa"}, want: false},
		{name: "đủ tiện ích", filters: dto.SearchFilters{BenefitIDs: []int{1, 2}}, want: true},
		{name: "thiếu tiện ích", filters: dto.SearchFilters{BenefitIDs: []int{1, 3}}, want: false},
		{
			name:    "khoảng ngày được phủ",
			filters: dto.SearchFilters{FromDate: timePtr(day(5)), ToDate: timePtr(day(15))},
			want:    true,
		},
		{
			name:    "khoảng ngày hở",
			filters: dto.SearchFilters{FromDate: timePtr(day(15)), ToDate: timePtr(day(25))},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := acc
			if tt.mutate != nil {
				tt.mutate(&a)
			}
			assert.Equal(t, tt.want, matchesStructural(a, tt.filters))
		})
	}
}

func TestBuildCardWithDates(t *testing.T) {
	acc := acceptedAccommodation()
	filters := dto.SearchFilters{
		FromDate: timePtr(day(5)),
		ToDate:   timePtr(day(15)),
	}

	card, ok := buildCard(acc, filters)
	require.True(t, ok)
	assert.Equal(t, 1100.0, card.TotalPrice)
	assert.Zero(t, card.MinPrice)
}

func TestBuildCardWithDatesAndPrice(t *testing.T) {
	acc := acceptedAccommodation()

	filters := dto.SearchFilters{
		FromDate:  timePtr(day(5)),
		ToDate:    timePtr(day(15)),
		PriceFrom: floatPtr(1000),
		PriceTo:   floatPtr(1200),
	}
	_, ok := buildCard(acc, filters)
	assert.True(t, ok)

	filters.PriceTo = floatPtr(1000)
	_, ok = buildCard(acc, filters)
	assert.False(t, ok)
}

func TestBuildCardWithoutDates(t *testing.T) {
	acc := acceptedAccommodation()

	card, ok := buildCard(acc, dto.SearchFilters{})
	require.True(t, ok)
	assert.Equal(t, 100.0, card.MinPrice)
	assert.Zero(t, card.TotalPrice)
}

func TestBuildCardPriceOnly(t *testing.T) {
	acc := acceptedAccommodation()

	// Lọc theo giá sàn mỗi đêm
	_, ok := buildCard(acc, dto.SearchFilters{PriceFrom: floatPtr(50), PriceTo: floatPtr(110)})
	assert.True(t, ok)

	_, ok = buildCard(acc, dto.SearchFilters{PriceFrom: floatPtr(150)})
	assert.False(t, ok)

	// Không có availability thì không có giá để so
	acc.Availabilities = nil
	_, ok = buildCard(acc, dto.SearchFilters{PriceTo: floatPtr(999)})
	assert.False(t, ok)
}

func TestBuildCardPerGuestPricing(t *testing.T) {
	acc := acceptedAccommodation()
	acc.PricingMode = constants.PricingPerGuest

	filters := dto.SearchFilters{
		FromDate: timePtr(day(5)),
		ToDate:   timePtr(day(15)),
		Guests:   intPtr(2),
	}

	card, ok := buildCard(acc, filters)
	require.True(t, ok)
	assert.Equal(t, 2200.0, card.TotalPrice)
}

func TestAverageRating(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5, Status: constants.ReviewStatusAccepted},
		{Rating: 3, Status: constants.ReviewStatusAccepted},
		{Rating: 1, Status: constants.ReviewStatusPending},
		{Rating: 1, Status: constants.ReviewStatusDeclined},
	}

	rating, count := averageRating(reviews)
	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 2, count)

	rating, count = averageRating(nil)
	assert.Zero(t, rating)
	assert.Zero(t, count)
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "da nang", normalizeInput("  Đà Nẵng "))
	assert.Equal(t, "can ho view bien", normalizeInput("Căn Hộ View Biển"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("wifi", "wifi"))
	assert.Greater(t, calculateSimilarity("ho boi", "ho bo"), 0.7)
	assert.Less(t, calculateSimilarity("wifi", "bai do xe"), 0.5)
}

func TestCalculateScoreOrdersByRelevance(t *testing.T) {
	matching := acceptedAccommodation()
	other := acceptedAccommodation()
	other.ID = 2
	other.Title = "Nhà vườn ngoại ô"
	other.Location = "Hà Nội"

	cm := createMatcher(prepareLocationList([]models.Accommodation{matching, other}))

	scored := filterAndScoreAccommodations("căn hộ đà nẵng", []models.Accommodation{other, matching}, cm)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Accommodation.ID)
}
