package services

import (
	"sort"
	"strings"
	"sync"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// SearchService tìm kiếm chỗ ở theo bộ lọc cấu trúc và từ khóa mờ
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách location duy nhất cho closestmatch
func prepareLocationList(accommodations []models.Accommodation) []string {
	uniqueValues := make(map[string]bool)
	for _, acc := range accommodations {
		if acc.Location != "" {
			uniqueValues[normalizeInput(acc.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho accommodation theo từ khóa
func calculateScore(query string, acc models.Accommodation, cmLocation *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedTitle := normalizeInput(acc.Title)
	if strings.Contains(normalizedTitle, normalizedQuery) || strings.Contains(normalizedQuery, normalizedTitle) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedTitle) > 0.7 {
		score += 15
	}

	if cmLocation != nil && cmLocation.Closest(normalizedQuery) == normalizeInput(acc.Location) {
		score += 13
	}

	for _, benefit := range acc.Benefits {
		normalizedBenefit := normalizeInput(benefit.Name)
		similarity := calculateSimilarity(normalizedQuery, normalizedBenefit)
		if similarity > 0.7 || strings.Contains(normalizedQuery, normalizedBenefit) {
			score += 4
		}
	}

	return score
}

func filterAndScoreAccommodations(
	query string,
	accommodations []models.Accommodation,
	cmLocation *closestmatch.ClosestMatch,
) []dto.ScoredAccommodation {
	var scored []dto.ScoredAccommodation
	scoreCh := make(chan dto.ScoredAccommodation, len(accommodations))
	var wg sync.WaitGroup

	for _, acc := range accommodations {
		wg.Add(1)
		go func(acc models.Accommodation) {
			defer wg.Done()
			score := calculateScore(query, acc, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredAccommodation{
					Accommodation: acc,
					Score:         score,
				}
			}
		}(acc)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredAcc := range scoreCh {
		scored = append(scored, scoredAcc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// matchesStructural kiểm tra các điều kiện cứng: số khách, loại, tiện ích,
// và độ phủ khoảng ngày. Các trường rỗng của bộ lọc bị bỏ qua.
func matchesStructural(acc models.Accommodation, filters dto.SearchFilters) bool {
	if acc.Status != constants.AccommodationStatusAccepted {
		return false
	}
	if len(acc.Availabilities) == 0 {
		return false
	}
	if filters.Guests != nil && !acc.FitsGuests(*filters.Guests) {
		return false
	}
	if filters.Type != "" && !strings.EqualFold(acc.Type, filters.Type) {
		return false
	}
	if len(filters.BenefitIDs) > 0 && !acc.HasBenefits(filters.BenefitIDs) {
		return false
	}
	if filters.FromDate != nil && filters.ToDate != nil {
		if !IsRangeCovered(acc.Availabilities, *filters.FromDate, *filters.ToDate) {
			return false
		}
	}
	return true
}

// buildCard dựng thẻ kết quả và áp bộ lọc giá. Có khoảng ngày thì tính tổng
// giá kỳ lưu trú, không thì lấy giá sàn mỗi đêm; lọc giá áp lên con số nào
// đang hiển thị.
func buildCard(acc models.Accommodation, filters dto.SearchFilters) (dto.AccommodationCard, bool) {
	card := dto.AccommodationCard{
		ID:        acc.ID,
		Title:     acc.Title,
		Location:  acc.Location,
		Image:     acc.Image,
		MinGuests: acc.MinGuests,
		MaxGuests: acc.MaxGuests,
		Type:      acc.Type,
		Status:    acc.Status,
		Benefits:  acc.Benefits,
	}
	card.Rating, card.ReviewCount = averageRating(acc.Reviews)

	hasDates := filters.FromDate != nil && filters.ToDate != nil
	hasPrice := filters.PriceFrom != nil || filters.PriceTo != nil

	if hasDates {
		guests := 1
		if filters.Guests != nil {
			guests = *filters.Guests
		}
		total, err := TotalPrice(acc.PricingMode, acc.Availabilities, *filters.FromDate, *filters.ToDate, guests)
		if err != nil {
			return card, false
		}
		card.TotalPrice = total
		if hasPrice && !priceInRange(total, filters.PriceFrom, filters.PriceTo) {
			return card, false
		}
		return card, true
	}

	minPrice := MinNightlyPrice(acc.Availabilities)
	card.MinPrice = minPrice
	if hasPrice {
		// Chưa có khoảng trống nào thì không có giá để so
		if minPrice == 0 || !priceInRange(minPrice, filters.PriceFrom, filters.PriceTo) {
			return card, false
		}
	}
	return card, true
}

func priceInRange(price float64, from, to *float64) bool {
	if from != nil && price < *from {
		return false
	}
	if to != nil && price > *to {
		return false
	}
	return true
}

// averageRating trung bình cộng rating của các review đã duyệt
func averageRating(reviews []models.Review) (float64, int) {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.Status != constants.ReviewStatusAccepted {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}

// buildCards lọc cấu trúc rồi dựng thẻ kết quả cho từng accommodation
func buildCards(accommodations []models.Accommodation, filters dto.SearchFilters) []dto.AccommodationCard {
	cards := make([]dto.AccommodationCard, 0, len(accommodations))
	for _, acc := range accommodations {
		if !matchesStructural(acc, filters) {
			continue
		}
		if card, ok := buildCard(acc, filters); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Search chạy toàn bộ pipeline: tải accommodation đã duyệt, lọc cấu trúc,
// lọc giá, và nếu có từ khóa thì xếp theo điểm fuzzy giảm dần.
func (s *SearchService) Search(filters dto.SearchFilters) ([]dto.AccommodationCard, error) {
	var accommodations []models.Accommodation
	err := s.db.Preload("Benefits").Preload("Availabilities").Preload("Reviews").
		Where("status = ?", constants.AccommodationStatusAccepted).
		Find(&accommodations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách chỗ ở", err)
	}

	query := strings.TrimSpace(filters.Name)
	if query == "" {
		query = strings.TrimSpace(filters.Location)
	}

	if query != "" {
		cmLocation := createMatcher(prepareLocationList(accommodations))
		scored := filterAndScoreAccommodations(query, accommodations, cmLocation)
		ordered := make([]models.Accommodation, 0, len(scored))
		for _, sa := range scored {
			ordered = append(ordered, sa.Accommodation)
		}
		accommodations = ordered
	}

	return buildCards(accommodations, filters), nil
}
