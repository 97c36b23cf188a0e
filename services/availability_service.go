package services

import (
	"sort"
	"time"

	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// AvailabilityService quản lý các khoảng trống của một chỗ ở
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// PricedSegment là một lát khoảng trống đã cắt theo khoảng ngày truy vấn
type PricedSegment struct {
	From  time.Time
	To    time.Time
	Price float64
}

// AddInterval thêm một khoảng trống mới, thất bại CONFLICT nếu chồng lên khoảng đã có.
// Kiểm tra chồng lấn rồi ghi là một cặp đọc-ghi nên phải chạy trong critical section
// của accommodation.
func (s *AvailabilityService) AddInterval(accommodationID uint, fromDate, toDate time.Time, price float64) (*models.Availability, error) {
	mu := lockAccommodation(accommodationID)
	mu.Lock()
	defer mu.Unlock()

	var accommodation models.Accommodation
	if err := s.db.First(&accommodation, accommodationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy chỗ ở", err)
	}

	var existing []models.Availability
	if err := s.db.Where("accommodation_id = ?", accommodationID).Find(&existing).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách khoảng trống", err)
	}

	for _, availability := range existing {
		if availability.Overlaps(fromDate, toDate) {
			return nil, errors.NewAppError(errors.ErrCodeConflict, "Khoảng trống bị chồng lên khoảng đã có", errors.ErrAvailabilityOverlap)
		}
	}

	availability := models.Availability{
		AccommodationID: accommodationID,
		FromDate:        fromDate,
		ToDate:          toDate,
		Price:           price,
	}
	if err := s.db.Create(&availability).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIntegrity, "Không thể lưu khoảng trống", err)
	}

	return &availability, nil
}

// RemoveInterval gỡ một khoảng trống. Thất bại BLOCKED khi còn reservation
// PENDING hoặc ACCEPTED giao với khoảng ngày của nó.
func (s *AvailabilityService) RemoveInterval(accommodationID, availabilityID uint) error {
	mu := lockAccommodation(accommodationID)
	mu.Lock()
	defer mu.Unlock()

	var availability models.Availability
	if err := s.db.Where("id = ? AND accommodation_id = ?", availabilityID, accommodationID).First(&availability).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy khoảng trống", errors.ErrAvailabilityNotFound)
	}

	var reservations []models.Reservation
	if err := s.db.Where("accommodation_id = ?", accommodationID).Find(&reservations).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra reservation", err)
	}
	if CountBlockingReservations(reservations, availability.FromDate, availability.ToDate) > 0 {
		return errors.NewAppError(errors.ErrCodeBlocked, "Không thể gỡ khoảng trống vì còn reservation hiệu lực trong khoảng này", errors.ErrAvailabilityBlocked)
	}

	if err := s.db.Delete(&availability).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeIntegrity, "Không thể gỡ khoảng trống", err)
	}

	return nil
}

// CountBlockingReservations đếm các reservation còn hiệu lực (PENDING hoặc
// ACCEPTED) có kỳ lưu trú giao với khoảng [from, to). Reservation đã hủy hoặc
// bị từ chối không chặn việc gỡ availability.
func CountBlockingReservations(reservations []models.Reservation, from, to time.Time) int {
	count := 0
	for _, reservation := range reservations {
		if !reservation.IsActive() {
			continue
		}
		if reservation.Overlaps(from, to) {
			count++
		}
	}
	return count
}

// IsCovered kiểm tra khoảng [from, to) có được phủ kín bởi các khoảng trống không
func (s *AvailabilityService) IsCovered(accommodationID uint, from, to time.Time) (bool, error) {
	availabilities, err := s.listByAccommodation(accommodationID)
	if err != nil {
		return false, err
	}
	return IsRangeCovered(availabilities, from, to), nil
}

// SegmentsOverlapping trả về các lát khoảng trống giao với [from, to), cắt theo
// khoảng truy vấn và sắp theo ngày bắt đầu
func (s *AvailabilityService) SegmentsOverlapping(accommodationID uint, from, to time.Time) ([]PricedSegment, error) {
	availabilities, err := s.listByAccommodation(accommodationID)
	if err != nil {
		return nil, err
	}
	return OverlappingSegments(availabilities, from, to), nil
}

func (s *AvailabilityService) listByAccommodation(accommodationID uint) ([]models.Availability, error) {
	var availabilities []models.Availability
	if err := s.db.Where("accommodation_id = ?", accommodationID).Find(&availabilities).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách khoảng trống", err)
	}
	return availabilities, nil
}

// IsRangeCovered kiểm tra [from, to) nằm trọn trong hợp của các khoảng trống,
// kể cả khi phải ghép nhiều khoảng liền kề nhau
func IsRangeCovered(availabilities []models.Availability, from, to time.Time) bool {
	if !to.After(from) {
		return false
	}

	sorted := sortByFromDate(availabilities)

	cursor := from
	for _, availability := range sorted {
		if !availability.Overlaps(cursor, to) {
			continue
		}
		if availability.FromDate.After(cursor) {
			return false // hở khoảng trước availability này
		}
		if availability.ToDate.After(cursor) {
			cursor = availability.ToDate
		}
		if !cursor.Before(to) {
			return true
		}
	}

	return !cursor.Before(to)
}

// OverlappingSegments cắt các khoảng trống theo [from, to), sắp theo ngày bắt đầu
func OverlappingSegments(availabilities []models.Availability, from, to time.Time) []PricedSegment {
	sorted := sortByFromDate(availabilities)

	segments := make([]PricedSegment, 0)
	for _, availability := range sorted {
		if !availability.Overlaps(from, to) {
			continue
		}
		start, end := availability.Clip(from, to)
		segments = append(segments, PricedSegment{
			From:  start,
			To:    end,
			Price: availability.Price,
		})
	}
	return segments
}

// MinNightlyPrice trả về giá đêm thấp nhất trong các khoảng trống, 0 nếu không có
func MinNightlyPrice(availabilities []models.Availability) float64 {
	min := 0.0
	for i, availability := range availabilities {
		if i == 0 || availability.Price < min {
			min = availability.Price
		}
	}
	return min
}

func sortByFromDate(availabilities []models.Availability) []models.Availability {
	sorted := make([]models.Availability, len(availabilities))
	copy(sorted, availabilities)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FromDate.Before(sorted[j].FromDate)
	})
	return sorted
}
