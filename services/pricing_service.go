package services

import (
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// PricingService tính tổng giá cho một kỳ lưu trú
type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

// Quote báo giá cho khoảng [from, to) với số khách cho trước.
// Thất bại NOT_AVAILABLE khi khoảng ngày không được phủ kín.
func (s *PricingService) Quote(accommodationID uint, from, to time.Time, guests int) (float64, error) {
	var accommodation models.Accommodation
	if err := s.db.Preload("Availabilities").First(&accommodation, accommodationID).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy chỗ ở", err)
	}

	return TotalPrice(accommodation.PricingMode, accommodation.Availabilities, from, to, guests)
}

// TotalPrice tính tổng giá thuần túy trên danh sách khoảng trống đã nạp sẵn.
// Dùng chung cho báo giá trực tiếp và lọc giá khi tìm kiếm nên không có side effect.
func TotalPrice(pricingMode int, availabilities []models.Availability, from, to time.Time, guests int) (float64, error) {
	if !IsRangeCovered(availabilities, from, to) {
		return 0, errors.NewAppError(errors.ErrCodeNotAvailable, "Chỗ ở không còn trống trong khoảng ngày này", errors.ErrRangeNotCovered)
	}

	multiplier := 1
	if pricingMode == constants.PricingPerGuest {
		multiplier = guests
	}

	total := 0.0
	for _, segment := range OverlappingSegments(availabilities, from, to) {
		total += float64(Nights(segment.From, segment.To)) * segment.Price * float64(multiplier)
	}
	return total, nil
}

// Nights đếm số đêm trọn trong khoảng [from, to)
func Nights(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / (24 * time.Hour))
}
