package services

import (
	"time"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// RevenueService báo cáo doanh thu cho chủ nhà
type RevenueService struct {
	db *gorm.DB
}

func NewRevenueService(db *gorm.DB) *RevenueService {
	return &RevenueService{db: db}
}

// MonthlyRevenueBreakdown gom các reservation ACCEPTED theo tháng bắt đầu
// trong năm được hỏi. Luôn trả đủ 12 tháng.
func MonthlyRevenueBreakdown(reservations []models.Reservation, year int) []dto.MonthlyRevenue {
	months := make([]dto.MonthlyRevenue, 12)
	for i := range months {
		months[i].Month = i + 1
	}

	for _, r := range reservations {
		if r.Status != constants.ReservationStatusAccepted {
			continue
		}
		if r.StartDate.Year() != year {
			continue
		}
		m := int(r.StartDate.Month()) - 1
		months[m].Revenue += r.TotalPrice
		months[m].ReservationCount++
	}

	return months
}

// AccommodationReport doanh thu theo tháng của một chỗ ở trong một năm,
// chỉ cho chủ nhà sở hữu chỗ ở đó
func (s *RevenueService) AccommodationReport(accommodationID, hostID uint, year int) (*dto.AccommodationReportResponse, error) {
	var accommodation models.Accommodation
	if err := s.db.First(&accommodation, accommodationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy chỗ ở", errors.ErrAccommodationNotFound)
	}
	if accommodation.HostID != hostID {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Chỉ chủ nhà mới được xem báo cáo doanh thu", nil)
	}

	var reservations []models.Reservation
	err := s.db.Where("accommodation_id = ? AND status = ?", accommodationID, constants.ReservationStatusAccepted).
		Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}

	report := dto.AccommodationReportResponse{
		AccommodationID: accommodationID,
		Year:            year,
		Months:          MonthlyRevenueBreakdown(reservations, year),
	}
	for _, m := range report.Months {
		report.TotalRevenue += m.Revenue
	}

	return &report, nil
}

// DailyHostRevenue tổng giá các reservation ACCEPTED bắt đầu trong ngày,
// gom theo chủ nhà. Dùng cho job thông báo cuối ngày.
func (s *RevenueService) DailyHostRevenue(day time.Time) (map[uint]float64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	var reservations []models.Reservation
	err := s.db.Preload("Accommodation").
		Where("status = ? AND start_date >= ? AND start_date < ?", constants.ReservationStatusAccepted, start, end).
		Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}

	revenueByHost := make(map[uint]float64)
	for _, r := range reservations {
		revenueByHost[r.Accommodation.HostID] += r.TotalPrice
	}
	return revenueByHost, nil
}
