package models

import (
	"time"

	"stayhub/constants"
)

type Reservation struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"userId"` // Khách đặt phòng
	User            User          `json:"user" gorm:"foreignKey:UserID"`
	AccommodationID uint          `json:"accommodationId"`
	Accommodation   Accommodation `json:"accommodation" gorm:"foreignKey:AccommodationID"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	Status          int           `json:"status"`
	TotalPrice      float64       `json:"totalPrice"` // Tổng giá tính tại thời điểm đặt
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsActive cho biết reservation còn chặn việc gỡ availability không
func (r *Reservation) IsActive() bool {
	return r.Status == constants.ReservationStatusPending || r.Status == constants.ReservationStatusAccepted
}

// Overlaps kiểm tra kỳ lưu trú có giao với khoảng [from, to) không
func (r *Reservation) Overlaps(from, to time.Time) bool {
	return r.StartDate.Before(to) && r.EndDate.After(from)
}

// EndedBefore kiểm tra kỳ lưu trú đã kết thúc trước thời điểm now chưa
func (r *Reservation) EndedBefore(now time.Time) bool {
	return r.EndDate.Before(now)
}
