package models

import (
	"time"
)

// Availability là một khoảng ngày nửa mở [FromDate, ToDate) có giá theo đêm.
// Các khoảng của cùng một chỗ ở không được chồng lên nhau.
type Availability struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AccommodationID uint      `json:"accommodationId"`
	FromDate        time.Time `json:"fromDate"`
	ToDate          time.Time `json:"toDate"`
	Price           float64   `json:"price"` // Giá mỗi đêm
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Overlaps kiểm tra khoảng [from, to) có giao với availability không
func (a *Availability) Overlaps(from, to time.Time) bool {
	return from.Before(a.ToDate) && to.After(a.FromDate)
}

// Clip cắt availability về phần giao với [from, to)
func (a *Availability) Clip(from, to time.Time) (time.Time, time.Time) {
	start := a.FromDate
	if from.After(start) {
		start = from
	}
	end := a.ToDate
	if to.Before(end) {
		end = to
	}
	return start, end
}
