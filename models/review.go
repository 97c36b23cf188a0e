package models

import (
	"fmt"
	"time"
)

// Review đánh giá của khách, gắn với một chỗ ở hoặc một chủ nhà (đúng một trong hai).
type Review struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId"` // Khách viết đánh giá
	User            User      `json:"user" gorm:"foreignKey:UserID"`
	AccommodationID *uint     `json:"accommodationId,omitempty"`
	HostID          *uint     `json:"hostId,omitempty"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	Status          int       `json:"status"`
	CreateAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Review) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}

// ValidateTarget đảm bảo review gắn với đúng một đối tượng
func (r *Review) ValidateTarget() error {
	if (r.AccommodationID == nil) == (r.HostID == nil) {
		return fmt.Errorf("review must reference exactly one of accommodation or host")
	}
	return nil
}
