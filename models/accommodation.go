package models

import (
	"fmt"
	"time"
)

type Accommodation struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	HostID               uint           `json:"hostId"` // ID của chủ nhà
	Host                 User           `json:"host" gorm:"foreignKey:HostID"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Location             string         `json:"location"`
	Image                string         `json:"image"`
	MinGuests            int            `json:"minGuests"`
	MaxGuests            int            `json:"maxGuests"`
	Type                 string         `json:"type"` // Loại chỗ ở (apartment, room, house...)
	Status               int            `json:"status"`
	PricingMode          int            `json:"pricingMode"`
	CancellationDeadline int            `json:"cancellationDeadline"` // Số ngày trước check-in còn được hủy
	CreateAt             time.Time      `gorm:"autoCreateTime" json:"createAt"`
	UpdateAt             time.Time      `gorm:"autoUpdateTime" json:"updateAt"`
	Benefits             []Benefit      `json:"benefits" gorm:"many2many:accommodation_benefits;"`
	Availabilities       []Availability `json:"availabilities" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
	Reviews              []Review       `json:"reviews" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
}

func (a *Accommodation) ValidateStatus() error {
	if a.Status < 0 || a.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", a.Status)
	}
	return nil
}

func (a *Accommodation) ValidatePricingMode() error {
	if a.PricingMode < 0 || a.PricingMode > 1 {
		return fmt.Errorf("invalid PricingMode: %d, must be 0 or 1", a.PricingMode)
	}
	return nil
}

// FitsGuests kiểm tra số khách có nằm trong khoảng cho phép không
func (a *Accommodation) FitsGuests(guests int) bool {
	return guests >= a.MinGuests && guests <= a.MaxGuests
}

// HasBenefits kiểm tra chỗ ở có đầy đủ các tiện ích yêu cầu không
func (a *Accommodation) HasBenefits(benefitIDs []int) bool {
	owned := make(map[int]bool, len(a.Benefits))
	for _, b := range a.Benefits {
		owned[b.ID] = true
	}
	for _, id := range benefitIDs {
		if !owned[id] {
			return false
		}
	}
	return true
}
