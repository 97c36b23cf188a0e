package dto

import (
	"time"

	"stayhub/models"
)

// AccommodationRequest payload tạo / cập nhật chỗ ở
type AccommodationRequest struct {
	ID          uint   `json:"id,omitempty"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"required"`
	Image       string `json:"image"`
	MinGuests   int    `json:"minGuests" validate:"gte=1"`
	MaxGuests   int    `json:"maxGuests" validate:"gtefield=MinGuests"`
	Type        string `json:"type"`
	BenefitIDs  []int  `json:"benefitIds"`
}

// AccommodationStatusRequest payload đổi trạng thái chỗ ở
type AccommodationStatusRequest struct {
	ID     uint `json:"id"`
	Status int  `json:"status"`
}

// AvailabilityRequest payload thêm khoảng trống, ngày dạng 02/01/2006
type AvailabilityRequest struct {
	FromDate string  `json:"fromDate"`
	ToDate   string  `json:"toDate"`
	Price    float64 `json:"price"`
}

// BookingDetailsRequest payload cập nhật chi tiết đặt phòng
type BookingDetailsRequest struct {
	CancellationDeadline int `json:"cancellationDeadline"`
	PricingMode          int `json:"pricingMode"`
}

// AccommodationCard là thẻ kết quả tìm kiếm / danh sách.
// MinPrice là giá sàn mỗi đêm; TotalPrice là tổng giá cho kỳ lưu trú cụ thể.
// Chỉ một trong hai có giá trị tùy theo request có khoảng ngày hay không.
type AccommodationCard struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Location    string           `json:"location"`
	Image       string           `json:"image"`
	MinGuests   int              `json:"minGuests"`
	MaxGuests   int              `json:"maxGuests"`
	Type        string           `json:"type"`
	Status      int              `json:"status"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
	Benefits    []models.Benefit `json:"benefits"`
	MinPrice    float64          `json:"minPrice,omitempty"`
	TotalPrice  float64          `json:"totalPrice,omitempty"`
}

// AccommodationDetailResponse chi tiết một chỗ ở
type AccommodationDetailResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Image       string           `json:"image"`
	MinGuests   int              `json:"minGuests"`
	MaxGuests   int              `json:"maxGuests"`
	Type        string           `json:"type"`
	Status      int              `json:"status"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
	Host        UserInfo         `json:"host"`
	Benefits    []models.Benefit `json:"benefits"`
	Reviews     []ReviewResponse `json:"reviews"`
}

// BookingDetailsResponse chi tiết đặt phòng kèm các khoảng trống
type BookingDetailsResponse struct {
	CancellationDeadline int                   `json:"cancellationDeadline"`
	PricingMode          int                   `json:"pricingMode"`
	Availabilities       []models.Availability `json:"availabilities"`
}

// PriceResponse kết quả báo giá
type PriceResponse struct {
	TotalPrice float64 `json:"totalPrice"`
}

// AvailableResponse kết quả kiểm tra còn trống
type AvailableResponse struct {
	Available bool `json:"available"`
}

// ScoredAccommodation kết quả chấm điểm fuzzy khi tìm kiếm theo chữ
type ScoredAccommodation struct {
	Accommodation models.Accommodation
	Score         int
}

// SearchFilters bộ lọc tìm kiếm, các trường nil/rỗng bị bỏ qua
type SearchFilters struct {
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	Guests     *int       `json:"guests"`
	Type       string     `json:"type"`
	BenefitIDs []int      `json:"benefitIds"`
	FromDate   *time.Time `json:"fromDate"`
	ToDate     *time.Time `json:"toDate"`
	PriceFrom  *float64   `json:"priceFrom"`
	PriceTo    *float64   `json:"priceTo"`
}
