package constants

// Account roles
const (
	RoleGuest = 0
	RoleHost  = 1
	RoleAdmin = 2
)

// Accommodation status
const (
	AccommodationStatusPending  = 0
	AccommodationStatusAccepted = 1
	AccommodationStatusDeclined = 2
)

// Pricing mode
const (
	PricingPerUnit  = 0
	PricingPerGuest = 1
)

// Reservation status
const (
	ReservationStatusPending   = 0
	ReservationStatusAccepted  = 1
	ReservationStatusDeclined  = 2
	ReservationStatusCancelled = 3
)

// Review status
const (
	ReviewStatusPending  = 0
	ReviewStatusAccepted = 1
	ReviewStatusDeclined = 2
)

// Hạn hủy phòng mặc định (ngày)
const DefaultCancellationDeadlineDays = 1

// Cửa sổ đánh giá sau khi kết thúc lưu trú (ngày)
const ReviewWindowDays = 7
