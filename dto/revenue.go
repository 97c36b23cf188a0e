package dto

// MonthlyRevenue doanh thu một tháng của chỗ ở
type MonthlyRevenue struct {
	Month            int     `json:"month"`
	Revenue          float64 `json:"revenue"`
	ReservationCount int     `json:"reservationCount"`
}

// AccommodationReportResponse báo cáo doanh thu theo tháng
type AccommodationReportResponse struct {
	AccommodationID uint             `json:"accommodationId"`
	Year            int              `json:"year"`
	TotalRevenue    float64          `json:"totalRevenue"`
	Months          []MonthlyRevenue `json:"months"`
}
