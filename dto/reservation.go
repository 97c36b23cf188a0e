package dto

import "time"

// ReservationRequest payload đặt phòng, ngày dạng 02/01/2006
type ReservationRequest struct {
	AccommodationID uint   `json:"accommodationId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	NumberOfGuests  int    `json:"numberOfGuests"`
}

// ReservationStatusRequest payload đổi trạng thái reservation
type ReservationStatusRequest struct {
	ID     uint `json:"id"`
	Status int  `json:"status"`
}

// ReservationAccommodationResponse thông tin chỗ ở trong reservation
type ReservationAccommodationResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Image    string `json:"image"`
	Type     string `json:"type"`
}

// ReservationResponse thông tin một reservation
type ReservationResponse struct {
	ID             uint                             `json:"id"`
	StartDate      time.Time                        `json:"startDate"`
	EndDate        time.Time                        `json:"endDate"`
	NumberOfGuests int                              `json:"numberOfGuests"`
	Status         int                              `json:"status"`
	TotalPrice     float64                          `json:"totalPrice"`
	CreatedAt      time.Time                        `json:"createdAt"`
	User           UserInfo                         `json:"user"`
	Accommodation  ReservationAccommodationResponse `json:"accommodation"`
}
