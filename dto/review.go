package dto

import "time"

// ReviewRequest payload tạo đánh giá
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// ReviewStatusRequest payload duyệt / từ chối đánh giá
type ReviewStatusRequest struct {
	ID     uint `json:"id"`
	Status int  `json:"status"`
}

// ReviewResponse thông tin một đánh giá
type ReviewResponse struct {
	ID              uint      `json:"id"`
	AccommodationID *uint     `json:"accommodationId,omitempty"`
	HostID          *uint     `json:"hostId,omitempty"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	Status          int       `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	User            UserInfo  `json:"user"`
}

// PendingReviewResponse đánh giá chờ duyệt kèm đối tượng được đánh giá
type PendingReviewResponse struct {
	Review             ReviewResponse `json:"review"`
	AccommodationTitle string         `json:"accommodationTitle,omitempty"`
	HostName           string         `json:"hostName,omitempty"`
}
