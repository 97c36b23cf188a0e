package controllers

import (
	"strconv"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/notification"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReviewController xử lý các request về đánh giá
type ReviewController struct {
	db      *gorm.DB
	service *services.ReviewService
}

func NewReviewController(db *gorm.DB, notify notification.Service) *ReviewController {
	return &ReviewController{
		db: db,
		service: services.NewReviewService(services.ReviewServiceOptions{
			DB:     db,
			Notify: notify,
		}),
	}
}

func toReviewResponse(r models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:              r.ID,
		AccommodationID: r.AccommodationID,
		HostID:          r.HostID,
		Rating:          r.Rating,
		Comment:         r.Comment,
		Status:          r.Status,
		CreatedAt:       r.CreateAt,
		User: dto.UserInfo{
			ID:     r.User.ID,
			Name:   r.User.Name,
			Avatar: r.User.Avatar,
		},
	}
}

func toReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}

// CreateAccommodationReview khách đánh giá chỗ ở sau khi ở xong
func (ctl *ReviewController) CreateAccommodationReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateReview(&req); err != nil {
		response.FromAppError(c, err)
		return
	}

	userID := c.MustGet("userID").(uint)

	review, err := ctl.service.CreateAccommodationReview(userID, uint(id), req.Rating, req.Comment)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReviewResponse(*review))
}

// CreateHostReview khách đánh giá chủ nhà
func (ctl *ReviewController) CreateHostReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateReview(&req); err != nil {
		response.FromAppError(c, err)
		return
	}

	userID := c.MustGet("userID").(uint)

	review, err := ctl.service.CreateHostReview(userID, uint(id), req.Rating, req.Comment)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReviewResponse(*review))
}

// GetPendingReviews danh sách đánh giá chờ duyệt kèm tên đối tượng (cho admin)
func (ctl *ReviewController) GetPendingReviews(c *gin.Context) {
	reviews, err := ctl.service.PendingReviews()
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	out := make([]dto.PendingReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		pending := dto.PendingReviewResponse{Review: toReviewResponse(r)}
		if r.AccommodationID != nil {
			var acc models.Accommodation
			if err := ctl.db.First(&acc, *r.AccommodationID).Error; err == nil {
				pending.AccommodationTitle = acc.Title
			}
		}
		if r.HostID != nil {
			var host models.User
			if err := ctl.db.First(&host, *r.HostID).Error; err == nil {
				pending.HostName = host.Name
			}
		}
		out = append(out, pending)
	}

	response.Success(c, out)
}

// ChangeReviewStatus admin duyệt hoặc từ chối đánh giá
func (ctl *ReviewController) ChangeReviewStatus(c *gin.Context) {
	var req dto.ReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	review, err := ctl.service.ChangeStatus(req.ID, req.Status)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReviewResponse(*review))
}

// GetAccommodationReviews đánh giá đã duyệt của một chỗ ở
func (ctl *ReviewController) GetAccommodationReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reviews, err := ctl.service.ListByAccommodation(uint(id))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReviewResponses(reviews))
}

// GetHostReviews đánh giá đã duyệt của một chủ nhà
func (ctl *ReviewController) GetHostReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reviews, err := ctl.service.ListByHost(uint(id))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReviewResponses(reviews))
}

// DeleteReview người viết xóa đánh giá của mình
func (ctl *ReviewController) DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	userID := c.MustGet("userID").(uint)

	if err := ctl.service.Delete(uint(id), userID); err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{"id": id})
}
