package controllers

import (
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const accommodationsCacheKey = "accommodations:all"

// AccommodationController xử lý các request về chỗ ở và khoảng trống
type AccommodationController struct {
	db           *gorm.DB
	redis        *redis.Client
	availability *services.AvailabilityService
	pricing      *services.PricingService
}

func NewAccommodationController(db *gorm.DB, rdb *redis.Client) *AccommodationController {
	return &AccommodationController{
		db:           db,
		redis:        rdb,
		availability: services.NewAvailabilityService(db),
		pricing:      services.NewPricingService(db),
	}
}

func (ctl *AccommodationController) invalidateCache() {
	if ctl.redis != nil {
		services.DeleteFromRedis(config.Ctx, ctl.redis, accommodationsCacheKey)
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

func paginate[T any](items []T, page, limit int) []T {
	start := page * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// GetAccommodations danh sách chỗ ở đã duyệt, cache qua Redis
func (ctl *AccommodationController) GetAccommodations(c *gin.Context) {
	page, limit := parsePagination(c)

	var accommodations []models.Accommodation

	// Lấy dữ liệu từ Redis trước, trượt về DB khi cache trống
	if ctl.redis != nil {
		if err := services.GetFromRedis(config.Ctx, ctl.redis, accommodationsCacheKey, &accommodations); err != nil {
			accommodations = nil
		}
	}
	if len(accommodations) == 0 {
		err := ctl.db.Preload("Benefits").Preload("Availabilities").Preload("Reviews").Preload("Host").
			Where("status = ?", constants.AccommodationStatusAccepted).
			Find(&accommodations).Error
		if err != nil {
			response.ServerError(c)
			return
		}

		if ctl.redis != nil {
			services.SetToRedis(config.Ctx, ctl.redis, accommodationsCacheKey, accommodations, 10*time.Minute)
		}
	}

	cards := make([]dto.AccommodationCard, 0, len(accommodations))
	for _, acc := range accommodations {
		if card, ok := buildAccommodationCard(acc); ok {
			cards = append(cards, card)
		}
	}

	total := len(cards)
	response.SuccessWithPagination(c, paginate(cards, page, limit), page, limit, total)
}

func buildAccommodationCard(acc models.Accommodation) (dto.AccommodationCard, bool) {
	if acc.Status != constants.AccommodationStatusAccepted {
		return dto.AccommodationCard{}, false
	}
	card := dto.AccommodationCard{
		ID:        acc.ID,
		Title:     acc.Title,
		Location:  acc.Location,
		Image:     acc.Image,
		MinGuests: acc.MinGuests,
		MaxGuests: acc.MaxGuests,
		Type:      acc.Type,
		Status:    acc.Status,
		Benefits:  acc.Benefits,
		MinPrice:  services.MinNightlyPrice(acc.Availabilities),
	}
	card.Rating, card.ReviewCount = averageAcceptedRating(acc.Reviews)
	return card, true
}

func averageAcceptedRating(reviews []models.Review) (float64, int) {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.Status != constants.ReviewStatusAccepted {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}

// GetAccommodationDetail chi tiết một chỗ ở kèm review đã duyệt
func (ctl *AccommodationController) GetAccommodationDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var acc models.Accommodation
	if err := ctl.db.Preload("Benefits").Preload("Host").First(&acc, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var reviews []models.Review
	ctl.db.Preload("User").
		Where("accommodation_id = ? AND status = ?", acc.ID, constants.ReviewStatusAccepted).
		Order("create_at DESC").Find(&reviews)

	detail := dto.AccommodationDetailResponse{
		ID:          acc.ID,
		Title:       acc.Title,
		Description: acc.Description,
		Location:    acc.Location,
		Image:       acc.Image,
		MinGuests:   acc.MinGuests,
		MaxGuests:   acc.MaxGuests,
		Type:        acc.Type,
		Status:      acc.Status,
		Host: dto.UserInfo{
			ID:     acc.Host.ID,
			Name:   acc.Host.Name,
			Avatar: acc.Host.Avatar,
		},
		Benefits: acc.Benefits,
		Reviews:  make([]dto.ReviewResponse, 0, len(reviews)),
	}
	detail.Rating, detail.ReviewCount = averageAcceptedRating(reviews)
	for _, r := range reviews {
		detail.Reviews = append(detail.Reviews, toReviewResponse(r))
	}

	response.Success(c, detail)
}

// CreateAccommodation tạo chỗ ở mới, luôn ở trạng thái PENDING chờ admin duyệt
func (ctl *AccommodationController) CreateAccommodation(c *gin.Context) {
	var req dto.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateAccommodation(&req); err != nil {
		response.FromAppError(c, err)
		return
	}

	hostID := c.MustGet("userID").(uint)

	acc := models.Accommodation{
		HostID:               hostID,
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		Image:                req.Image,
		MinGuests:            req.MinGuests,
		MaxGuests:            req.MaxGuests,
		Type:                 req.Type,
		Status:               constants.AccommodationStatusPending,
		PricingMode:          constants.PricingPerUnit,
		CancellationDeadline: constants.DefaultCancellationDeadlineDays,
	}

	if len(req.BenefitIDs) > 0 {
		var benefits []models.Benefit
		if err := ctl.db.Where("id IN ?", req.BenefitIDs).Find(&benefits).Error; err == nil {
			acc.Benefits = benefits
		}
	}

	if err := ctl.db.Create(&acc).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()
	response.Success(c, acc)
}

// UpdateAccommodation cập nhật chỗ ở, chỉ chủ nhà sở hữu
func (ctl *AccommodationController) UpdateAccommodation(c *gin.Context) {
	var req dto.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateAccommodation(&req); err != nil {
		response.FromAppError(c, err)
		return
	}

	hostID := c.MustGet("userID").(uint)

	var acc models.Accommodation
	if err := ctl.db.First(&acc, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if acc.HostID != hostID {
		response.Forbidden(c)
		return
	}

	acc.Title = req.Title
	acc.Description = req.Description
	acc.Location = req.Location
	acc.Image = req.Image
	acc.MinGuests = req.MinGuests
	acc.MaxGuests = req.MaxGuests
	acc.Type = req.Type

	if err := ctl.db.Save(&acc).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(req.BenefitIDs) > 0 {
		var benefits []models.Benefit
		if err := ctl.db.Where("id IN ?", req.BenefitIDs).Find(&benefits).Error; err == nil {
			ctl.db.Model(&acc).Association("Benefits").Replace(benefits)
		}
	}

	ctl.invalidateCache()
	response.Success(c, acc)
}

// ChangeAccommodationStatus admin duyệt hoặc từ chối chỗ ở
func (ctl *AccommodationController) ChangeAccommodationStatus(c *gin.Context) {
	var req dto.AccommodationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var acc models.Accommodation
	if err := ctl.db.First(&acc, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	acc.Status = req.Status
	if err := acc.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := ctl.db.Save(&acc).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()
	response.Success(c, acc)
}

// DeleteAccommodation xóa chỗ ở cùng khoảng trống và review (cascade),
// chỉ chủ nhà sở hữu
func (ctl *AccommodationController) DeleteAccommodation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	hostID := c.MustGet("userID").(uint)

	var acc models.Accommodation
	if err := ctl.db.First(&acc, id).Error; err != nil {
		response.NotFound(c)
		return
	}
	if acc.HostID != hostID {
		response.Forbidden(c)
		return
	}

	// Reservation không cascade theo accommodation, xóa trong cùng transaction
	err = ctl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("accommodation_id = ?", acc.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Select("Benefits").Delete(&acc).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()
	response.Success(c, gin.H{"id": acc.ID})
}

// GetHostAccommodations danh sách chỗ ở của chủ nhà đang đăng nhập
func (ctl *AccommodationController) GetHostAccommodations(c *gin.Context) {
	hostID := c.MustGet("userID").(uint)
	page, limit := parsePagination(c)

	var accommodations []models.Accommodation
	err := ctl.db.Preload("Benefits").Preload("Availabilities").Preload("Reviews").
		Where("host_id = ?", hostID).
		Order("create_at DESC").Find(&accommodations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	total := len(accommodations)
	response.SuccessWithPagination(c, paginate(accommodations, page, limit), page, limit, total)
}

// GetPendingAccommodations danh sách chỗ ở chờ duyệt (cho admin)
func (ctl *AccommodationController) GetPendingAccommodations(c *gin.Context) {
	page, limit := parsePagination(c)

	var accommodations []models.Accommodation
	err := ctl.db.Preload("Benefits").Preload("Host").
		Where("status = ?", constants.AccommodationStatusPending).
		Order("create_at ASC").Find(&accommodations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	total := len(accommodations)
	response.SuccessWithPagination(c, paginate(accommodations, page, limit), page, limit, total)
}

// AddAvailability thêm khoảng trống mới, trả 409 nếu chồng lấn
func (ctl *AccommodationController) AddAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	fromDate, toDate, err := validator.ValidateAvailability(&req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if !ctl.ownsAccommodation(c, uint(id)) {
		return
	}

	availability, err := ctl.availability.AddInterval(uint(id), fromDate, toDate, req.Price)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, availability)
}

// RemoveAvailability gỡ khoảng trống, bị chặn khi còn reservation hiệu lực
func (ctl *AccommodationController) RemoveAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}
	availabilityID, err := strconv.Atoi(c.Param("availabilityId"))
	if err != nil {
		response.BadRequest(c, "ID khoảng trống không hợp lệ")
		return
	}

	if !ctl.ownsAccommodation(c, uint(id)) {
		return
	}

	if err := ctl.availability.RemoveInterval(uint(id), uint(availabilityID)); err != nil {
		response.FromAppError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, gin.H{"id": availabilityID})
}

// ownsAccommodation kiểm tra chỗ ở tồn tại và thuộc về user đang đăng nhập.
// Tự trả response lỗi khi không đạt.
func (ctl *AccommodationController) ownsAccommodation(c *gin.Context, accommodationID uint) bool {
	var acc models.Accommodation
	if err := ctl.db.First(&acc, accommodationID).Error; err != nil {
		response.NotFound(c)
		return false
	}
	if acc.HostID != c.MustGet("userID").(uint) {
		response.Forbidden(c)
		return false
	}
	return true
}

// GetBookingDetails chi tiết đặt phòng của một chỗ ở
func (ctl *AccommodationController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var acc models.Accommodation
	if err := ctl.db.Preload("Availabilities").First(&acc, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.BookingDetailsResponse{
		CancellationDeadline: acc.CancellationDeadline,
		PricingMode:          acc.PricingMode,
		Availabilities:       acc.Availabilities,
	})
}

// UpdateBookingDetails cập nhật hạn hủy và cách tính giá, chỉ chủ nhà sở hữu
func (ctl *AccommodationController) UpdateBookingDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.BookingDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if !ctl.ownsAccommodation(c, uint(id)) {
		return
	}

	var acc models.Accommodation
	if err := ctl.db.First(&acc, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	acc.CancellationDeadline = req.CancellationDeadline
	acc.PricingMode = req.PricingMode
	if acc.CancellationDeadline < 0 {
		acc.CancellationDeadline = constants.DefaultCancellationDeadlineDays
	}
	if err := acc.ValidatePricingMode(); err != nil {
		response.BadRequest(c, "Cách tính giá không hợp lệ")
		return
	}

	if err := ctl.db.Save(&acc).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()
	response.Success(c, dto.BookingDetailsResponse{
		CancellationDeadline: acc.CancellationDeadline,
		PricingMode:          acc.PricingMode,
	})
}

// GetAccommodationPrice báo giá cho một kỳ lưu trú cụ thể
func (ctl *AccommodationController) GetAccommodationPrice(c *gin.Context) {
	id, fromDate, toDate, guests, ok := parseQuoteParams(c)
	if !ok {
		return
	}

	total, err := ctl.pricing.Quote(id, fromDate, toDate, guests)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, dto.PriceResponse{TotalPrice: total})
}

// CheckAccommodationAvailable kiểm tra khoảng ngày có được phủ kín không
func (ctl *AccommodationController) CheckAccommodationAvailable(c *gin.Context) {
	id, fromDate, toDate, _, ok := parseQuoteParams(c)
	if !ok {
		return
	}

	covered, err := ctl.availability.IsCovered(id, fromDate, toDate)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, dto.AvailableResponse{Available: covered})
}

func parseQuoteParams(c *gin.Context) (uint, time.Time, time.Time, int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, time.Time{}, time.Time{}, 0, false
	}

	fromDate, err := validator.ParseDate(c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "Dữ liệu fromDate không hợp lệ")
		return 0, time.Time{}, time.Time{}, 0, false
	}
	toDate, err := validator.ParseDate(c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "Dữ liệu toDate không hợp lệ")
		return 0, time.Time{}, time.Time{}, 0, false
	}
	if err := validator.ValidateDateRange(fromDate, toDate); err != nil {
		response.FromAppError(c, err)
		return 0, time.Time{}, time.Time{}, 0, false
	}

	guests := 1
	if guestsStr := c.Query("guests"); guestsStr != "" {
		if parsed, err := strconv.Atoi(guestsStr); err == nil && parsed > 0 {
			guests = parsed
		}
	}

	return uint(id), fromDate, toDate, guests, true
}
