package controllers

import (
	"strconv"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReservationController xử lý các request về reservation
type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		service: services.NewReservationService(services.ReservationServiceOptions{DB: db}),
	}
}

func toReservationResponse(r models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:             r.ID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		NumberOfGuests: r.NumberOfGuests,
		Status:         r.Status,
		TotalPrice:     r.TotalPrice,
		CreatedAt:      r.CreatedAt,
		User: dto.UserInfo{
			ID:     r.User.ID,
			Name:   r.User.Name,
			Avatar: r.User.Avatar,
		},
		Accommodation: dto.ReservationAccommodationResponse{
			ID:       r.Accommodation.ID,
			Title:    r.Accommodation.Title,
			Location: r.Accommodation.Location,
			Image:    r.Accommodation.Image,
			Type:     r.Accommodation.Type,
		},
	}
}

func toReservationResponses(reservations []models.Reservation) []dto.ReservationResponse {
	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}
	return out
}

// CreateReservation khách đặt phòng, reservation mới luôn PENDING
func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	startDate, endDate, err := validator.ValidateReservation(&req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	guestID := c.MustGet("userID").(uint)

	reservation, err := ctl.service.Create(guestID, req.AccommodationID, startDate, endDate, req.NumberOfGuests)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponse(*reservation))
}

// ChangeReservationStatus đổi trạng thái theo vai trò người gọi
func (ctl *ReservationController) ChangeReservationStatus(c *gin.Context) {
	var req dto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role := c.MustGet("userRole").(int)

	reservation, err := ctl.service.SetStatus(req.ID, req.Status, role)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponse(*reservation))
}

// DeleteReservation khách xóa reservation của chính mình
func (ctl *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	guestID := c.MustGet("userID").(uint)

	if err := ctl.service.Delete(uint(id), guestID); err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetReservationDetail chi tiết một reservation
func (ctl *ReservationController) GetReservationDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	reservation, err := ctl.service.FindByID(uint(id))
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponse(*reservation))
}

// GetGuestReservations toàn bộ reservation của khách đang đăng nhập
func (ctl *ReservationController) GetGuestReservations(c *gin.Context) {
	guestID := c.MustGet("userID").(uint)

	reservations, err := ctl.service.ListByGuest(guestID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}

// GetHostReservations reservation trên các chỗ ở của chủ nhà đang đăng nhập
func (ctl *ReservationController) GetHostReservations(c *gin.Context) {
	hostID := c.MustGet("userID").(uint)

	reservations, err := ctl.service.ListByHost(hostID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}

// GetAllReservations toàn bộ reservation (cho admin)
func (ctl *ReservationController) GetAllReservations(c *gin.Context) {
	page, limit := parsePagination(c)

	reservations, err := ctl.service.ListAll()
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	all := toReservationResponses(reservations)
	response.SuccessWithPagination(c, paginate(all, page, limit), page, limit, len(all))
}

// GetGuestActiveReservations reservation ACCEPTED chưa kết thúc của khách
func (ctl *ReservationController) GetGuestActiveReservations(c *gin.Context) {
	guestID := c.MustGet("userID").(uint)

	reservations, err := ctl.service.GuestActiveReservations(guestID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}

// GetHostActiveReservations reservation ACCEPTED chưa kết thúc phía chủ nhà
func (ctl *ReservationController) GetHostActiveReservations(c *gin.Context) {
	hostID := c.MustGet("userID").(uint)

	reservations, err := ctl.service.HostActiveReservations(hostID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}
