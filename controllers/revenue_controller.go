package controllers

import (
	"strconv"
	"time"

	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RevenueController báo cáo doanh thu cho chủ nhà
type RevenueController struct {
	service *services.RevenueService
}

func NewRevenueController(db *gorm.DB) *RevenueController {
	return &RevenueController{
		service: services.NewRevenueService(db),
	}
}

// GetAccommodationReport doanh thu theo tháng của một chỗ ở trong một năm
func (ctl *RevenueController) GetAccommodationReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		if parsed, err := strconv.Atoi(yearStr); err == nil && parsed > 0 {
			year = parsed
		}
	}

	hostID := c.MustGet("userID").(uint)

	report, err := ctl.service.AccommodationReport(uint(id), hostID, year)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, report)
}
