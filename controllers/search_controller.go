package controllers

import (
	"strconv"
	"strings"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SearchController xử lý tìm kiếm công khai, nhớ bộ lọc theo session
type SearchController struct {
	redis  *redis.Client
	search *services.SearchService
}

func NewSearchController(db *gorm.DB, rdb *redis.Client) *SearchController {
	return &SearchController{
		redis:  rdb,
		search: services.NewSearchService(db),
	}
}

func parseSearchFilters(c *gin.Context) (*dto.SearchFilters, error) {
	filters := &dto.SearchFilters{
		Name:     strings.TrimSpace(c.Query("name")),
		Location: strings.TrimSpace(c.Query("location")),
		Type:     strings.TrimSpace(c.Query("type")),
	}

	if guestsStr := c.Query("guests"); guestsStr != "" {
		if guests, err := strconv.Atoi(guestsStr); err == nil && guests > 0 {
			filters.Guests = &guests
		}
	}

	if benefitRaw := c.Query("benefitId"); benefitRaw != "" {
		for _, part := range strings.Split(benefitRaw, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				filters.BenefitIDs = append(filters.BenefitIDs, id)
			}
		}
	}

	if fromStr := c.Query("fromDate"); fromStr != "" {
		fromDate, err := validator.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		filters.FromDate = &fromDate
	}
	if toStr := c.Query("toDate"); toStr != "" {
		toDate, err := validator.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
		filters.ToDate = &toDate
	}
	if filters.FromDate != nil && filters.ToDate != nil {
		if err := validator.ValidateDateRange(*filters.FromDate, *filters.ToDate); err != nil {
			return nil, err
		}
	}

	if priceStr := c.Query("priceFrom"); priceStr != "" {
		if price, err := strconv.ParseFloat(priceStr, 64); err == nil {
			filters.PriceFrom = &price
		}
	}
	if priceStr := c.Query("priceTo"); priceStr != "" {
		if price, err := strconv.ParseFloat(priceStr, 64); err == nil {
			filters.PriceTo = &price
		}
	}

	return filters, nil
}

// SearchAccommodations tìm kiếm chỗ ở. Bộ lọc mới được gộp với bộ lọc
// lần trước của cùng session rồi lưu lại.
func (ctl *SearchController) SearchAccommodations(c *gin.Context) {
	filters, err := parseSearchFilters(c)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	sessionID := c.GetString("sessionId")
	if ctl.redis != nil && sessionID != "" {
		if old, err := services.GetLastFilters(config.Ctx, ctl.redis, sessionID); err == nil {
			filters = services.MergeFilters(old, filters)
		}
		services.SaveLastFilters(config.Ctx, ctl.redis, sessionID, filters)
	}

	cards, err := ctl.search.Search(*filters)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	page, limit := parsePagination(c)
	response.SuccessWithPagination(c, paginate(cards, page, limit), page, limit, len(cards))
}

// ClearSearchFilters xóa bộ lọc đã nhớ của session
func (ctl *SearchController) ClearSearchFilters(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	if ctl.redis != nil && sessionID != "" {
		services.ClearLastFilters(config.Ctx, ctl.redis, sessionID)
	}
	response.Success(c, gin.H{"cleared": true})
}
