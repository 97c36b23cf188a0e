package routes

import (
	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
	"stayhub/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	accommodationController := controllers.NewAccommodationController(db, redisCli)
	reservationController := controllers.NewReservationController(db)
	reviewController := controllers.NewReviewController(db, notification.NewMelodyService(m))
	searchController := controllers.NewSearchController(db, redisCli)
	revenueController := controllers.NewRevenueController(db)

	v1 := router.Group("/api/v1")

	// Tìm kiếm công khai, nhớ bộ lọc theo session
	v1.GET("/search", middlewares.SessionMiddleware(), searchController.SearchAccommodations)
	v1.DELETE("/search/filters", middlewares.SessionMiddleware(), searchController.ClearSearchFilters)

	// Chỗ ở
	v1.GET("/accommodation", accommodationController.GetAccommodations)
	v1.GET("/accommodation/:id", accommodationController.GetAccommodationDetail)
	v1.POST("/accommodation", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.CreateAccommodation)
	v1.PUT("/accommodationUpdate", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.UpdateAccommodation)
	v1.DELETE("/accommodation/:id", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.DeleteAccommodation)
	v1.GET("/hostAccommodation", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.GetHostAccommodations)

	// Khoảng trống và chi tiết đặt phòng
	v1.POST("/accommodation/:id/availability", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.AddAvailability)
	v1.DELETE("/accommodation/:id/availability/:availabilityId", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.RemoveAvailability)
	v1.GET("/accommodation/:id/bookingDetails", accommodationController.GetBookingDetails)
	v1.PUT("/accommodation/:id/bookingDetails", middlewares.AuthMiddleware(constants.RoleHost), accommodationController.UpdateBookingDetails)
	v1.GET("/accommodation/:id/price", accommodationController.GetAccommodationPrice)
	v1.GET("/accommodation/:id/available", accommodationController.CheckAccommodationAvailable)

	// Reservation
	v1.POST("/reservation", middlewares.AuthMiddleware(constants.RoleGuest), reservationController.CreateReservation)
	v1.PUT("/reservationStatus", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), reservationController.ChangeReservationStatus)
	v1.DELETE("/reservation/:id", middlewares.AuthMiddleware(constants.RoleGuest), reservationController.DeleteReservation)
	v1.GET("/reservation/:id", middlewares.AuthMiddleware(constants.RoleGuest, constants.RoleHost, constants.RoleAdmin), reservationController.GetReservationDetail)
	v1.GET("/guestReservation", middlewares.AuthMiddleware(constants.RoleGuest), reservationController.GetGuestReservations)
	v1.GET("/hostReservation", middlewares.AuthMiddleware(constants.RoleHost), reservationController.GetHostReservations)
	v1.GET("/guestActiveReservation", middlewares.AuthMiddleware(constants.RoleGuest), reservationController.GetGuestActiveReservations)
	v1.GET("/hostActiveReservation", middlewares.AuthMiddleware(constants.RoleHost), reservationController.GetHostActiveReservations)

	// Review
	v1.POST("/accommodation/:id/review", middlewares.AuthMiddleware(constants.RoleGuest), reviewController.CreateAccommodationReview)
	v1.POST("/host/:id/review", middlewares.AuthMiddleware(constants.RoleGuest), reviewController.CreateHostReview)
	v1.GET("/accommodation/:id/review", reviewController.GetAccommodationReviews)
	v1.GET("/host/:id/review", reviewController.GetHostReviews)
	v1.DELETE("/review/:id", middlewares.AuthMiddleware(constants.RoleGuest), reviewController.DeleteReview)

	// Nhóm route quản trị: xác thực trước rồi kiểm tra role qua context
	admin := v1.Group("", middlewares.AuthMiddleware(), middlewares.RoleMiddleware(constants.RoleAdmin))
	admin.PUT("/accommodationStatus", accommodationController.ChangeAccommodationStatus)
	admin.GET("/pendingAccommodation", accommodationController.GetPendingAccommodations)
	admin.GET("/reservation", reservationController.GetAllReservations)
	admin.GET("/pendingReview", reviewController.GetPendingReviews)
	admin.PUT("/reviewStatus", reviewController.ChangeReviewStatus)

	// Doanh thu
	v1.GET("/accommodation/:id/report", middlewares.AuthMiddleware(constants.RoleHost), revenueController.GetAccommodationReport)
}
