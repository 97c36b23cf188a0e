package services

import (
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/services/notification"

	"gorm.io/gorm"
)

// ReviewService quản lý đánh giá và kiểm duyệt
type ReviewService struct {
	db     *gorm.DB
	logger logger.Logger
	notify notification.Service
}

// ReviewServiceOptions các dependency của ReviewService
type ReviewServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Notify notification.Service
}

func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReviewService{
		db:     opts.DB,
		logger: log,
		notify: opts.Notify,
	}
}

// CountEndedStays đếm các lần ở đã kết thúc trước now. PENDING và CANCELLED
// không tính; với windowDays > 0 chỉ tính các lần ở kết thúc trong vòng
// windowDays ngày.
func CountEndedStays(reservations []models.Reservation, now time.Time, windowDays int) int {
	count := 0
	for _, r := range reservations {
		if r.Status == constants.ReservationStatusPending || r.Status == constants.ReservationStatusCancelled {
			continue
		}
		if !r.EndDate.Before(now) {
			continue
		}
		if windowDays > 0 && !r.EndDate.After(now.AddDate(0, 0, -windowDays)) {
			continue
		}
		count++
	}
	return count
}

// CanReview so khớp số lần ở đủ điều kiện với số review đã viết:
// mỗi lần ở cho đúng một lượt đánh giá.
func CanReview(endedStays, reviewCount int) bool {
	return endedStays > 0 && reviewCount < endedStays
}

// CreateAccommodationReview tạo đánh giá chỗ ở, ở trạng thái PENDING.
// Khách chỉ được đánh giá khi có lần ở kết thúc trong 7 ngày gần nhất
// và chưa dùng hết lượt.
func (s *ReviewService) CreateAccommodationReview(userID, accommodationID uint, rating int, comment string) (*models.Review, error) {
	var accommodation models.Accommodation
	if err := s.db.First(&accommodation, accommodationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy chỗ ở", err)
	}

	var reservations []models.Reservation
	if err := s.db.Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}

	var reviewCount int64
	if err := s.db.Model(&models.Review{}).
		Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Count(&reviewCount).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm review", err)
	}

	now := time.Now()
	if CountEndedStays(reservations, now, constants.ReviewWindowDays) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Bạn chưa có lần ở nào kết thúc trong 7 ngày gần đây", nil)
	}
	if !CanReview(CountEndedStays(reservations, now, 0), int(reviewCount)) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Bạn đã dùng hết lượt đánh giá cho chỗ ở này", nil)
	}

	review := models.Review{
		UserID:          userID,
		AccommodationID: &accommodationID,
		Rating:          rating,
		Comment:         comment,
		Status:          constants.ReviewStatusPending,
	}
	if err := review.ValidateTarget(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Review không hợp lệ", err)
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIntegrity, "Không thể lưu review", err)
	}

	return &review, nil
}

// CreateHostReview tạo đánh giá chủ nhà. Điều kiện: từng có lần ở ACCEPTED
// kết thúc trên bất kỳ chỗ ở nào của chủ nhà, không giới hạn 7 ngày.
func (s *ReviewService) CreateHostReview(userID, hostID uint, rating int, comment string) (*models.Review, error) {
	var reservations []models.Reservation
	if err := s.db.
		Where("user_id = ? AND accommodation_id IN (?)", userID,
			s.db.Model(&models.Accommodation{}).Select("id").Where("host_id = ?", hostID)).
		Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}

	var reviewCount int64
	if err := s.db.Model(&models.Review{}).
		Where("user_id = ? AND host_id = ?", userID, hostID).
		Count(&reviewCount).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm review", err)
	}

	stays := CountEndedStays(reservations, time.Now(), 0)
	if stays == 0 {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Bạn chưa có lần ở nào kết thúc tại chỗ ở của chủ nhà này", nil)
	}
	if !CanReview(stays, int(reviewCount)) {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Bạn đã dùng hết lượt đánh giá cho chủ nhà này", nil)
	}

	review := models.Review{
		UserID:  userID,
		HostID:  &hostID,
		Rating:  rating,
		Comment: comment,
		Status:  constants.ReviewStatusPending,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIntegrity, "Không thể lưu review", err)
	}

	return &review, nil
}

// PendingReviews danh sách review chờ duyệt (cho admin)
func (s *ReviewService) PendingReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("status = ?", constants.ReviewStatusPending).
		Order("create_at ASC").Find(&reviews).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách review", err)
	}
	return reviews, nil
}

// ChangeStatus duyệt hoặc từ chối review. Khi duyệt, ghi Notification
// cho người viết và phát qua websocket.
func (s *ReviewService) ChangeStatus(reviewID uint, newStatus int) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy review", errors.ErrReviewNotFound)
	}

	review.Status = newStatus
	if err := review.ValidateStatus(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái review không hợp lệ", err)
	}

	if err := s.db.Save(&review).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIntegrity, "Không thể cập nhật review", err)
	}

	// Duyệt xong thì báo cho bên được đánh giá
	if newStatus == constants.ReviewStatusAccepted {
		if hostID, ok := s.reviewedHostID(&review); ok {
			message := notification.NewReviewMessageBuilder(hostID, review.Rating).Build()
			notif := models.Notification{
				UserID:  hostID,
				Message: message,
			}
			if err := s.db.Create(&notif).Error; err != nil {
				s.logger.Error("không thể lưu notification cho user %d: %v", hostID, err)
			}
			if s.notify != nil {
				if err := s.notify.SendMessage(message); err != nil {
					s.logger.Error("không thể gửi websocket notification: %v", err)
				}
			}
		}
	}

	return &review, nil
}

// reviewedHostID tìm chủ nhà nhận thông báo: trực tiếp với review chủ nhà,
// qua accommodation với review chỗ ở
func (s *ReviewService) reviewedHostID(review *models.Review) (uint, bool) {
	if review.HostID != nil {
		return *review.HostID, true
	}
	if review.AccommodationID != nil {
		var acc models.Accommodation
		if err := s.db.First(&acc, *review.AccommodationID).Error; err != nil {
			s.logger.Error("không tìm thấy chỗ ở %d của review %d: %v", *review.AccommodationID, review.ID, err)
			return 0, false
		}
		return acc.HostID, true
	}
	return 0, false
}

// ListByAccommodation các review đã duyệt của một chỗ ở
func (s *ReviewService) ListByAccommodation(accommodationID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("accommodation_id = ? AND status = ?", accommodationID, constants.ReviewStatusAccepted).
		Order("create_at DESC").Find(&reviews).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách review", err)
	}
	return reviews, nil
}

// ListByHost các review đã duyệt của một chủ nhà
func (s *ReviewService) ListByHost(hostID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("host_id = ? AND status = ?", hostID, constants.ReviewStatusAccepted).
		Order("create_at DESC").Find(&reviews).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách review", err)
	}
	return reviews, nil
}

// Delete xóa review, chỉ người viết mới được xóa
func (s *ReviewService) Delete(reviewID, actorUserID uint) error {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy review", errors.ErrReviewNotFound)
	}
	if review.UserID != actorUserID {
		return errors.NewAppError(errors.ErrCodeForbidden, "Chỉ người viết mới được xóa review", nil)
	}
	if err := s.db.Delete(&review).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeIntegrity, "Không thể xóa review", err)
	}
	return nil
}
