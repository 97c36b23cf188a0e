package services

import (
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"

	"gorm.io/gorm"
)

// ReservationService quản lý vòng đời reservation
type ReservationService struct {
	db      *gorm.DB
	pricing *PricingService
	logger  logger.Logger
}

// ReservationServiceOptions các dependency của ReservationService
type ReservationServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		db:      opts.DB,
		pricing: NewPricingService(opts.DB),
		logger:  log,
	}
}

// Create tạo reservation mới, luôn ở trạng thái PENDING.
// Không kiểm tra chồng lấn với reservation khác: hai khách có thể giữ cùng
// khoảng ngày, chỉ bước gỡ availability mới đếm reservation hiệu lực.
func (s *ReservationService) Create(guestID, accommodationID uint, startDate, endDate time.Time, guests int) (*models.Reservation, error) {
	var accommodation models.Accommodation
	if err := s.db.First(&accommodation, accommodationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy chỗ ở", err)
	}

	reservation := models.Reservation{
		UserID:          guestID,
		AccommodationID: accommodationID,
		StartDate:       startDate,
		EndDate:         endDate,
		NumberOfGuests:  guests,
		Status:          constants.ReservationStatusPending,
	}

	// Tổng giá chốt tại thời điểm đặt; để 0 khi khoảng ngày chưa được phủ
	if total, err := s.pricing.Quote(accommodationID, startDate, endDate, guests); err == nil {
		reservation.TotalPrice = total
	} else {
		s.logger.Info("reservation cho accommodation %d tạo ngoài khoảng trống: %v", accommodationID, err)
	}

	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIntegrity, "Không thể lưu reservation", err)
	}

	return &reservation, nil
}

// SetStatus đổi trạng thái reservation theo vai trò người gọi:
// GUEST chỉ được CANCELLED, HOST chỉ được ACCEPTED/DECLINED, ADMIN không giới hạn.
func (s *ReservationService) SetStatus(reservationID uint, newStatus int, actorRole int) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy reservation", errors.ErrReservationNotFound)
	}

	actor, err := models.GetReservationActor(actorRole)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Vai trò không được đổi trạng thái reservation", err)
	}

	// Tuần tự với add/remove availability trên cùng chỗ ở
	mu := lockAccommodation(reservation.AccommodationID)
	mu.Lock()
	defer mu.Unlock()

	if err := actor.SetStatus(&reservation, newStatus); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "Vai trò không được đặt trạng thái này", err)
	}

	if err := s.db.Save(&reservation).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeIntegrity, "Không thể cập nhật reservation", err)
	}

	return &reservation, nil
}

// Delete xóa reservation, chỉ khách sở hữu mới được xóa
func (s *ReservationService) Delete(reservationID, actorUserID uint) error {
	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy reservation", errors.ErrReservationNotFound)
	}

	if reservation.UserID != actorUserID {
		return errors.NewAppError(errors.ErrCodeForbidden, "Chỉ khách đặt phòng mới được xóa reservation", errors.ErrNotReservationOwner)
	}

	if err := s.db.Delete(&reservation).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeIntegrity, "Không thể xóa reservation", err)
	}

	return nil
}

// FindByID tìm reservation theo ID
func (s *ReservationService) FindByID(reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Preload("User").Preload("Accommodation").First(&reservation, reservationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy reservation", errors.ErrReservationNotFound)
	}
	return &reservation, nil
}

// ListByGuest danh sách reservation của một khách
func (s *ReservationService) ListByGuest(guestID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("Accommodation").Where("user_id = ?", guestID).
		Order("start_date DESC").Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}
	return reservations, nil
}

// ListByHost danh sách reservation trên các chỗ ở của một chủ nhà
func (s *ReservationService) ListByHost(hostID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("User").Preload("Accommodation").
		Where("accommodation_id IN (?)", s.db.Model(&models.Accommodation{}).Select("id").Where("host_id = ?", hostID)).
		Order("start_date DESC").Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}
	return reservations, nil
}

// ListAll toàn bộ reservation (cho admin)
func (s *ReservationService) ListAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("User").Preload("Accommodation").
		Order("start_date DESC").Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}
	return reservations, nil
}

// GuestActiveReservations các reservation ACCEPTED chưa kết thúc của khách,
// sắp theo ngày bắt đầu giảm dần
func (s *ReservationService) GuestActiveReservations(guestID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.Preload("Accommodation").
		Where("status = ? AND user_id = ? AND end_date > ?", constants.ReservationStatusAccepted, guestID, time.Now()).
		Order("start_date DESC").Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}
	return reservations, nil
}

// HostActiveReservations góc nhìn đối xứng cho chủ nhà
func (s *ReservationService) HostActiveReservations(hostID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.Preload("User").Preload("Accommodation").
		Where("status = ? AND end_date > ? AND accommodation_id IN (?)",
			constants.ReservationStatusAccepted, time.Now(),
			s.db.Model(&models.Accommodation{}).Select("id").Where("host_id = ?", hostID)).
		Order("start_date DESC").Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách reservation", err)
	}
	return reservations, nil
}
