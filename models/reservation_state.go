package models

import (
	"errors"

	"stayhub/constants"
)

// ReservationActor định nghĩa interface cho các vai trò đổi trạng thái reservation.
// Quyền phụ thuộc vào vai trò người gọi, không phụ thuộc trạng thái hiện tại.
type ReservationActor interface {
	SetStatus(reservation *Reservation, status int) error
}

// GuestActor khách chỉ được hủy
type GuestActor struct{}

func (a *GuestActor) SetStatus(reservation *Reservation, status int) error {
	if status != constants.ReservationStatusCancelled {
		return errors.New("guest can only cancel a reservation")
	}
	reservation.Status = status
	return nil
}

// HostActor chủ nhà chỉ được chấp nhận hoặc từ chối
type HostActor struct{}

func (a *HostActor) SetStatus(reservation *Reservation, status int) error {
	if status != constants.ReservationStatusAccepted && status != constants.ReservationStatusDeclined {
		return errors.New("host can only accept or decline a reservation")
	}
	reservation.Status = status
	return nil
}

// AdminActor admin không bị giới hạn
type AdminActor struct{}

func (a *AdminActor) SetStatus(reservation *Reservation, status int) error {
	if status < constants.ReservationStatusPending || status > constants.ReservationStatusCancelled {
		return errors.New("invalid reservation status")
	}
	reservation.Status = status
	return nil
}

// GetReservationActor trả về actor tương ứng với vai trò
func GetReservationActor(role int) (ReservationActor, error) {
	switch role {
	case constants.RoleGuest:
		return &GuestActor{}, nil
	case constants.RoleHost:
		return &HostActor{}, nil
	case constants.RoleAdmin:
		return &AdminActor{}, nil
	default:
		return nil, errors.New("unknown account role")
	}
}
