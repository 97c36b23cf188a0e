package validator

import (
	"time"

	"stayhub/dto"
	"stayhub/errors"

	validatorv10 "github.com/go-playground/validator/v10"
)

const dateLayout = "02/01/2006"

var validate = validatorv10.New()

// ParseDate parse ngày dạng 02/01/2006, chuẩn hóa về 0h UTC
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ", err)
	}
	return parsed, nil
}

// ValidateDateRange kiểm tra khoảng ngày nửa mở [from, to)
func ValidateDateRange(from, to time.Time) error {
	if !to.After(from) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	return nil
}

// ValidateAccommodation validate thông tin chỗ ở
func ValidateAccommodation(req *dto.AccommodationRequest) error {
	if req.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề không được để trống", nil)
	}
	if req.Location == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa điểm không được để trống", nil)
	}
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Khoảng số khách không hợp lệ", err)
	}
	return nil
}

// ValidateAvailability validate khoảng trống, trả về hai mốc ngày đã parse
func ValidateAvailability(req *dto.AvailabilityRequest) (time.Time, time.Time, error) {
	if req.FromDate == "" || req.ToDate == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Ngày bắt đầu và kết thúc không được để trống", nil)
	}

	fromDate, err := ParseDate(req.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	toDate, err := ParseDate(req.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := ValidateDateRange(fromDate, toDate); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if req.Price < 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Giá không được âm", nil)
	}

	return fromDate, toDate, nil
}

// ValidateReservation validate yêu cầu đặt phòng, trả về hai mốc ngày đã parse
func ValidateReservation(req *dto.ReservationRequest) (time.Time, time.Time, error) {
	if req.AccommodationID == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "ID chỗ ở không được để trống", nil)
	}

	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	endDate, err := ParseDate(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if err := ValidateDateRange(startDate, endDate); err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if req.NumberOfGuests < 1 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Số khách phải lớn hơn 0", nil)
	}

	return startDate, endDate, nil
}

// ValidateReview validate đánh giá
func ValidateReview(req *dto.ReviewRequest) error {
	if req.Comment == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung đánh giá không được để trống", nil)
	}
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", err)
	}
	return nil
}
