package validator

import (
	"testing"
	"time"

	"stayhub/dto"
	"stayhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("05/01/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("2025-01-05")
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
}

func TestValidateDateRange(t *testing.T) {
	from, _ := ParseDate("05/01/2025")
	to, _ := ParseDate("10/01/2025")

	assert.NoError(t, ValidateDateRange(from, to))
	assert.Error(t, ValidateDateRange(to, from))
	assert.Error(t, ValidateDateRange(from, from))
}

func TestValidateAvailability(t *testing.T) {
	from, to, err := ValidateAvailability(&dto.AvailabilityRequest{
		FromDate: "01/01/2025",
		ToDate:   "10/01/2025",
		Price:    100,
	})
	require.NoError(t, err)
	assert.True(t, to.After(from))

	_, _, err = ValidateAvailability(&dto.AvailabilityRequest{ToDate: "10/01/2025"})
	assert.Error(t, err)

	_, _, err = ValidateAvailability(&dto.AvailabilityRequest{
		FromDate: "10/01/2025",
		ToDate:   "01/01/2025",
	})
	assert.Error(t, err)

	_, _, err = ValidateAvailability(&dto.AvailabilityRequest{
		FromDate: "01/01/2025",
		ToDate:   "10/01/2025",
		Price:    -5,
	})
	assert.Error(t, err)
}

func TestValidateReservation(t *testing.T) {
	start, end, err := ValidateReservation(&dto.ReservationRequest{
		AccommodationID: 1,
		StartDate:       "05/01/2025",
		EndDate:         "10/01/2025",
		NumberOfGuests:  2,
	})
	require.NoError(t, err)
	assert.True(t, end.After(start))

	tests := []struct {
		name string
		req  dto.ReservationRequest
	}{
		{"thiếu accommodation", dto.ReservationRequest{StartDate: "05/01/2025", EndDate: "10/01/2025", NumberOfGuests: 2}},
		{"ngày sai định dạng", dto.ReservationRequest{AccommodationID: 1, StartDate: "bad", EndDate: "10/01/2025", NumberOfGuests: 2}},
		{"khoảng ngày ngược", dto.ReservationRequest{AccommodationID: 1, StartDate: "10/01/2025", EndDate: "05/01/2025", NumberOfGuests: 2}},
		{"không có khách", dto.ReservationRequest{AccommodationID: 1, StartDate: "05/01/2025", EndDate: "10/01/2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateReservation(&tt.req)
			assert.Error(t, err)
		})
	}
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(&dto.ReviewRequest{Rating: 5, Comment: "Rất tốt"}))
	assert.Error(t, ValidateReview(&dto.ReviewRequest{Rating: 5}))
	assert.Error(t, ValidateReview(&dto.ReviewRequest{Rating: 0, Comment: "ok"}))
	assert.Error(t, ValidateReview(&dto.ReviewRequest{Rating: 6, Comment: "ok"}))
}

func TestValidateAccommodation(t *testing.T) {
	valid := dto.AccommodationRequest{
		Title:     "Căn hộ view biển",
		Location:  "Đà Nẵng",
		MinGuests: 1,
		MaxGuests: 4,
	}
	assert.NoError(t, ValidateAccommodation(&valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, ValidateAccommodation(&missingTitle))

	badGuests := valid
	badGuests.MinGuests = 5
	badGuests.MaxGuests = 2
	assert.Error(t, ValidateAccommodation(&badGuests))
}
