package services

import (
	"testing"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	assert.Equal(t, 5, Nights(day(5), day(10)))
	assert.Equal(t, 1, Nights(day(1), day(2)))
	assert.Equal(t, 0, Nights(day(5), day(5)))
	assert.Equal(t, 0, Nights(day(10), day(5)))
}

func TestTotalPricePerUnit(t *testing.T) {
	availabilities := []models.Availability{
		avail(1, 10, 100),
		avail(10, 20, 120),
	}

	// 5 đêm giá 100 + 5 đêm giá 120, số khách không ảnh hưởng
	total, err := TotalPrice(constants.PricingPerUnit, availabilities, day(5), day(15), 2)
	require.NoError(t, err)
	assert.Equal(t, 1100.0, total)
}

func TestTotalPricePerGuest(t *testing.T) {
	availabilities := []models.Availability{
		avail(1, 10, 100),
		avail(10, 20, 120),
	}

	total, err := TotalPrice(constants.PricingPerGuest, availabilities, day(5), day(15), 2)
	require.NoError(t, err)
	assert.Equal(t, 2200.0, total)

	total, err = TotalPrice(constants.PricingPerGuest, availabilities, day(5), day(15), 1)
	require.NoError(t, err)
	assert.Equal(t, 1100.0, total)
}

func TestTotalPriceRangeNotCovered(t *testing.T) {
	availabilities := []models.Availability{
		avail(1, 10, 100),
		avail(10, 20, 120),
	}

	_, err := TotalPrice(constants.PricingPerUnit, availabilities, day(1), day(21), 2)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNotAvailable, appErr.Code)
}

func TestTotalPriceSingleInterval(t *testing.T) {
	availabilities := []models.Availability{avail(1, 10, 100)}

	total, err := TotalPrice(constants.PricingPerUnit, availabilities, day(1), day(10), 3)
	require.NoError(t, err)
	assert.Equal(t, 900.0, total)
}
