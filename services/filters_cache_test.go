package services

import (
	"testing"

	"stayhub/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFiltersKeepsOldValues(t *testing.T) {
	old := &dto.SearchFilters{
		Name:       "căn hộ",
		Location:   "Đà Nẵng",
		Guests:     intPtr(2),
		BenefitIDs: []int{1, 2},
	}
	merged := MergeFilters(old, &dto.SearchFilters{})

	assert.Equal(t, "căn hộ", merged.Name)
	assert.Equal(t, "Đà Nẵng", merged.Location)
	require.NotNil(t, merged.Guests)
	assert.Equal(t, 2, *merged.Guests)
	assert.Equal(t, []int{1, 2}, merged.BenefitIDs)
}

func TestMergeFiltersNewValuesWin(t *testing.T) {
	old := &dto.SearchFilters{Name: "căn hộ", Guests: intPtr(2)}
	merged := MergeFilters(old, &dto.SearchFilters{Name: "villa", Guests: intPtr(4)})

	assert.Equal(t, "villa", merged.Name)
	assert.Equal(t, 4, *merged.Guests)
}

func TestMergeFiltersBenefitsUnion(t *testing.T) {
	old := &dto.SearchFilters{BenefitIDs: []int{1, 2}}
	merged := MergeFilters(old, &dto.SearchFilters{BenefitIDs: []int{2, 3}})

	assert.ElementsMatch(t, []int{1, 2, 3}, merged.BenefitIDs)
}

func TestMergeFiltersConflictingPriceRange(t *testing.T) {
	// Giá min mới vượt giá max cũ thì bỏ giá max cũ
	old := &dto.SearchFilters{PriceTo: floatPtr(100)}
	merged := MergeFilters(old, &dto.SearchFilters{PriceFrom: floatPtr(200)})

	require.NotNil(t, merged.PriceFrom)
	assert.Equal(t, 200.0, *merged.PriceFrom)
	assert.Nil(t, merged.PriceTo)
}
