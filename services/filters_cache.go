package services

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/dto"

	"github.com/redis/go-redis/v9"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// Merge yêu cầu cũ với yêu cầu mới
func MergeFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	new.Name = orString(new.Name, old.Name)
	new.Location = orString(new.Location, old.Location)
	new.Type = orString(new.Type, old.Type)
	new.Guests = orIntPointer(new.Guests, old.Guests)
	new.FromDate = orTimePointer(new.FromDate, old.FromDate)
	new.ToDate = orTimePointer(new.ToDate, old.ToDate)

	// Gộp BenefitIDs
	new.BenefitIDs = mergeUniqueInts(old.BenefitIDs, new.BenefitIDs)

	// Xử lý case người dùng nhập lại PriceFrom và PriceTo
	if new.PriceFrom != nil && old.PriceTo != nil && *new.PriceFrom > *old.PriceTo {
		new.PriceTo = nil
	} else {
		new.PriceTo = orFloatPointer(new.PriceTo, old.PriceTo)
	}

	if new.PriceTo != nil && old.PriceFrom != nil && *new.PriceTo < *old.PriceFrom {
		new.PriceFrom = nil
	} else {
		new.PriceFrom = orFloatPointer(new.PriceFrom, old.PriceFrom)
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func mergeUniqueInts(a, b []int) []int {
	seen := make(map[int]bool)
	var result []int

	for _, val := range a {
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	for _, val := range b {
		if !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}
