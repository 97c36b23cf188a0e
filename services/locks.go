package services

import "sync"

// Mỗi accommodation là một aggregate: mọi thao tác ghi lên availability và
// reservation của cùng một chỗ ở phải tuần tự với nhau.
var accommodationLocks sync.Map

func lockAccommodation(accommodationID uint) *sync.Mutex {
	mu, _ := accommodationLocks.LoadOrStore(accommodationID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
