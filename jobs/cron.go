package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DailyRevenueNotifier định nghĩa interface cho việc thông báo doanh thu ngày
type DailyRevenueNotifier interface {
	NotifyDailyRevenue(m *melody.Melody) error
}

var dailyRevenueNotifier DailyRevenueNotifier

// SetDailyRevenueNotifier thiết lập implementation cho DailyRevenueNotifier
func SetDailyRevenueNotifier(notifier DailyRevenueNotifier) {
	dailyRevenueNotifier = notifier
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy thông báo doanh thu cho chủ nhà lúc: %v", now)
		if dailyRevenueNotifier == nil {
			log.Printf("Lỗi: DailyRevenueNotifier chưa được thiết lập")
			return
		}
		if err := dailyRevenueNotifier.NotifyDailyRevenue(m); err != nil {
			log.Printf("Lỗi khi thông báo doanh thu cho chủ nhà: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
