package services

import (
	"time"

	"stayhub/models"
	"stayhub/services/notification"

	"github.com/olahol/melody"
)

// RevenueNotifierAdapter gắn RevenueService vào cron job thông báo cuối ngày
type RevenueNotifierAdapter struct {
	service *RevenueService
}

func NewRevenueNotifierAdapter(service *RevenueService) *RevenueNotifierAdapter {
	return &RevenueNotifierAdapter{service: service}
}

// NotifyDailyRevenue gửi thông báo doanh thu trong ngày cho từng chủ nhà
// có reservation bắt đầu hôm nay, qua bảng notification và websocket
func (a *RevenueNotifierAdapter) NotifyDailyRevenue(m *melody.Melody) error {
	revenueByHost, err := a.service.DailyHostRevenue(time.Now())
	if err != nil {
		return err
	}

	notify := notification.NewMelodyService(m)
	for hostID, revenue := range revenueByHost {
		message := notification.NewRevenueMessageBuilder(hostID, revenue).Build()

		notif := models.Notification{
			UserID:  hostID,
			Message: message,
		}
		if err := a.service.db.Create(&notif).Error; err != nil {
			return err
		}
		if err := notify.SendMessage(message); err != nil {
			return err
		}
	}
	return nil
}
