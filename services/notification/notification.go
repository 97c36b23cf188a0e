package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// ReviewMessageBuilder dựng thông báo cho bên được đánh giá khi review được duyệt
type ReviewMessageBuilder struct {
	hostID uint
	rating int
}

func NewReviewMessageBuilder(hostID uint, rating int) *ReviewMessageBuilder {
	return &ReviewMessageBuilder{
		hostID: hostID,
		rating: rating,
	}
}

func (b *ReviewMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Bạn vừa nhận một đánh giá %d sao.", b.rating)
}

// RevenueMessageBuilder dựng thông báo doanh thu ngày cho chủ nhà
type RevenueMessageBuilder struct {
	hostID  uint
	revenue float64
}

func NewRevenueMessageBuilder(hostID uint, revenue float64) *RevenueMessageBuilder {
	return &RevenueMessageBuilder{
		hostID:  hostID,
		revenue: revenue,
	}
}

func (b *RevenueMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Chủ nhà %d có doanh thu %.2f trong ngày.", b.hostID, b.revenue)
}
