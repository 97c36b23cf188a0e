package models

import (
	"time"
)

// User là bản ghi danh tính do hệ thống auth bên ngoài quản lý.
// Core chỉ dùng ID và Role.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"default:New User" json:"name"`
	Email     string    `gorm:"unique" json:"email"`
	Avatar    string    `json:"avatar"`
	Role      int       `gorm:"default:0" json:"role"`
}
