package dto

// UserInfo thông tin rút gọn của user trong các response
type UserInfo struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
