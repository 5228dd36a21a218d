package models

import "time"

// TelegramServiceUserID is the account Telegram uses for service notifications.
const TelegramServiceUserID int64 = 777000

type Member struct {
	ID               int       `json:"id" pg:",pk"`
	TelegramID       int64     `json:"telegram_id" pg:",notnull,unique"`
	TelegramNickname string    `json:"telegram_nickname"`
	Name             string    `json:"name" pg:",notnull"`
	IsBot            bool      `json:"is_bot" pg:",notnull,use_zero"`
	Deactivated      bool      `json:"deactivated" pg:",notnull,use_zero"`
	CreatedAt        time.Time `json:"created_at" pg:"default:now()"`
}

func (m *Member) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	if m.TelegramNickname != "" {
		return "@" + m.TelegramNickname
	}
	return ""
}
