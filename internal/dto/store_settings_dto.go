package dto

import "github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/schedule"

// UpdateStoreSettingsRequest replaces the settings aggregate wholesale,
// matching the admin editor's save semantics.
type UpdateStoreSettingsRequest struct {
	StoreName      string          `json:"store_name" validate:"required"`
	Description    string          `json:"description"`
	Vision         string          `json:"vision"`
	Mission        []string        `json:"mission"`
	OperatingHours schedule.Weekly `json:"operating_hours"`

	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	WhatsApp string `json:"whatsapp"`

	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
	YouTube   string `json:"youtube"`

	AutoSchedule bool   `json:"auto_schedule"`
	Timezone     string `json:"timezone"`
}

type StoreSettingsResponse struct {
	StoreName      string          `json:"store_name"`
	Description    string          `json:"description"`
	Vision         string          `json:"vision"`
	Mission        []string        `json:"mission"`
	OperatingHours schedule.Weekly `json:"operating_hours"`

	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`

	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
	YouTube   string `json:"youtube"`

	AutoSchedule bool   `json:"auto_schedule"`
	Currency     string `json:"currency"`
	Timezone     string `json:"timezone"`
	UpdatedAt    string `json:"updated_at"`
}
