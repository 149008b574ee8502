package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoreSettings is the store configuration aggregate. Exactly one row
// exists (singleton); each save overwrites the prior state wholesale —
// the schedule keeps no version history.
type StoreSettings struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreName   string    `gorm:"not null;default:'Toko Emasku'"`
	Description string
	Vision      string
	Mission     datatypes.JSON `gorm:"type:jsonb"`

	// OperatingHours holds the weekly schedule (schedule.Weekly) as JSON:
	// 7 lowercase day keys, each an ordered list of {open, close} sessions.
	OperatingHours datatypes.JSON `gorm:"type:jsonb;not null"`

	Address  string
	Phone    string
	Email    string
	WhatsApp string `gorm:"column:whatsapp"`

	Instagram string
	Facebook  string
	TikTok    string `gorm:"column:tiktok"`
	YouTube   string `gorm:"column:youtube"`

	// AutoSchedule drives the public open/closed badge from OperatingHours.
	AutoSchedule bool   `gorm:"not null;default:true"`
	Currency     string `gorm:"not null;default:'IDR'"`
	Timezone     string `gorm:"not null;default:'Asia/Jakarta'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
