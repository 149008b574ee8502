package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoldPrice is the live buy/sell price for one gold code ("+6", "X", "XX").
// Order controls display rank on the public price board.
type GoldPrice struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string          `gorm:"uniqueIndex;not null"`
	BuyPrice  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	SellPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Order     int             `gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
