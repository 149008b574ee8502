package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Change classifications. The comparison is average-based: a change is
// "naik" when (buy+sell)/2 rose, even if one of the two fell.
const (
	ChangeNaik  = "naik"
	ChangeTurun = "turun"
	ChangeTetap = "tetap"
)

// GoldPriceHistory records one price change for a gold code.
// Rows are immutable — never updated or deleted. This is the audit trail.
type GoldPriceHistory struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code              string          `gorm:"not null;index:idx_history_code_date,priority:1"`
	PreviousBuyPrice  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PreviousSellPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	NewBuyPrice       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	NewSellPrice      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ChangeType        string          `gorm:"type:varchar(10);not null"`
	ChangeDate        time.Time       `gorm:"not null;index:idx_history_code_date,priority:2,sort:desc"`
	CreatedAt         time.Time
}
