package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a catalog item. KadarK is the purity label ("8K", "70%") and
// must be non-blank before the product can appear on a nota — the nota
// service enforces this, not just the catalog editor.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description string    `gorm:"not null"`
	// Category: cincin | kalung | gelang | anting | liontin | bros | jam-tangan | lainnya
	Category string `gorm:"not null;index"`
	// Code is the gold code used for pricing: +6 | X | XX
	Code   string `gorm:"not null;index"`
	KadarK string `gorm:"column:kadar_k"`
	// Weight in grams is informational only; nota lines use the manually
	// measured weight entered at the counter.
	Weight      *decimal.Decimal `gorm:"type:decimal(10,3)"`
	Images      datatypes.JSON   `gorm:"type:jsonb"`
	IsAvailable bool             `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
