package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Nota is a retail invoice. Once created it is immutable: there are no
// update or delete paths anywhere — corrections are issued as a new nota.
// Nama/Alamat and every item's NamaBarang/Kadar/ModelKode are copies frozen
// at creation time, so later catalog or customer edits never rewrite history.
type Nota struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tanggal    time.Time `gorm:"not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Nama       string    `gorm:"not null"`
	Alamat     string    `gorm:"not null"`

	Items []NotaItem `gorm:"foreignKey:NotaID;constraint:OnDelete:CASCADE"`

	// TotalAmount is the exact sum of every item's Jumlah, in whole rupiah.
	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Terbilang   string          `gorm:"not null"`

	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	// PDFPath is filled asynchronously by the PDF worker with the full
	// path of the rendered file under PDF_STORAGE_PATH.
	PDFPath   *string `gorm:"column:pdf_path"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}

// NotaItem is one priced line. Jumlah = Biji × Berat × HargaPerGram,
// rounded to whole rupiah.
type NotaItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NotaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`

	// Frozen product attributes at time of sale.
	NamaBarang string `gorm:"not null"`
	Kadar      string `gorm:"not null"`
	ModelKode  string `gorm:"not null"`

	Biji int `gorm:"not null"`
	// Berat is the manually measured weight in grams from the counter scale.
	Berat        decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	HargaPerGram decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Jumlah       decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Photo        *string

	Product *Product `gorm:"foreignKey:ProductID"`
}
