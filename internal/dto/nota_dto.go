package dto

import "github.com/shopspring/decimal"

type NotaItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	// Biji defaults to 1 when omitted.
	Biji  int             `json:"biji" validate:"min=0"`
	Berat decimal.Decimal `json:"berat" validate:"required"`
	// HargaPerGram may be omitted; the ledger's sell price for the
	// product's gold code is used as the default.
	HargaPerGram *decimal.Decimal `json:"harga_per_gram"`
	Photo        *string          `json:"photo"`
}

type CreateNotaRequest struct {
	// Tanggal in "2006-01-02" form.
	Tanggal    string            `json:"tanggal" validate:"required"`
	CustomerID string            `json:"customer_id" validate:"required,uuid"`
	Items      []NotaItemRequest `json:"items" validate:"required,min=1,dive"`
}

type NotaItemResponse struct {
	ProductID    string          `json:"product_id"`
	NamaBarang   string          `json:"nama_barang"`
	Kadar        string          `json:"kadar"`
	ModelKode    string          `json:"model_kode"`
	Biji         int             `json:"biji"`
	Berat        decimal.Decimal `json:"berat"`
	HargaPerGram decimal.Decimal `json:"harga_per_gram"`
	Jumlah       decimal.Decimal `json:"jumlah"`
	Photo        *string         `json:"photo,omitempty"`
}

type NotaResponse struct {
	ID          string             `json:"id"`
	Tanggal     string             `json:"tanggal"`
	CustomerID  string             `json:"customer_id"`
	Nama        string             `json:"nama"`
	Alamat      string             `json:"alamat"`
	Items       []NotaItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Terbilang   string             `json:"terbilang"`
	CreatedAt   string             `json:"created_at"`
}

type NotaFilter struct {
	CustomerID string `form:"customer_id"`
	// TanggalDari/TanggalSampai bound the nota date, inclusive on both
	// ends, in "2006-01-02" form.
	TanggalDari   string `form:"tanggal_dari"`
	TanggalSampai string `form:"tanggal_sampai"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

type NotaListResponse struct {
	Data  []NotaResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
