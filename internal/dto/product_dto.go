package dto

import "github.com/shopspring/decimal"

type ProductImage struct {
	URL string `json:"url" validate:"required"`
	Alt string `json:"alt"`
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=cincin kalung gelang anting liontin bros jam-tangan lainnya"`
	Code        string `json:"code" validate:"required,oneof=+6 X XX"`
	// KadarK may be left blank at creation, but the product cannot be
	// invoiced until it is filled in.
	KadarK      string           `json:"kadar_k"`
	Weight      *decimal.Decimal `json:"weight"`
	Images      []ProductImage   `json:"images"`
	IsAvailable *bool            `json:"is_available"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" validate:"omitempty,oneof=cincin kalung gelang anting liontin bros jam-tangan lainnya"`
	Code        *string          `json:"code" validate:"omitempty,oneof=+6 X XX"`
	KadarK      *string          `json:"kadar_k"`
	Weight      *decimal.Decimal `json:"weight"`
	Images      []ProductImage   `json:"images"`
	IsAvailable *bool            `json:"is_available"`
}

type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Code        string           `json:"code"`
	KadarK      string           `json:"kadar_k"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Images      []ProductImage   `json:"images"`
	IsAvailable bool             `json:"is_available"`
	UpdatedAt   string           `json:"updated_at"`
}

type ProductFilter struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Available string `form:"available"` // "", "true", "false", "all"
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
