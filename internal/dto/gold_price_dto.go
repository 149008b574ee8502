package dto

import "github.com/shopspring/decimal"

type CreateGoldPriceRequest struct {
	Code      string          `json:"code" validate:"required"`
	BuyPrice  decimal.Decimal `json:"buy_price" validate:"min=0"`
	SellPrice decimal.Decimal `json:"sell_price" validate:"min=0"`
	Order     int             `json:"order"`
}

// UpdateGoldPriceRequest carries a partial update: nil fields keep their
// prior value. The history record freezes whatever was effective.
type UpdateGoldPriceRequest struct {
	Code      *string          `json:"code"`
	BuyPrice  *decimal.Decimal `json:"buy_price"`
	SellPrice *decimal.Decimal `json:"sell_price"`
	Order     *int             `json:"order"`
}

type GoldPriceResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Order     int             `json:"order"`
	UpdatedAt string          `json:"updated_at"`
}

type GoldPriceHistoryResponse struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	PreviousBuyPrice  decimal.Decimal `json:"previous_buy_price"`
	PreviousSellPrice decimal.Decimal `json:"previous_sell_price"`
	NewBuyPrice       decimal.Decimal `json:"new_buy_price"`
	NewSellPrice      decimal.Decimal `json:"new_sell_price"`
	ChangeType        string          `json:"change_type"`
	ChangeDate        string          `json:"change_date"`
}
