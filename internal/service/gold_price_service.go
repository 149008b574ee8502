package service

import (
	"context"
	"errors"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoldPriceService is the price ledger: live buy/sell prices per gold code
// plus an append-only change history written alongside every effective
// price change.
type GoldPriceService interface {
	Create(ctx context.Context, req dto.CreateGoldPriceRequest) (*dto.GoldPriceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGoldPriceRequest) (*dto.GoldPriceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]dto.GoldPriceResponse, error)
	History(ctx context.Context, limit int) ([]dto.GoldPriceHistoryResponse, error)
}

type goldPriceService struct {
	repo    repository.GoldPriceRepository
	history repository.GoldPriceHistoryRepository
	now     func() time.Time
}

func NewGoldPriceService(repo repository.GoldPriceRepository, history repository.GoldPriceHistoryRepository) GoldPriceService {
	return &goldPriceService{repo: repo, history: history, now: time.Now}
}

func (s *goldPriceService) Create(ctx context.Context, req dto.CreateGoldPriceRequest) (*dto.GoldPriceResponse, error) {
	if req.BuyPrice.IsNegative() || req.SellPrice.IsNegative() {
		return nil, newValidation("harga beli dan harga jual tidak boleh negatif")
	}

	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.GoldPrice{
		Code:      req.Code,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		Order:     req.Order,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return goldPriceToResponse(p), nil
}

// Update applies a partial update as one read-prev → classify →
// write-current-and-maybe-history step. The whole step runs in a single
// transaction with the row locked, so two concurrent updates to the same
// code serialize: each classifies against a fresh prev and appends its own
// history record.
func (s *goldPriceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGoldPriceRequest) (*dto.GoldPriceResponse, error) {
	if req.BuyPrice != nil && req.BuyPrice.IsNegative() {
		return nil, newValidation("harga beli tidak boleh negatif")
	}
	if req.SellPrice != nil && req.SellPrice.IsNegative() {
		return nil, newValidation("harga jual tidak boleh negatif")
	}

	// Uniqueness pre-check outside the transaction; the DB unique index
	// backs it up against races.
	if req.Code != nil {
		if _, err := s.repo.FindByCodeExcluding(ctx, *req.Code, id); err == nil {
			return nil, ErrDuplicateCode
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var updated *model.GoldPrice
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		prev, err := s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		prevBuy, prevSell := prev.BuyPrice, prev.SellPrice

		entry := *prev
		if req.Code != nil {
			entry.Code = *req.Code
		}
		if req.BuyPrice != nil {
			entry.BuyPrice = *req.BuyPrice
		}
		if req.SellPrice != nil {
			entry.SellPrice = *req.SellPrice
		}
		if req.Order != nil {
			entry.Order = *req.Order
		}

		if err := s.repo.SaveTx(tx, &entry); err != nil {
			return err
		}

		// A "tetap" classification (e.g. only order changed, or buy and
		// sell moved by offsetting amounts) writes no history record.
		changeType := ClassifyChange(prevBuy, prevSell, entry.BuyPrice, entry.SellPrice)
		if changeType != model.ChangeTetap {
			record := &model.GoldPriceHistory{
				Code:              entry.Code,
				PreviousBuyPrice:  prevBuy,
				PreviousSellPrice: prevSell,
				NewBuyPrice:       entry.BuyPrice,
				NewSellPrice:      entry.SellPrice,
				ChangeType:        changeType,
				ChangeDate:        s.now(),
			}
			if err := s.history.CreateTx(tx, record); err != nil {
				return err
			}
		}

		updated = &entry
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return goldPriceToResponse(updated), nil
}

func (s *goldPriceService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *goldPriceService) List(ctx context.Context) ([]dto.GoldPriceResponse, error) {
	prices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GoldPriceResponse, len(prices))
	for i := range prices {
		resp[i] = *goldPriceToResponse(&prices[i])
	}
	return resp, nil
}

func (s *goldPriceService) History(ctx context.Context, limit int) ([]dto.GoldPriceHistoryResponse, error) {
	rows, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.GoldPriceHistoryResponse, len(rows))
	for i, h := range rows {
		resp[i] = dto.GoldPriceHistoryResponse{
			ID:                h.ID.String(),
			Code:              h.Code,
			PreviousBuyPrice:  h.PreviousBuyPrice,
			PreviousSellPrice: h.PreviousSellPrice,
			NewBuyPrice:       h.NewBuyPrice,
			NewSellPrice:      h.NewSellPrice,
			ChangeType:        h.ChangeType,
			ChangeDate:        h.ChangeDate.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

// ClassifyChange compares the buy/sell average before and after: naik when
// the average rose, turun when it fell, tetap otherwise. The average-based
// rule keeps classification unambiguous when buy rises but sell falls.
func ClassifyChange(prevBuy, prevSell, newBuy, newSell decimal.Decimal) string {
	two := decimal.NewFromInt(2)
	prevAvg := prevBuy.Add(prevSell).Div(two)
	newAvg := newBuy.Add(newSell).Div(two)
	switch newAvg.Cmp(prevAvg) {
	case 1:
		return model.ChangeNaik
	case -1:
		return model.ChangeTurun
	default:
		return model.ChangeTetap
	}
}

func goldPriceToResponse(p *model.GoldPrice) *dto.GoldPriceResponse {
	return &dto.GoldPriceResponse{
		ID:        p.ID.String(),
		Code:      p.Code,
		BuyPrice:  p.BuyPrice,
		SellPrice: p.SellPrice,
		Order:     p.Order,
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
