package repository

import (
	"context"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"

	"gorm.io/gorm"
)

// Hard cap on history reads regardless of the caller-supplied limit.
const maxHistoryLimit = 100

// GoldPriceHistoryRepository reads and appends the price audit trail.
// The table is append-only: there is deliberately no update or delete.
type GoldPriceHistoryRepository interface {
	CreateTx(tx *gorm.DB, h *model.GoldPriceHistory) error
	List(ctx context.Context, limit int) ([]model.GoldPriceHistory, error)
}

type goldPriceHistoryRepo struct{ db *gorm.DB }

func NewGoldPriceHistoryRepository(db *gorm.DB) GoldPriceHistoryRepository {
	return &goldPriceHistoryRepo{db: db}
}

// CreateTx appends one change record inside the same transaction that
// updates the live price, so the record can never be dropped or doubled.
func (r *goldPriceHistoryRepo) CreateTx(tx *gorm.DB, h *model.GoldPriceHistory) error {
	return tx.Create(h).Error
}

// List returns records newest-first, capped at maxHistoryLimit.
func (r *goldPriceHistoryRepo) List(ctx context.Context, limit int) ([]model.GoldPriceHistory, error) {
	if limit < 1 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	var rows []model.GoldPriceHistory
	err := r.db.WithContext(ctx).
		Order("change_date DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
