package repository

import (
	"context"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GoldPriceRepository defines the data access contract for the price ledger.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type GoldPriceRepository interface {
	Create(ctx context.Context, p *model.GoldPrice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GoldPrice, error)
	FindByCode(ctx context.Context, code string) (*model.GoldPrice, error)
	// FindByCodeExcluding looks up a code owned by any entry other than id —
	// the uniqueness pre-check for updates.
	FindByCodeExcluding(ctx context.Context, code string, id uuid.UUID) (*model.GoldPrice, error)
	List(ctx context.Context) ([]model.GoldPrice, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForUpdateTx row-locks the entry inside the caller's transaction
	// so concurrent updates to the same code serialize and each classifies
	// against a fresh prev value.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.GoldPrice, error)
	SaveTx(tx *gorm.DB, p *model.GoldPrice) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type goldPriceRepo struct{ db *gorm.DB }

func NewGoldPriceRepository(db *gorm.DB) GoldPriceRepository { return &goldPriceRepo{db: db} }

func (r *goldPriceRepo) Create(ctx context.Context, p *model.GoldPrice) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *goldPriceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.GoldPrice, error) {
	var p model.GoldPrice
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *goldPriceRepo) FindByCode(ctx context.Context, code string) (*model.GoldPrice, error) {
	var p model.GoldPrice
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error
	return &p, err
}

func (r *goldPriceRepo) FindByCodeExcluding(ctx context.Context, code string, id uuid.UUID) (*model.GoldPrice, error) {
	var p model.GoldPrice
	err := r.db.WithContext(ctx).Where("code = ? AND id <> ?", code, id).First(&p).Error
	return &p, err
}

func (r *goldPriceRepo) List(ctx context.Context) ([]model.GoldPrice, error) {
	var prices []model.GoldPrice
	err := r.db.WithContext(ctx).Order("display_order ASC, created_at ASC").Find(&prices).Error
	return prices, err
}

func (r *goldPriceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.GoldPrice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *goldPriceRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.GoldPrice, error) {
	var p model.GoldPrice
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *goldPriceRepo) SaveTx(tx *gorm.DB, p *model.GoldPrice) error {
	return tx.Save(p).Error
}

func (r *goldPriceRepo) DB() *gorm.DB { return r.db }
