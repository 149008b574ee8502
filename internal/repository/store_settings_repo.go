package repository

import (
	"context"
	"errors"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"

	"gorm.io/gorm"
)

// StoreSettingsRepository manages the singleton settings row.
type StoreSettingsRepository interface {
	// Get returns the settings row, creating defaults on first access.
	Get(ctx context.Context) (*model.StoreSettings, error)
	Save(ctx context.Context, s *model.StoreSettings) error
}

type storeSettingsRepo struct {
	db       *gorm.DB
	defaults func() *model.StoreSettings
}

// NewStoreSettingsRepository builds the repository; defaults provides the
// row created on first access.
func NewStoreSettingsRepository(db *gorm.DB, defaults func() *model.StoreSettings) StoreSettingsRepository {
	return &storeSettingsRepo{db: db, defaults: defaults}
}

func (r *storeSettingsRepo) Get(ctx context.Context) (*model.StoreSettings, error) {
	var s model.StoreSettings
	err := r.db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := r.defaults()
		if createErr := r.db.WithContext(ctx).Create(fresh).Error; createErr != nil {
			return nil, createErr
		}
		return fresh, nil
	}
	return &s, err
}

func (r *storeSettingsRepo) Save(ctx context.Context, s *model.StoreSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
