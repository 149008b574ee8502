package repository

import (
	"context"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	FindByNIK(ctx context.Context, nik string) (*model.Customer, error)
	Search(ctx context.Context, search string, limit int) ([]model.Customer, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *customerRepo) FindByNIK(ctx context.Context, nik string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("nik = ?", nik).First(&c).Error
	return &c, err
}

// Search matches nama or NIK, newest registrations first.
func (r *customerRepo) Search(ctx context.Context, search string, limit int) ([]model.Customer, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	q := r.db.WithContext(ctx).Model(&model.Customer{})
	if search != "" {
		q = q.Where("nama ILIKE ? OR nik ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	var customers []model.Customer
	err := q.Order("created_at DESC").Limit(limit).Find(&customers).Error
	return customers, err
}
