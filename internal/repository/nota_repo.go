package repository

import (
	"context"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotaRepository persists immutable nota documents. There is no update or
// delete method: corrections are issued as a new nota. SetPDFPath is the
// single exception — it fills metadata produced after creation by the PDF
// worker and never touches the priced content.
type NotaRepository interface {
	Create(ctx context.Context, n *model.Nota) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Nota, error)
	List(ctx context.Context, filter dto.NotaFilter) ([]model.Nota, int64, error)
	SetPDFPath(ctx context.Context, id uuid.UUID, path string) error
}

type notaRepo struct{ db *gorm.DB }

func NewNotaRepository(db *gorm.DB) NotaRepository { return &notaRepo{db: db} }

func (r *notaRepo) Create(ctx context.Context, n *model.Nota) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Nota, error) {
	var n model.Nota
	err := r.db.WithContext(ctx).Preload("Items").First(&n, "id = ?", id).Error
	return &n, err
}

func (r *notaRepo) List(ctx context.Context, filter dto.NotaFilter) ([]model.Nota, int64, error) {
	var notas []model.Nota
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Nota{})
	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.TanggalDari != "" {
		from, err := time.Parse("2006-01-02", filter.TanggalDari)
		if err != nil {
			return nil, 0, err
		}
		q = q.Where("tanggal >= ?", from)
	}
	if filter.TanggalSampai != "" {
		until, err := time.Parse("2006-01-02", filter.TanggalSampai)
		if err != nil {
			return nil, 0, err
		}
		// Inclusive upper bound on the whole day.
		q = q.Where("tanggal < ?", until.AddDate(0, 0, 1))
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&notas).Error
	return notas, total, err
}

func (r *notaRepo) SetPDFPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Nota{}).
		Where("id = ?", id).
		Update("pdf_path", path).Error
}
