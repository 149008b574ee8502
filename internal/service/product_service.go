package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	// Deactivate soft-removes a product from sale; the catalog row stays
	// because issued nota reference it.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	images, err := json.Marshal(req.Images)
	if err != nil {
		return nil, err
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Code:        req.Code,
		KadarK:      req.KadarK,
		Weight:      req.Weight,
		Images:      datatypes.JSON(images),
		IsAvailable: available,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return productToResponse(p)
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp, err := productToResponse(&products[i])
		if err != nil {
			return nil, err
		}
		data[i] = *resp
	}
	return &dto.ProductListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.KadarK != nil {
		p.KadarK = *req.KadarK
	}
	if req.Weight != nil {
		p.Weight = req.Weight
	}
	if req.Images != nil {
		images, err := json.Marshal(req.Images)
		if err != nil {
			return nil, err
		}
		p.Images = datatypes.JSON(images)
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p)
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := s.repo.SetAvailability(ctx, id, false)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func productToResponse(p *model.Product) (*dto.ProductResponse, error) {
	images := []dto.ProductImage{}
	if len(p.Images) > 0 {
		if err := json.Unmarshal(p.Images, &images); err != nil {
			return nil, err
		}
	}
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Code:        p.Code,
		KadarK:      p.KadarK,
		Weight:      p.Weight,
		Images:      images,
		IsAvailable: p.IsAvailable,
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
