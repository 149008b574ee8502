package service

import (
	"context"
	"errors"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	// Create registers a customer, typically on demand during nota entry.
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Search(ctx context.Context, filter dto.CustomerFilter) ([]dto.CustomerResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	// NIK is optional, but unique when present.
	if req.NIK != nil && *req.NIK != "" {
		if _, err := s.repo.FindByNIK(ctx, *req.NIK); err == nil {
			return nil, ErrDuplicateNIK
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	c := &model.Customer{
		Nama:        req.Nama,
		Alamat:      req.Alamat,
		TempatLahir: req.TempatLahir,
	}
	if req.NIK != nil && *req.NIK != "" {
		c.NIK = req.NIK
	}
	if req.TanggalLahir != nil && *req.TanggalLahir != "" {
		t, err := time.Parse("2006-01-02", *req.TanggalLahir)
		if err != nil {
			return nil, newValidation("tanggal_lahir %q tidak valid, gunakan format YYYY-MM-DD", *req.TanggalLahir)
		}
		c.TanggalLahir = &t
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) Search(ctx context.Context, filter dto.CustomerFilter) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.Search(ctx, filter.Search, filter.Limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = *customerToResponse(&customers[i])
	}
	return resp, nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:          c.ID.String(),
		Nama:        c.Nama,
		Alamat:      c.Alamat,
		NIK:         c.NIK,
		TempatLahir: c.TempatLahir,
	}
	if c.TanggalLahir != nil {
		v := c.TanggalLahir.Format("2006-01-02")
		resp.TanggalLahir = &v
	}
	return resp
}
