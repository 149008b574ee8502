package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/terbilang"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NotaService compiles retail invoices. A nota is written exactly once and
// never mutated; all product and customer attributes it carries are frozen
// copies taken at creation time.
type NotaService interface {
	Create(ctx context.Context, createdBy *uuid.UUID, req dto.CreateNotaRequest) (*dto.NotaResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NotaResponse, error)
	List(ctx context.Context, filter dto.NotaFilter) (*dto.NotaListResponse, error)
	PDFPath(ctx context.Context, id uuid.UUID) (string, error)
}

type notaService struct {
	repo         repository.NotaRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	priceRepo    repository.GoldPriceRepository
	dispatcher   *worker.Dispatcher
}

func NewNotaService(
	repo repository.NotaRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	priceRepo repository.GoldPriceRepository,
	dispatcher *worker.Dispatcher,
) NotaService {
	return &notaService{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		priceRepo:    priceRepo,
		dispatcher:   dispatcher,
	}
}

// Create validates and prices every line before anything is written: any
// failing precondition rejects the entire nota — there are no partial
// invoices. Amounts are rounded to whole rupiah per line; the total is the
// exact sum of the rounded line amounts and is also rendered in words.
func (s *notaService) Create(ctx context.Context, createdBy *uuid.UUID, req dto.CreateNotaRequest) (*dto.NotaResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, newValidation("tanggal %q tidak valid, gunakan format YYYY-MM-DD", req.Tanggal)
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, newValidation("customer_id tidak valid")
	}
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Pre-flight: resolve products, freeze attributes, and price each line.
	items := make([]model.NotaItem, 0, len(req.Items))
	total := decimal.Zero
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, newValidation("item %d: product_id tidak valid", i+1)
		}
		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		// A blank kadar voids the whole nota, not just this line.
		kadar := strings.TrimSpace(product.KadarK)
		if kadar == "" {
			return nil, &MissingKadarError{ProductName: product.Name}
		}

		biji := item.Biji
		if biji == 0 {
			biji = 1
		}
		if biji < 1 {
			return nil, newValidation("item %d: biji minimal 1", i+1)
		}
		if !item.Berat.IsPositive() {
			return nil, newValidation("item %d: berat harus lebih dari 0", i+1)
		}

		harga, err := s.resolveHarga(ctx, item.HargaPerGram, product.Code)
		if err != nil {
			return nil, err
		}
		if !harga.IsPositive() {
			return nil, newValidation("item %d: harga per gram harus lebih dari 0", i+1)
		}

		jumlah := decimal.NewFromInt(int64(biji)).Mul(item.Berat).Mul(harga).Round(0)
		total = total.Add(jumlah)

		items = append(items, model.NotaItem{
			ProductID:    product.ID,
			NamaBarang:   product.Name,
			Kadar:        kadar,
			ModelKode:    product.Code,
			Biji:         biji,
			Berat:        item.Berat,
			HargaPerGram: harga,
			Jumlah:       jumlah,
			Photo:        item.Photo,
		})
	}

	nota := &model.Nota{
		Tanggal:     tanggal,
		CustomerID:  customer.ID,
		Nama:        customer.Nama,
		Alamat:      customer.Alamat,
		Items:       items,
		TotalAmount: total,
		Terbilang:   terbilang.FromRupiah(total),
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, nota); err != nil {
		return nil, err
	}

	// PDF rendering happens off the request path — best effort.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueNotaPDF(ctx, worker.NotaPDFPayload{NotaID: nota.ID.String()})
	}

	return notaToResponse(nota), nil
}

// resolveHarga returns the manually entered price per gram, or the ledger's
// current sell price for the product's gold code when the operator left the
// field blank.
func (s *notaService) resolveHarga(ctx context.Context, manual *decimal.Decimal, code string) (decimal.Decimal, error) {
	if manual != nil {
		return *manual, nil
	}
	entry, err := s.priceRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, newValidation("harga per gram tidak diisi dan kode emas %q tidak ada di daftar harga", code)
		}
		return decimal.Zero, err
	}
	return entry.SellPrice, nil
}

func (s *notaService) GetByID(ctx context.Context, id uuid.UUID) (*dto.NotaResponse, error) {
	nota, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return notaToResponse(nota), nil
}

func (s *notaService) List(ctx context.Context, filter dto.NotaFilter) (*dto.NotaListResponse, error) {
	for field, raw := range map[string]string{
		"tanggal_dari":   filter.TanggalDari,
		"tanggal_sampai": filter.TanggalSampai,
	} {
		if raw == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return nil, newValidation("%s %q tidak valid, gunakan format YYYY-MM-DD", field, raw)
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	notas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.NotaResponse, len(notas))
	for i := range notas {
		data[i] = *notaToResponse(&notas[i])
	}
	return &dto.NotaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// PDFPath returns the rendered PDF location, or ErrNotFound while the
// worker has not produced it yet.
func (s *notaService) PDFPath(ctx context.Context, id uuid.UUID) (string, error) {
	nota, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if nota.PDFPath == nil || *nota.PDFPath == "" {
		return "", ErrNotFound
	}
	return *nota.PDFPath, nil
}

func notaToResponse(n *model.Nota) *dto.NotaResponse {
	items := make([]dto.NotaItemResponse, len(n.Items))
	for i, item := range n.Items {
		items[i] = dto.NotaItemResponse{
			ProductID:    item.ProductID.String(),
			NamaBarang:   item.NamaBarang,
			Kadar:        item.Kadar,
			ModelKode:    item.ModelKode,
			Biji:         item.Biji,
			Berat:        item.Berat,
			HargaPerGram: item.HargaPerGram,
			Jumlah:       item.Jumlah,
			Photo:        item.Photo,
		}
	}
	return &dto.NotaResponse{
		ID:          n.ID.String(),
		Tanggal:     n.Tanggal.Format("2006-01-02"),
		CustomerID:  n.CustomerID.String(),
		Nama:        n.Nama,
		Alamat:      n.Alamat,
		Items:       items,
		TotalAmount: n.TotalAmount,
		Terbilang:   n.Terbilang,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
