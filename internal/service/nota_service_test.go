package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/model"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubNotaRepo struct {
	notas map[uuid.UUID]*model.Nota
}

func newStubNotaRepo() *stubNotaRepo {
	return &stubNotaRepo{notas: make(map[uuid.UUID]*model.Nota)}
}

func (r *stubNotaRepo) Create(_ context.Context, n *model.Nota) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notas[n.ID] = n
	return nil
}

func (r *stubNotaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Nota, error) {
	n, ok := r.notas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (r *stubNotaRepo) List(_ context.Context, filter dto.NotaFilter) ([]model.Nota, int64, error) {
	var out []model.Nota
	for _, n := range r.notas {
		if filter.CustomerID != "" && n.CustomerID.String() != filter.CustomerID {
			continue
		}
		if filter.TanggalDari != "" {
			from, err := time.Parse("2006-01-02", filter.TanggalDari)
			if err != nil {
				return nil, 0, err
			}
			if n.Tanggal.Before(from) {
				continue
			}
		}
		if filter.TanggalSampai != "" {
			until, err := time.Parse("2006-01-02", filter.TanggalSampai)
			if err != nil {
				return nil, 0, err
			}
			if !n.Tanggal.Before(until.AddDate(0, 0, 1)) {
				continue
			}
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (r *stubNotaRepo) SetPDFPath(_ context.Context, id uuid.UUID, path string) error {
	n, ok := r.notas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.PDFPath = &path
	return nil
}

var _ repository.NotaRepository = (*stubNotaRepo)(nil)

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) FindByNIK(_ context.Context, nik string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.NIK != nil && *c.NIK == nik {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCustomerRepo) Search(_ context.Context, _ string, _ int) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsAvailable = available
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Fixture ───────────────────────────────────────────────────────────────────

type notaFixture struct {
	svc        service.NotaService
	notaRepo   *stubNotaRepo
	customerID uuid.UUID
	productID  uuid.UUID
}

// buildNotaFixture wires the nota service with one customer, one product
// (code "X", kadar "8K") and a ledger sell price of 700000 for "X".
func buildNotaFixture(t *testing.T) *notaFixture {
	t.Helper()

	notaRepo := newStubNotaRepo()
	customerRepo := newStubCustomerRepo()
	productRepo := newStubProductRepo()
	priceRepo := newStubGoldPriceRepo()

	customer := &model.Customer{Nama: "Budi Santoso", Alamat: "Jl. Merdeka 1, Sidoarjo"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	product := &model.Product{
		Name:     "Cincin Polos",
		Category: "cincin",
		Code:     "X",
		KadarK:   "8K",
	}
	require.NoError(t, productRepo.Create(context.Background(), product))

	require.NoError(t, priceRepo.Create(context.Background(), &model.GoldPrice{
		Code:      "X",
		BuyPrice:  decimal.NewFromInt(760000),
		SellPrice: decimal.NewFromInt(700000),
	}))

	svc := service.NewNotaService(notaRepo, customerRepo, productRepo, priceRepo, nil)
	return &notaFixture{
		svc:        svc,
		notaRepo:   notaRepo,
		customerID: customer.ID,
		productID:  product.ID,
	}
}

func (f *notaFixture) request(items ...dto.NotaItemRequest) dto.CreateNotaRequest {
	return dto.CreateNotaRequest{
		Tanggal:    "2025-06-14",
		CustomerID: f.customerID.String(),
		Items:      items,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateNotaComputesLineAndTotal(t *testing.T) {
	f := buildNotaFixture(t)

	berat := decimal.RequireFromString("3.5")
	resp, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID: f.productID.String(),
		Biji:      2,
		Berat:     berat,
	}))
	require.NoError(t, err)

	// 2 × 3.5 g × 700000/g = 4_900_000
	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.True(t, item.Jumlah.Equal(decimal.NewFromInt(4900000)), "jumlah = %s", item.Jumlah)
	assert.True(t, item.HargaPerGram.Equal(decimal.NewFromInt(700000)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(4900000)))
	assert.Equal(t, "empat juta sembilan ratus ribu rupiah", resp.Terbilang)
}

func TestCreateNotaFreezesAttributes(t *testing.T) {
	f := buildNotaFixture(t)

	resp, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID: f.productID.String(),
		Berat:     decimal.NewFromInt(1),
	}))
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", resp.Nama)
	assert.Equal(t, "Jl. Merdeka 1, Sidoarjo", resp.Alamat)
	assert.Equal(t, "Cincin Polos", resp.Items[0].NamaBarang)
	assert.Equal(t, "8K", resp.Items[0].Kadar)
	assert.Equal(t, "X", resp.Items[0].ModelKode)
}

func TestCreateNotaBijiDefaultsToOne(t *testing.T) {
	f := buildNotaFixture(t)

	resp, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID: f.productID.String(),
		Berat:     decimal.NewFromInt(2),
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Items[0].Biji)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(1400000)))
}

func TestCreateNotaManualPriceWins(t *testing.T) {
	f := buildNotaFixture(t)

	manual := decimal.NewFromInt(750000)
	resp, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID:    f.productID.String(),
		Berat:        decimal.NewFromInt(1),
		HargaPerGram: &manual,
	}))
	require.NoError(t, err)

	assert.True(t, resp.Items[0].HargaPerGram.Equal(manual))
	assert.True(t, resp.TotalAmount.Equal(manual))
}

func TestCreateNotaRoundsLineToWholeRupiah(t *testing.T) {
	f := buildNotaFixture(t)

	// 1.111 g × 700000 = 777_700 exactly; 1.115 g × 700000 = 780_500.
	// Use a weight that forces a fractional product: 0.333 g × 700000 = 233_100.
	// And a manual price with cents: 0.5 g × 333333 = 166_666.5 → 166_667.
	manual := decimal.NewFromInt(333333)
	resp, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID:    f.productID.String(),
		Berat:        decimal.RequireFromString("0.5"),
		HargaPerGram: &manual,
	}))
	require.NoError(t, err)

	assert.True(t, resp.Items[0].Jumlah.Equal(decimal.NewFromInt(166667)), "jumlah = %s", resp.Items[0].Jumlah)
}

func TestCreateNotaTotalSumsAllLines(t *testing.T) {
	f := buildNotaFixture(t)

	resp, err := f.svc.Create(context.Background(), nil, f.request(
		dto.NotaItemRequest{ProductID: f.productID.String(), Berat: decimal.NewFromInt(1)},
		dto.NotaItemRequest{ProductID: f.productID.String(), Biji: 3, Berat: decimal.NewFromInt(2)},
	))
	require.NoError(t, err)

	// 700000 + 3×2×700000 = 4_900_000
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(4900000)))
}

func TestCreateNotaBlankKadarRejectsWholeNota(t *testing.T) {
	notaRepo := newStubNotaRepo()
	customerRepo := newStubCustomerRepo()
	productRepo := newStubProductRepo()
	priceRepo := newStubGoldPriceRepo()

	customer := &model.Customer{Nama: "Siti", Alamat: "Jl. Raya 2"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	good := &model.Product{Name: "Cincin Polos", Category: "cincin", Code: "X", KadarK: "8K"}
	broken := &model.Product{Name: "Gelang Rantai", Category: "gelang", Code: "X", KadarK: "   "}
	require.NoError(t, productRepo.Create(context.Background(), good))
	require.NoError(t, productRepo.Create(context.Background(), broken))

	require.NoError(t, priceRepo.Create(context.Background(), &model.GoldPrice{
		Code: "X", BuyPrice: decimal.NewFromInt(760000), SellPrice: decimal.NewFromInt(700000),
	}))

	svc := service.NewNotaService(notaRepo, customerRepo, productRepo, priceRepo, nil)

	_, err := svc.Create(context.Background(), nil, dto.CreateNotaRequest{
		Tanggal:    "2025-06-14",
		CustomerID: customer.ID.String(),
		Items: []dto.NotaItemRequest{
			{ProductID: good.ID.String(), Berat: decimal.NewFromInt(1)},
			{ProductID: broken.ID.String(), Berat: decimal.NewFromInt(1)},
		},
	})

	var kErr *service.MissingKadarError
	require.ErrorAs(t, err, &kErr)
	assert.Equal(t, "Gelang Rantai", kErr.ProductName)
	assert.Empty(t, notaRepo.notas, "no nota may be written when any line fails")
}

func TestCreateNotaRejectsNonPositiveWeight(t *testing.T) {
	f := buildNotaFixture(t)

	_, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID: f.productID.String(),
		Berat:     decimal.Zero,
	}))
	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, f.notaRepo.notas)
}

func TestCreateNotaRejectsBadDate(t *testing.T) {
	f := buildNotaFixture(t)

	req := f.request(dto.NotaItemRequest{ProductID: f.productID.String(), Berat: decimal.NewFromInt(1)})
	req.Tanggal = "14-06-2025"
	_, err := f.svc.Create(context.Background(), nil, req)

	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateNotaUnknownCustomer(t *testing.T) {
	f := buildNotaFixture(t)

	req := f.request(dto.NotaItemRequest{ProductID: f.productID.String(), Berat: decimal.NewFromInt(1)})
	req.CustomerID = uuid.NewString()
	_, err := f.svc.Create(context.Background(), nil, req)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateNotaNoLedgerPriceForCode(t *testing.T) {
	notaRepo := newStubNotaRepo()
	customerRepo := newStubCustomerRepo()
	productRepo := newStubProductRepo()
	priceRepo := newStubGoldPriceRepo() // empty ledger

	customer := &model.Customer{Nama: "Siti", Alamat: "Jl. Raya 2"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))
	product := &model.Product{Name: "Anting Mutiara", Category: "anting", Code: "XX", KadarK: "16K"}
	require.NoError(t, productRepo.Create(context.Background(), product))

	svc := service.NewNotaService(notaRepo, customerRepo, productRepo, priceRepo, nil)

	_, err := svc.Create(context.Background(), nil, dto.CreateNotaRequest{
		Tanggal:    "2025-06-14",
		CustomerID: customer.ID.String(),
		Items: []dto.NotaItemRequest{
			{ProductID: product.ID.String(), Berat: decimal.NewFromInt(1)},
		},
	})

	var vErr *service.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPDFPathNotReadyUntilWorkerFillsIt(t *testing.T) {
	f := buildNotaFixture(t)

	resp, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID: f.productID.String(),
		Berat:     decimal.NewFromInt(1),
	}))
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	_, err = f.svc.PDFPath(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, f.notaRepo.SetPDFPath(context.Background(), id, "/tmp/nota.pdf"))
	path, err := f.svc.PDFPath(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/nota.pdf", path)
}

func TestListFiltersByCustomer(t *testing.T) {
	f := buildNotaFixture(t)

	_, err := f.svc.Create(context.Background(), nil, f.request(dto.NotaItemRequest{
		ProductID: f.productID.String(),
		Berat:     decimal.NewFromInt(1),
	}))
	require.NoError(t, err)

	resp, err := f.svc.List(context.Background(), dto.NotaFilter{CustomerID: f.customerID.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	resp, err = f.svc.List(context.Background(), dto.NotaFilter{CustomerID: uuid.NewString()})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
}

func TestListFiltersByDateRange(t *testing.T) {
	f := buildNotaFixture(t)

	for _, tanggal := range []string{"2025-06-10", "2025-06-14", "2025-06-20"} {
		_, err := f.svc.Create(context.Background(), nil, dto.CreateNotaRequest{
			Tanggal:    tanggal,
			CustomerID: f.customerID.String(),
			Items: []dto.NotaItemRequest{{
				ProductID: f.productID.String(),
				Berat:     decimal.NewFromInt(1),
			}},
		})
		require.NoError(t, err)
	}

	// Both bounds are inclusive whole days.
	resp, err := f.svc.List(context.Background(), dto.NotaFilter{
		TanggalDari:   "2025-06-14",
		TanggalSampai: "2025-06-14",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "2025-06-14", resp.Data[0].Tanggal)

	resp, err = f.svc.List(context.Background(), dto.NotaFilter{TanggalDari: "2025-06-11"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)

	resp, err = f.svc.List(context.Background(), dto.NotaFilter{TanggalSampai: "2025-06-13"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}

func TestListRejectsBadDateFilter(t *testing.T) {
	f := buildNotaFixture(t)

	_, err := f.svc.List(context.Background(), dto.NotaFilter{TanggalDari: "14-06-2025"})
	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = f.svc.List(context.Background(), dto.NotaFilter{TanggalSampai: "besok"})
	require.ErrorAs(t, err, &vErr)
}
