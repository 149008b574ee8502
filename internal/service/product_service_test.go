package service_test

import (
	"context"
	"testing"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRoundtripsImages(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "Kalung Rantai",
		Description: "Kalung emas rantai klasik",
		Category:    "kalung",
		Code:        "XX",
		KadarK:      "16K",
		Images: []dto.ProductImage{
			{URL: "https://cdn.example.com/kalung-1.jpg", Alt: "tampak depan"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "https://cdn.example.com/kalung-1.jpg", resp.Images[0].URL)
	assert.True(t, resp.IsAvailable)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, resp.Images, got.Images)
}

func TestUpdateProductPartial(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "Cincin Polos",
		Description: "Cincin emas polos",
		Category:    "cincin",
		Code:        "X",
	})
	require.NoError(t, err)
	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	kadar := "8K"
	updated, err := svc.Update(context.Background(), id, dto.UpdateProductRequest{KadarK: &kadar})
	require.NoError(t, err)

	assert.Equal(t, "8K", updated.KadarK)
	assert.Equal(t, "Cincin Polos", updated.Name)
	assert.Equal(t, "X", updated.Code)
}

func TestDeactivateProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := service.NewProductService(repo)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "Gelang Rantai",
		Description: "Gelang emas",
		Category:    "gelang",
		Code:        "+6",
	})
	require.NoError(t, err)
	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), id))
	assert.False(t, repo.products[id].IsAvailable)

	assert.ErrorIs(t, svc.Deactivate(context.Background(), uuid.New()), service.ErrNotFound)
}
