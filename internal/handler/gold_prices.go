package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	priceBoardCacheKey = "gold_prices:board"
	priceBoardCacheTTL = 5 * time.Minute
)

// GoldPricesHandler serves the daily price board. The public list endpoint is
// the hottest path of the API (the storefront polls it), so it goes through a
// short Redis cache that every write invalidates.
type GoldPricesHandler struct {
	svc service.GoldPriceService
	rdb *redis.Client
}

func NewGoldPricesHandler(svc service.GoldPriceService, rdb *redis.Client) *GoldPricesHandler {
	return &GoldPricesHandler{svc: svc, rdb: rdb}
}

// List godoc
// @Summary Daftar harga emas hari ini (tanpa autentikasi)
// @Tags gold-prices
// @Produce json
// @Success 200 {array} dto.GoldPriceResponse
// @Router /api/gold-prices [get]
func (h *GoldPricesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.rdb.Get(ctx, priceBoardCacheKey).Bytes(); err == nil {
		var resp []dto.GoldPriceResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat daftar harga"))
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), priceBoardCacheKey, b, priceBoardCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary Riwayat perubahan harga emas
// @Tags gold-prices
// @Produce json
// @Param limit query int false "Jumlah entri (maks 100)"
// @Success 200 {array} dto.GoldPriceHistoryResponse
// @Router /api/gold-prices/history [get]
func (h *GoldPricesHandler) History(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("Parameter limit tidak valid"))
			return
		}
		limit = n
	}

	resp, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat riwayat harga"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Tambah golongan harga emas baru
// @Tags gold-prices
// @Accept json
// @Produce json
// @Param body body dto.CreateGoldPriceRequest true "Data harga"
// @Success 201 {object} dto.GoldPriceResponse
// @Failure 409 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/gold-prices [post]
func (h *GoldPricesHandler) Create(c *gin.Context) {
	var req dto.CreateGoldPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Ubah harga emas; perubahan tercatat di riwayat
// @Tags gold-prices
// @Accept json
// @Produce json
// @Param id path string true "ID golongan harga"
// @Param body body dto.UpdateGoldPriceRequest true "Perubahan"
// @Success 200 {object} dto.GoldPriceResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/gold-prices/{id} [put]
func (h *GoldPricesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}

	var req dto.UpdateGoldPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Hapus golongan harga emas
// @Tags gold-prices
// @Param id path string true "ID golongan harga"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/gold-prices/{id} [delete]
func (h *GoldPricesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	h.invalidateCache(c)
	c.Status(http.StatusNoContent)
}

func (h *GoldPricesHandler) invalidateCache(c *gin.Context) {
	_ = h.rdb.Del(c.Request.Context(), priceBoardCacheKey).Err()
}
