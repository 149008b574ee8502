package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/schedule"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	storeStatusCacheKey = "store:status"
	storeStatusCacheTTL = 60 * time.Second
)

// StoreSettingsHandler serves the store profile and the open/closed status
// the storefront banner polls.
type StoreSettingsHandler struct {
	svc service.StoreSettingsService
	rdb *redis.Client
}

func NewStoreSettingsHandler(svc service.StoreSettingsService, rdb *redis.Client) *StoreSettingsHandler {
	return &StoreSettingsHandler{svc: svc, rdb: rdb}
}

// Get godoc
// @Summary Profil dan jam operasional toko (tanpa autentikasi)
// @Tags store
// @Produce json
// @Success 200 {object} dto.StoreSettingsResponse
// @Router /api/store-settings [get]
func (h *StoreSettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat pengaturan toko"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Ubah pengaturan toko
// @Tags store
// @Accept json
// @Produce json
// @Param body body dto.UpdateStoreSettingsRequest true "Pengaturan"
// @Success 200 {object} dto.StoreSettingsResponse
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/store-settings [put]
func (h *StoreSettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateStoreSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	_ = h.rdb.Del(c.Request.Context(), storeStatusCacheKey).Err()
	c.JSON(http.StatusOK, resp)
}

// Status godoc
// @Summary Status buka/tutup toko saat ini (tanpa autentikasi)
// @Tags store
// @Produce json
// @Param at query string false "Momen evaluasi (RFC 3339); default sekarang"
// @Success 200 {object} schedule.Status
// @Router /api/store-settings/status [get]
func (h *StoreSettingsHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	at := time.Now()
	explicit := false
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parameter at harus dalam format RFC 3339"))
			return
		}
		at = parsed
		explicit = true
	}

	// Only the "now" answer is cacheable; explicit timestamps bypass it.
	if !explicit {
		if cached, err := h.rdb.Get(ctx, storeStatusCacheKey).Bytes(); err == nil {
			var status schedule.Status
			if jsonErr := json.Unmarshal(cached, &status); jsonErr == nil {
				c.JSON(http.StatusOK, status)
				return
			}
		}
	}

	status, err := h.svc.Status(ctx, at)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal mengevaluasi jadwal toko"))
		return
	}

	if !explicit {
		if b, jsonErr := json.Marshal(status); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), storeStatusCacheKey, b, storeStatusCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, status)
}
