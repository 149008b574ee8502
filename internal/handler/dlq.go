package handler

import (
	"net/http"
	"strconv"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// DLQHandler exposes the render dead letter queue to the admin: inspect how
// many jobs are parked and push them back onto the work queue after the
// underlying cause (unwritable storage dir, deleted nota row) is fixed.
type DLQHandler struct{ rdb *redis.Client }

func NewDLQHandler(rdb *redis.Client) *DLQHandler { return &DLQHandler{rdb: rdb} }

// Status godoc
// @Summary Jumlah job PDF yang gagal
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/dlq [get]
func (h *DLQHandler) Status(c *gin.Context) {
	n, err := worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueNotaPDF)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal membaca antrean"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"queue": worker.QueueNotaPDF, "parked": n})
}

// Requeue godoc
// @Summary Jalankan ulang job PDF yang gagal
// @Tags admin
// @Produce json
// @Param max query int false "Batas jumlah job (0 = semua)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/admin/dlq/requeue [post]
func (h *DLQHandler) Requeue(c *gin.Context) {
	max := 0
	if raw := c.Query("max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, apierror.New("Parameter max harus berupa angka positif"))
			return
		}
		max = v
	}

	moved, err := worker.RequeueFromDLQ(c.Request.Context(), h.rdb, worker.QueueNotaPDF, max)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memindahkan job dari antrean"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"requeued": moved})
}
