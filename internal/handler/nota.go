package handler

import (
	"net/http"
	"os"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/middleware"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotaHandler struct{ svc service.NotaService }

func NewNotaHandler(svc service.NotaService) *NotaHandler { return &NotaHandler{svc: svc} }

// Create godoc
// @Summary Buat nota penjualan baru
// @Tags nota
// @Accept json
// @Produce json
// @Param body body dto.CreateNotaRequest true "Data nota"
// @Success 201 {object} dto.NotaResponse
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/nota [post]
func (h *NotaHandler) Create(c *gin.Context) {
	var req dto.CreateNotaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var createdBy *uuid.UUID
	if claims := middleware.GetClaims(c); claims != nil {
		if id, err := uuid.Parse(claims.UserID); err == nil {
			createdBy = &id
		}
	}

	resp, err := h.svc.Create(c.Request.Context(), createdBy, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Daftar nota dengan paginasi
// @Tags nota
// @Produce json
// @Param customer_id query string false "Filter per pelanggan"
// @Param tanggal_dari query string false "Tanggal awal (YYYY-MM-DD)"
// @Param tanggal_sampai query string false "Tanggal akhir (YYYY-MM-DD)"
// @Param page query int false "Halaman"
// @Param limit query int false "Jumlah per halaman"
// @Success 200 {object} dto.NotaListResponse
// @Security BearerAuth
// @Router /api/nota [get]
func (h *NotaHandler) List(c *gin.Context) {
	var filter dto.NotaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat daftar nota"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Detail nota
// @Tags nota
// @Produce json
// @Param id path string true "ID nota"
// @Success 200 {object} dto.NotaResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/nota/{id} [get]
func (h *NotaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}

	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF godoc
// @Summary Unduh PDF nota
// @Tags nota
// @Produce application/pdf
// @Param id path string true "ID nota"
// @Success 200 {file} file
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/nota/{id}/pdf [get]
func (h *NotaHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}

	path, err := h.svc.PDFPath(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// The path comes from the DB; if the file vanished from disk the worker
	// has to regenerate it.
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("PDF belum tersedia, coba lagi sebentar lagi"))
		return
	}

	c.FileAttachment(path, "nota_"+id.String()+".pdf")
}
