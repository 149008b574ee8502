package handler

import (
	"net/http"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Search handles the autocomplete lookup the nota entry form uses: partial
// match on nama or NIK.
func (h *CustomersHandler) Search(c *gin.Context) {
	var filter dto.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal mencari pelanggan"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
