package handler

import (
	"net/http"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/apierror"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/dto"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/middleware"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login pengguna
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Kredensial"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Registrasi akun baru
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Data akun"
// @Success 201 {object} dto.UserResponse
// @Failure 409 {object} apierror.APIError
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Check returns the account behind the presented token. The frontend calls
// it on page load to decide whether the stored token is still usable.
func (h *AuthHandler) Check(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autentikasi diperlukan"))
		return
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token tidak valid atau kedaluwarsa"))
		return
	}

	resp, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token tidak valid atau kedaluwarsa"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
