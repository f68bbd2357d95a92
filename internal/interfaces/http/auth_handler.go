package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/temucosoft/retail-api/internal/application/auth"
	"github.com/temucosoft/retail-api/internal/application/dto"
	"github.com/temucosoft/retail-api/internal/application/usecase"
)

// AuthHandler endpoints públicos de registro y login.
type AuthHandler struct {
	authUC *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(authUC *auth.AuthUseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC, userUC: userUC}
}

// Register registra un cliente final de un tenant.
// @Summary Registrar usuario
// @Description Registro público. El rol siempre queda en cliente_final.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	user, err := h.authUC.RegisterUser(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login autentica y emite el JWT.
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	resp, err := h.authUC.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Me devuelve el usuario autenticado.
// @Summary Usuario actual
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security Bearer
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.userUC.GetByID(GetTenantID(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
