package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/knowledgebase-api/internal/application/auth"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "email y password son requeridos"))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("USER_NOT_FOUND", "usuario no encontrado"))
		case domain.ErrInvalidPassword:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_PASSWORD", "contraseña inválida"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error del servidor"))
		}
	}
	return c.JSON(out)
}
