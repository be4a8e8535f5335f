package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
)

// ConnectHandler maneja el formulario público "let's connect".
type ConnectHandler struct {
	uc *usecase.ConnectUseCase
}

// NewConnectHandler construye el handler inyectando el caso de uso.
func NewConnectHandler(uc *usecase.ConnectUseCase) *ConnectHandler {
	return &ConnectHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar formulario lets-connect (público)
// @Tags         connect
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  false  "ID de la empresa destino"
// @Param        body       body  dto.CreateConnectRequest  true  "name, email, services; phone opcional"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/connect/{companyId} [post]
func (h *ConnectHandler) Create(c *fiber.Ctx) error {
	companyID, ok := optionalCompanyParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "companyId inválido"))
	}
	var in dto.CreateConnectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "name, email y al menos un servicio son requeridos"))
		case domain.ErrDuplicateContact:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("DUPLICATE", "ya existe un registro con ese email o teléfono para esta empresa"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo registrar el envío"))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("registro enviado exitosamente", out))
}

// List godoc
// @Summary      Listar envíos lets-connect
// @Tags         connect
// @Produce      json
// @Param        companyId  path  string  false  "Filtrar por empresa"
// @Success      200  {object}  dto.ConnectListResponse
// @Router       /api/connect/{companyId} [get]
func (h *ConnectHandler) List(c *fiber.Ctx) error {
	// Un companyId inválido se ignora y se listan todos, como en la API original.
	companyID, ok := optionalCompanyParam(c)
	if !ok {
		companyID = nil
	}
	out, err := h.uc.List(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudieron obtener los envíos"))
	}
	return c.JSON(dto.ConnectListResponse{Success: true, Count: len(out), Data: out})
}

// optionalCompanyParam devuelve el companyId del path si viene y es un UUID válido.
// ok=false indica un valor presente pero inválido.
func optionalCompanyParam(c *fiber.Ctx) (*string, bool) {
	raw := c.Params("companyId")
	if raw == "" {
		return nil, true
	}
	if _, err := uuid.Parse(raw); err != nil {
		return nil, false
	}
	return &raw, true
}
