package http

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para empresas (solo SUPER_ADMIN en mutaciones).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta empresa(s) con su COMPANY_ADMIN
// @Description  Acepta un objeto (alta simple, 201) o un array (alta masiva, 207 con partición created/failed)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa y su admin"
// @Success      201   {object}  dto.Response
// @Success      207   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/company [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())

	// Un array dispara el modo masivo: cada elemento en su propia transacción.
	if len(body) > 0 && body[0] == '[' {
		var items []dto.CreateCompanyRequest
		if err := json.Unmarshal(body, &items); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
		}
		if len(items) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "el cuerpo debe ser un array no vacío"))
		}
		result := h.uc.CreateBulk(c.Context(), GetUserID(c), items)
		return c.Status(fiber.StatusMultiStatus).JSON(dto.OK("alta masiva procesada", result))
	}

	var in dto.CreateCompanyRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "name, email y password son requeridos"))
		case domain.ErrEmailOrPhoneTaken:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("DUPLICATE", "el email o teléfono ya está registrado"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo crear la empresa"))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("empresa creada exitosamente", out))
}

// Update godoc
// @Summary      Actualizar empresa y/o su admin (transaccional)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body       body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/company/{companyId} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), companyID, in)
	if err != nil {
		switch err {
		case domain.ErrCompanyNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "empresa no encontrada"))
		case domain.ErrEmailOrPhoneTaken:
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("DUPLICATE", "el email o teléfono ya lo usa otro usuario"))
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.Err("CONFLICT", "el email o teléfono debe ser único"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo actualizar la empresa"))
		}
	}
	return c.JSON(dto.OK("empresa actualizada exitosamente", out))
}

// Delete godoc
// @Summary      Baja lógica de empresa (is_active=false)
// @Tags         companies
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{companyId} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	out, err := h.uc.Delete(companyID)
	if err != nil {
		if err == domain.ErrCompanyNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "empresa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo eliminar la empresa"))
	}
	return c.JSON(dto.OK("empresa desactivada exitosamente", out))
}

// List godoc
// @Summary      Listar empresas con admin y super admin resueltos
// @Tags         companies
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudieron obtener las empresas"))
	}
	if len(out) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "no hay empresas registradas"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener empresa por ID con admin y super admin resueltos
// @Tags         companies
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/{companyId} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "companyId es requerido"))
	}
	out, err := h.uc.GetByID(companyID)
	if err != nil {
		if err == domain.ErrCompanyNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "empresa no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo obtener la empresa"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}
