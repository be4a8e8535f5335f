package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

// ResourceHandler maneja las peticiones HTTP para recursos de la base de conocimiento.
type ResourceHandler struct {
	uc *usecase.ResourceUseCase
}

// NewResourceHandler construye el handler inyectando el caso de uso.
func NewResourceHandler(uc *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear recurso (COMPANY_ADMIN)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "title, description, sections, categoryId|categoryName"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/resource [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), GetCompanyID(c), in)
	if err != nil {
		return resourceError(c, err, "no se pudo crear el recurso")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("recurso creado exitosamente", out))
}

// Update godoc
// @Summary      Actualizar recurso (COMPANY_ADMIN, empresa propia)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        resourceId  path  string  true  "ID del recurso"
// @Param        body        body  dto.UpdateResourceRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resource/{resourceId} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	resourceID := c.Params("resourceId")
	var in dto.UpdateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), resourceID, in)
	if err != nil {
		return resourceError(c, err, "no se pudo actualizar el recurso")
	}
	return c.JSON(dto.OK("recurso actualizado exitosamente", out))
}

// Delete godoc
// @Summary      Baja lógica de recurso (COMPANY_ADMIN, empresa propia)
// @Tags         resources
// @Produce      json
// @Param        resourceId  path  string  true  "ID del recurso"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resource/{resourceId} [delete]
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	resourceID := c.Params("resourceId")
	out, err := h.uc.Delete(GetCompanyID(c), resourceID)
	if err != nil {
		return resourceError(c, err, "no se pudo eliminar el recurso")
	}
	return c.JSON(dto.OK("recurso eliminado exitosamente", out))
}

// List godoc
// @Summary      Listar recursos
// @Description  COMPANY_ADMIN ve solo su empresa; anónimos solo recursos activos
// @Tags         resources
// @Produce      json
// @Param        search    query  string  false  "Búsqueda en título/descripción"
// @Param        isActive  query  bool    false  "Filtrar por estado (solo autenticados)"
// @Success      200  {object}  dto.Response
// @Router       /api/resource [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	f := visibilityFilter(c)
	f.Search = c.Query("search")
	out, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudieron obtener los recursos"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener recurso por ID
// @Tags         resources
// @Produce      json
// @Param        resourceId  path  string  true  "ID del recurso"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resource/{resourceId} [get]
func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	resourceID := c.Params("resourceId")
	if resourceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "resourceId es requerido"))
	}
	out, err := h.uc.GetByID(resourceID, visibilityFilter(c))
	if err != nil {
		return resourceError(c, err, "no se pudo obtener el recurso")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// ByCompany godoc
// @Summary      Listar recursos de una empresa (SUPER_ADMIN)
// @Tags         resources
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        search     query  string  false  "Búsqueda en título/descripción"
// @Param        isActive   query  bool    false  "Filtrar por estado"
// @Success      200  {object}  dto.Response
// @Router       /api/resource/company/{companyId} [get]
func (h *ResourceHandler) ByCompany(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	f := repository.ResourceFilter{CompanyID: &companyID, Search: c.Query("search")}
	f.IsActive = boolQuery(c, "isActive")
	out, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudieron obtener los recursos"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Categories godoc
// @Summary      Listar categorías de la empresa del usuario
// @Description  SUPER_ADMIN debe indicar ?companyId=
// @Tags         resources
// @Produce      json
// @Param        companyId  query  string  false  "ID de empresa (solo SUPER_ADMIN)"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/resource/categories [get]
func (h *ResourceHandler) Categories(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if GetRole(c) == entity.RoleSuperAdmin {
		companyID = c.Query("companyId")
	}
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "companyId es requerido"))
	}
	out, err := h.uc.Categories(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudieron obtener las categorías"))
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// visibilityFilter arma el filtro de lectura según el rol resuelto:
// COMPANY_ADMIN queda acotado a su empresa; los anónimos solo ven activos.
// Los autenticados pueden filtrar por isActive explícitamente.
func visibilityFilter(c *fiber.Ctx) repository.ResourceFilter {
	var f repository.ResourceFilter
	role := GetRole(c)
	if role == entity.RoleCompanyAdmin {
		companyID := GetCompanyID(c)
		f.CompanyID = &companyID
	}
	if role == "" {
		active := true
		f.IsActive = &active
		return f
	}
	f.IsActive = boolQuery(c, "isActive")
	return f
}

// boolQuery devuelve nil cuando el parámetro no viene.
func boolQuery(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}

func resourceError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "title, description y categoría son requeridos"))
	case domain.ErrCategoryNotFound:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "la categoría no existe o pertenece a otra empresa"))
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "recurso no encontrado"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", fallback))
	}
}
