package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/knowledgebase-api/internal/application/auth"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	ResourceUC *usecase.ResourceUseCase
	ConnectUC  *usecase.ConnectUseCase
	Users      userLoader
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret, deps.Users)
	optionalAuth := OptionalAuthMiddleware(deps.JWTSecret, deps.Users)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Companies: alta y gestión solo para SUPER_ADMIN
	companies := api.Group("/company", requireAuth, RequireRole(entity.RoleSuperAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:companyId", companyHandler.GetByID)
	companies.Patch("/:companyId", companyHandler.Update)
	companies.Delete("/:companyId", companyHandler.Delete)

	// Resources: lecturas públicas (con ámbito si hay token), mutaciones de COMPANY_ADMIN.
	// Las rutas literales van antes de /:resourceId para que Fiber no las capture como parámetro.
	resources := api.Group("/resource")
	resourceHandler := NewResourceHandler(deps.ResourceUC)
	resources.Get("/categories", requireAuth, resourceHandler.Categories)
	resources.Get("/company/:companyId", requireAuth, RequireRole(entity.RoleSuperAdmin), resourceHandler.ByCompany)
	resources.Get("/", optionalAuth, resourceHandler.List)
	resources.Get("/:resourceId", optionalAuth, resourceHandler.GetByID)
	resources.Post("/", requireAuth, RequireRole(entity.RoleCompanyAdmin), resourceHandler.Create)
	resources.Put("/:resourceId", requireAuth, RequireRole(entity.RoleCompanyAdmin), resourceHandler.Update)
	resources.Delete("/:resourceId", requireAuth, RequireRole(entity.RoleCompanyAdmin), resourceHandler.Delete)

	// Lets-connect (público, sin auth)
	connect := api.Group("/connect")
	connectHandler := NewConnectHandler(deps.ConnectUC)
	connect.Post("/", connectHandler.Create)
	connect.Post("/:companyId", connectHandler.Create)
	connect.Get("/", connectHandler.List)
	connect.Get("/:companyId", connectHandler.List)
}
