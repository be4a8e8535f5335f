package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalRole      = "role"
	LocalUserName  = "user_name"
	LocalUserEmail = "user_email"
)

// userLoader es el contrato mínimo que necesita el middleware para cargar el
// usuario del token. Lo implementa postgres.UserRepo; la interfaz evita acoplar
// el middleware a la infraestructura y permite fakes en tests.
type userLoader interface {
	GetByID(id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, carga el usuario de la DB y deja
// sus datos en c.Locals. 401 si falta token o el usuario ya no existe;
// 403 si el token es inválido o expiró.
func AuthMiddleware(jwtSecret string, users userLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("INVALID_TOKEN", "token inválido o expirado"))
		}
		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo resolver el usuario"))
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("USER_NOT_FOUND", "usuario no encontrado"))
		}
		setUserLocals(c, user)
		return c.Next()
	}
}

// OptionalAuthMiddleware resuelve el usuario cuando hay un token válido y deja
// pasar como anónimo en cualquier otro caso (lecturas públicas de recursos).
func OptionalAuthMiddleware(jwtSecret string, users userLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := bearerToken(c)
		if errResp != nil {
			return c.Next()
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			return c.Next()
		}
		setUserLocals(c, user)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("MISSING_ROLE", "token sin rol"))
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado para este rol"))
	}
}

func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		resp := dto.Err("MISSING_TOKEN", "Authorization header requerido")
		return "", &resp
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		resp := dto.Err("INVALID_TOKEN", "formato: Bearer <token>")
		return "", &resp
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		resp := dto.Err("MISSING_TOKEN", "token vacío")
		return "", &resp
	}
	return tokenString, nil
}

func setUserLocals(c *fiber.Ctx, user *entity.User) {
	c.Locals(LocalUserID, user.ID)
	if user.CompanyID != nil {
		c.Locals(LocalCompanyID, *user.CompanyID)
	}
	c.Locals(LocalRole, user.Role)
	c.Locals(LocalUserName, user.Name)
	c.Locals(LocalUserEmail, user.Email)
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetCompanyID devuelve el CompanyID del contexto; vacío para SUPER_ADMIN y anónimos.
func GetCompanyID(c *fiber.Ctx) string {
	return localString(c, LocalCompanyID)
}

// GetRole devuelve el rol del contexto; vacío para anónimos.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
