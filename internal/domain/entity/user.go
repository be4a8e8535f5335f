package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleCompanyAdmin = "COMPANY_ADMIN"
	RoleEmployee     = "EMPLOYEE"
)

// User representa un usuario del sistema. CompanyID es nil solo para SUPER_ADMIN.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        *string // opcional, único cuando existe
	PasswordHash string  // bcrypt hash, nunca plano en dominio después de persistir
	Role         string  // SUPER_ADMIN, COMPANY_ADMIN, EMPLOYEE
	CompanyID    *string // requerido para COMPANY_ADMIN y EMPLOYEE
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
