package entity

import "time"

// Company representa una organización/tenant del sistema. Tiene exactamente un
// usuario COMPANY_ADMIN asociado (se crean juntos en la misma transacción).
// Nunca se elimina físicamente: baja lógica vía IsActive.
type Company struct {
	ID           string
	Name         string
	Address      string
	SuperAdminID string // usuario SUPER_ADMIN que dio de alta la empresa
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
