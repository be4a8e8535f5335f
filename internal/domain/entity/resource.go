package entity

import "time"

// Section es una subsección del cuerpo de un recurso.
type Section struct {
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// Resource es un artículo de la base de conocimiento de una empresa.
type Resource struct {
	ID          string
	Title       string
	Description string
	Sections    []Section
	CategoryID  string
	CreatedBy   string // usuario COMPANY_ADMIN que lo creó
	CompanyID   string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResourceCategory agrupa recursos dentro de una empresa.
// El nombre es único por empresa (coincidencia exacta, sensible a mayúsculas).
type ResourceCategory struct {
	ID        string
	Name      string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
