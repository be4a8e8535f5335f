package dto

import "time"

// SectionDTO subsección del cuerpo de un recurso.
type SectionDTO struct {
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// CreateResourceRequest entrada para crear un recurso.
// CategoryID tiene prioridad; si falta y viene CategoryName, se busca o crea la categoría.
type CreateResourceRequest struct {
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	Sections     []SectionDTO `json:"sections"`
	CategoryID   string       `json:"categoryId"`
	CategoryName string       `json:"categoryName"`
}

// UpdateResourceRequest entrada para actualizar un recurso (campos opcionales).
type UpdateResourceRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Sections     *[]SectionDTO `json:"sections"`
	IsActive     *bool         `json:"isActive"`
	CategoryID   *string       `json:"categoryId"`
	CategoryName *string       `json:"categoryName"`
}

// RefDTO referencia poblada mínima {_id, name[, email]}.
type RefDTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ResourceResponse salida de un recurso con referencias pobladas.
type ResourceResponse struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Sections    []SectionDTO `json:"sections"`
	Category    *RefDTO      `json:"categoryId,omitempty"`
	CreatedBy   *RefDTO      `json:"createdBy,omitempty"`
	Company     *RefDTO      `json:"companyId,omitempty"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CompanyID string    `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
