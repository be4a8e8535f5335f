package repository

import "github.com/jhoicas/knowledgebase-api/internal/domain/entity"

// ResourceFilter restringe lecturas de recursos.
// CompanyID nil = todas las empresas; IsActive nil = sin filtrar por estado.
// Search aplica búsqueda case-insensitive sobre título y descripción.
type ResourceFilter struct {
	CompanyID *string
	IsActive  *bool
	Search    string
}

// ResourceWithRefs es un recurso con sus referencias resueltas para lectura
// (equivalente al populate de creador/empresa/categoría del cliente).
type ResourceWithRefs struct {
	Resource     entity.Resource
	CreatorName  string
	CreatorEmail string
	CompanyName  string
	CategoryName string
}

// ResourceRepository define el puerto de persistencia para Resource (DIP).
type ResourceRepository interface {
	Create(resource *entity.Resource) error
	GetByID(id string, f ResourceFilter) (*ResourceWithRefs, error)
	// GetEntityByID obtiene el recurso sin referencias (para mutaciones).
	GetEntityByID(id string, companyID string) (*entity.Resource, error)
	Update(resource *entity.Resource) error
	List(f ResourceFilter) ([]*ResourceWithRefs, error)
}
