package repository

import "github.com/jhoicas/knowledgebase-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para ResourceCategory (DIP).
type CategoryRepository interface {
	Create(category *entity.ResourceCategory) error
	GetByID(id string) (*entity.ResourceCategory, error)
	// GetByCompanyAndName busca por nombre exacto (sensible a mayúsculas) dentro de la empresa.
	GetByCompanyAndName(companyID, name string) (*entity.ResourceCategory, error)
	ListByCompany(companyID string) ([]*entity.ResourceCategory, error)
}
