package repository

import "github.com/jhoicas/knowledgebase-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	// SoftDelete marca la empresa como inactiva y devuelve la fila actualizada.
	// Idempotente; nil, nil si la empresa no existe.
	SoftDelete(id string) (*entity.Company, error)
}
