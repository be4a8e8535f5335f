package repository

import "github.com/jhoicas/knowledgebase-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByEmailOrPhone busca cualquier usuario que ya use el email o el teléfono
	// (chequeo de unicidad global antes de crear). phone nil omite esa cláusula.
	GetByEmailOrPhone(email string, phone *string) (*entity.User, error)
	// FindContactConflict busca un usuario distinto de exceptID que use el email o
	// el teléfono dados. Ambos opcionales; con ambos nil devuelve nil, nil.
	FindContactConflict(email, phone *string, exceptID string) (*entity.User, error)
	// GetAdminByCompany devuelve el COMPANY_ADMIN de la empresa (relación 1:1).
	GetAdminByCompany(companyID string) (*entity.User, error)
	Update(user *entity.User) error
}
