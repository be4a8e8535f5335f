package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
	"github.com/jhoicas/knowledgebase-api/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

// CompanyUseCase casos de uso de empresas: alta (simple y masiva), actualización,
// baja lógica y lecturas con admin/super-admin resueltos.
type CompanyUseCase struct {
	tx          CompanyTxRunner
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso. companyRepo/userRepo se usan para
// lecturas fuera de transacción; las escrituras multi-documento pasan por tx.
func NewCompanyUseCase(tx CompanyTxRunner, companyRepo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{tx: tx, companyRepo: companyRepo, userRepo: userRepo}
}

// Create da de alta una empresa y su usuario COMPANY_ADMIN en una sola transacción:
// o se insertan ambos documentos o ninguno. superAdminID es el usuario autenticado.
func (uc *CompanyUseCase) Create(ctx context.Context, superAdminID string, in dto.CreateCompanyRequest) (*dto.CreatedCompany, error) {
	var out *dto.CreatedCompany
	err := uc.tx.RunCompany(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		result, err := createCompanyWithAdmin(companies, users, superAdminID, in)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		metrics.ObserveCompanyOnboarding("failed")
		return nil, err
	}
	metrics.ObserveCompanyOnboarding("created")
	return out, nil
}

// CreateBulk procesa cada elemento en su PROPIA transacción: el fallo de uno no
// aborta a los demás. Devuelve la partición created/failed con el índice original.
func (uc *CompanyUseCase) CreateBulk(ctx context.Context, superAdminID string, items []dto.CreateCompanyRequest) *dto.BulkCreateResult {
	result := &dto.BulkCreateResult{
		Created: []dto.CreatedCompany{},
		Failed:  []dto.BulkFailure{},
	}
	for index, item := range items {
		created, err := uc.Create(ctx, superAdminID, item)
		if err != nil {
			result.Failed = append(result.Failed, dto.BulkFailure{Index: index, Error: err.Error()})
			continue
		}
		result.Created = append(result.Created, *created)
	}
	return result
}

// createCompanyWithAdmin es el cuerpo transaccional compartido por Create y CreateBulk.
func createCompanyWithAdmin(companies repository.CompanyRepository, users repository.UserRepository, superAdminID string, in dto.CreateCompanyRequest) (*dto.CreatedCompany, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	// Unicidad global de email/teléfono sobre todos los usuarios
	existing, err := users.GetByEmailOrPhone(in.Email, in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailOrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Address:      in.Address,
		SuperAdminID: superAdminID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := companies.Create(company); err != nil {
		return nil, err
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         entity.RoleCompanyAdmin,
		CompanyID:    &company.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		return nil, err
	}

	return &dto.CreatedCompany{
		Company:      *companyToResponse(company),
		CompanyAdmin: *userToResponse(admin),
	}, nil
}

// Update actualiza la empresa y opcionalmente su COMPANY_ADMIN en una transacción.
// Un conflicto de email/teléfono con otro usuario revierte todo el cambio.
func (uc *CompanyUseCase) Update(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.UpdatedCompany, error) {
	var out *dto.UpdatedCompany
	err := uc.tx.RunCompany(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		company, err := companies.GetByID(companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}

		if in.Name != nil {
			company.Name = *in.Name
		}
		if in.Address != nil {
			company.Address = *in.Address
		}
		if in.IsActive != nil {
			company.IsActive = *in.IsActive
		}
		company.UpdatedAt = time.Now()
		if err := companies.Update(company); err != nil {
			return err
		}

		admin, err := users.GetAdminByCompany(companyID)
		if err != nil {
			return err
		}
		if admin != nil {
			if in.Email != nil || in.Phone != nil {
				conflict, err := users.FindContactConflict(in.Email, in.Phone, admin.ID)
				if err != nil {
					return err
				}
				if conflict != nil {
					return domain.ErrEmailOrPhoneTaken
				}
			}
			if in.Name != nil {
				admin.Name = *in.Name
			}
			if in.Email != nil {
				admin.Email = *in.Email
			}
			if in.Phone != nil {
				admin.Phone = in.Phone
			}
			if in.Password != nil && *in.Password != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				admin.PasswordHash = string(hash)
			}
			admin.UpdatedAt = time.Now()
			if err := users.Update(admin); err != nil {
				return err
			}
		}

		out = &dto.UpdatedCompany{
			UpdatedCompany: *companyToResponse(company),
			CompanyAdmin:   userToResponse(admin),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete hace la baja lógica de la empresa (is_active=false). Idempotente;
// escritura de un solo documento, no requiere transacción.
func (uc *CompanyUseCase) Delete(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.SoftDelete(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return companyToResponse(company), nil
}

// GetByID obtiene la empresa con su COMPANY_ADMIN y el super admin que la creó.
func (uc *CompanyUseCase) GetByID(companyID string) (*dto.CompanyWithAdmins, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return uc.withAdmins(company)
}

// List devuelve las empresas con admin/super-admin resueltos (dos lecturas
// secundarias por empresa; suficiente a esta escala).
func (uc *CompanyUseCase) List(limit, offset int) ([]dto.CompanyWithAdmins, error) {
	companies, err := uc.companyRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyWithAdmins, 0, len(companies))
	for _, company := range companies {
		item, err := uc.withAdmins(company)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

func (uc *CompanyUseCase) withAdmins(company *entity.Company) (*dto.CompanyWithAdmins, error) {
	admin, err := uc.userRepo.GetAdminByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	superAdmin, err := uc.userRepo.GetByID(company.SuperAdminID)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyWithAdmins{
		Company:      *companyToResponse(company),
		CompanyAdmin: userToResponse(admin),
		SuperAdmin:   userToResponse(superAdmin),
	}, nil
}
