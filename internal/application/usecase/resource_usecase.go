package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

// ResourceUseCase casos de uso de recursos de la base de conocimiento.
type ResourceUseCase struct {
	tx           ResourceTxRunner
	resourceRepo repository.ResourceRepository
	categoryRepo repository.CategoryRepository
}

// NewResourceUseCase construye el caso de uso. Los repos directos sirven lecturas
// y escrituras de un solo documento; create/update con categoría pasan por tx.
func NewResourceUseCase(tx ResourceTxRunner, resourceRepo repository.ResourceRepository, categoryRepo repository.CategoryRepository) *ResourceUseCase {
	return &ResourceUseCase{tx: tx, resourceRepo: resourceRepo, categoryRepo: categoryRepo}
}

// Create crea un recurso para la empresa del COMPANY_ADMIN autenticado.
// Si falta categoryId pero viene categoryName, la categoría se busca o crea dentro
// de la misma transacción (a lo sumo una por nombre y empresa).
func (uc *ResourceUseCase) Create(ctx context.Context, userID, companyID string, in dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	if in.Title == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}

	var resourceID string
	err := uc.tx.RunResource(ctx, func(resources repository.ResourceRepository, categories repository.CategoryRepository) error {
		category, err := resolveCategory(categories, companyID, in.CategoryID, in.CategoryName)
		if err != nil {
			return err
		}

		now := time.Now()
		resource := &entity.Resource{
			ID:          uuid.New().String(),
			Title:       in.Title,
			Description: in.Description,
			Sections:    sectionsToEntity(in.Sections),
			CategoryID:  category.ID,
			CreatedBy:   userID,
			CompanyID:   companyID,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := resources.Create(resource); err != nil {
			return err
		}
		resourceID = resource.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	item, err := uc.resourceRepo.GetByID(resourceID, repository.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	return resourceToResponse(item), nil
}

// Update actualiza un recurso de la empresa del admin (parcial, transaccional).
// La categoría puede reasignarse por categoryId o resolverse por categoryName.
func (uc *ResourceUseCase) Update(ctx context.Context, companyID, resourceID string, in dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	err := uc.tx.RunResource(ctx, func(resources repository.ResourceRepository, categories repository.CategoryRepository) error {
		resource, err := resources.GetEntityByID(resourceID, companyID)
		if err != nil {
			return err
		}
		if resource == nil {
			return domain.ErrNotFound
		}

		if in.Title != nil {
			resource.Title = *in.Title
		}
		if in.Description != nil {
			resource.Description = *in.Description
		}
		if in.Sections != nil {
			resource.Sections = sectionsToEntity(*in.Sections)
		}
		if in.IsActive != nil {
			resource.IsActive = *in.IsActive
		}
		if in.CategoryID != nil || in.CategoryName != nil {
			categoryID, categoryName := "", ""
			if in.CategoryID != nil {
				categoryID = *in.CategoryID
			}
			if in.CategoryName != nil {
				categoryName = *in.CategoryName
			}
			category, err := resolveCategory(categories, companyID, categoryID, categoryName)
			if err != nil {
				return err
			}
			resource.CategoryID = category.ID
		}
		resource.UpdatedAt = time.Now()
		return resources.Update(resource)
	})
	if err != nil {
		return nil, err
	}

	item, err := uc.resourceRepo.GetByID(resourceID, repository.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	return resourceToResponse(item), nil
}

// Delete hace la baja lógica del recurso de la empresa del admin. Idempotente.
func (uc *ResourceUseCase) Delete(companyID, resourceID string) (*dto.ResourceResponse, error) {
	resource, err := uc.resourceRepo.GetEntityByID(resourceID, companyID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, domain.ErrNotFound
	}
	resource.IsActive = false
	resource.UpdatedAt = time.Now()
	if err := uc.resourceRepo.Update(resource); err != nil {
		return nil, err
	}
	item, err := uc.resourceRepo.GetByID(resourceID, repository.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	return resourceToResponse(item), nil
}

// List devuelve recursos con referencias pobladas según el filtro ya resuelto
// por el handler (ámbito de empresa, estado, búsqueda).
func (uc *ResourceUseCase) List(f repository.ResourceFilter) ([]dto.ResourceResponse, error) {
	items, err := uc.resourceRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *resourceToResponse(item))
	}
	return out, nil
}

// GetByID obtiene un recurso con referencias pobladas, aplicando el filtro de visibilidad.
func (uc *ResourceUseCase) GetByID(resourceID string, f repository.ResourceFilter) (*dto.ResourceResponse, error) {
	item, err := uc.resourceRepo.GetByID(resourceID, f)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return resourceToResponse(item), nil
}

// Categories lista las categorías de una empresa.
func (uc *ResourceUseCase) Categories(companyID string) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *categoryToResponse(c))
	}
	return out, nil
}

// resolveCategory aplica la precedencia categoryId > categoryName.
// Con categoryId valida que la categoría pertenezca a la empresa; con categoryName
// busca por nombre exacto y crea si no existe. Ante una carrera el insert devuelve
// ErrConflict sin abortar la transacción (ON CONFLICT DO NOTHING en el repo) y
// aquí se relee la categoría ganadora.
func resolveCategory(categories repository.CategoryRepository, companyID, categoryID, categoryName string) (*entity.ResourceCategory, error) {
	if categoryID != "" {
		category, err := categories.GetByID(categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.CompanyID != companyID {
			return nil, domain.ErrCategoryNotFound
		}
		return category, nil
	}
	if categoryName == "" {
		return nil, domain.ErrInvalidInput
	}

	category, err := categories.GetByCompanyAndName(companyID, categoryName)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	now := time.Now()
	category = &entity.ResourceCategory{
		ID:        uuid.New().String(),
		Name:      categoryName,
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := categories.Create(category); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return categories.GetByCompanyAndName(companyID, categoryName)
		}
		return nil, err
	}
	return category, nil
}
