package usecase

import (
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		SuperAdminID: c.SuperAdminID,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func sectionsToDTO(sections []entity.Section) []dto.SectionDTO {
	out := make([]dto.SectionDTO, 0, len(sections))
	for _, s := range sections {
		out = append(out, dto.SectionDTO{Subtitle: s.Subtitle, Description: s.Description})
	}
	return out
}

func sectionsToEntity(sections []dto.SectionDTO) []entity.Section {
	out := make([]entity.Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, entity.Section{Subtitle: s.Subtitle, Description: s.Description})
	}
	return out
}

func resourceToResponse(item *repository.ResourceWithRefs) *dto.ResourceResponse {
	if item == nil {
		return nil
	}
	r := item.Resource
	return &dto.ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Sections:    sectionsToDTO(r.Sections),
		Category:    &dto.RefDTO{ID: r.CategoryID, Name: item.CategoryName},
		CreatedBy:   &dto.RefDTO{ID: r.CreatedBy, Name: item.CreatorName, Email: item.CreatorEmail},
		Company:     &dto.RefDTO{ID: r.CompanyID, Name: item.CompanyName},
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func categoryToResponse(c *entity.ResourceCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CompanyID: c.CompanyID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func connectToResponse(item *repository.ConnectEntryWithCompany) *dto.ConnectResponse {
	if item == nil {
		return nil
	}
	e := item.Entry
	out := &dto.ConnectResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Services:  e.Services,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.CompanyID != nil {
		name := ""
		if item.CompanyName != nil {
			name = *item.CompanyName
		}
		out.Company = &dto.RefDTO{ID: *e.CompanyID, Name: name}
	}
	return out
}
