package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

const (
	testCompanyA = "00000000-0000-0000-0000-0000000000c1"
	testCompanyB = "00000000-0000-0000-0000-0000000000c2"
	testAdminA   = "00000000-0000-0000-0000-0000000000d1"
)

func newResourceFixture() (*memStore, *usecase.ResourceUseCase) {
	s := newMemStore()
	now := time.Now()
	s.companies[testCompanyA] = &entity.Company{
		ID: testCompanyA, Name: "Acme", SuperAdminID: testSuperAdminID,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	s.companies[testCompanyB] = &entity.Company{
		ID: testCompanyB, Name: "Globex", SuperAdminID: testSuperAdminID,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	companyA := testCompanyA
	s.users[testAdminA] = &entity.User{
		ID: testAdminA, Name: "Ana Admin", Email: "ana@acme.com",
		PasswordHash: "$2a$10$x", Role: entity.RoleCompanyAdmin,
		CompanyID: &companyA, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	uc := usecase.NewResourceUseCase(&fakeTxRunner{s: s}, &fakeResourceRepo{s: s}, &fakeCategoryRepo{s: s})
	return s, uc
}

func TestResourceCreate_CreaCategoriaPorNombre(t *testing.T) {
	s, uc := newResourceFixture()

	out, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title:       "Manual de onboarding",
		Description: "Pasos para nuevos empleados",
		Sections: []dto.SectionDTO{
			{Subtitle: "Día 1", Description: "Accesos y cuentas"},
		},
		CategoryName: "Recursos Humanos",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Manual de onboarding", out.Title)
	assert.True(t, out.IsActive)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Recursos Humanos", out.Category.Name)
	require.NotNil(t, out.CreatedBy)
	assert.Equal(t, "Ana Admin", out.CreatedBy.Name)
	require.Len(t, out.Sections, 1)
	assert.Equal(t, "Día 1", out.Sections[0].Subtitle)

	assert.Len(t, s.categories, 1, "la categoría debe crearse junto con el recurso")
}

func TestResourceCreate_ReutilizaCategoriaExistente(t *testing.T) {
	s, uc := newResourceFixture()

	for i := 0; i < 2; i++ {
		_, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
			Title:        "Recurso",
			Description:  "desc",
			CategoryName: "Soporte",
		})
		require.NoError(t, err)
	}
	assert.Len(t, s.categories, 1, "mismo nombre y empresa: a lo sumo una categoría")
	assert.Len(t, s.resources, 2)
}

func TestResourceCreate_CategoriaDeOtraEmpresa(t *testing.T) {
	s, uc := newResourceFixture()
	now := time.Now()
	catB := &entity.ResourceCategory{
		ID: "00000000-0000-0000-0000-0000000000e1", Name: "Ventas",
		CompanyID: testCompanyB, CreatedAt: now, UpdatedAt: now,
	}
	s.categories[catB.ID] = catB

	_, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Recurso", Description: "desc", CategoryID: catB.ID,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Empty(t, s.resources, "no debe insertarse el recurso si la categoría no pertenece a la empresa")
}

func TestResourceCreate_CamposRequeridos(t *testing.T) {
	_, uc := newResourceFixture()

	_, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Description: "sin título", CategoryName: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin categoryId ni categoryName tampoco es válido
	_, err = uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Con título", Description: "desc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResourceUpdate_ParcialYReasignaCategoria(t *testing.T) {
	_, uc := newResourceFixture()

	created, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Original", Description: "desc", CategoryName: "General",
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), testCompanyA, created.ID, dto.UpdateResourceRequest{
		Title:        strPtr("Actualizado"),
		CategoryName: strPtr("Procesos"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Actualizado", out.Title)
	assert.Equal(t, "desc", out.Description, "los campos no enviados se conservan")
	require.NotNil(t, out.Category)
	assert.Equal(t, "Procesos", out.Category.Name)
}

func TestResourceUpdate_OtraEmpresaNoLoVe(t *testing.T) {
	_, uc := newResourceFixture()

	created, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Privado", Description: "desc", CategoryName: "General",
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), testCompanyB, created.ID, dto.UpdateResourceRequest{
		Title: strPtr("Robado"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceDelete_BajaLogicaYVisibilidadPublica(t *testing.T) {
	s, uc := newResourceFixture()

	created, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Efímero", Description: "desc", CategoryName: "General",
	})
	require.NoError(t, err)

	out, err := uc.Delete(testCompanyA, created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.False(t, s.resources[created.ID].IsActive)

	// Un lector anónimo (solo activos) ya no lo encuentra
	active := true
	_, err = uc.GetByID(created.ID, repository.ResourceFilter{IsActive: &active})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Pero sin filtro sigue existiendo (admin de la empresa)
	got, err := uc.GetByID(created.ID, repository.ResourceFilter{})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestResourceList_FiltraPorEmpresaYEstado(t *testing.T) {
	_, uc := newResourceFixture()

	r1, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Activo", Description: "desc", CategoryName: "General",
	})
	require.NoError(t, err)
	r2, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Inactivo", Description: "desc", CategoryName: "General",
	})
	require.NoError(t, err)
	_, err = uc.Delete(testCompanyA, r2.ID)
	require.NoError(t, err)

	companyA := testCompanyA
	active := true
	out, err := uc.List(repository.ResourceFilter{CompanyID: &companyA, IsActive: &active})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, r1.ID, out[0].ID)

	companyB := testCompanyB
	out, err = uc.List(repository.ResourceFilter{CompanyID: &companyB})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// racedCategoryRepo simula perder la carrera del find-or-create: la primera
// búsqueda por nombre no ve la categoría (la transacción ganadora aún no era
// visible), el insert choca con el constraint único y devuelve ErrConflict sin
// abortar nada, y la relectura ya encuentra a la ganadora.
type racedCategoryRepo struct {
	*fakeCategoryRepo
	missed bool
}

func (r *racedCategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.ResourceCategory, error) {
	if !r.missed {
		r.missed = true
		return nil, nil
	}
	return r.fakeCategoryRepo.GetByCompanyAndName(companyID, name)
}

// racedTxRunner inyecta el repo de categorías con carrera en la transacción.
type racedTxRunner struct {
	s   *memStore
	cat repository.CategoryRepository
}

func (r *racedTxRunner) RunResource(ctx context.Context, fn func(
	resources repository.ResourceRepository,
	categories repository.CategoryRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeResourceRepo{s: r.s}, r.cat); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func TestResourceCreate_PerdedorDeLaCarreraReusaCategoriaGanadora(t *testing.T) {
	s, _ := newResourceFixture()
	now := time.Now()
	winner := &entity.ResourceCategory{
		ID: "00000000-0000-0000-0000-0000000000f1", Name: "Soporte",
		CompanyID: testCompanyA, CreatedAt: now, UpdatedAt: now,
	}
	s.categories[winner.ID] = winner

	raced := &racedCategoryRepo{fakeCategoryRepo: &fakeCategoryRepo{s: s}}
	uc := usecase.NewResourceUseCase(
		&racedTxRunner{s: s, cat: raced},
		&fakeResourceRepo{s: s},
		&fakeCategoryRepo{s: s},
	)

	out, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Guía", Description: "desc", CategoryName: "Soporte",
	})
	require.NoError(t, err, "perder la carrera no debe terminar en error")
	require.NotNil(t, out.Category)
	assert.Equal(t, winner.ID, out.Category.ID, "el recurso debe quedar en la categoría ganadora")
	assert.Len(t, s.categories, 1, "no debe crearse una categoría duplicada")
	assert.True(t, raced.missed, "el escenario debe haber pasado por la búsqueda fallida inicial")
}

func TestResourceCategories_PorEmpresa(t *testing.T) {
	_, uc := newResourceFixture()

	_, err := uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Uno", Description: "desc", CategoryName: "Beta",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), testAdminA, testCompanyA, dto.CreateResourceRequest{
		Title: "Dos", Description: "desc", CategoryName: "Alfa",
	})
	require.NoError(t, err)

	out, err := uc.Categories(testCompanyA)
	require.NoError(t, err)
	require.Len(t, out, 2)

	out, err = uc.Categories(testCompanyB)
	require.NoError(t, err)
	assert.Empty(t, out)
}
