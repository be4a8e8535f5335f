package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/application/usecase"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
)

const testSuperAdminID = "00000000-0000-0000-0000-0000000000aa"

func newCompanyFixture() (*memStore, *usecase.CompanyUseCase) {
	s := newMemStore()
	now := time.Now()
	s.users[testSuperAdminID] = &entity.User{
		ID:           testSuperAdminID,
		Name:         "Root",
		Email:        "root@example.com",
		PasswordHash: "$2a$10$x",
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	uc := usecase.NewCompanyUseCase(&fakeTxRunner{s: s}, &fakeCompanyRepo{s: s}, &fakeUserRepo{s: s})
	return s, uc
}

func strPtr(v string) *string { return &v }

func TestCompanyCreate_AltaEmpresaConAdmin(t *testing.T) {
	s, uc := newCompanyFixture()

	out, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name:     "Acme",
		Email:    "admin@acme.com",
		Phone:    strPtr("3001234567"),
		Password: "secreto123",
		Address:  "Calle 1 #2-3",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Acme", out.Company.Name)
	assert.Equal(t, testSuperAdminID, out.Company.SuperAdminID)
	assert.True(t, out.Company.IsActive)
	assert.Equal(t, entity.RoleCompanyAdmin, out.CompanyAdmin.Role)
	require.NotNil(t, out.CompanyAdmin.CompanyID)
	assert.Equal(t, out.Company.ID, *out.CompanyAdmin.CompanyID)

	// La contraseña se guarda hasheada con bcrypt, nunca en claro
	admin := s.users[out.CompanyAdmin.ID]
	require.NotNil(t, admin)
	assert.NotEqual(t, "secreto123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secreto123")))

	assert.Len(t, s.companies, 1)
}

func TestCompanyCreate_EmailDuplicado_NoDejaEmpresaHuerfana(t *testing.T) {
	s, uc := newCompanyFixture()

	_, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "Primera", Email: "admin@dup.com", Password: "secreto123",
	})
	require.NoError(t, err)

	// Mismo email: debe fallar y NO debe quedar la segunda empresa insertada
	_, err = uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "Segunda", Email: "admin@dup.com", Password: "otroSecreto",
	})
	assert.ErrorIs(t, err, domain.ErrEmailOrPhoneTaken)
	assert.Len(t, s.companies, 1, "el alta fallida no debe dejar empresa huérfana")
	assert.Len(t, s.users, 2, "solo el super admin y el primer admin")
}

func TestCompanyCreate_CamposRequeridos(t *testing.T) {
	_, uc := newCompanyFixture()

	_, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "SinPassword", Email: "x@y.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyCreateBulk_ParticionConIndicesOriginales(t *testing.T) {
	s, uc := newCompanyFixture()

	items := []dto.CreateCompanyRequest{
		{Name: "Uno", Email: "uno@bulk.com", Password: "secreto123"},
		{Name: "Dos", Email: "uno@bulk.com", Password: "secreto123"}, // email repetido del índice 0
		{Name: "Tres", Email: "tres@bulk.com", Password: "secreto123"},
	}
	result := uc.CreateBulk(context.Background(), testSuperAdminID, items)

	require.Len(t, result.Created, 2)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 1, result.Failed[0].Index, "el fallo debe conservar el índice original del array")
	assert.NotEmpty(t, result.Failed[0].Error)
	assert.Len(t, s.companies, 2, "cada elemento va en su propia transacción: el fallo de uno no aborta al resto")
}

func TestCompanyCreateBulk_SlicesInicializados(t *testing.T) {
	_, uc := newCompanyFixture()

	// Con todos los elementos fallidos, created debe ser [] y no null en el JSON
	result := uc.CreateBulk(context.Background(), testSuperAdminID, []dto.CreateCompanyRequest{
		{Name: "SinDatos"},
	})
	assert.NotNil(t, result.Created)
	assert.Empty(t, result.Created)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 0, result.Failed[0].Index)
}

func TestCompanyUpdate_ConflictoDeContactoRevierteTodo(t *testing.T) {
	s, uc := newCompanyFixture()

	a, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "EmpresaA", Email: "a@corp.com", Password: "secreto123",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "EmpresaB", Email: "b@corp.com", Password: "secreto123",
	})
	require.NoError(t, err)

	// Renombrar EmpresaA y a la vez pisar el email del admin de B: todo debe revertirse
	_, err = uc.Update(context.Background(), a.Company.ID, dto.UpdateCompanyRequest{
		Name:  strPtr("EmpresaA Renombrada"),
		Email: strPtr("b@corp.com"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailOrPhoneTaken)

	assert.Equal(t, "EmpresaA", s.companies[a.Company.ID].Name,
		"el conflicto de contacto debe revertir también el cambio de la empresa")
	assert.Equal(t, "a@corp.com", s.users[a.CompanyAdmin.ID].Email)
}

func TestCompanyUpdate_ActualizaEmpresaYAdmin(t *testing.T) {
	s, uc := newCompanyFixture()

	created, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "Original", Email: "orig@corp.com", Password: "secreto123",
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), created.Company.ID, dto.UpdateCompanyRequest{
		Name:     strPtr("Renombrada"),
		Email:    strPtr("nuevo@corp.com"),
		Password: strPtr("nuevoSecreto"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", out.UpdatedCompany.Name)
	require.NotNil(t, out.CompanyAdmin)
	assert.Equal(t, "nuevo@corp.com", out.CompanyAdmin.Email)

	admin := s.users[created.CompanyAdmin.ID]
	assert.Equal(t, "Renombrada", admin.Name, "el nombre del admin sigue al de la empresa")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("nuevoSecreto")))
}

func TestCompanyUpdate_NoExiste(t *testing.T) {
	_, uc := newCompanyFixture()

	_, err := uc.Update(context.Background(), "11111111-1111-1111-1111-111111111111", dto.UpdateCompanyRequest{
		Name: strPtr("Nada"),
	})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCompanyDelete_BajaLogicaIdempotente(t *testing.T) {
	s, uc := newCompanyFixture()

	created, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "ParaBaja", Email: "baja@corp.com", Password: "secreto123",
	})
	require.NoError(t, err)

	out, err := uc.Delete(created.Company.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.False(t, s.companies[created.Company.ID].IsActive)

	// Repetir la baja no es error
	out, err = uc.Delete(created.Company.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	_, err = uc.Delete("22222222-2222-2222-2222-222222222222")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestCompanyGetByID_ResuelveAdminYSuperAdmin(t *testing.T) {
	_, uc := newCompanyFixture()

	created, err := uc.Create(context.Background(), testSuperAdminID, dto.CreateCompanyRequest{
		Name: "ConRefs", Email: "refs@corp.com", Password: "secreto123",
	})
	require.NoError(t, err)

	out, err := uc.GetByID(created.Company.ID)
	require.NoError(t, err)
	require.NotNil(t, out.CompanyAdmin)
	require.NotNil(t, out.SuperAdmin)
	assert.Equal(t, "refs@corp.com", out.CompanyAdmin.Email)
	assert.Equal(t, testSuperAdminID, out.SuperAdmin.ID)
}
