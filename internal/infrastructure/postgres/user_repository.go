package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, phone, password_hash, role, company_id, is_active, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, company_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash,
		user.Role, user.CompanyID, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailOrPhoneTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email (cualquier empresa).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

// GetByEmailOrPhone busca un usuario que ya use el email o el teléfono.
func (r *UserRepo) GetByEmailOrPhone(email string, phone *string) (*entity.User, error) {
	if phone == nil {
		return r.GetByEmail(email)
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone = $2 LIMIT 1`
	return r.scanOne(query, email, *phone)
}

// FindContactConflict busca un usuario distinto de exceptID que use el email o el teléfono.
func (r *UserRepo) FindContactConflict(email, phone *string, exceptID string) (*entity.User, error) {
	switch {
	case email != nil && phone != nil:
		query := `SELECT ` + userColumns + ` FROM users WHERE (email = $1 OR phone = $2) AND id <> $3 LIMIT 1`
		return r.scanOne(query, *email, *phone, exceptID)
	case email != nil:
		query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND id <> $2 LIMIT 1`
		return r.scanOne(query, *email, exceptID)
	case phone != nil:
		query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 AND id <> $2 LIMIT 1`
		return r.scanOne(query, *phone, exceptID)
	default:
		return nil, nil
	}
}

// GetAdminByCompany devuelve el COMPANY_ADMIN de la empresa.
func (r *UserRepo) GetAdminByCompany(companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 AND role = $2 LIMIT 1`
	return r.scanOne(query, companyID, entity.RoleCompanyAdmin)
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, phone = $4, password_hash = $5, role = $6,
			company_id = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Phone, user.PasswordHash,
		user.Role, user.CompanyID, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		// Carrera perdida contra el chequeo previo de conflicto: el constraint
		// único decide y el caller lo reporta como 409.
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Role, &u.CompanyID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
