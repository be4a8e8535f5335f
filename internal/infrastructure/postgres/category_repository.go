package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, company_id, created_at, updated_at`

// Create persiste una nueva categoría. El insert usa ON CONFLICT DO NOTHING
// sobre el constraint UNIQUE(company_id, name): el perdedor de una carrera
// recibe domain.ErrConflict SIN abortar la transacción en curso (un 23505
// crudo dejaría la tx en estado abortado y la relectura posterior fallaría).
func (r *CategoryRepo) Create(category *entity.ResourceCategory) error {
	query := `
		INSERT INTO resource_categories (id, name, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, name) DO NOTHING`
	tag, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.CompanyID,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.ResourceCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM resource_categories WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCompanyAndName busca por nombre exacto dentro de la empresa.
func (r *CategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.ResourceCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM resource_categories WHERE company_id = $1 AND name = $2`
	return r.scanOne(query, companyID, name)
}

// ListByCompany lista las categorías de una empresa por nombre.
func (r *CategoryRepo) ListByCompany(companyID string) ([]*entity.ResourceCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM resource_categories WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.ResourceCategory
	for rows.Next() {
		var c entity.ResourceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) scanOne(query string, args ...any) (*entity.ResourceCategory, error) {
	var c entity.ResourceCategory
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
