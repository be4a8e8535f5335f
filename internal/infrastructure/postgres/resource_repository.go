package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implementación del puerto ResourceRepository sobre PostgreSQL (usable con pool o tx).
// Las secciones se guardan como JSONB; las lecturas resuelven creador/empresa/categoría
// con LEFT JOIN en una sola consulta.
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository construye el adaptador de persistencia para recursos.
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

// Create persiste un nuevo recurso.
func (r *ResourceRepo) Create(resource *entity.Resource) error {
	sections, err := json.Marshal(resource.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	query := `
		INSERT INTO resources (id, title, description, sections, category_id, created_by, company_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		resource.ID, resource.Title, resource.Description, sections,
		resource.CategoryID, resource.CreatedBy, resource.CompanyID,
		resource.IsActive, resource.CreatedAt, resource.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

// Update actualiza un recurso existente.
func (r *ResourceRepo) Update(resource *entity.Resource) error {
	sections, err := json.Marshal(resource.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	query := `
		UPDATE resources SET title = $2, description = $3, sections = $4, category_id = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		resource.ID, resource.Title, resource.Description, sections,
		resource.CategoryID, resource.IsActive, resource.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

// GetEntityByID obtiene el recurso de una empresa sin referencias (para mutaciones).
func (r *ResourceRepo) GetEntityByID(id string, companyID string) (*entity.Resource, error) {
	query := `
		SELECT id, title, description, sections, category_id, created_by, company_id, is_active, created_at, updated_at
		FROM resources WHERE id = $1 AND company_id = $2`
	row := r.q.QueryRow(context.Background(), query, id, companyID)
	res, err := scanResource(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return res, nil
}

// GetByID obtiene un recurso con referencias resueltas, aplicando el filtro de visibilidad.
func (r *ResourceRepo) GetByID(id string, f repository.ResourceFilter) (*repository.ResourceWithRefs, error) {
	where, args := buildResourceWhere(f, []string{"r.id = $1"}, []any{id})
	query := resourceSelect + " WHERE " + strings.Join(where, " AND ")
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	defer rows.Close()
	list, err := scanResourceRefs(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// List devuelve recursos con referencias resueltas, del más reciente al más antiguo.
func (r *ResourceRepo) List(f repository.ResourceFilter) ([]*repository.ResourceWithRefs, error) {
	where, args := buildResourceWhere(f, nil, nil)
	query := resourceSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY r.created_at DESC"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()
	return scanResourceRefs(rows)
}

const resourceSelect = `
	SELECT r.id, r.title, r.description, r.sections, r.category_id, r.created_by, r.company_id,
	       r.is_active, r.created_at, r.updated_at,
	       COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(c.name, ''), COALESCE(rc.name, '')
	FROM resources r
	LEFT JOIN users u ON u.id = r.created_by
	LEFT JOIN companies c ON c.id = r.company_id
	LEFT JOIN resource_categories rc ON rc.id = r.category_id`

// buildResourceWhere arma las cláusulas del filtro sobre los args ya acumulados.
func buildResourceWhere(f repository.ResourceFilter, where []string, args []any) ([]string, []any) {
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		where = append(where, fmt.Sprintf("r.company_id = $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		where = append(where, fmt.Sprintf("r.is_active = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(r.title ILIKE $%d OR r.description ILIKE $%d)", n, n))
	}
	return where, args
}

func scanResource(row pgx.Row) (*entity.Resource, error) {
	var res entity.Resource
	var sections []byte
	err := row.Scan(
		&res.ID, &res.Title, &res.Description, &sections, &res.CategoryID,
		&res.CreatedBy, &res.CompanyID, &res.IsActive, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sections, &res.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	return &res, nil
}

func scanResourceRefs(rows pgx.Rows) ([]*repository.ResourceWithRefs, error) {
	var list []*repository.ResourceWithRefs
	for rows.Next() {
		var item repository.ResourceWithRefs
		var sections []byte
		err := rows.Scan(
			&item.Resource.ID, &item.Resource.Title, &item.Resource.Description, &sections,
			&item.Resource.CategoryID, &item.Resource.CreatedBy, &item.Resource.CompanyID,
			&item.Resource.IsActive, &item.Resource.CreatedAt, &item.Resource.UpdatedAt,
			&item.CreatorName, &item.CreatorEmail, &item.CompanyName, &item.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		if err := json.Unmarshal(sections, &item.Resource.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
