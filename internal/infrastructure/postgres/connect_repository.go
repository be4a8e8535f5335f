package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

var _ repository.ConnectRepository = (*ConnectRepo)(nil)

// ConnectRepo implementación del puerto ConnectRepository sobre PostgreSQL (usable con pool o tx).
type ConnectRepo struct {
	q Querier
}

// NewConnectRepository construye el adaptador de persistencia para envíos lets-connect.
func NewConnectRepository(q Querier) *ConnectRepo {
	return &ConnectRepo{q: q}
}

// Create persiste un nuevo envío.
func (r *ConnectRepo) Create(entry *entity.ConnectEntry) error {
	query := `
		INSERT INTO lets_connect (id, name, email, phone, services, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Name, entry.Email, entry.Phone, entry.Services,
		entry.CompanyID, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lets-connect entry: %w", err)
	}
	return nil
}

// ExistsContact informa si ya hay un envío con ese email o teléfono en el ámbito
// de la empresa. companyID nil delimita el ámbito a los envíos sin empresa.
func (r *ConnectRepo) ExistsContact(companyID *string, email string, phone *string) (bool, error) {
	companyClause := "company_id = $1"
	if companyID == nil {
		companyClause = "$1::uuid IS NULL AND company_id IS NULL"
	}
	var query string
	var args []any
	if phone != nil {
		query = `SELECT EXISTS (SELECT 1 FROM lets_connect WHERE ` + companyClause + ` AND (email = $2 OR phone = $3))`
		args = []any{companyID, email, *phone}
	} else {
		query = `SELECT EXISTS (SELECT 1 FROM lets_connect WHERE ` + companyClause + ` AND email = $2)`
		args = []any{companyID, email}
	}
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check lets-connect contact: %w", err)
	}
	return exists, nil
}

// List devuelve envíos con el nombre de empresa resuelto, del más reciente al más antiguo.
// companyID nil devuelve todos los envíos.
func (r *ConnectRepo) List(companyID *string) ([]*repository.ConnectEntryWithCompany, error) {
	query := `
		SELECT lc.id, lc.name, lc.email, lc.phone, lc.services, lc.company_id,
		       lc.created_at, lc.updated_at, c.name
		FROM lets_connect lc
		LEFT JOIN companies c ON c.id = lc.company_id`
	var args []any
	if companyID != nil {
		query += ` WHERE lc.company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY lc.created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lets-connect entries: %w", err)
	}
	defer rows.Close()

	var list []*repository.ConnectEntryWithCompany
	for rows.Next() {
		var item repository.ConnectEntryWithCompany
		err := rows.Scan(
			&item.Entry.ID, &item.Entry.Name, &item.Entry.Email, &item.Entry.Phone,
			&item.Entry.Services, &item.Entry.CompanyID,
			&item.Entry.CreatedAt, &item.Entry.UpdatedAt, &item.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lets-connect entry: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
