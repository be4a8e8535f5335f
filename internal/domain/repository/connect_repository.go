package repository

import "github.com/jhoicas/knowledgebase-api/internal/domain/entity"

// ConnectEntryWithCompany es un envío con el nombre de la empresa resuelto.
// CompanyName nil cuando el envío no tiene empresa asociada.
type ConnectEntryWithCompany struct {
	Entry       entity.ConnectEntry
	CompanyName *string
}

// ConnectRepository define el puerto de persistencia para ConnectEntry (DIP).
type ConnectRepository interface {
	Create(entry *entity.ConnectEntry) error
	// ExistsContact informa si ya hay un envío con ese email o teléfono en el
	// ámbito de la empresa (companyID nil = envíos sin empresa).
	ExistsContact(companyID *string, email string, phone *string) (bool, error)
	// List devuelve envíos ordenados del más reciente al más antiguo.
	List(companyID *string) ([]*ConnectEntryWithCompany, error)
}
