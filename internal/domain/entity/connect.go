package entity

import "time"

// ConnectEntry es un formulario público "let's connect" (captura de leads).
// CompanyID es opcional: los envíos sin empresa comparten un mismo ámbito de duplicados.
type ConnectEntry struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Services  []string
	CompanyID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
