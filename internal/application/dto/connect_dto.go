package dto

import "time"

// CreateConnectRequest entrada del formulario público lets-connect.
type CreateConnectRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    *string  `json:"phone" validate:"omitempty,len=10"`
	Services []string `json:"services" validate:"required,min=1"`
}

// ConnectResponse salida de un envío lets-connect.
type ConnectResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Services  []string  `json:"services"`
	Company   *RefDTO   `json:"companyId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConnectListResponse lista con contador, como la expone la API original.
type ConnectListResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []ConnectResponse `json:"data"`
}
