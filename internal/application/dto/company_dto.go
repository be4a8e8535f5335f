package dto

import "time"

// CreateCompanyRequest entrada para dar de alta una empresa con su COMPANY_ADMIN.
// name/email/password son del admin; la empresa toma el mismo name.
type CreateCompanyRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone" validate:"omitempty,len=10"`
	Password string  `json:"password" validate:"required,min=6"`
	Address  string  `json:"address"`
}

// UpdateCompanyRequest entrada para actualizar empresa y/o su admin (campos opcionales).
type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,len=10"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	SuperAdminID string    `json:"superAdminId"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CompanyWithAdmins empresa con su admin y el super admin que la creó (sin passwords).
type CompanyWithAdmins struct {
	Company      CompanyResponse `json:"company"`
	CompanyAdmin *UserResponse   `json:"companyAdmin"`
	SuperAdmin   *UserResponse   `json:"superAdmin"`
}

// CreatedCompany resultado de un alta: empresa + admin creado.
type CreatedCompany struct {
	Company      CompanyResponse `json:"company"`
	CompanyAdmin UserResponse    `json:"companyAdmin"`
}

// BulkFailure describe el fallo de un elemento del alta masiva.
type BulkFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BulkCreateResult partición created/failed del alta masiva, con índices originales.
type BulkCreateResult struct {
	Created []CreatedCompany `json:"created"`
	Failed  []BulkFailure    `json:"failed"`
}

// UpdatedCompany resultado de una actualización: empresa + admin (puede ser nil).
type UpdatedCompany struct {
	UpdatedCompany CompanyResponse `json:"updatedCompany"`
	CompanyAdmin   *UserResponse   `json:"companyAdmin"`
}
