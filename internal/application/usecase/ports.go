package usecase

import (
	"context"

	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
)

// CompanyTxRunner ejecuta un callback con repos de empresa/usuario atados a una
// transacción. Lo implementa postgres.TxRunner; la interfaz evita el import circular
// y permite fakes en tests.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error) error
}

// ResourceTxRunner ejecuta un callback con repos de recurso/categoría atados a una transacción.
type ResourceTxRunner interface {
	RunResource(ctx context.Context, fn func(
		resources repository.ResourceRepository,
		categories repository.CategoryRepository,
	) error) error
}

// ConnectTxRunner ejecuta un callback con el repo de envíos atado a una transacción.
type ConnectTxRunner interface {
	RunConnect(ctx context.Context, fn func(
		entries repository.ConnectRepository,
	) error) error
}
