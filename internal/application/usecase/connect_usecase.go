package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
	"github.com/jhoicas/knowledgebase-api/pkg/metrics"
)

// ConnectUseCase casos de uso del formulario público "let's connect".
type ConnectUseCase struct {
	tx          ConnectTxRunner
	connectRepo repository.ConnectRepository
}

// NewConnectUseCase construye el caso de uso.
func NewConnectUseCase(tx ConnectTxRunner, connectRepo repository.ConnectRepository) *ConnectUseCase {
	return &ConnectUseCase{tx: tx, connectRepo: connectRepo}
}

// Create registra un envío. El duplicado se evalúa por email o teléfono dentro
// del ámbito de la empresa (companyID nil = envíos sin empresa); el chequeo y el
// insert comparten transacción para cerrar la ventana entre ambos.
func (uc *ConnectUseCase) Create(ctx context.Context, companyID *string, in dto.CreateConnectRequest) (*dto.ConnectResponse, error) {
	if in.Name == "" || in.Email == "" || len(in.Services) == 0 {
		metrics.ObserveConnectSubmission("invalid")
		return nil, domain.ErrInvalidInput
	}

	var entry *entity.ConnectEntry
	err := uc.tx.RunConnect(ctx, func(entries repository.ConnectRepository) error {
		exists, err := entries.ExistsContact(companyID, in.Email, in.Phone)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateContact
		}

		now := time.Now()
		entry = &entity.ConnectEntry{
			ID:        uuid.New().String(),
			Name:      in.Name,
			Email:     in.Email,
			Phone:     in.Phone,
			Services:  in.Services,
			CompanyID: companyID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return entries.Create(entry)
	})
	if err != nil {
		if err == domain.ErrDuplicateContact {
			metrics.ObserveConnectSubmission("duplicate")
		}
		return nil, err
	}
	metrics.ObserveConnectSubmission("created")

	return connectToResponse(&repository.ConnectEntryWithCompany{Entry: *entry}), nil
}

// List devuelve los envíos (opcionalmente filtrados por empresa), más recientes primero.
func (uc *ConnectUseCase) List(companyID *string) ([]dto.ConnectResponse, error) {
	items, err := uc.connectRepo.List(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConnectResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *connectToResponse(item))
	}
	return out, nil
}
