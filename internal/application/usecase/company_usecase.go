package usecase

import (
	"context"
	"fmt"

	"github.com/hspsystem/gestor-api/internal/application/ports"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/pkg/cnpj"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// CompanyUseCase consulta datos públicos de empresas por CNPJ para
// autocompletar formularios de clientes y proveedores.
type CompanyUseCase struct {
	registry ports.CompanyRegistry
	log      *logger.Logger
}

// NewCompanyUseCase crea el caso de uso de consulta de empresas.
func NewCompanyUseCase(registry ports.CompanyRegistry, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{registry: registry, log: log}
}

// Lookup valida el CNPJ (formato y dígitos verificadores) antes de consultar
// el registro, evitando llamadas externas con entradas inválidas.
func (uc *CompanyUseCase) Lookup(ctx context.Context, raw string) (*ports.CompanyRecord, error) {
	clean := cnpj.Clean(raw)
	if !cnpj.IsWellFormed(clean) {
		return nil, fmt.Errorf("%w: el CNPJ debe tener 14 dígitos", domain.ErrInvalidInput)
	}
	if err := cnpj.Validate(clean); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	record, err := uc.registry.Lookup(ctx, clean)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("cnpj", clean).Msg("empresa consultada en el registro")
	return record, nil
}
