package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
	"github.com/hspsystem/gestor-api/pkg/normalize"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewSupplierUseCase crea el caso de uso de proveedores.
func NewSupplierUseCase(repo repository.StateRepository, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, log: log}
}

// List devuelve los proveedores, filtrados por nombre o CNPJ si query no
// está vacío.
func (uc *SupplierUseCase) List(query string) ([]entity.Supplier, error) {
	suppliers, err := uc.repo.Suppliers()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return suppliers, nil
	}
	out := make([]entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if normalize.Contains(s.Name, query) || normalize.Contains(s.CNPJ, query) {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetByID busca un proveedor por id.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	suppliers, err := uc.repo.Suppliers()
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(req dto.SaveSupplierRequest) (*entity.Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	suppliers, err := uc.repo.Suppliers()
	if err != nil {
		return nil, err
	}

	s := entity.Supplier{
		ID:      uuid.New().String(),
		Name:    req.Name,
		CNPJ:    req.CNPJ,
		Contact: req.Contact,
		Email:   req.Email,
		Address: req.Address,
	}
	suppliers = append(suppliers, s)
	if err := uc.repo.SaveSuppliers(suppliers); err != nil {
		return nil, err
	}
	uc.log.Info().Str("supplier_id", s.ID).Str("name", s.Name).Msg("proveedor creado")
	return &s, nil
}

// Update edita un proveedor.
func (uc *SupplierUseCase) Update(id string, req dto.SaveSupplierRequest) (*entity.Supplier, error) {
	suppliers, err := uc.repo.Suppliers()
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID != id {
			continue
		}
		suppliers[i].Name = req.Name
		suppliers[i].CNPJ = req.CNPJ
		suppliers[i].Contact = req.Contact
		suppliers[i].Email = req.Email
		suppliers[i].Address = req.Address
		if err := uc.repo.SaveSuppliers(suppliers); err != nil {
			return nil, err
		}
		out := suppliers[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
}

// Delete elimina un proveedor. Los productos que lo referencien conservan el
// id colgante; las entradas de stock históricas no se tocan.
func (uc *SupplierUseCase) Delete(id string) error {
	suppliers, err := uc.repo.Suppliers()
	if err != nil {
		return err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			suppliers = append(suppliers[:i], suppliers[i+1:]...)
			if err := uc.repo.SaveSuppliers(suppliers); err != nil {
				return err
			}
			uc.log.Info().Str("supplier_id", id).Msg("proveedor eliminado")
			return nil
		}
	}
	return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
}
