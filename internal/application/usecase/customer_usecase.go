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

// CustomerUseCase CRUD de clientes.
type CustomerUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewCustomerUseCase crea el caso de uso de clientes.
func NewCustomerUseCase(repo repository.StateRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, log: log}
}

// List devuelve los clientes, filtrados por nombre, email o teléfono si query
// no está vacío (insensible a mayúsculas y acentos).
func (uc *CustomerUseCase) List(query string) ([]entity.Customer, error) {
	customers, err := uc.repo.Customers()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return customers, nil
	}
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if normalize.Contains(c.Name, query) || normalize.Contains(c.Email, query) || normalize.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetByID busca un cliente por id.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	customers, err := uc.repo.Customers()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(req dto.SaveCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	customers, err := uc.repo.Customers()
	if err != nil {
		return nil, err
	}

	c := entity.Customer{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		CNPJ:    req.CNPJ,
	}
	customers = append(customers, c)
	if err := uc.repo.SaveCustomers(customers); err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", c.ID).Str("name", c.Name).Msg("cliente creado")
	return &c, nil
}

// Update edita un cliente. Los pedidos existentes no se resincronizan:
// conservan el nombre y la dirección copiados al crearse.
func (uc *CustomerUseCase) Update(id string, req dto.SaveCustomerRequest) (*entity.Customer, error) {
	customers, err := uc.repo.Customers()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID != id {
			continue
		}
		customers[i].Name = req.Name
		customers[i].Email = req.Email
		customers[i].Phone = req.Phone
		customers[i].Address = req.Address
		customers[i].CNPJ = req.CNPJ
		if err := uc.repo.SaveCustomers(customers); err != nil {
			return nil, err
		}
		out := customers[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
}

// Delete elimina un cliente. Sus pedidos quedan intactos.
func (uc *CustomerUseCase) Delete(id string) error {
	customers, err := uc.repo.Customers()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			if err := uc.repo.SaveCustomers(customers); err != nil {
				return err
			}
			uc.log.Info().Str("customer_id", id).Msg("cliente eliminado")
			return nil
		}
	}
	return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
}
