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

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewProductUseCase crea el caso de uso de productos.
func NewProductUseCase(repo repository.StateRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// List devuelve el catálogo, filtrado por búsqueda insensible a mayúsculas y
// acentos cuando query no está vacío.
func (uc *ProductUseCase) List(query string) ([]entity.Product, error) {
	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return products, nil
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if normalize.Contains(p.Name, query) || normalize.Contains(p.Description, query) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID busca un producto por id.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
}

// Create da de alta un producto. El stock inicial (si viene) se fija
// directamente; las modificaciones posteriores pasan por el inventario.
func (uc *ProductUseCase) Create(req dto.SaveProductRequest) (*entity.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}

	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}

	p := entity.Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Image:       req.Image,
		SupplierID:  req.SupplierID,
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	products = append(products, p)
	if err := uc.repo.SaveProducts(products); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("producto creado")
	return &p, nil
}

// Update edita los datos del producto. El stock no se toca: solo lo mueven
// el inventario y los pedidos.
func (uc *ProductUseCase) Update(id string, req dto.SaveProductRequest) (*entity.Product, error) {
	products, err := uc.repo.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = req.Name
		products[i].Description = req.Description
		products[i].Price = req.Price
		products[i].CostPrice = req.CostPrice
		products[i].Image = req.Image
		products[i].SupplierID = req.SupplierID
		if err := uc.repo.SaveProducts(products); err != nil {
			return nil, err
		}
		out := products[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
}

// Delete elimina un producto del catálogo. Los pedidos históricos conservan
// sus líneas porque guardan nombre y precio desnormalizados.
func (uc *ProductUseCase) Delete(id string) error {
	products, err := uc.repo.Products()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := uc.repo.SaveProducts(products); err != nil {
				return err
			}
			uc.log.Info().Str("product_id", id).Msg("producto eliminado")
			return nil
		}
	}
	return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
}
