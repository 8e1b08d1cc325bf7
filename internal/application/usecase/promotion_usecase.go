package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// PromotionUseCase CRUD de promociones. El descuento aplicado a un pedido se
// captura en el pedido mismo; la promoción es solo el origen del porcentaje.
type PromotionUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewPromotionUseCase crea el caso de uso de promociones.
func NewPromotionUseCase(repo repository.StateRepository, log *logger.Logger) *PromotionUseCase {
	return &PromotionUseCase{repo: repo, log: log}
}

// List devuelve todas las promociones.
func (uc *PromotionUseCase) List() ([]entity.Promotion, error) {
	return uc.repo.Promotions()
}

// Create da de alta una promoción.
func (uc *PromotionUseCase) Create(req dto.SavePromotionRequest) (*entity.Promotion, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	promos, err := uc.repo.Promotions()
	if err != nil {
		return nil, err
	}
	p := entity.Promotion{
		ID:              uuid.New().String(),
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		Active:          req.Active,
	}
	promos = append(promos, p)
	if err := uc.repo.SavePromotions(promos); err != nil {
		return nil, err
	}
	uc.log.Info().Str("promotion_id", p.ID).Msg("promoción creada")
	return &p, nil
}

// Update edita una promoción.
func (uc *PromotionUseCase) Update(id string, req dto.SavePromotionRequest) (*entity.Promotion, error) {
	promos, err := uc.repo.Promotions()
	if err != nil {
		return nil, err
	}
	for i := range promos {
		if promos[i].ID != id {
			continue
		}
		promos[i].Name = req.Name
		promos[i].DiscountPercent = req.DiscountPercent
		promos[i].Active = req.Active
		if err := uc.repo.SavePromotions(promos); err != nil {
			return nil, err
		}
		out := promos[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: promoción %s", domain.ErrNotFound, id)
}

// Delete elimina una promoción.
func (uc *PromotionUseCase) Delete(id string) error {
	promos, err := uc.repo.Promotions()
	if err != nil {
		return err
	}
	for i := range promos {
		if promos[i].ID == id {
			promos = append(promos[:i], promos[i+1:]...)
			if err := uc.repo.SavePromotions(promos); err != nil {
				return err
			}
			uc.log.Info().Str("promotion_id", id).Msg("promoción eliminada")
			return nil
		}
	}
	return fmt.Errorf("%w: promoción %s", domain.ErrNotFound, id)
}
