package usecase

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/metrics"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// GoalUseCase gestiona las metas de venta mensuales y su seguimiento.
type GoalUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewGoalUseCase crea el caso de uso de metas.
func NewGoalUseCase(repo repository.StateRepository, log *logger.Logger) *GoalUseCase {
	return &GoalUseCase{repo: repo, log: log}
}

// List devuelve todas las metas guardadas.
func (uc *GoalUseCase) List() ([]entity.SalesGoal, error) {
	return uc.repo.SalesGoals()
}

// Save hace upsert de la meta del mes: si ya existe una meta para ese mes se
// reemplaza, si no se agrega. Nunca hay dos metas del mismo mes.
func (uc *GoalUseCase) Save(req dto.SaveGoalRequest) (*entity.SalesGoal, error) {
	if !monthPattern.MatchString(req.Month) {
		return nil, fmt.Errorf("%w: mes %q, se espera YYYY-MM", domain.ErrInvalidInput, req.Month)
	}

	goals, err := uc.repo.SalesGoals()
	if err != nil {
		return nil, err
	}

	goal := entity.SalesGoal{
		ID:              uuid.New().String(),
		Month:           req.Month,
		WholesaleTarget: req.WholesaleTarget,
		RetailTarget:    req.RetailTarget,
	}
	replaced := false
	for i := range goals {
		if goals[i].Month == req.Month {
			goal.ID = goals[i].ID
			goals[i] = goal
			replaced = true
			break
		}
	}
	if !replaced {
		goals = append(goals, goal)
	}

	if err := uc.repo.SaveSalesGoals(goals); err != nil {
		return nil, err
	}
	uc.log.Info().Str("month", goal.Month).Msg("meta de venta guardada")
	return &goal, nil
}

// Progress compara la meta del mes contra lo realizado.
func (uc *GoalUseCase) Progress(month string) (*metrics.GoalProgress, error) {
	if !monthPattern.MatchString(month) {
		return nil, fmt.Errorf("%w: mes %q, se espera YYYY-MM", domain.ErrInvalidInput, month)
	}
	goals, err := uc.repo.SalesGoals()
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	p := metrics.Progress(goals, orders, month)
	return &p, nil
}

// Trend devuelve la ventana de seguimiento de los últimos seis meses.
func (uc *GoalUseCase) Trend() ([]metrics.GoalProgress, error) {
	goals, err := uc.repo.SalesGoals()
	if err != nil {
		return nil, err
	}
	orders, err := uc.repo.Orders()
	if err != nil {
		return nil, err
	}
	return metrics.Trend(goals, orders, time.Now()), nil
}
