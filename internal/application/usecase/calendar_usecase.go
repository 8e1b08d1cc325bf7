package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hspsystem/gestor-api/internal/application/dto"
	"github.com/hspsystem/gestor-api/internal/domain"
	"github.com/hspsystem/gestor-api/internal/domain/entity"
	"github.com/hspsystem/gestor-api/internal/domain/metrics"
	"github.com/hspsystem/gestor-api/internal/domain/repository"
	"github.com/hspsystem/gestor-api/pkg/logger"
)

// CalendarUseCase gestiona la agenda de visitas y entregas.
type CalendarUseCase struct {
	repo repository.StateRepository
	log  *logger.Logger
}

// NewCalendarUseCase crea el caso de uso de agenda.
func NewCalendarUseCase(repo repository.StateRepository, log *logger.Logger) *CalendarUseCase {
	return &CalendarUseCase{repo: repo, log: log}
}

func validEventType(t string) bool {
	switch entity.EventType(t) {
	case entity.EventVisit, entity.EventDelivery, entity.EventOther:
		return true
	}
	return false
}

// List devuelve todos los eventos ordenados por fecha y hora.
func (uc *CalendarUseCase) List() ([]entity.CalendarEvent, error) {
	events, err := uc.repo.Events()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}

// Upcoming devuelve los eventos de hoy y mañana.
func (uc *CalendarUseCase) Upcoming() ([]entity.CalendarEvent, error) {
	events, err := uc.repo.Events()
	if err != nil {
		return nil, err
	}
	return metrics.UpcomingAgenda(events, time.Now()), nil
}

// Create da de alta un evento.
func (uc *CalendarUseCase) Create(req dto.SaveEventRequest) (*entity.CalendarEvent, error) {
	if req.Title == "" || req.Date == "" {
		return nil, fmt.Errorf("%w: título y fecha son obligatorios", domain.ErrInvalidInput)
	}
	if !validEventType(req.Type) {
		return nil, fmt.Errorf("%w: tipo de evento %q", domain.ErrInvalidInput, req.Type)
	}

	events, err := uc.repo.Events()
	if err != nil {
		return nil, err
	}
	e := entity.CalendarEvent{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Type:        entity.EventType(req.Type),
		RelatedID:   req.RelatedID,
		RelatedName: req.RelatedName,
	}
	events = append(events, e)
	if err := uc.repo.SaveEvents(events); err != nil {
		return nil, err
	}
	uc.log.Info().Str("event_id", e.ID).Str("date", e.Date).Msg("evento creado")
	return &e, nil
}

// Update edita un evento.
func (uc *CalendarUseCase) Update(id string, req dto.SaveEventRequest) (*entity.CalendarEvent, error) {
	if !validEventType(req.Type) {
		return nil, fmt.Errorf("%w: tipo de evento %q", domain.ErrInvalidInput, req.Type)
	}
	events, err := uc.repo.Events()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID != id {
			continue
		}
		events[i].Title = req.Title
		events[i].Description = req.Description
		events[i].Date = req.Date
		events[i].Time = req.Time
		events[i].Type = entity.EventType(req.Type)
		events[i].RelatedID = req.RelatedID
		events[i].RelatedName = req.RelatedName
		if err := uc.repo.SaveEvents(events); err != nil {
			return nil, err
		}
		out := events[i]
		return &out, nil
	}
	return nil, fmt.Errorf("%w: evento %s", domain.ErrNotFound, id)
}

// Delete elimina un evento.
func (uc *CalendarUseCase) Delete(id string) error {
	events, err := uc.repo.Events()
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].ID == id {
			events = append(events[:i], events[i+1:]...)
			if err := uc.repo.SaveEvents(events); err != nil {
				return err
			}
			uc.log.Info().Str("event_id", id).Msg("evento eliminado")
			return nil
		}
	}
	return fmt.Errorf("%w: evento %s", domain.ErrNotFound, id)
}
