// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package clasificacion

import (
	"context"
	"log/slog"

	"github.com/taibuivan/herbario/internal/platform/apperr"
	"github.com/taibuivan/herbario/internal/platform/validate"
	"github.com/taibuivan/herbario/pkg/pointer"
	"github.com/taibuivan/herbario/pkg/slice"
)

// Recomputer re-derives the state of the package owning a sample.
//
// Implementations must return immediately; the work runs detached from the
// caller and its failures never reach it.
type Recomputer interface {
	ScheduleForSample(context context.Context, muestraID int64)
}

// Service implements the lab's classification workflows.
type Service struct {
	repo       Repository
	recomputer Recomputer
	logger     *slog.Logger
}

// NewService constructs a new classification [Service].
func NewService(repo Repository, recomputer Recomputer, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		recomputer: recomputer,
		logger:     logger,
	}
}

// # Lookups

// Get returns one classification by its identifier.
func (service *Service) Get(context context.Context, id int64) (*Clasificacion, error) {
	return service.repo.FindByID(context, id)
}

// GetByMuestra returns the current classification of a sample.
func (service *Service) GetByMuestra(context context.Context, muestraID int64) (*Clasificacion, error) {
	return service.repo.FindLatestByMuestra(context, muestraID)
}

// # Intake

/*
Create opens a new determination for a sample in the borrador state.

Description: Validates the payload, checks the sample exists and inserts the
record. A second open determination for the same sample is rejected by
storage with CONFLICT.

Parameters:
  - context: context.Context
  - input: NuevaClasificacion

Returns:
  - *Clasificacion: The stored record
  - error: Validation, not found or conflict errors
*/
func (service *Service) Create(context context.Context, input NuevaClasificacion) (*Clasificacion, error) {
	validator := &validate.Validator{}

	validator.PositiveID(FieldMuestraID, input.MuestraID)
	validator.OneOf(FieldEstadoReproductivo, string(input.EstadoReproductivo), slice.Map(EstadosReproductivos, func(e EstadoReproductivo) string {
		return string(e)
	})...)
	validator.Custom(FieldEspecieID, input.EspecieID != nil && *input.EspecieID <= 0, "Must be a positive identifier")
	if input.FotoURL != nil {
		validator.MaxLen(FieldFotoURL, *input.FotoURL, MaxFotoURLLen).URL(FieldFotoURL, *input.FotoURL)
	}
	if input.DeterminadorID != nil {
		validator.MaxLen(FieldDeterminadorID, *input.DeterminadorID, MaxDeterminadorLen)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := service.repo.MuestraExists(context, input.MuestraID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Muestra")
	}

	clasificacion, err := service.repo.Create(context, input, EstadoBorrador)
	if err != nil {
		return nil, err
	}

	service.logger.Info("clasificacion_created",
		slog.Int64("clasificacion_id", clasificacion.ID),
		slog.Int64("muestra_id", clasificacion.MuestraID),
		slog.String("determinador_id", pointer.Val(clasificacion.DeterminadorID)),
	)

	service.recomputer.ScheduleForSample(context, clasificacion.MuestraID)
	return clasificacion, nil
}

// # Transitions

// UpdateEstado moves one classification to a new state and schedules the
// owning package's recompute.
func (service *Service) UpdateEstado(context context.Context, id int64, estado Estado) (*Clasificacion, error) {
	if err := validateEstado(estado); err != nil {
		return nil, err
	}

	clasificacion, err := service.repo.UpdateEstado(context, id, estado)
	if err != nil {
		return nil, err
	}

	service.afterTransition(context, clasificacion)
	return clasificacion, nil
}

// UpdateEstadoByMuestra moves the latest classification of a sample to a new
// state and schedules the owning package's recompute.
func (service *Service) UpdateEstadoByMuestra(context context.Context, muestraID int64, estado Estado) (*Clasificacion, error) {
	if err := validateEstado(estado); err != nil {
		return nil, err
	}

	clasificacion, err := service.repo.UpdateEstadoByMuestra(context, muestraID, estado)
	if err != nil {
		return nil, err
	}

	service.afterTransition(context, clasificacion)
	return clasificacion, nil
}

func (service *Service) afterTransition(context context.Context, clasificacion *Clasificacion) {
	service.logger.Info("clasificacion_estado_actualizado",
		slog.Int64("clasificacion_id", clasificacion.ID),
		slog.Int64("muestra_id", clasificacion.MuestraID),
		slog.String("estado", string(clasificacion.Estado)),
	)
	service.recomputer.ScheduleForSample(context, clasificacion.MuestraID)
}

func validateEstado(estado Estado) error {
	validator := &validate.Validator{}
	if validator.Required(FieldEstado, string(estado)).HasErrors() {
		return validator.Err()
	}

	validator.OneOf(FieldEstado, string(estado), slice.Map(Estados, func(e Estado) string {
		return string(e)
	})...)
	return validator.Err()
}
