// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import (
	"context"
	"log/slog"
)

// Service implements the reception read views and the operator recompute.
type Service struct {
	repo       Repository
	recomputer *Recomputer
	logger     *slog.Logger
}

// NewService constructs a new package [Service].
func NewService(repo Repository, recomputer *Recomputer, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		recomputer: recomputer,
		logger:     logger,
	}
}

// List returns a page of packages, optionally restricted to some states.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Paquete, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// Get returns one package with its sample count.
func (service *Service) Get(context context.Context, id int64) (*Paquete, error) {
	return service.repo.FindByID(context, id)
}

/*
ListMuestras returns the samples of a package with the state of their
latest classification.

Returns:
  - []*Muestra: Samples ordered by id, empty for a package without samples
  - error: NOT_FOUND when the package does not exist
*/
func (service *Service) ListMuestras(context context.Context, paqueteID int64) ([]*Muestra, error) {
	if _, err := service.repo.FindEstado(context, paqueteID); err != nil {
		return nil, err
	}
	return service.repo.ListMuestras(context, paqueteID)
}

// Recalcular runs the recompute synchronously for operators.
func (service *Service) Recalcular(context context.Context, paqueteID int64) (*Resultado, error) {
	resultado, err := service.recomputer.Recompute(context, paqueteID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("paquete_recalculado",
		slog.Int64("paquete_id", paqueteID),
		slog.String("estado", string(resultado.Estado)),
		slog.Bool("cambiado", resultado.Cambiado),
	)
	return resultado, nil
}
