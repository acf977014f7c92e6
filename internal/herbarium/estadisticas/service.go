// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package estadisticas

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/herbario/internal/platform/apperr"
)

// Service assembles the herbarium dashboards.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new statistics [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Resumen computes the full statistics body.

Description: The specimen rows and the classification count are read
concurrently; either failure fails the whole request.

Returns:
  - *Resumen: Department, region and threat distributions
  - error: Storage errors
*/
func (service *Service) Resumen(ctx context.Context) (*Resumen, error) {
	var (
		rows                 []Especimen
		totalClasificaciones int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		rows, err = service.repo.ListEspecimenes(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		totalClasificaciones, err = service.repo.CountClasificaciones(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	resumen := Summarize(rows, totalClasificaciones)
	return &resumen, nil
}

/*
Taxonomia ranks families or genera at one location.

Returns:
  - []TaxonCount: At most ten entries, empty for an unknown location
  - error: VALIDATION_ERROR naming every missing or invalid parameter, or storage errors
*/
func (service *Service) Taxonomia(ctx context.Context, query TaxonomiaQuery) ([]TaxonCount, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	rows, err := service.repo.ListEspecimenes(ctx)
	if err != nil {
		return nil, err
	}

	return TopTaxa(rows, query), nil
}

func validateQuery(query TaxonomiaQuery) error {
	var missing []string
	var details []apperr.FieldError

	if strings.TrimSpace(query.Ubicacion) == "" {
		missing = append(missing, ParamUbicacion)
	}

	switch query.Tipo {
	case "":
		missing = append(missing, ParamTipo)
	case TipoDepartamento, TipoRegion:
	default:
		details = append(details, apperr.FieldError{Field: ParamTipo, Message: "Must be one of: departamento, region"})
	}

	switch query.Nivel {
	case "":
		missing = append(missing, ParamNivel)
	case NivelFamilia, NivelGenero:
	default:
		details = append(details, apperr.FieldError{Field: ParamNivel, Message: "Must be one of: familia, genero"})
	}

	if len(missing) > 0 {
		for _, param := range missing {
			details = append(details, apperr.FieldError{Field: param, Message: "This field is required"})
		}
		return apperr.ValidationError("Missing required parameters: "+strings.Join(missing, ", "), details...)
	}

	if len(details) > 0 {
		return apperr.ValidationError("Invalid parameters", details...)
	}
	return nil
}
