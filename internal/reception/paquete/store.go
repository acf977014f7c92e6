// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import (
	"context"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
)

// Repository defines the persistence operations for packages and their samples.
type Repository interface {
	// # Read views

	List(context context.Context, filter Filter, limit, offset int) ([]*Paquete, int, error)
	FindByID(context context.Context, id int64) (*Paquete, error)
	ListMuestras(context context.Context, paqueteID int64) ([]*Muestra, error)

	// # Derivation inputs

	// FindEstado returns the stored state of a package or ErrNotFound.
	FindEstado(context context.Context, id int64) (Estado, error)

	// ClassificationStates returns one entry per sample of the package: the
	// state of its latest classification, or [clasificacion.EstadoNinguno].
	ClassificationStates(context context.Context, paqueteID int64) ([]clasificacion.Estado, error)

	// PaqueteIDForMuestra resolves the owning package of a sample.
	// It returns nil when the sample is not assigned to any package.
	PaqueteIDForMuestra(context context.Context, muestraID int64) (*int64, error)

	// # Derivation output

	// UpdateEstado stores estado and reports whether the row actually changed.
	UpdateEstado(context context.Context, id int64, estado Estado) (bool, error)
}
