// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package clasificacion

import "context"

// Repository defines the persistence operations for classification records.
type Repository interface {
	// Create inserts a new record and returns it as stored.
	Create(context context.Context, input NuevaClasificacion, estado Estado) (*Clasificacion, error)

	// FindByID returns one record or ErrNotFound.
	FindByID(context context.Context, id int64) (*Clasificacion, error)

	// FindLatestByMuestra returns the most recently created record of a sample.
	FindLatestByMuestra(context context.Context, muestraID int64) (*Clasificacion, error)

	// UpdateEstado changes the state of one record and returns it.
	UpdateEstado(context context.Context, id int64, estado Estado) (*Clasificacion, error)

	// UpdateEstadoByMuestra changes the state of the latest record of a sample.
	UpdateEstadoByMuestra(context context.Context, muestraID int64, estado Estado) (*Clasificacion, error)

	// MuestraExists reports whether the sample is registered.
	MuestraExists(context context.Context, muestraID int64) (bool, error)
}
