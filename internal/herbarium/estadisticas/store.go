// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package estadisticas

import "context"

// Repository reads the dashboard inputs.
type Repository interface {
	// ListEspecimenes returns every finished classification that names a species.
	ListEspecimenes(context context.Context) ([]Especimen, error)

	// CountClasificaciones counts classification records in any state.
	CountClasificaciones(context context.Context) (int, error)
}
