// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import "github.com/taibuivan/herbario/internal/lab/clasificacion"

// Conteo is the tally a package state is derived from.
type Conteo struct {
	Total      int `json:"total"`
	Completas  int `json:"completas"`
	EnProgreso int `json:"en_progreso"`
}

// Contar tallies the classification state of every sample in a package.
// [clasificacion.EstadoNinguno] marks a sample without classification.
func Contar(estados []clasificacion.Estado) Conteo {
	conteo := Conteo{Total: len(estados)}
	for _, estado := range estados {
		switch {
		case estado.IsFinished():
			conteo.Completas++
		case estado.IsInProgress():
			conteo.EnProgreso++
		}
	}
	return conteo
}

// Estado maps the tally to a package state.
//
// An empty package is never complete. A package with some finished samples
// and the rest untouched is still en_proceso: work on it has started.
func (c Conteo) Estado() Estado {
	switch {
	case c.Total > 0 && c.Completas == c.Total:
		return EstadoCompleto
	case c.EnProgreso > 0 || c.Completas > 0:
		return EstadoEnProceso
	default:
		return EstadoRecibido
	}
}

// Derive returns the package state for the given sample classification states.
func Derive(estados []clasificacion.Estado) Estado {
	return Contar(estados).Estado()
}
