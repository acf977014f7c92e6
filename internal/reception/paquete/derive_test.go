// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
	"github.com/taibuivan/herbario/internal/reception/paquete"
)

/*
TestDerive covers the package state table.
*/
func TestDerive(t *testing.T) {
	const (
		none        = clasificacion.EstadoNinguno
		borrador    = clasificacion.EstadoBorrador
		analisis    = clasificacion.EstadoEnAnalisis
		firmado     = clasificacion.EstadoFirmado
		completado  = clasificacion.EstadoCompletado
		clasificado = clasificacion.EstadoClasificado
	)

	tests := []struct {
		name    string
		estados []clasificacion.Estado
		want    paquete.Estado
	}{
		{"empty_package_stays_recibido", nil, paquete.EstadoRecibido},
		{"no_classifications", []clasificacion.Estado{none, none}, paquete.EstadoRecibido},
		{"one_draft", []clasificacion.Estado{none, borrador}, paquete.EstadoEnProceso},
		{"one_in_analysis", []clasificacion.Estado{analisis}, paquete.EstadoEnProceso},
		{"all_finished_mixed", []clasificacion.Estado{completado, firmado, clasificado}, paquete.EstadoCompleto},
		{"two_done_one_missing", []clasificacion.Estado{completado, completado, none}, paquete.EstadoEnProceso},
		{"two_done_one_draft", []clasificacion.Estado{completado, completado, borrador}, paquete.EstadoEnProceso},
		{"unknown_state_ignored", []clasificacion.Estado{"archivado"}, paquete.EstadoRecibido},
		{"single_signed", []clasificacion.Estado{firmado}, paquete.EstadoCompleto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paquete.Derive(tt.estados))
		})
	}
}

/*
TestContar checks the tally behind the derivation.
*/
func TestContar(t *testing.T) {
	conteo := paquete.Contar([]clasificacion.Estado{
		clasificacion.EstadoCompletado,
		clasificacion.EstadoBorrador,
		clasificacion.EstadoEnAnalisis,
		clasificacion.EstadoNinguno,
	})

	assert.Equal(t, paquete.Conteo{Total: 4, Completas: 1, EnProgreso: 2}, conteo)
	assert.Equal(t, paquete.EstadoEnProceso, conteo.Estado())
}

/*
TestDerive_CompleteIffAllFinished checks the completeness property over every
combination of three samples.
*/
func TestDerive_CompleteIffAllFinished(t *testing.T) {
	palette := append([]clasificacion.Estado{clasificacion.EstadoNinguno}, clasificacion.Estados...)

	for _, a := range palette {
		for _, b := range palette {
			for _, c := range palette {
				estados := []clasificacion.Estado{a, b, c}
				allFinished := a.IsFinished() && b.IsFinished() && c.IsFinished()

				assert.Equal(t, allFinished, paquete.Derive(estados) == paquete.EstadoCompleto, "estados=%v", estados)
			}
		}
	}
}
