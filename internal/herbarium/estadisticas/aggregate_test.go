// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package estadisticas_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herbario/internal/herbarium/estadisticas"
)

// sampleRows mixes prefixed, unprefixed and unaccented region spellings.
func sampleRows() []estadisticas.Especimen {
	return []estadisticas.Especimen{
		{EspecieID: 1, Especie: "Quercus humboldtii", Genero: "Quercus", Familia: "Fagaceae", Departamento: "Antioquia", Region: "Región Andina"},
		{EspecieID: 2, Especie: "Espeletia grandiflora", Genero: "Espeletia", Familia: "Asteraceae", Departamento: "Boyacá", Region: "Andina", TipoAmenaza: "VU"},
		{EspecieID: 1, Especie: "Quercus humboldtii", Genero: "Quercus", Familia: "Fagaceae", Departamento: "Antioquia", Region: "región andina"},
		{EspecieID: 3, Especie: "Rhizophora mangle", Genero: "Rhizophora", Familia: "Rhizophoraceae", Departamento: "Bolívar", Region: "Región Caribe", TipoAmenaza: "EN"},
		{EspecieID: 4, Especie: "Incertae sedis"},
		{EspecieID: 5, Especie: "Wettinia kalbreyeri", Genero: "Wettinia", Familia: "Arecaceae", Departamento: "Chocó", Region: "Region Pacifica", TipoAmenaza: "VU"},
		{EspecieID: 6, Especie: "Mauritia flexuosa", Genero: "Mauritia", Familia: "Arecaceae", Departamento: "Amazonas", Region: "Amazonía"},
		{EspecieID: 2, Especie: "Espeletia grandiflora", Genero: "Espeletia", Familia: "Asteraceae", Departamento: "boyaca", Region: "Andina", TipoAmenaza: "VU"},
	}
}

/*
TestSummarize verifies every distribution over a mixed dataset.
*/
func TestSummarize(t *testing.T) {
	got := estadisticas.Summarize(sampleRows(), 11)

	want := estadisticas.Resumen{
		Departamentos: []estadisticas.DepartamentoStat{
			{Nombre: "Antioquia", Especimenes: 2, Especies: 1, Porcentaje: 25},
			{Nombre: "Boyacá", Especimenes: 2, Especies: 1, Porcentaje: 25},
			{Nombre: "Amazonas", Especimenes: 1, Especies: 1, Porcentaje: 13},
			{Nombre: "Bolívar", Especimenes: 1, Especies: 1, Porcentaje: 13},
			{Nombre: "Chocó", Especimenes: 1, Especies: 1, Porcentaje: 13},
		},
		Regiones: []estadisticas.RegionStat{
			{Nombre: "Andina", Especimenes: 4, Especies: 2, Familias: 2, Departamentos: 2, Porcentaje: 50},
			{Nombre: "Caribe", Especimenes: 1, Especies: 1, Familias: 1, Departamentos: 1, Porcentaje: 13},
			{Nombre: "Pacífica", Especimenes: 1, Especies: 1, Familias: 1, Departamentos: 1, Porcentaje: 13},
			{Nombre: "Orinoquía"},
			{Nombre: "Amazonía", Especimenes: 1, Especies: 1, Familias: 1, Departamentos: 1, Porcentaje: 13},
		},
		EspeciesAmenazadas: []estadisticas.AmenazaStat{
			{Categoria: estadisticas.SinAmenaza, Cantidad: 4, Porcentaje: 50},
			{Categoria: "VU", Cantidad: 3, Porcentaje: 37.5},
			{Categoria: "EN", Cantidad: 1, Porcentaje: 12.5},
		},
		TotalEspecimenes:     8,
		TotalClasificaciones: 11,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

/*
TestSummarize_Empty verifies the zero-specimen shape.
*/
func TestSummarize_Empty(t *testing.T) {
	got := estadisticas.Summarize(nil, 0)

	assert.Equal(t, 0, got.TotalEspecimenes)
	assert.NotNil(t, got.Departamentos)
	assert.Empty(t, got.Departamentos)
	assert.NotNil(t, got.EspeciesAmenazadas)
	assert.Empty(t, got.EspeciesAmenazadas)

	assert.Len(t, got.Regiones, len(estadisticas.Regiones))
	for i, region := range got.Regiones {
		assert.Equal(t, estadisticas.Regiones[i], region.Nombre)
		assert.Zero(t, region.Especimenes)
		assert.Zero(t, region.Porcentaje)
	}
}

/*
TestSummarize_TopDepartments verifies the department list is capped.
*/
func TestSummarize_TopDepartments(t *testing.T) {
	rows := make([]estadisticas.Especimen, 0)
	for i := 0; i < 12; i++ {
		rows = append(rows, estadisticas.Especimen{EspecieID: int64(i), Departamento: fmt.Sprintf("Depto %02d", i)})
	}
	rows = append(rows, estadisticas.Especimen{EspecieID: 99, Departamento: "Depto 11"})

	got := estadisticas.Summarize(rows, len(rows))

	assert.Len(t, got.Departamentos, estadisticas.TopN)
	assert.Equal(t, "Depto 11", got.Departamentos[0].Nombre)
	assert.Equal(t, 2, got.Departamentos[0].Especies)
	assert.Equal(t, "Depto 00", got.Departamentos[1].Nombre)
}

/*
TestSummarize_ThreatPercentagesAddUp verifies threat shares sum to 100 within rounding.
*/
func TestSummarize_ThreatPercentagesAddUp(t *testing.T) {
	rows := make([]estadisticas.Especimen, 0)
	for i, categoria := range []string{"CR", "EN", "VU", "", "", "NT", "LC"} {
		rows = append(rows, estadisticas.Especimen{EspecieID: int64(i), TipoAmenaza: categoria})
	}

	got := estadisticas.Summarize(rows, len(rows))

	sum := 0.0
	for _, amenaza := range got.EspeciesAmenazadas {
		sum += amenaza.Porcentaje
	}
	assert.InDelta(t, 100.0, sum, 0.5)
	assert.Equal(t, estadisticas.SinAmenaza, got.EspeciesAmenazadas[0].Categoria)
	assert.Equal(t, 28.6, got.EspeciesAmenazadas[0].Porcentaje)
}

/*
TestRegionKey verifies prefixed and plain region names share one bucket.
*/
func TestRegionKey(t *testing.T) {
	assert.Equal(t, estadisticas.RegionKey("Andina"), estadisticas.RegionKey("Región Andina"))
	assert.Equal(t, estadisticas.RegionKey("Orinoquía"), estadisticas.RegionKey("REGION ORINOQUIA"))
	assert.NotEqual(t, estadisticas.RegionKey("Caribe"), estadisticas.RegionKey("Andina"))
}

// splitRows returns andina rows in Antioquia followed by pacifica rows in Chocó.
func splitRows(andina, pacifica int) []estadisticas.Especimen {
	rows := make([]estadisticas.Especimen, 0, andina+pacifica)
	for i := 0; i < andina; i++ {
		rows = append(rows, estadisticas.Especimen{
			EspecieID: 1, Genero: "Quercus", Familia: "Fagaceae", Departamento: "Antioquia", Region: "Región Andina", TipoAmenaza: "VU",
		})
	}
	for i := 0; i < pacifica; i++ {
		rows = append(rows, estadisticas.Especimen{
			EspecieID: 5, Genero: "Wettinia", Familia: "Arecaceae", Departamento: "Chocó", Region: "Región Pacífica",
		})
	}
	return rows
}

/*
TestSummarize_ExactHalvesRoundUp verifies shares ending in exactly .5 round up.
*/
func TestSummarize_ExactHalvesRoundUp(t *testing.T) {
	got := estadisticas.Summarize(splitRows(23, 17), 40)

	assert.Equal(t, "Antioquia", got.Departamentos[0].Nombre)
	assert.Equal(t, 58, got.Departamentos[0].Porcentaje)
	assert.Equal(t, 43, got.Departamentos[1].Porcentaje)

	assert.Equal(t, "Andina", got.Regiones[0].Nombre)
	assert.Equal(t, 58, got.Regiones[0].Porcentaje)
	assert.Equal(t, 43, got.Regiones[2].Porcentaje)

	assert.Equal(t, "VU", got.EspeciesAmenazadas[0].Categoria)
	assert.Equal(t, 57.5, got.EspeciesAmenazadas[0].Porcentaje)
	assert.Equal(t, 42.5, got.EspeciesAmenazadas[1].Porcentaje)

	tests := []struct {
		part, total int
		whole       int
	}{
		{29, 200, 15},
		{113, 200, 57},
		{1, 8, 13},
	}
	for _, tt := range tests {
		got := estadisticas.Summarize(splitRows(tt.part, tt.total-tt.part), tt.total)
		assert.Equal(t, tt.whole, got.Regiones[0].Porcentaje, "%d/%d", tt.part, tt.total)
	}
}

/*
TestSummarize_OneDecimalHalvesRoundUp verifies threat shares ending in .x5 round up.
*/
func TestSummarize_OneDecimalHalvesRoundUp(t *testing.T) {
	got := estadisticas.Summarize(splitRows(1, 79), 80)

	assert.Equal(t, estadisticas.SinAmenaza, got.EspeciesAmenazadas[0].Categoria)
	assert.Equal(t, 98.8, got.EspeciesAmenazadas[0].Porcentaje)
	assert.Equal(t, 1.3, got.EspeciesAmenazadas[1].Porcentaje)
}
