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

/*
TestTopTaxa covers location matching and rank selection.
*/
func TestTopTaxa(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name  string
		query estadisticas.TaxonomiaQuery
		want  []estadisticas.TaxonCount
	}{
		{
			name:  "region_families",
			query: estadisticas.TaxonomiaQuery{Ubicacion: "Andina", Tipo: estadisticas.TipoRegion, Nivel: estadisticas.NivelFamilia},
			want: []estadisticas.TaxonCount{
				{Name: "Asteraceae", Count: 2, Percentage: 50},
				{Name: "Fagaceae", Count: 2, Percentage: 50},
			},
		},
		{
			name:  "prefixed_region_query",
			query: estadisticas.TaxonomiaQuery{Ubicacion: "Región Pacífica", Tipo: estadisticas.TipoRegion, Nivel: estadisticas.NivelGenero},
			want:  []estadisticas.TaxonCount{{Name: "Wettinia", Count: 1, Percentage: 100}},
		},
		{
			name:  "department_accent_insensitive",
			query: estadisticas.TaxonomiaQuery{Ubicacion: "BOYACA", Tipo: estadisticas.TipoDepartamento, Nivel: estadisticas.NivelGenero},
			want:  []estadisticas.TaxonCount{{Name: "Espeletia", Count: 2, Percentage: 100}},
		},
		{
			name:  "unknown_department",
			query: estadisticas.TaxonomiaQuery{Ubicacion: "Unknown Dept", Tipo: estadisticas.TipoDepartamento, Nivel: estadisticas.NivelFamilia},
			want:  []estadisticas.TaxonCount{},
		},
		{
			name:  "region_name_as_department",
			query: estadisticas.TaxonomiaQuery{Ubicacion: "Andina", Tipo: estadisticas.TipoDepartamento, Nivel: estadisticas.NivelFamilia},
			want:  []estadisticas.TaxonCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := estadisticas.TopTaxa(rows, tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TopTaxa() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

/*
TestTopTaxa_UnresolvedTaxaLeaveDenominator verifies rows without a taxon at the
requested rank do not dilute the percentages.
*/
func TestTopTaxa_UnresolvedTaxaLeaveDenominator(t *testing.T) {
	rows := []estadisticas.Especimen{
		{EspecieID: 1, Genero: "Inga", Familia: "Fabaceae", Departamento: "Meta"},
		{EspecieID: 2, Genero: "", Familia: "Fabaceae", Departamento: "Meta"},
		{EspecieID: 3, Genero: "Inga", Familia: "Fabaceae", Departamento: "Meta"},
		{EspecieID: 4, Genero: "Vismia", Familia: "Hypericaceae", Departamento: "Meta"},
	}

	got := estadisticas.TopTaxa(rows, estadisticas.TaxonomiaQuery{Ubicacion: "Meta", Tipo: estadisticas.TipoDepartamento, Nivel: estadisticas.NivelGenero})

	want := []estadisticas.TaxonCount{
		{Name: "Inga", Count: 2, Percentage: 67},
		{Name: "Vismia", Count: 1, Percentage: 33},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopTaxa() mismatch (-want +got):\n%s", diff)
	}
}

/*
TestTopTaxa_Top10 verifies the ranking is capped and ordered.
*/
func TestTopTaxa_Top10(t *testing.T) {
	rows := make([]estadisticas.Especimen, 0)
	for i := 0; i < 12; i++ {
		for j := 0; j <= i; j++ {
			rows = append(rows, estadisticas.Especimen{
				EspecieID: int64(i), Familia: fmt.Sprintf("Familia %02d", i), Region: "Región Orinoquía",
			})
		}
	}

	got := estadisticas.TopTaxa(rows, estadisticas.TaxonomiaQuery{Ubicacion: "orinoquia", Tipo: estadisticas.TipoRegion, Nivel: estadisticas.NivelFamilia})

	assert.Len(t, got, estadisticas.TopN)
	assert.Equal(t, "Familia 11", got[0].Name)
	assert.Equal(t, 12, got[0].Count)
	assert.Equal(t, "Familia 02", got[len(got)-1].Name)
}

/*
TestTopTaxa_ExactHalvesRoundUp verifies a 23 of 40 share reports 58.
*/
func TestTopTaxa_ExactHalvesRoundUp(t *testing.T) {
	rows := make([]estadisticas.Especimen, 0, 40)
	for i := 0; i < 40; i++ {
		familia := "Fagaceae"
		if i >= 23 {
			familia = "Arecaceae"
		}
		rows = append(rows, estadisticas.Especimen{EspecieID: int64(i), Familia: familia, Departamento: "Antioquia"})
	}

	got := estadisticas.TopTaxa(rows, estadisticas.TaxonomiaQuery{Ubicacion: "Antioquia", Tipo: estadisticas.TipoDepartamento, Nivel: estadisticas.NivelFamilia})

	want := []estadisticas.TaxonCount{
		{Name: "Fagaceae", Count: 23, Percentage: 58},
		{Name: "Arecaceae", Count: 17, Percentage: 43},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopTaxa() mismatch (-want +got):\n%s", diff)
	}
}
