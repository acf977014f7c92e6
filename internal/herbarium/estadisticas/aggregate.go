// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package estadisticas

import (
	"sort"

	"github.com/taibuivan/herbario/pkg/slice"
	"github.com/taibuivan/herbario/pkg/textnorm"
)

/*
Summarize groups classified specimens by department, region and threat
category.

Description: Department and region shares are whole percentages of the
specimen total; threat shares keep one decimal. Every fixed region appears
even without data. With no specimens every percentage is 0.

Parameters:
  - rows: []Especimen, one per finished classification
  - totalClasificaciones: int, passed through to the response

Returns:
  - Resumen: The dashboard body
*/
func Summarize(rows []Especimen, totalClasificaciones int) Resumen {
	total := len(rows)

	return Resumen{
		Departamentos:        byDepartamento(rows, total),
		Regiones:             byRegion(rows, total),
		EspeciesAmenazadas:   byAmenaza(rows, total),
		TotalEspecimenes:     total,
		TotalClasificaciones: totalClasificaciones,
	}
}

// # Departments

type departamentoAcc struct {
	nombre      string
	especimenes int
	especies    map[int64]struct{}
}

func byDepartamento(rows []Especimen, total int) []DepartamentoStat {
	groups := make(map[string]*departamentoAcc)

	for _, row := range rows {
		nombre := textnorm.Clean(row.Departamento)
		if nombre == "" {
			continue
		}

		key := textnorm.Key(nombre)
		acc, ok := groups[key]
		if !ok {
			acc = &departamentoAcc{nombre: nombre, especies: make(map[int64]struct{})}
			groups[key] = acc
		}
		acc.especimenes++
		acc.especies[row.EspecieID] = struct{}{}
	}

	stats := make([]DepartamentoStat, 0, len(groups))
	for _, acc := range groups {
		stats = append(stats, DepartamentoStat{
			Nombre:      acc.nombre,
			Especimenes: acc.especimenes,
			Especies:    len(acc.especies),
			Porcentaje:  percent(acc.especimenes, total),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Especimenes != stats[j].Especimenes {
			return stats[i].Especimenes > stats[j].Especimenes
		}
		return stats[i].Nombre < stats[j].Nombre
	})

	if len(stats) > TopN {
		stats = stats[:TopN]
	}
	return stats
}

// # Regions

type regionAcc struct {
	especimenes   int
	especies      map[int64]struct{}
	familias      map[string]struct{}
	departamentos map[string]struct{}
}

func byRegion(rows []Especimen, total int) []RegionStat {
	groups := make(map[string]*regionAcc, len(Regiones))
	for _, nombre := range Regiones {
		groups[textnorm.Key(nombre)] = &regionAcc{
			especies:      make(map[int64]struct{}),
			familias:      make(map[string]struct{}),
			departamentos: make(map[string]struct{}),
		}
	}

	for _, row := range rows {
		acc, ok := groups[RegionKey(row.Region)]
		if !ok {
			continue
		}

		acc.especimenes++
		acc.especies[row.EspecieID] = struct{}{}
		if familia := textnorm.Key(row.Familia); familia != "" {
			acc.familias[familia] = struct{}{}
		}
		if departamento := textnorm.Key(row.Departamento); departamento != "" {
			acc.departamentos[departamento] = struct{}{}
		}
	}

	stats := make([]RegionStat, 0, len(Regiones))
	for _, nombre := range Regiones {
		acc := groups[textnorm.Key(nombre)]
		stats = append(stats, RegionStat{
			Nombre:        nombre,
			Especimenes:   acc.especimenes,
			Especies:      len(acc.especies),
			Familias:      len(acc.familias),
			Departamentos: len(acc.departamentos),
			Porcentaje:    percent(acc.especimenes, total),
		})
	}
	return stats
}

// RegionKey folds a region name for matching: the "Región" prefix is dropped
// and accents and case are ignored, so "Región Pacífica" matches "pacifica".
func RegionKey(nombre string) string {
	return textnorm.Key(textnorm.TrimPrefixFold(nombre, regionPrefix))
}

// # Threat Categories

func byAmenaza(rows []Especimen, total int) []AmenazaStat {
	counts := make(map[string]int)
	for _, row := range rows {
		categoria := textnorm.Clean(row.TipoAmenaza)
		if categoria == "" {
			categoria = SinAmenaza
		}
		counts[categoria]++
	}

	stats := make([]AmenazaStat, 0, len(counts))
	for categoria, cantidad := range counts {
		stats = append(stats, AmenazaStat{
			Categoria:  categoria,
			Cantidad:   cantidad,
			Porcentaje: percentOneDecimal(cantidad, total),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Cantidad != stats[j].Cantidad {
			return stats[i].Cantidad > stats[j].Cantidad
		}
		return stats[i].Categoria < stats[j].Categoria
	})
	return stats
}

// # Taxonomy Ranking

/*
TopTaxa ranks the families or genera found at one location.

Description: Rows outside the location are dropped, then rows without a
taxon at the requested rank. Percentages are whole shares of what is left.
An unknown location yields an empty slice.
*/
func TopTaxa(rows []Especimen, query TaxonomiaQuery) []TaxonCount {
	counts := make(map[string]int)
	names := make(map[string]string)
	filtered := 0

	for _, row := range slice.Filter(rows, locationMatcher(query)) {
		name := textnorm.Clean(taxonAt(row, query.Nivel))
		if name == "" {
			continue
		}

		key := textnorm.Key(name)
		if _, seen := names[key]; !seen {
			names[key] = name
		}
		counts[key]++
		filtered++
	}

	ranking := make([]TaxonCount, 0, len(counts))
	for key, count := range counts {
		ranking = append(ranking, TaxonCount{
			Name:       names[key],
			Count:      count,
			Percentage: percent(count, filtered),
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > TopN {
		ranking = ranking[:TopN]
	}
	return ranking
}

func locationMatcher(query TaxonomiaQuery) func(Especimen) bool {
	if query.Tipo == TipoRegion {
		target := RegionKey(query.Ubicacion)
		return func(row Especimen) bool {
			return target != "" && RegionKey(row.Region) == target
		}
	}

	target := textnorm.Key(query.Ubicacion)
	return func(row Especimen) bool {
		return target != "" && textnorm.Key(row.Departamento) == target
	}
}

func taxonAt(row Especimen, nivel Nivel) string {
	if nivel == NivelGenero {
		return row.Genero
	}
	return row.Familia
}

// # Percentages

// percent returns part/total as a whole percentage, rounding half up.
// Integer arithmetic keeps exact halves such as 23/40 from rounding down.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part*200 + total) / (2 * total)
}

// percentOneDecimal returns part/total as a percentage with one decimal, rounding half up.
func percentOneDecimal(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64((part*2000+total)/(2*total)) / 10
}
