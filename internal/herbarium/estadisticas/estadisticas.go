// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package estadisticas computes the herbarium dashboards.

Every request reads the classified specimens once through a single join and
groups them in memory. Nothing is cached between requests.

# Core Responsibility

  - [Summarize]: distributions by department, region and threat category.
  - [TopTaxa]: the ten most frequent families or genera at one location.
*/
package estadisticas

// # Input Rows

// Especimen is one finished classification with its taxonomy and geography
// resolved. Unresolvable links are empty strings.
type Especimen struct {
	EspecieID    int64
	Especie      string
	Genero       string
	Familia      string
	Departamento string
	Region       string
	TipoAmenaza  string
}

// # Summary Output

// DepartamentoStat is the share of specimens collected in one department.
type DepartamentoStat struct {
	Nombre      string `json:"nombre"`
	Especimenes int    `json:"especimenes"`
	Especies    int    `json:"especies"`
	Porcentaje  int    `json:"porcentaje"`
}

// RegionStat is the share of specimens collected in one natural region.
type RegionStat struct {
	Nombre        string `json:"nombre"`
	Especimenes   int    `json:"especimenes"`
	Especies      int    `json:"especies"`
	Familias      int    `json:"familias"`
	Departamentos int    `json:"departamentos"`
	Porcentaje    int    `json:"porcentaje"`
}

// AmenazaStat counts specimens of one conservation category.
// Porcentaje keeps one decimal.
type AmenazaStat struct {
	Categoria  string  `json:"categoria"`
	Cantidad   int     `json:"cantidad"`
	Porcentaje float64 `json:"porcentaje"`
}

// Resumen is the body of GET /estadisticas.
type Resumen struct {
	Departamentos        []DepartamentoStat `json:"departamentos"`
	Regiones             []RegionStat       `json:"regiones"`
	EspeciesAmenazadas   []AmenazaStat      `json:"especies_amenazadas"`
	TotalEspecimenes     int                `json:"total_especimenes"`
	TotalClasificaciones int                `json:"total_clasificaciones"`
}

// # Taxonomy Filter

// Tipo selects how a location is matched.
type Tipo string

const (
	TipoDepartamento Tipo = "departamento"
	TipoRegion       Tipo = "region"
)

// Nivel selects the taxonomic rank being counted.
type Nivel string

const (
	NivelFamilia Nivel = "familia"
	NivelGenero  Nivel = "genero"
)

// TaxonomiaQuery holds the parameters of GET /estadisticas/taxonomia.
type TaxonomiaQuery struct {
	Ubicacion string
	Tipo      Tipo
	Nivel     Nivel
}

// TaxonCount is one entry of the taxonomy ranking.
type TaxonCount struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// # Constants

const (
	// SinAmenaza labels species without a conservation category.
	SinAmenaza = "No Amenazado"

	// TopN bounds the department list and the taxonomy ranking.
	TopN = 10

	regionPrefix = "Región"
)

// Regiones is the fixed display order of Colombia's natural regions.
var Regiones = []string{"Andina", "Caribe", "Pacífica", "Orinoquía", "Amazonía"}

// # Query Parameters

const (
	ParamUbicacion = "ubicacion"
	ParamTipo      = "tipo"
	ParamNivel     = "nivel"
)
