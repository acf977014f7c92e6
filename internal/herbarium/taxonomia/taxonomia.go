// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package taxonomia serves the read-only family → genus → species tree the
// lab picks determinations from.
package taxonomia

// Familia is a botanical family.
type Familia struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Genero is a genus within a family.
type Genero struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	FamiliaID int64  `json:"familia_id"`
}

// Especie is a species with its IUCN category, when assessed.
type Especie struct {
	ID               int64   `json:"id"`
	NombreCientifico string  `json:"nombre_cientifico"`
	NombreComun      *string `json:"nombre_comun"`
	GeneroID         int64   `json:"genero_id"`
	TipoAmenaza      *string `json:"tipo_amenaza"`
}
