// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package clasificacion manages the lab's taxonomic determinations.

A [Clasificacion] records one determination attempt for a botanical sample.
It moves through its own lifecycle (borrador → en_analisis → firmado /
completado / clasificado) and every state change asks the reception side to
re-derive the owning package's aggregate state in the background.

# Core Responsibility

  - Lifecycle: Defines [Estado] and which states count as finished or in progress.
  - Intake: Opens new determinations in the borrador state.
  - Transitions: Applies state changes by classification ID or by sample ID.
*/
package clasificacion

import "time"

// # Lifecycle

// Estado is the lifecycle state of a classification record.
type Estado string

const (
	EstadoBorrador    Estado = "borrador"
	EstadoEnAnalisis  Estado = "en_analisis"
	EstadoFirmado     Estado = "firmado"
	EstadoCompletado  Estado = "completado"
	EstadoClasificado Estado = "clasificado"

	// EstadoNinguno stands for a sample that has no classification record yet.
	EstadoNinguno Estado = ""
)

// Estados lists every storable state in lifecycle order.
var Estados = []Estado{EstadoBorrador, EstadoEnAnalisis, EstadoFirmado, EstadoCompletado, EstadoClasificado}

// IsFinished reports whether the determination is over for package purposes.
func (e Estado) IsFinished() bool {
	return e == EstadoCompletado || e == EstadoFirmado || e == EstadoClasificado
}

// IsInProgress reports whether the determination is still open.
// At most one in-progress record may exist per sample.
func (e Estado) IsInProgress() bool {
	return e == EstadoBorrador || e == EstadoEnAnalisis
}

// Valid reports whether e is one of [Estados].
func (e Estado) Valid() bool {
	for _, known := range Estados {
		if e == known {
			return true
		}
	}
	return false
}

// EstadoReproductivo is the phenological state observed on the specimen.
type EstadoReproductivo string

const (
	ReproductivoEsteril   EstadoReproductivo = "esteril"
	ReproductivoFlor      EstadoReproductivo = "flor"
	ReproductivoFruto     EstadoReproductivo = "fruto"
	ReproductivoFlorFruto EstadoReproductivo = "flor_fruto"
)

// EstadosReproductivos lists the accepted phenological values.
var EstadosReproductivos = []EstadoReproductivo{ReproductivoEsteril, ReproductivoFlor, ReproductivoFruto, ReproductivoFlorFruto}

// # Core Entities

// Clasificacion is one determination attempt for a sample.
type Clasificacion struct {
	ID                 int64              `json:"id"`
	MuestraID          int64              `json:"muestra_id"`
	EspecieID          *int64             `json:"especie_id"`
	Estado             Estado             `json:"estado"`
	EstadoReproductivo EstadoReproductivo `json:"estado_reproductivo"`
	FotoURL            *string            `json:"foto_url,omitempty"`
	DeterminadorID     *string            `json:"determinador_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NuevaClasificacion is the intake payload for a new determination.
type NuevaClasificacion struct {
	MuestraID          int64              `json:"muestra_id"`
	EspecieID          *int64             `json:"especie_id"`
	EstadoReproductivo EstadoReproductivo `json:"estado_reproductivo"`
	FotoURL            *string            `json:"foto_url"`
	DeterminadorID     *string            `json:"determinador_id"`
}

// CambioEstado is the body of the state transition endpoints.
type CambioEstado struct {
	Estado Estado `json:"estado"`
}

// # Field Identifiers

const (
	FieldMuestraID          = "muestra_id"
	FieldEspecieID          = "especie_id"
	FieldEstado             = "estado"
	FieldEstadoReproductivo = "estado_reproductivo"
	FieldFotoURL            = "foto_url"
	FieldDeterminadorID     = "determinador_id"
)

// Input length limits.
const (
	MaxFotoURLLen      = 2048
	MaxDeterminadorLen = 64
)
