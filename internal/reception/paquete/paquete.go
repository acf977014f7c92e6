// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package paquete manages the packages of botanical samples received by the
herbarium and keeps their aggregate lifecycle state in sync with the lab.

# Core Responsibility

  - Reception views: [Paquete] and its [Muestra] list.
  - Derivation: [Derive] maps the samples' classification states to a package [Estado].
  - Recompute: [Recomputer] re-derives and persists the state, synchronously or
    as a detached background task after a classification change.

A package's state is never authored directly. It is always the result of the
last recompute over the current snapshot of its samples.
*/
package paquete

import (
	"slices"
	"time"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
)

// # Package Lifecycle

// Estado is the aggregate state of a package.
type Estado string

const (
	// EstadoRecibido is the initial state: nothing is being worked on.
	EstadoRecibido Estado = "recibido"
	// EstadoEnProceso means at least one sample has an open determination.
	EstadoEnProceso Estado = "en_proceso"
	// EstadoCompleto means every sample has a finished determination.
	EstadoCompleto Estado = "completo"
)

// Estados lists every package state in lifecycle order.
var Estados = []Estado{EstadoRecibido, EstadoEnProceso, EstadoCompleto}

// Valid reports whether e is one of [Estados].
func (e Estado) Valid() bool {
	return slices.Contains(Estados, e)
}

// # Core Entities

// Paquete is a shipment of samples from one sampling conglomerate.
type Paquete struct {
	ID             int64      `json:"id"`
	NumPaquete     int        `json:"num_paquete"`
	FechaRecibido  *time.Time `json:"fecha_recibido,omitempty"`
	ConglomeradoID *int64     `json:"conglomerado_id,omitempty"`
	Estado         Estado     `json:"estado"`
	TotalMuestras  int        `json:"total_muestras"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Muestra is a collected specimen together with the state of its latest
// classification, or nil when none exists yet.
type Muestra struct {
	ID                  int64                 `json:"id"`
	NumColeccion        *int                  `json:"num_coleccion,omitempty"`
	NumIndividuo        *int                  `json:"num_individuo,omitempty"`
	Colector            *string               `json:"colector,omitempty"`
	Observaciones       *string               `json:"observaciones,omitempty"`
	FechaColeccion      *time.Time            `json:"fecha_coleccion,omitempty"`
	PaqueteID           *int64                `json:"paquete_id,omitempty"`
	EstadoClasificacion *clasificacion.Estado `json:"estado_clasificacion"`
}

// # Recompute Results

// Resultado describes the outcome of one recompute.
type Resultado struct {
	PaqueteID      int64  `json:"paquete_id"`
	EstadoAnterior Estado `json:"estado_anterior"`
	Estado         Estado `json:"estado"`
	Cambiado       bool   `json:"cambiado"`
	Conteo         Conteo `json:"conteo"`
}

// EstadoCambiado is published whenever a recompute persists a new state.
type EstadoCambiado struct {
	Tipo           string    `json:"tipo"`
	PaqueteID      int64     `json:"paquete_id"`
	EstadoAnterior Estado    `json:"estado_anterior"`
	Estado         Estado    `json:"estado"`
	OcurridoEn     time.Time `json:"ocurrido_en"`
}

// EventoEstadoCambiado is the [EstadoCambiado.Tipo] discriminator.
const EventoEstadoCambiado = "paquete.estado_cambiado"

// # Search & Filtering

// Filter holds parameters for listing packages.
type Filter struct {
	Estados []Estado
}
