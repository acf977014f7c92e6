// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
	"github.com/taibuivan/herbario/internal/platform/dberr"
	"github.com/taibuivan/herbario/internal/reception/paquete"
)

var errStorageDown = errors.New("connection refused")

// memoryRepository is an in-memory [paquete.Repository].
type memoryRepository struct {
	mu sync.Mutex

	estados     map[int64]paquete.Estado
	paqueteOf   map[int64]*int64
	latestState map[int64]clasificacion.Estado

	writes    int
	failReads bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		estados:     make(map[int64]paquete.Estado),
		paqueteOf:   make(map[int64]*int64),
		latestState: make(map[int64]clasificacion.Estado),
	}
}

func (repository *memoryRepository) addPaquete(id int64, estado paquete.Estado) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.estados[id] = estado
}

func (repository *memoryRepository) addMuestra(muestraID int64, paqueteID *int64, estado clasificacion.Estado) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.paqueteOf[muestraID] = paqueteID
	if estado != clasificacion.EstadoNinguno {
		repository.latestState[muestraID] = estado
	}
}

func (repository *memoryRepository) setClasificacion(muestraID int64, estado clasificacion.Estado) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.latestState[muestraID] = estado
}

func (repository *memoryRepository) estado(id int64) paquete.Estado {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.estados[id]
}

func (repository *memoryRepository) writeCount() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.writes
}

func (repository *memoryRepository) muestrasOf(paqueteID int64) []int64 {
	ids := make([]int64, 0)
	for muestraID, owner := range repository.paqueteOf {
		if owner != nil && *owner == paqueteID {
			ids = append(ids, muestraID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (repository *memoryRepository) List(_ context.Context, filter paquete.Filter, limit, offset int) ([]*paquete.Paquete, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	ids := make([]int64, 0)
	for id, estado := range repository.estados {
		if len(filter.Estados) == 0 || containsEstado(filter.Estados, estado) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := len(ids)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)

	page := make([]*paquete.Paquete, 0)
	for _, id := range ids[offset:end] {
		page = append(page, repository.snapshot(id))
	}
	return page, total, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id int64) (*paquete.Paquete, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.estados[id]; !ok {
		return nil, dberr.ErrNotFound
	}
	return repository.snapshot(id), nil
}

func (repository *memoryRepository) ListMuestras(_ context.Context, paqueteID int64) ([]*paquete.Muestra, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	muestras := make([]*paquete.Muestra, 0)
	for _, muestraID := range repository.muestrasOf(paqueteID) {
		owner := paqueteID
		muestra := &paquete.Muestra{ID: muestraID, PaqueteID: &owner}
		if estado, ok := repository.latestState[muestraID]; ok {
			muestra.EstadoClasificacion = &estado
		}
		muestras = append(muestras, muestra)
	}
	return muestras, nil
}

func (repository *memoryRepository) FindEstado(_ context.Context, id int64) (paquete.Estado, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.failReads {
		return "", errStorageDown
	}
	estado, ok := repository.estados[id]
	if !ok {
		return "", dberr.ErrNotFound
	}
	return estado, nil
}

func (repository *memoryRepository) ClassificationStates(_ context.Context, paqueteID int64) ([]clasificacion.Estado, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	estados := make([]clasificacion.Estado, 0)
	for _, muestraID := range repository.muestrasOf(paqueteID) {
		estados = append(estados, repository.latestState[muestraID])
	}
	return estados, nil
}

func (repository *memoryRepository) PaqueteIDForMuestra(_ context.Context, muestraID int64) (*int64, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	owner, ok := repository.paqueteOf[muestraID]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return owner, nil
}

func (repository *memoryRepository) UpdateEstado(_ context.Context, id int64, estado paquete.Estado) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.estados[id] == estado {
		return false, nil
	}
	repository.estados[id] = estado
	repository.writes++
	return true, nil
}

func (repository *memoryRepository) snapshot(id int64) *paquete.Paquete {
	return &paquete.Paquete{
		ID:            id,
		NumPaquete:    int(id),
		Estado:        repository.estados[id],
		TotalMuestras: len(repository.muestrasOf(id)),
	}
}

func containsEstado(estados []paquete.Estado, target paquete.Estado) bool {
	for _, estado := range estados {
		if estado == target {
			return true
		}
	}
	return false
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []paquete.EstadoCambiado
	err    error
}

func (publisher *recordingPublisher) PublishEstadoCambiado(_ context.Context, event paquete.EstadoCambiado) error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()

	publisher.events = append(publisher.events, event)
	return publisher.err
}

func (publisher *recordingPublisher) published() []paquete.EstadoCambiado {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	return append([]paquete.EstadoCambiado(nil), publisher.events...)
}

// recordingRecorder counts recompute outcomes.
type recordingRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (recorder *recordingRecorder) RecordRecompute(outcome string, _ time.Duration) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()

	if recorder.outcomes == nil {
		recorder.outcomes = make(map[string]int)
	}
	recorder.outcomes[outcome]++
}

func (recorder *recordingRecorder) count(outcome string) int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return recorder.outcomes[outcome]
}
