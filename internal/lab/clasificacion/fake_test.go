// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package clasificacion_test

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
	"github.com/taibuivan/herbario/internal/platform/apperr"
	"github.com/taibuivan/herbario/internal/platform/dberr"
)

// memoryRepository is an in-memory [clasificacion.Repository] that enforces
// the one-open-determination-per-sample rule the way the database index does.
type memoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	records  []*clasificacion.Clasificacion
	muestras map[int64]bool
	clock    time.Time
}

func newMemoryRepository(muestraIDs ...int64) *memoryRepository {
	muestras := make(map[int64]bool, len(muestraIDs))
	for _, id := range muestraIDs {
		muestras[id] = true
	}
	return &memoryRepository{
		muestras: muestras,
		clock:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (repository *memoryRepository) tick() time.Time {
	repository.clock = repository.clock.Add(time.Minute)
	return repository.clock
}

func (repository *memoryRepository) Create(_ context.Context, input clasificacion.NuevaClasificacion, estado clasificacion.Estado) (*clasificacion.Clasificacion, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if estado.IsInProgress() && repository.openFor(input.MuestraID, 0) {
		return nil, apperr.ClasificacionEnCurso()
	}

	repository.nextID++
	now := repository.tick()
	record := &clasificacion.Clasificacion{
		ID:                 repository.nextID,
		MuestraID:          input.MuestraID,
		EspecieID:          input.EspecieID,
		Estado:             estado,
		EstadoReproductivo: input.EstadoReproductivo,
		FotoURL:            input.FotoURL,
		DeterminadorID:     input.DeterminadorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	repository.records = append(repository.records, record)

	stored := *record
	return &stored, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id int64) (*clasificacion.Clasificacion, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, record := range repository.records {
		if record.ID == id {
			stored := *record
			return &stored, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) FindLatestByMuestra(_ context.Context, muestraID int64) (*clasificacion.Clasificacion, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if latest := repository.latest(muestraID); latest != nil {
		stored := *latest
		return &stored, nil
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) UpdateEstado(_ context.Context, id int64, estado clasificacion.Estado) (*clasificacion.Clasificacion, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, record := range repository.records {
		if record.ID == id {
			return repository.apply(record, estado)
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) UpdateEstadoByMuestra(_ context.Context, muestraID int64, estado clasificacion.Estado) (*clasificacion.Clasificacion, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if latest := repository.latest(muestraID); latest != nil {
		return repository.apply(latest, estado)
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) MuestraExists(_ context.Context, muestraID int64) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return repository.muestras[muestraID], nil
}

func (repository *memoryRepository) apply(record *clasificacion.Clasificacion, estado clasificacion.Estado) (*clasificacion.Clasificacion, error) {
	if estado.IsInProgress() && repository.openFor(record.MuestraID, record.ID) {
		return nil, apperr.ClasificacionEnCurso()
	}
	record.Estado = estado
	record.UpdatedAt = repository.tick()

	stored := *record
	return &stored, nil
}

func (repository *memoryRepository) openFor(muestraID, exceptID int64) bool {
	for _, record := range repository.records {
		if record.MuestraID == muestraID && record.ID != exceptID && record.Estado.IsInProgress() {
			return true
		}
	}
	return false
}

func (repository *memoryRepository) latest(muestraID int64) *clasificacion.Clasificacion {
	var latest *clasificacion.Clasificacion
	for _, record := range repository.records {
		if record.MuestraID == muestraID {
			latest = record
		}
	}
	return latest
}

// recordingRecomputer remembers which samples asked for a recompute.
type recordingRecomputer struct {
	mu       sync.Mutex
	muestras []int64
}

func (recomputer *recordingRecomputer) ScheduleForSample(_ context.Context, muestraID int64) {
	recomputer.mu.Lock()
	defer recomputer.mu.Unlock()

	recomputer.muestras = append(recomputer.muestras, muestraID)
}

func (recomputer *recordingRecomputer) scheduled() []int64 {
	recomputer.mu.Lock()
	defer recomputer.mu.Unlock()

	return append([]int64(nil), recomputer.muestras...)
}
