// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import (
	stdctx "context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/herbario/internal/platform/ctxutil"
	"github.com/taibuivan/herbario/internal/platform/metrics"
)

// Publisher announces derived state changes to other services.
type Publisher interface {
	PublishEstadoCambiado(context stdctx.Context, event EstadoCambiado) error
}

// Recorder observes recompute outcomes.
type Recorder interface {
	RecordRecompute(outcome string, elapsed time.Duration)
}

/*
Recomputer keeps each package's stored state equal to [Derive] over the
current snapshot of its samples.

# Concurrency

Recomputes for the same package may overlap. Each one reads the full
snapshot before writing and the write is conditional on the state actually
differing, so overlapping runs converge on the same value without locks.
Detached runs are tracked and drained by [Recomputer.Wait]. Once draining
starts, new detached runs are dropped.
*/
type Recomputer struct {
	repo      Repository
	publisher Publisher
	recorder  Recorder
	logger    *slog.Logger
	timeout   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// NewRecomputer constructs a [Recomputer]. Detached runs are bounded by timeout.
func NewRecomputer(repo Repository, publisher Publisher, recorder Recorder, logger *slog.Logger, timeout time.Duration) *Recomputer {
	return &Recomputer{
		repo:      repo,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
	}
}

/*
Recompute derives and persists the state of one package.

Description: Reads the stored state and the samples' latest classification
states, derives the new state and writes it only when it differs. A change
is published; a publish failure is logged and does not fail the recompute.

Returns:
  - *Resultado: Previous and derived state, and whether a write happened
  - error: NOT_FOUND for an unknown package or a storage error
*/
func (recomputer *Recomputer) Recompute(context stdctx.Context, paqueteID int64) (*Resultado, error) {
	startTime := time.Now()

	resultado, err := recomputer.recompute(context, paqueteID)
	if err != nil {
		recomputer.recorder.RecordRecompute(metrics.OutcomeFailed, time.Since(startTime))
		return nil, err
	}

	outcome := metrics.OutcomeUnchanged
	if resultado.Cambiado {
		outcome = metrics.OutcomeChanged
	}
	recomputer.recorder.RecordRecompute(outcome, time.Since(startTime))

	return resultado, nil
}

func (recomputer *Recomputer) recompute(context stdctx.Context, paqueteID int64) (*Resultado, error) {
	actual, err := recomputer.repo.FindEstado(context, paqueteID)
	if err != nil {
		return nil, err
	}

	estados, err := recomputer.repo.ClassificationStates(context, paqueteID)
	if err != nil {
		return nil, err
	}

	conteo := Contar(estados)
	resultado := &Resultado{
		PaqueteID:      paqueteID,
		EstadoAnterior: actual,
		Estado:         conteo.Estado(),
		Conteo:         conteo,
	}

	if resultado.Estado == actual {
		return resultado, nil
	}

	// A concurrent run may have stored the same value first; then nothing changed here.
	changed, err := recomputer.repo.UpdateEstado(context, paqueteID, resultado.Estado)
	if err != nil {
		return nil, err
	}
	resultado.Cambiado = changed

	if changed {
		recomputer.announce(context, resultado)
	}

	return resultado, nil
}

func (recomputer *Recomputer) announce(context stdctx.Context, resultado *Resultado) {
	logger := recomputer.loggerFor(context)
	logger.Info("paquete_estado_actualizado",
		slog.Int64("paquete_id", resultado.PaqueteID),
		slog.String("estado_anterior", string(resultado.EstadoAnterior)),
		slog.String("estado", string(resultado.Estado)),
	)

	event := EstadoCambiado{
		Tipo:           EventoEstadoCambiado,
		PaqueteID:      resultado.PaqueteID,
		EstadoAnterior: resultado.EstadoAnterior,
		Estado:         resultado.Estado,
		OcurridoEn:     recomputer.now().UTC(),
	}
	if err := recomputer.publisher.PublishEstadoCambiado(context, event); err != nil {
		logger.Warn("paquete_evento_no_publicado",
			slog.Int64("paquete_id", resultado.PaqueteID),
			slog.String("error", err.Error()),
		)
	}
}

// # Detached Runs

// Schedule recomputes a package in the background and returns immediately.
// Failures are logged at WARN and never reach the caller.
func (recomputer *Recomputer) Schedule(context stdctx.Context, paqueteID int64) {
	recomputer.detach(context, func(ctx stdctx.Context) error {
		_, err := recomputer.Recompute(ctx, paqueteID)
		return err
	}, slog.Int64("paquete_id", paqueteID))
}

// ScheduleForSample resolves the package owning a sample and recomputes it
// in the background. Samples outside any package are skipped.
func (recomputer *Recomputer) ScheduleForSample(context stdctx.Context, muestraID int64) {
	recomputer.detach(context, func(ctx stdctx.Context) error {
		paqueteID, err := recomputer.repo.PaqueteIDForMuestra(ctx, muestraID)
		if err != nil {
			return err
		}
		if paqueteID == nil {
			recomputer.loggerFor(ctx).Debug("muestra_sin_paquete", slog.Int64("muestra_id", muestraID))
			return nil
		}

		_, err = recomputer.Recompute(ctx, *paqueteID)
		return err
	}, slog.Int64("muestra_id", muestraID))
}

// Wait stops accepting detached recomputes and blocks until the ones already
// scheduled have finished.
func (recomputer *Recomputer) Wait() {
	recomputer.mu.Lock()
	recomputer.closed = true
	recomputer.mu.Unlock()

	recomputer.inflight.Wait()
}

// detach runs task on a context that outlives the request but keeps its values.
func (recomputer *Recomputer) detach(parent stdctx.Context, task func(stdctx.Context) error, attrs ...any) {
	recomputer.mu.Lock()
	if recomputer.closed {
		recomputer.mu.Unlock()
		recomputer.loggerFor(parent).Debug("paquete_recalculo_descartado", attrs...)
		return
	}
	recomputer.inflight.Add(1)
	recomputer.mu.Unlock()

	go func() {
		defer recomputer.inflight.Done()

		ctx, cancel := stdctx.WithTimeout(stdctx.WithoutCancel(parent), recomputer.timeout)
		defer cancel()

		if err := task(ctx); err != nil {
			recomputer.loggerFor(ctx).Warn("paquete_recalculo_fallido", append(attrs, slog.String("error", err.Error()))...)
		}
	}()
}

// loggerFor tags the recomputer's logger with the originating request id.
func (recomputer *Recomputer) loggerFor(context stdctx.Context) *slog.Logger {
	if requestID := ctxutil.GetRequestID(context); requestID != "" {
		return recomputer.logger.With(slog.String("request_id", requestID))
	}
	return recomputer.logger
}
