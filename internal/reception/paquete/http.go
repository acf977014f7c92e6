// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herbario/internal/platform/apperr"
	"github.com/taibuivan/herbario/internal/platform/middleware"
	requestutil "github.com/taibuivan/herbario/internal/platform/request"
	"github.com/taibuivan/herbario/internal/platform/respond"
	"github.com/taibuivan/herbario/internal/platform/sec"
	"github.com/taibuivan/herbario/pkg/pagination"
	"github.com/taibuivan/herbario/pkg/query"
	"github.com/taibuivan/herbario/pkg/slice"
)

// Handler implements the HTTP layer for reception's package views.
type Handler struct {
	service *Service
}

// NewHandler constructs a new package [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a router mounted under /paquetes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/muestras", handler.listMuestras)

	router.With(middleware.RequireRole(sec.RoleRecepcionista)).Post("/{id}/recalcular", handler.recalcular)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	estados := slice.Map(query.StringSlice(request.URL.Query().Get("estado")), func(raw string) Estado {
		return Estado(raw)
	})
	for _, estado := range estados {
		if !estado.Valid() {
			respond.Error(writer, request, apperr.ValidationError("Invalid filter", apperr.FieldError{
				Field:   "estado",
				Message: "Must be one of: recibido, en_proceso, completo",
			}))
			return
		}
	}

	paquetes, total, err := handler.service.List(request.Context(), Filter{Estados: estados}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, paquetes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	paqueteID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paquete, err := handler.service.Get(request.Context(), paqueteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, paquete)
}

func (handler *Handler) listMuestras(writer http.ResponseWriter, request *http.Request) {
	paqueteID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	muestras, err := handler.service.ListMuestras(request.Context(), paqueteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, muestras)
}

func (handler *Handler) recalcular(writer http.ResponseWriter, request *http.Request) {
	paqueteID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	resultado, err := handler.service.Recalcular(request.Context(), paqueteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resultado)
}
