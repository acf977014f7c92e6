// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package clasificacion

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herbario/internal/platform/middleware"
	requestutil "github.com/taibuivan/herbario/internal/platform/request"
	"github.com/taibuivan/herbario/internal/platform/respond"
	"github.com/taibuivan/herbario/internal/platform/sec"
	"github.com/taibuivan/herbario/pkg/pointer"
)

// Handler implements the HTTP layer for the lab's classifications.
type Handler struct {
	service *Service
}

// NewHandler constructs a new classification [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
Routes returns a router mounted under /clasificaciones.

Records are addressed by their own id under /id/{id}; the bare
/{idMuestra} form addresses the latest record of a sample.
*/
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/id/{id}", handler.getByID)
	router.Get("/{idMuestra}", handler.getByMuestra)

	router.Group(func(labRoute chi.Router) {
		labRoute.Use(middleware.RequireRole(sec.RoleLaboratorista))

		labRoute.Post("/", handler.create)
		labRoute.Put("/id/{id}/estado", handler.updateEstado)
		labRoute.Put("/{idMuestra}/estado", handler.updateEstadoByMuestra)
	})

	return router
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	clasificacion, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, clasificacion)
}

func (handler *Handler) getByMuestra(writer http.ResponseWriter, request *http.Request) {
	muestraID, err := requestutil.Int64Param(request, "idMuestra")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	clasificacion, err := handler.service.GetByMuestra(request.Context(), muestraID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, clasificacion)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input NuevaClasificacion
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The signed-in lab user is the determiner unless the body names one.
	if input.DeterminadorID == nil {
		if claims := requestutil.Claims(request); claims != nil {
			input.DeterminadorID = pointer.To(claims.UserID)
		}
	}

	clasificacion, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, clasificacion)
}

func (handler *Handler) updateEstado(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CambioEstado
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clasificacion, err := handler.service.UpdateEstado(request.Context(), id, input.Estado)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, clasificacion)
}

func (handler *Handler) updateEstadoByMuestra(writer http.ResponseWriter, request *http.Request) {
	muestraID, err := requestutil.Int64Param(request, "idMuestra")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CambioEstado
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clasificacion, err := handler.service.UpdateEstadoByMuestra(request.Context(), muestraID, input.Estado)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, clasificacion)
}
