// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package estadisticas

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herbario/internal/platform/respond"
)

// Handler implements the HTTP layer for the dashboards.
//
// Successful bodies are written without the data envelope; the dashboard
// panels consume these shapes directly.
type Handler struct {
	service *Service
}

// NewHandler constructs a new statistics [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a router mounted under /estadisticas.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.resumen)
	router.Get("/taxonomia", handler.taxonomia)

	return router
}

func (handler *Handler) resumen(writer http.ResponseWriter, request *http.Request) {
	resumen, err := handler.service.Resumen(request.Context())
	if err != nil {
		respond.ErrorWithCause(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, resumen)
}

func (handler *Handler) taxonomia(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()
	query := TaxonomiaQuery{
		Ubicacion: params.Get(ParamUbicacion),
		Tipo:      Tipo(params.Get(ParamTipo)),
		Nivel:     Nivel(params.Get(ParamNivel)),
	}

	ranking, err := handler.service.Taxonomia(request.Context(), query)
	if err != nil {
		respond.ErrorWithCause(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, ranking)
}
