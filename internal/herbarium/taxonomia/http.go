// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomia

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/herbario/internal/platform/request"
	"github.com/taibuivan/herbario/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a router mounted under /taxonomia.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/familias", handler.listFamilias)
	router.Get("/familias/{id}/generos", handler.listGeneros)
	router.Get("/generos/{id}/especies", handler.listEspecies)

	return router
}

func (handler *Handler) listFamilias(writer http.ResponseWriter, request *http.Request) {
	familias, err := handler.service.ListFamilias(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, familias)
}

func (handler *Handler) listGeneros(writer http.ResponseWriter, request *http.Request) {
	familiaID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	generos, err := handler.service.ListGeneros(request.Context(), familiaID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, generos)
}

func (handler *Handler) listEspecies(writer http.ResponseWriter, request *http.Request) {
	generoID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	especies, err := handler.service.ListEspecies(request.Context(), generoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, especies)
}
