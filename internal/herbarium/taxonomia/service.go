// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomia

import (
	"context"

	"github.com/taibuivan/herbario/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) ListFamilias(context context.Context) ([]*Familia, error) {
	return service.repo.ListFamilias(context)
}

// ListGeneros returns the genera of a family; an unknown family is NOT_FOUND
// rather than an empty list.
func (service *Service) ListGeneros(context context.Context, familiaID int64) ([]*Genero, error) {
	exists, err := service.repo.FamiliaExists(context, familiaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Familia")
	}
	return service.repo.ListGeneros(context, familiaID)
}

// ListEspecies returns the species of a genus; an unknown genus is NOT_FOUND.
func (service *Service) ListEspecies(context context.Context, generoID int64) ([]*Especie, error) {
	exists, err := service.repo.GeneroExists(context, generoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Genero")
	}
	return service.repo.ListEspecies(context, generoID)
}
