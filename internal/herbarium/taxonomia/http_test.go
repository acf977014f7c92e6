// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomia_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herbario/internal/herbarium/taxonomia"
	"github.com/taibuivan/herbario/pkg/pointer"
)

type stubRepository struct {
	familias []*taxonomia.Familia
	generos  []*taxonomia.Genero
	especies []*taxonomia.Especie
}

func (repository *stubRepository) ListFamilias(context.Context) ([]*taxonomia.Familia, error) {
	return repository.familias, nil
}

func (repository *stubRepository) ListGeneros(_ context.Context, familiaID int64) ([]*taxonomia.Genero, error) {
	generos := make([]*taxonomia.Genero, 0)
	for _, genero := range repository.generos {
		if genero.FamiliaID == familiaID {
			generos = append(generos, genero)
		}
	}
	return generos, nil
}

func (repository *stubRepository) ListEspecies(_ context.Context, generoID int64) ([]*taxonomia.Especie, error) {
	especies := make([]*taxonomia.Especie, 0)
	for _, especie := range repository.especies {
		if especie.GeneroID == generoID {
			especies = append(especies, especie)
		}
	}
	return especies, nil
}

func (repository *stubRepository) FamiliaExists(_ context.Context, id int64) (bool, error) {
	for _, familia := range repository.familias {
		if familia.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (repository *stubRepository) GeneroExists(_ context.Context, id int64) (bool, error) {
	for _, genero := range repository.generos {
		if genero.ID == id {
			return true, nil
		}
	}
	return false, nil
}

/*
TestHandler_Tree walks the family → genus → species lists.
*/
func TestHandler_Tree(t *testing.T) {
	repo := &stubRepository{
		familias: []*taxonomia.Familia{{ID: 1, Nombre: "Arecaceae"}, {ID: 2, Nombre: "Fagaceae"}},
		generos:  []*taxonomia.Genero{{ID: 10, Nombre: "Ceroxylon", FamiliaID: 1}},
		especies: []*taxonomia.Especie{{ID: 100, NombreCientifico: "Ceroxylon quindiuense", GeneroID: 10, TipoAmenaza: pointer.To("EN")}},
	}
	routes := taxonomia.NewHandler(taxonomia.NewService(repo)).Routes()

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"familias", "/familias", http.StatusOK, `"nombre":"Arecaceae"`},
		{"generos", "/familias/1/generos", http.StatusOK, `"nombre":"Ceroxylon"`},
		{"empty_family", "/familias/2/generos", http.StatusOK, `"data":[]`},
		{"unknown_family", "/familias/9/generos", http.StatusNotFound, `"code":"NOT_FOUND"`},
		{"especies", "/generos/10/especies", http.StatusOK, `"tipo_amenaza":"EN"`},
		{"unknown_genus", "/generos/99/especies", http.StatusNotFound, `"Genero not found"`},
		{"bad_id", "/generos/x/especies", http.StatusBadRequest, `"code":"VALIDATION_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			routes.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.body)
		})
	}
}
