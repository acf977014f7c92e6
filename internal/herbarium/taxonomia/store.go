// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomia

import "context"

type Repository interface {
	ListFamilias(context context.Context) ([]*Familia, error)
	ListGeneros(context context.Context, familiaID int64) ([]*Genero, error)
	ListEspecies(context context.Context, generoID int64) ([]*Especie, error)
	FamiliaExists(context context.Context, id int64) (bool, error)
	GeneroExists(context context.Context, id int64) (bool, error)
}
