// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomia

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herbario/internal/platform/database/schema"
	"github.com/taibuivan/herbario/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListFamilias(context context.Context) ([]*Familia, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Familia.ID, schema.Familia.Nombre, schema.Familia.Table, schema.Familia.Nombre)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_familias")
	}
	defer rows.Close()

	familias := make([]*Familia, 0)
	for rows.Next() {
		f := &Familia{}
		if err := rows.Scan(&f.ID, &f.Nombre); err != nil {
			return nil, dberr.Wrap(err, "scan_familia")
		}
		familias = append(familias, f)
	}

	return familias, nil
}

func (repository *PostgresRepository) ListGeneros(context context.Context, familiaID int64) ([]*Genero, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Genero.ID, schema.Genero.Nombre, schema.Genero.FamiliaID,
		schema.Genero.Table, schema.Genero.FamiliaID, schema.Genero.Nombre)

	rows, err := repository.db.Query(context, query, familiaID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_generos")
	}
	defer rows.Close()

	generos := make([]*Genero, 0)
	for rows.Next() {
		g := &Genero{}
		if err := rows.Scan(&g.ID, &g.Nombre, &g.FamiliaID); err != nil {
			return nil, dberr.Wrap(err, "scan_genero")
		}
		generos = append(generos, g)
	}

	return generos, nil
}

func (repository *PostgresRepository) ListEspecies(context context.Context, generoID int64) ([]*Especie, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Especie.ID, schema.Especie.NombreCientifico, schema.Especie.NombreComun,
		schema.Especie.GeneroID, schema.Especie.TipoAmenaza,
		schema.Especie.Table, schema.Especie.GeneroID, schema.Especie.NombreCientifico)

	rows, err := repository.db.Query(context, query, generoID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_especies")
	}
	defer rows.Close()

	especies := make([]*Especie, 0)
	for rows.Next() {
		e := &Especie{}
		if err := rows.Scan(&e.ID, &e.NombreCientifico, &e.NombreComun, &e.GeneroID, &e.TipoAmenaza); err != nil {
			return nil, dberr.Wrap(err, "scan_especie")
		}
		especies = append(especies, e)
	}

	return especies, nil
}

func (repository *PostgresRepository) FamiliaExists(context context.Context, id int64) (bool, error) {
	return repository.exists(context, schema.Familia.Table, schema.Familia.ID, id)
}

func (repository *PostgresRepository) GeneroExists(context context.Context, id int64) (bool, error) {
	return repository.exists(context, schema.Genero.Table, schema.Genero.ID, id)
}

func (repository *PostgresRepository) exists(context context.Context, table, column string, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_"+table+"_exists")
	}
	return exists, nil
}
