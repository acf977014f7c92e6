// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package clasificacion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herbario/internal/platform/database/schema"
	"github.com/taibuivan/herbario/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// returning is the column list every query hands to [scanClasificacion].
var returning = strings.Join(schema.ClasificacionHerbario.Columns(), ", ")

func (repository *PostgresRepository) Create(context context.Context, input NuevaClasificacion, estado Estado) (*Clasificacion, error) {
	table := schema.ClasificacionHerbario
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`,
		table.Table,
		table.MuestraID, table.EspecieID, table.Estado, table.EstadoReproductivo, table.FotoURL, table.DeterminadorID,
		returning,
	)

	row := repository.db.QueryRow(context, query,
		input.MuestraID, input.EspecieID, estado, input.EstadoReproductivo, input.FotoURL, input.DeterminadorID,
	)

	clasificacion, err := scanClasificacion(row)
	if err != nil {
		return nil, dberr.Wrap(err, "create_clasificacion")
	}
	return clasificacion, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Clasificacion, error) {
	table := schema.ClasificacionHerbario
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, returning, table.Table, table.ID)

	clasificacion, err := scanClasificacion(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_clasificacion")
	}
	return clasificacion, nil
}

func (repository *PostgresRepository) FindLatestByMuestra(context context.Context, muestraID int64) (*Clasificacion, error) {
	table := schema.ClasificacionHerbario
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT 1`,
		returning, table.Table, table.MuestraID, table.CreatedAt, table.ID,
	)

	clasificacion, err := scanClasificacion(repository.db.QueryRow(context, query, muestraID))
	if err != nil {
		return nil, dberr.Wrap(err, "find_latest_clasificacion")
	}
	return clasificacion, nil
}

func (repository *PostgresRepository) UpdateEstado(context context.Context, id int64, estado Estado) (*Clasificacion, error) {
	table := schema.ClasificacionHerbario
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		table.Table, table.Estado, table.UpdatedAt, table.ID, returning,
	)

	clasificacion, err := scanClasificacion(repository.db.QueryRow(context, query, id, estado))
	if err != nil {
		return nil, dberr.Wrap(err, "update_clasificacion_estado")
	}
	return clasificacion, nil
}

func (repository *PostgresRepository) UpdateEstadoByMuestra(context context.Context, muestraID int64, estado Estado) (*Clasificacion, error) {
	table := schema.ClasificacionHerbario
	query := fmt.Sprintf(`
		UPDATE %[1]s SET %[2]s = $2, %[3]s = NOW()
		WHERE %[4]s = (
			SELECT %[4]s FROM %[1]s
			WHERE %[5]s = $1
			ORDER BY %[6]s DESC, %[4]s DESC
			LIMIT 1
		)
		RETURNING %[7]s`,
		table.Table, table.Estado, table.UpdatedAt, table.ID, table.MuestraID, table.CreatedAt, returning,
	)

	clasificacion, err := scanClasificacion(repository.db.QueryRow(context, query, muestraID, estado))
	if err != nil {
		return nil, dberr.Wrap(err, "update_clasificacion_estado_by_muestra")
	}
	return clasificacion, nil
}

func (repository *PostgresRepository) MuestraExists(context context.Context, muestraID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.MuestraBotanica.Table, schema.MuestraBotanica.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, muestraID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_muestra_exists")
	}
	return exists, nil
}

// scanClasificacion reads one row laid out as [schema.ClasificacionHerbarioTable.Columns].
func scanClasificacion(row pgx.Row) (*Clasificacion, error) {
	clasificacion := &Clasificacion{}
	err := row.Scan(
		&clasificacion.ID, &clasificacion.MuestraID, &clasificacion.EspecieID,
		&clasificacion.Estado, &clasificacion.EstadoReproductivo,
		&clasificacion.FotoURL, &clasificacion.DeterminadorID,
		&clasificacion.CreatedAt, &clasificacion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return clasificacion, nil
}
