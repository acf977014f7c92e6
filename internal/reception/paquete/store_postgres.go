// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paquete

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
	"github.com/taibuivan/herbario/internal/platform/database/schema"
	"github.com/taibuivan/herbario/internal/platform/dberr"
	"github.com/taibuivan/herbario/pkg/slice"
)

// PostgresRepository implements [Repository] using pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// paqueteSelect lists every package column plus its sample count.
var paqueteSelect = fmt.Sprintf(`
	SELECT %s,
	       (SELECT count(*) FROM %s m WHERE m.%s = p.%s) AS total_muestras
	FROM %s p`,
	strings.Join(slice.Map(schema.Paquete.Columns(), func(column string) string { return "p." + column }), ", "),
	schema.MuestraBotanica.Table, schema.MuestraBotanica.PaqueteID, schema.Paquete.ID,
	schema.Paquete.Table,
)

// latestEstado joins each sample row "m" to the state of its newest classification as "c".
var latestEstado = fmt.Sprintf(`
	LEFT JOIN LATERAL (
		SELECT %[1]s FROM %[2]s
		WHERE %[3]s = m.%[4]s
		ORDER BY %[5]s DESC, %[6]s DESC
		LIMIT 1
	) c ON TRUE`,
	schema.ClasificacionHerbario.Estado, schema.ClasificacionHerbario.Table,
	schema.ClasificacionHerbario.MuestraID, schema.MuestraBotanica.ID,
	schema.ClasificacionHerbario.CreatedAt, schema.ClasificacionHerbario.ID,
)

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Paquete, int, error) {
	query := paqueteSelect + ` WHERE 1=1`
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s p WHERE 1=1`, schema.Paquete.Table)

	args := []any{}
	if len(filter.Estados) > 0 {
		clause := fmt.Sprintf(` AND p.%s = ANY($1)`, schema.Paquete.Estado)
		query += clause
		countQuery += clause
		args = append(args, slice.Map(filter.Estados, func(estado Estado) string { return string(estado) }))
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_paquetes")
	}

	query += fmt.Sprintf(` ORDER BY p.%s DESC, p.%s DESC LIMIT $%s OFFSET $%s`,
		schema.Paquete.FechaRecibido, schema.Paquete.ID, strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_paquetes")
	}
	defer rows.Close()

	paquetes := make([]*Paquete, 0)
	for rows.Next() {
		p := &Paquete{}
		if err := rows.Scan(&p.ID, &p.NumPaquete, &p.FechaRecibido, &p.ConglomeradoID, &p.Estado, &p.CreatedAt, &p.UpdatedAt, &p.TotalMuestras); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_paquete")
		}
		paquetes = append(paquetes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_paquetes")
	}

	return paquetes, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Paquete, error) {
	query := paqueteSelect + fmt.Sprintf(` WHERE p.%s = $1`, schema.Paquete.ID)

	p := &Paquete{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.NumPaquete, &p.FechaRecibido, &p.ConglomeradoID, &p.Estado, &p.CreatedAt, &p.UpdatedAt, &p.TotalMuestras,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_paquete")
	}
	return p, nil
}

func (repository *PostgresRepository) ListMuestras(context context.Context, paqueteID int64) ([]*Muestra, error) {
	table := schema.MuestraBotanica
	query := fmt.Sprintf(`
		SELECT %s, c.%s
		FROM %s m
		%s
		WHERE m.%s = $1
		ORDER BY m.%s ASC`,
		strings.Join(slice.Map(table.Columns(), func(column string) string { return "m." + column }), ", "),
		schema.ClasificacionHerbario.Estado,
		table.Table, latestEstado, table.PaqueteID, table.ID,
	)

	rows, err := repository.db.Query(context, query, paqueteID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_muestras")
	}
	defer rows.Close()

	muestras := make([]*Muestra, 0)
	for rows.Next() {
		m := &Muestra{}
		err := rows.Scan(
			&m.ID, &m.NumColeccion, &m.NumIndividuo, &m.Colector, &m.Observaciones, &m.FechaColeccion, &m.PaqueteID,
			&m.EstadoClasificacion,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_muestra")
		}
		muestras = append(muestras, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_muestras")
	}

	return muestras, nil
}

func (repository *PostgresRepository) FindEstado(context context.Context, id int64) (Estado, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Paquete.Estado, schema.Paquete.Table, schema.Paquete.ID)

	var estado Estado
	if err := repository.db.QueryRow(context, query, id).Scan(&estado); err != nil {
		return "", dberr.Wrap(err, "get_paquete_estado")
	}
	return estado, nil
}

func (repository *PostgresRepository) ClassificationStates(context context.Context, paqueteID int64) ([]clasificacion.Estado, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(c.%s, '')
		FROM %s m
		%s
		WHERE m.%s = $1`,
		schema.ClasificacionHerbario.Estado,
		schema.MuestraBotanica.Table, latestEstado, schema.MuestraBotanica.PaqueteID,
	)

	rows, err := repository.db.Query(context, query, paqueteID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_classification_states")
	}
	defer rows.Close()

	estados := make([]clasificacion.Estado, 0)
	for rows.Next() {
		var estado clasificacion.Estado
		if err := rows.Scan(&estado); err != nil {
			return nil, dberr.Wrap(err, "scan_classification_state")
		}
		estados = append(estados, estado)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_classification_states")
	}

	return estados, nil
}

func (repository *PostgresRepository) PaqueteIDForMuestra(context context.Context, muestraID int64) (*int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.MuestraBotanica.PaqueteID, schema.MuestraBotanica.Table, schema.MuestraBotanica.ID)

	var paqueteID *int64
	if err := repository.db.QueryRow(context, query, muestraID).Scan(&paqueteID); err != nil {
		return nil, dberr.Wrap(err, "get_muestra_paquete")
	}
	return paqueteID, nil
}

func (repository *PostgresRepository) UpdateEstado(context context.Context, id int64, estado Estado) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW()
		WHERE %s = $1 AND %s <> $2`,
		schema.Paquete.Table, schema.Paquete.Estado, schema.Paquete.UpdatedAt,
		schema.Paquete.ID, schema.Paquete.Estado,
	)

	tag, err := repository.db.Exec(context, query, id, estado)
	if err != nil {
		return false, dberr.Wrap(err, "update_paquete_estado")
	}
	return tag.RowsAffected() > 0, nil
}
