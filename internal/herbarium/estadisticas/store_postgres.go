// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package estadisticas

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/herbario/internal/lab/clasificacion"
	"github.com/taibuivan/herbario/internal/platform/database/schema"
	"github.com/taibuivan/herbario/internal/platform/dberr"
)

// countedEstados are the classification states the dashboards report on.
var countedEstados = []string{string(clasificacion.EstadoCompletado), string(clasificacion.EstadoFirmado)}

// PostgresRepository implements [Repository] using pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// especimenesQuery resolves species, taxonomy and geography in one pass.
// Species are required; every other link is optional.
var especimenesQuery = fmt.Sprintf(`
	SELECT e.%s, e.%s,
	       COALESCE(g.%s, ''), COALESCE(f.%s, ''),
	       COALESCE(d.%s, ''), COALESCE(r.%s, ''),
	       COALESCE(e.%s, '')
	FROM %s c
	JOIN %s e ON e.%s = c.%s
	LEFT JOIN %s g ON g.%s = e.%s
	LEFT JOIN %s f ON f.%s = g.%s
	JOIN %s m ON m.%s = c.%s
	LEFT JOIN %s p ON p.%s = m.%s
	LEFT JOIN %s cg ON cg.%s = p.%s
	LEFT JOIN %s mu ON mu.%s = cg.%s
	LEFT JOIN %s d ON d.%s = mu.%s
	LEFT JOIN %s r ON r.%s = d.%s
	WHERE c.%s = ANY($1) AND c.%s IS NOT NULL`,
	schema.Especie.ID, schema.Especie.NombreCientifico,
	schema.Genero.Nombre, schema.Familia.Nombre,
	schema.Departamento.Nombre, schema.Region.Nombre,
	schema.Especie.TipoAmenaza,
	schema.ClasificacionHerbario.Table,
	schema.Especie.Table, schema.Especie.ID, schema.ClasificacionHerbario.EspecieID,
	schema.Genero.Table, schema.Genero.ID, schema.Especie.GeneroID,
	schema.Familia.Table, schema.Familia.ID, schema.Genero.FamiliaID,
	schema.MuestraBotanica.Table, schema.MuestraBotanica.ID, schema.ClasificacionHerbario.MuestraID,
	schema.Paquete.Table, schema.Paquete.ID, schema.MuestraBotanica.PaqueteID,
	schema.Conglomerado.Table, schema.Conglomerado.ID, schema.Paquete.ConglomeradoID,
	schema.Municipio.Table, schema.Municipio.ID, schema.Conglomerado.MunicipioID,
	schema.Departamento.Table, schema.Departamento.ID, schema.Municipio.DepartamentoID,
	schema.Region.Table, schema.Region.ID, schema.Departamento.RegionID,
	schema.ClasificacionHerbario.Estado, schema.ClasificacionHerbario.EspecieID,
)

func (repository *PostgresRepository) ListEspecimenes(context context.Context) ([]Especimen, error) {
	rows, err := repository.db.Query(context, especimenesQuery, countedEstados)
	if err != nil {
		return nil, dberr.Wrap(err, "list_especimenes")
	}
	defer rows.Close()

	especimenes := make([]Especimen, 0)
	for rows.Next() {
		var e Especimen
		if err := rows.Scan(&e.EspecieID, &e.Especie, &e.Genero, &e.Familia, &e.Departamento, &e.Region, &e.TipoAmenaza); err != nil {
			return nil, dberr.Wrap(err, "scan_especimen")
		}
		especimenes = append(especimenes, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_especimenes")
	}

	return especimenes, nil
}

func (repository *PostgresRepository) CountClasificaciones(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.ClasificacionHerbario.Table)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_clasificaciones")
	}
	return total, nil
}
