package schema

// ClasificacionHerbarioTable represents the 'clasificacion_herbario' table
type ClasificacionHerbarioTable struct {
	Table              string
	ID                 string
	MuestraID          string
	EspecieID          string
	Estado             string
	EstadoReproductivo string
	FotoURL            string
	DeterminadorID     string
	CreatedAt          string
	UpdatedAt          string
}

// ClasificacionHerbario is the schema definition for clasificacion_herbario
var ClasificacionHerbario = ClasificacionHerbarioTable{
	Table:              "clasificacion_herbario",
	ID:                 "id",
	MuestraID:          "muestra_id",
	EspecieID:          "especie_id",
	Estado:             "estado",
	EstadoReproductivo: "estado_reproductivo",
	FotoURL:            "foto_url",
	DeterminadorID:     "determinador_id",
	CreatedAt:          "created_at",
	UpdatedAt:          "updated_at",
}

func (t ClasificacionHerbarioTable) Columns() []string {
	return []string{
		t.ID, t.MuestraID, t.EspecieID, t.Estado, t.EstadoReproductivo,
		t.FotoURL, t.DeterminadorID, t.CreatedAt, t.UpdatedAt,
	}
}
