package schema

// MuestraBotanicaTable represents the 'muestra_botanica' table
type MuestraBotanicaTable struct {
	Table          string
	ID             string
	NumColeccion   string
	NumIndividuo   string
	Colector       string
	Observaciones  string
	FechaColeccion string
	PaqueteID      string
}

// MuestraBotanica is the schema definition for muestra_botanica
var MuestraBotanica = MuestraBotanicaTable{
	Table:          "muestra_botanica",
	ID:             "id",
	NumColeccion:   "num_coleccion",
	NumIndividuo:   "num_individuo",
	Colector:       "colector",
	Observaciones:  "observaciones",
	FechaColeccion: "fecha_coleccion",
	PaqueteID:      "paquete_id",
}

func (t MuestraBotanicaTable) Columns() []string {
	return []string{t.ID, t.NumColeccion, t.NumIndividuo, t.Colector, t.Observaciones, t.FechaColeccion, t.PaqueteID}
}
