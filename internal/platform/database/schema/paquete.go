package schema

// PaqueteTable represents the 'paquete' table
type PaqueteTable struct {
	Table          string
	ID             string
	NumPaquete     string
	FechaRecibido  string
	ConglomeradoID string
	Estado         string
	CreatedAt      string
	UpdatedAt      string
}

// Paquete is the schema definition for paquete
var Paquete = PaqueteTable{
	Table:          "paquete",
	ID:             "id",
	NumPaquete:     "num_paquete",
	FechaRecibido:  "fecha_recibido",
	ConglomeradoID: "conglomerado_id",
	Estado:         "estado",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

func (t PaqueteTable) Columns() []string {
	return []string{t.ID, t.NumPaquete, t.FechaRecibido, t.ConglomeradoID, t.Estado, t.CreatedAt, t.UpdatedAt}
}
