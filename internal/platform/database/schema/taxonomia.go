package schema

// FamiliaTable represents the 'familia' table
type FamiliaTable struct {
	Table  string
	ID     string
	Nombre string
}

// Familia is the schema definition for familia
var Familia = FamiliaTable{
	Table:  "familia",
	ID:     "id",
	Nombre: "nombre",
}

// GeneroTable represents the 'genero' table
type GeneroTable struct {
	Table     string
	ID        string
	Nombre    string
	FamiliaID string
}

// Genero is the schema definition for genero
var Genero = GeneroTable{
	Table:     "genero",
	ID:        "id",
	Nombre:    "nombre",
	FamiliaID: "familia_id",
}

// EspecieTable represents the 'especie' table
type EspecieTable struct {
	Table            string
	ID               string
	NombreCientifico string
	NombreComun      string
	GeneroID         string
	TipoAmenaza      string
}

// Especie is the schema definition for especie
var Especie = EspecieTable{
	Table:            "especie",
	ID:               "id",
	NombreCientifico: "nombre_cientifico",
	NombreComun:      "nombre_comun",
	GeneroID:         "genero_id",
	TipoAmenaza:      "tipo_amenaza",
}
