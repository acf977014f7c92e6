package schema

// RegionTable represents the 'region' table
type RegionTable struct {
	Table  string
	ID     string
	Nombre string
}

// Region is the schema definition for region
var Region = RegionTable{
	Table:  "region",
	ID:     "id",
	Nombre: "nombre",
}

// DepartamentoTable represents the 'departamento' table
type DepartamentoTable struct {
	Table    string
	ID       string
	Nombre   string
	RegionID string
}

// Departamento is the schema definition for departamento
var Departamento = DepartamentoTable{
	Table:    "departamento",
	ID:       "id",
	Nombre:   "nombre",
	RegionID: "region_id",
}

// MunicipioTable represents the 'municipio' table
type MunicipioTable struct {
	Table          string
	ID             string
	Nombre         string
	DepartamentoID string
}

// Municipio is the schema definition for municipio
var Municipio = MunicipioTable{
	Table:          "municipio",
	ID:             "id",
	Nombre:         "nombre",
	DepartamentoID: "departamento_id",
}

// ConglomeradoTable represents the 'conglomerado' table
type ConglomeradoTable struct {
	Table       string
	ID          string
	Codigo      string
	MunicipioID string
}

// Conglomerado is the schema definition for conglomerado
var Conglomerado = ConglomeradoTable{
	Table:       "conglomerado",
	ID:          "id",
	Codigo:      "codigo",
	MunicipioID: "municipio_id",
}
