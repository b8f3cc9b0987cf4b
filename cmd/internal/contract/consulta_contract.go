package contract

type FichaRUCResponse struct {
	RUC          string `json:"ruc"`
	RazonSocial  string `json:"razon_social"`
	Estado       string `json:"estado"`
	Condicion    string `json:"condicion"`
	Direccion    string `json:"direccion"`
	Distrito     string `json:"distrito"`
	Provincia    string `json:"provincia"`
	Departamento string `json:"departamento"`
	Cached       bool   `json:"cached"`
}
