package sunat

import (
	"strings"

	"reclamalibro/cmd/internal/domain/entity"
)

type fichaResponse struct {
	NumeroDocumento string `json:"numeroDocumento"`
	Nombre          string `json:"nombre"`
	Estado          string `json:"estado"`
	Condicion       string `json:"condicion"`
	Direccion       string `json:"direccion"`
	Distrito        string `json:"distrito"`
	Provincia       string `json:"provincia"`
	Departamento    string `json:"departamento"`
}

func (f *fichaResponse) ToDomain() *entity.FichaRUC {
	return &entity.FichaRUC{
		RUC:          f.NumeroDocumento,
		RazonSocial:  f.Nombre,
		Estado:       translateEstado(f.Estado),
		Condicion:    f.Condicion,
		Direccion:    f.Direccion,
		Distrito:     f.Distrito,
		Provincia:    f.Provincia,
		Departamento: f.Departamento,
	}
}

func translateEstado(estado string) entity.EstadoRUC {
	switch strings.ToUpper(estado) {
	case "ACTIVO":
		return entity.RUCActivo
	case "BAJA DEFINITIVA", "BAJA PROVISIONAL":
		return entity.RUCBaja
	case "SUSPENSION TEMPORAL":
		return entity.RUCSuspendido
	default:
		return entity.RUCDesconocido
	}
}
