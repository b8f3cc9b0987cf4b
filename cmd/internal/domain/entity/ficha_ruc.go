package entity

type EstadoRUC string

const (
	RUCActivo      EstadoRUC = "ACTIVO"
	RUCBaja        EstadoRUC = "BAJA"
	RUCSuspendido  EstadoRUC = "SUSPENDIDO"
	RUCDesconocido EstadoRUC = "DESCONOCIDO"
)

// FichaRUC is the cached result of a SUNAT taxpayer lookup, used by the
// panel to prefill proveedor registration from a RUC.
type FichaRUC struct {
	RUC          string `gorm:"primaryKey;column:ruc"`
	RazonSocial  string
	Estado       EstadoRUC
	Condicion    string
	Direccion    string
	Distrito     string
	Provincia    string
	Departamento string

	// Found controls the negative caching strategy for external API lookups:
	//
	// - true: The RUC is registered and the taxpayer data is cached.
	//
	// - false: The RUC was queried, returned a 404, and is safely cached as invalid.
	//
	// This prevents repeated API calls for RUCs that we already know do not exist.
	// Always written explicitly; a gorm default would swallow the false case.
	Found    bool
	CachedAt int64 `gorm:"autoUpdateTime:false"`
}

func (FichaRUC) TableName() string { return "fichas_ruc" }
