package entity

import "errors"

var (
	// ErrOnlineConDireccion is returned when an online channel carries
	// physical-address fields.
	ErrOnlineConDireccion = errors.New("un establecimiento online no debe tener dirección, distrito, provincia ni departamento")
	// ErrFisicoConEnlace is returned when a physical location carries an
	// access link.
	ErrFisicoConEnlace = errors.New("un establecimiento físico no debe tener enlace de acceso")
)

// Establecimiento is a point of customer contact under a Marca.
//
// The row is one of two shapes, discriminated by EsOnline:
//
// - físico: address fields allowed, EnlaceAcceso must be empty.
//
// - online: EnlaceAcceso allowed, address fields must be empty.
//
// Rows only enter the store through NuevoEstablecimientoFisico /
// NuevoEstablecimientoOnline or after Validate, so the exclusion holds
// for every persisted row.
type Establecimiento struct {
	ID                    int64  `gorm:"primaryKey" json:"id"`
	MarcaID               int64  `gorm:"not null;index" json:"marca_id"` // References: marcas(id)
	NombreEstablecimiento string `gorm:"not null" json:"nombre_establecimiento"`
	Direccion             string `json:"direccion,omitempty"`
	Distrito              string `json:"distrito,omitempty"`
	Provincia             string `json:"provincia,omitempty"`
	Departamento          string `json:"departamento,omitempty"`
	EnlaceAcceso          string `json:"enlace_acceso,omitempty"`
	Telefono              string `gorm:"not null" json:"telefono"`
	EmailContacto         string `gorm:"not null" json:"email_contacto"`
	EsOnline              bool   `gorm:"not null;default:false" json:"es_online"`
	Activo                bool   `gorm:"not null;default:true" json:"activo"`
	CreatedAt             int64  `gorm:"not null" json:"created_at"`

	// Relationships
	Marca  *Marca              `gorm:"foreignKey:MarcaID;references:ID" json:"marca,omitempty"`
	Libros []*LibroReclamacion `gorm:"foreignKey:EstablecimientoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"libros,omitempty"`
}

func (Establecimiento) TableName() string { return "establecimientos" }

// DireccionFisica groups the address fields of a physical location.
type DireccionFisica struct {
	Direccion    string
	Distrito     string
	Provincia    string
	Departamento string
}

// NuevoEstablecimientoFisico builds the physical variant. The returned
// row still needs MarcaID, contact fields and an ID before saving.
func NuevoEstablecimientoFisico(nombre string, dir DireccionFisica) *Establecimiento {
	return &Establecimiento{
		NombreEstablecimiento: nombre,
		Direccion:             dir.Direccion,
		Distrito:              dir.Distrito,
		Provincia:             dir.Provincia,
		Departamento:          dir.Departamento,
		EsOnline:              false,
	}
}

// NuevoEstablecimientoOnline builds the online variant.
func NuevoEstablecimientoOnline(nombre, enlaceAcceso string) *Establecimiento {
	return &Establecimiento{
		NombreEstablecimiento: nombre,
		EnlaceAcceso:          enlaceAcceso,
		EsOnline:              true,
	}
}

// Validate enforces the físico/online exclusion before any write.
// Address fields on a físico row stay optional, matching the regulatory
// form where only online channels are forbidden from carrying them.
func (e *Establecimiento) Validate() error {
	if e.EsOnline {
		if e.Direccion != "" || e.Distrito != "" || e.Provincia != "" || e.Departamento != "" {
			return ErrOnlineConDireccion
		}
		return nil
	}

	if e.EnlaceAcceso != "" {
		return ErrFisicoConEnlace
	}
	return nil
}
