package entity

// Proveedor is the regulated business that must keep complaint books.
// It is the root of the whole ownership chain: every Marca,
// Establecimiento, LibroReclamacion and Reclamacion resolves back to
// exactly one Proveedor.
type Proveedor struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	RazonSocial     string `gorm:"not null" json:"razon_social"`
	RUC             string `gorm:"column:ruc;not null;uniqueIndex" json:"ruc"`
	DomicilioFiscal string `gorm:"not null" json:"domicilio_fiscal"`
	Telefono        string `gorm:"not null" json:"telefono"`
	EmailContacto   string `gorm:"not null" json:"email_contacto"`
	Activo          bool   `gorm:"not null;default:true" json:"activo"`
	CreatedAt       int64  `gorm:"not null" json:"created_at"`

	// Relationships
	Marcas []*Marca `gorm:"foreignKey:ProveedorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"marcas,omitempty"`
}

func (Proveedor) TableName() string { return "proveedores" }

type Marca struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	ProveedorID int64  `gorm:"not null;index" json:"proveedor_id"` // References: proveedors(id)
	NombreMarca string `gorm:"not null" json:"nombre_marca"`
	Descripcion string `gorm:"not null" json:"descripcion"`
	Activa      bool   `gorm:"not null;default:true" json:"activa"`
	CreatedAt   int64  `gorm:"not null" json:"created_at"`

	// Relationships
	Proveedor        *Proveedor        `gorm:"foreignKey:ProveedorID;references:ID" json:"proveedor,omitempty"`
	Establecimientos []*Establecimiento `gorm:"foreignKey:MarcaID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"establecimientos,omitempty"`
}

func (Marca) TableName() string { return "marcas" }
