package entity

// Cliente is a complainant. Clientes are created once at intake time by
// an unauthenticated caller and never mutated afterwards. They live
// outside the Proveedor ownership chain.
type Cliente struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	NombreCliente   string `gorm:"not null" json:"nombre_cliente"`
	TipoDocCliente  string `gorm:"not null" json:"tipo_doc_cliente"`
	DocIDCliente    string `gorm:"not null" json:"doc_id_cliente"`
	FechaNacimiento string `gorm:"not null" json:"fecha_nacimiento"`
	Email           string `gorm:"not null" json:"email"`
	Telefono        string `gorm:"not null" json:"telefono"`
	CreatedAt       int64  `gorm:"not null" json:"created_at"`

	// Relationships
	Representantes []*RepresentanteLegal `gorm:"foreignKey:ClienteID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"representantes,omitempty"`
}

func (Cliente) TableName() string { return "clientes" }

// RepresentanteLegal acts on behalf of a Cliente, typically when the
// complainant is a minor.
type RepresentanteLegal struct {
	ID                   int64  `gorm:"primaryKey" json:"id"`
	ClienteID            int64  `gorm:"not null;index" json:"cliente_id"` // References: clientes(id)
	NombreRepresentante  string `gorm:"not null" json:"nombre_representante"`
	TipoDocRepresentante string `gorm:"not null" json:"tipo_doc_representante"`
	DocIDRepresentante   string `gorm:"not null" json:"doc_id_representante"`
	Parentesco           string `gorm:"not null" json:"parentesco"`
	Telefono             string `gorm:"not null" json:"telefono"`
}

func (RepresentanteLegal) TableName() string { return "representantes_legales" }
