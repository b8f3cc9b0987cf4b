package entity

// TipoReclamacion distinguishes a formal complaint from a grievance.
type TipoReclamacion string

const (
	TipoQueja   TipoReclamacion = "queja"
	TipoReclamo TipoReclamacion = "reclamo"
)

// TipoBien is the subject of the complaint.
type TipoBien string

const (
	BienProducto TipoBien = "producto"
	BienServicio TipoBien = "servicio"
)

// EstadoReclamacion is a named lookup value ("Registrado", "Respondido",
// "Cerrado", ...). States are rows, not a fixed enum; the only
// system-enforced transition is responder → "Respondido".
type EstadoReclamacion struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"not null" json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

func (EstadoReclamacion) TableName() string { return "estados_reclamacion" }

// Reclamacion is a single filed complaint sheet. CodigoHoja is the
// regulatory per-sheet code and is globally unique.
type Reclamacion struct {
	ID               int64           `gorm:"primaryKey" json:"id"`
	LibroID          int64           `gorm:"not null;index" json:"libro_id"`   // References: libro_reclamacions(id)
	ClienteID        int64           `gorm:"not null;index" json:"cliente_id"` // References: clientes(id)
	Fecha            int64           `gorm:"not null" json:"fecha"`
	CodigoHoja       string          `gorm:"not null;uniqueIndex" json:"codigo_hoja"`
	Tipo             TipoReclamacion `gorm:"not null" json:"tipo"`
	TipoBien         TipoBien        `gorm:"not null" json:"tipo_bien"`
	DescripcionBien  string          `gorm:"not null" json:"descripcion_bien"`
	MontoReclamado   *float64        `json:"monto_reclamado,omitempty"`
	Detalle          string          `gorm:"not null" json:"detalle"`
	SolicitudCliente string          `json:"solicitud_cliente,omitempty"`
	Respuesta        *string         `json:"respuesta,omitempty"`
	EstadoID         int64           `gorm:"not null" json:"estado_id"` // References: estado_reclamacions(id), protected

	// Relationships
	Libro    *LibroReclamacion  `gorm:"foreignKey:LibroID;references:ID" json:"libro,omitempty"`
	Cliente  *Cliente           `gorm:"foreignKey:ClienteID;references:ID" json:"cliente,omitempty"`
	Estado   *EstadoReclamacion `gorm:"foreignKey:EstadoID;references:ID" json:"estado,omitempty"`
	Archivos []*ArchivoAdjunto  `gorm:"foreignKey:ReclamacionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"archivos,omitempty"`
}

func (Reclamacion) TableName() string { return "reclamaciones" }

// ArchivoAdjunto records one attachment of a complaint. Only the
// original filename and the storage key are persisted; the bytes live
// in the external object store.
type ArchivoAdjunto struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	ReclamacionID int64  `gorm:"not null;index" json:"reclamacion_id"` // References: reclamacions(id)
	NombreArchivo string `gorm:"not null" json:"nombre_archivo"`
	Ruta          string `gorm:"not null" json:"ruta"`
}

func (ArchivoAdjunto) TableName() string { return "archivos_adjuntos" }
