package contract

// MaxAdjuntoSizeBytes bounds a single attachment upload.
const MaxAdjuntoSizeBytes = 10 * 1024 * 1024

var ValidAdjuntoFileTypes = []string{"pdf", "png", "jpg", "jpeg", "webp"}

type RepresentantePayload struct {
	NombreRepresentante  string `json:"nombre_representante" validate:"required,min=2,max=100"`
	TipoDocRepresentante string `json:"tipo_doc_representante" validate:"required,max=15"`
	DocIDRepresentante   string `json:"doc_id_representante" validate:"required,max=15"`
	Parentesco           string `json:"parentesco" validate:"required,max=50"`
	Telefono             string `json:"telefono" validate:"required,max=20"`
}

type ClientePayload struct {
	NombreCliente   string                 `json:"nombre_cliente" validate:"required,min=2,max=100"`
	TipoDocCliente  string                 `json:"tipo_doc_cliente" validate:"required,max=15"`
	DocIDCliente    string                 `json:"doc_id_cliente" validate:"required,max=15"`
	FechaNacimiento string                 `json:"fecha_nacimiento" validate:"required"`
	Email           string                 `json:"email" validate:"required,email"`
	Telefono        string                 `json:"telefono" validate:"required,max=20"`
	Representantes  []RepresentantePayload `json:"representantes" validate:"omitempty,dive"`
}

// CrearReclamoRequest is the unauthenticated intake payload. Libro is
// the human-readable book code, never a slug or primary key.
type CrearReclamoRequest struct {
	Libro            string          `json:"libro" validate:"required"`
	Cliente          *ClientePayload `json:"cliente" validate:"required"`
	Fecha            string          `json:"fecha" validate:"omitempty"`
	CodigoHoja       string          `json:"codigo_hoja" validate:"required,min=2,max=50"`
	Tipo             string          `json:"tipo" validate:"required,oneof=queja reclamo"`
	TipoBien         string          `json:"tipo_bien" validate:"required,oneof=producto servicio"`
	DescripcionBien  string          `json:"descripcion_bien" validate:"required"`
	MontoReclamado   *float64        `json:"monto_reclamado" validate:"omitempty,gte=0"`
	Detalle          string          `json:"detalle" validate:"required"`
	SolicitudCliente string          `json:"solicitud_cliente" validate:"omitempty"`
	EstadoID         *int64          `json:"estado_id" validate:"omitempty"`
}

type EstadoRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=50"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=200"`
}

type ResponderRequest struct {
	Respuesta string `json:"respuesta" validate:"required"`
}

// ReclamacionPlanaResponse is the flattened dashboard row.
type ReclamacionPlanaResponse struct {
	ID                 int64              `json:"id"`
	CodigoHoja         string             `json:"codigo_hoja"`
	Tipo               string             `json:"tipo"`
	Estado             string             `json:"estado"`
	Fecha              string             `json:"fecha"`
	DetalleReclamacion string             `json:"detalle_reclamacion"`
	Establecimiento    string             `json:"establecimiento"`
	Reclamante         *ReclamanteResumen `json:"reclamante"`
}

type ReclamanteResumen struct {
	Nombre             string `json:"nombre"`
	DocumentoIdentidad string `json:"documento_identidad"`
	Email              string `json:"email"`
}
