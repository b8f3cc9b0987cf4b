package contract

type ProveedorRequest struct {
	RazonSocial     string `json:"razon_social" validate:"required,min=2,max=100"`
	RUC             string `json:"ruc" validate:"required,len=11"`
	DomicilioFiscal string `json:"domicilio_fiscal" validate:"required,max=150"`
	Telefono        string `json:"telefono" validate:"required,max=20"`
	EmailContacto   string `json:"email_contacto" validate:"required,email"`
	Activo          *bool  `json:"activo" validate:"omitempty"`
}

// PerfilUpdateRequest is the fixed allowlist a proveedor may edit on
// its own row. The target row always comes from the authenticated
// actor, never from the request.
type PerfilUpdateRequest struct {
	RazonSocial     *string `json:"razon_social" validate:"omitempty,min=2,max=100"`
	RUC             *string `json:"ruc" validate:"omitempty,len=11"`
	DomicilioFiscal *string `json:"domicilio_fiscal" validate:"omitempty,max=150"`
	Telefono        *string `json:"telefono" validate:"omitempty,max=20"`
	EmailContacto   *string `json:"email_contacto" validate:"omitempty,email"`
}

type CambiarContrasenaRequest struct {
	Actual    string `json:"actual" validate:"required"`
	Nueva     string `json:"nueva" validate:"required,min=8,max=64,hasspecial,hasdigit,hasupper,haslower"`
	Confirmar string `json:"confirmar" validate:"required"`
}

type MarcaRequest struct {
	ProveedorID int64  `json:"proveedor_id" validate:"required"`
	NombreMarca string `json:"nombre_marca" validate:"required,min=2,max=100"`
	Descripcion string `json:"descripcion" validate:"required,max=200"`
	Activa      *bool  `json:"activa" validate:"omitempty"`
}

type EstablecimientoRequest struct {
	MarcaID               int64  `json:"marca_id" validate:"required"`
	NombreEstablecimiento string `json:"nombre_establecimiento" validate:"required,min=2,max=100"`
	Direccion             string `json:"direccion" validate:"omitempty,max=150"`
	Distrito              string `json:"distrito" validate:"omitempty,max=50"`
	Provincia             string `json:"provincia" validate:"omitempty,max=50"`
	Departamento          string `json:"departamento" validate:"omitempty,max=50"`
	EnlaceAcceso          string `json:"enlace_acceso" validate:"omitempty,max=255"`
	Telefono              string `json:"telefono" validate:"required,max=20"`
	EmailContacto         string `json:"email_contacto" validate:"required,email"`
	EsOnline              bool   `json:"es_online"`
	Activo                *bool  `json:"activo" validate:"omitempty"`
}
