package contract

type LibroRequest struct {
	EstablecimientoID   *int64 `json:"establecimiento_id" validate:"omitempty"`
	CodigoLibro         string `json:"codigo_libro" validate:"required,min=2,max=50"`
	LibroSlug           string `json:"libro_slug" validate:"omitempty,max=50,slug"`
	EstablecimientoSlug string `json:"establecimiento_slug" validate:"required,max=50,slug"`
	Estado              string `json:"estado" validate:"required,oneof=activo inactivo cerrado"`
}

// EditarSlugsRequest edits strictly the routing slug pair.
type EditarSlugsRequest struct {
	LibroSlug           *string `json:"libro_slug" validate:"omitempty,min=1,max=50,slug"`
	EstablecimientoSlug *string `json:"establecimiento_slug" validate:"omitempty,min=1,max=50,slug"`
}

// MarcaInline and EstablecimientoInline ride inside the composite
// update; every field is optional and only supplied fields overwrite.
type MarcaInline struct {
	NombreMarca *string `json:"nombre_marca" validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=200"`
}

type EstablecimientoInline struct {
	NombreEstablecimiento *string      `json:"nombre_establecimiento" validate:"omitempty,min=2,max=100"`
	Direccion             *string      `json:"direccion" validate:"omitempty,max=150"`
	Distrito              *string      `json:"distrito" validate:"omitempty,max=50"`
	Provincia             *string      `json:"provincia" validate:"omitempty,max=50"`
	Departamento          *string      `json:"departamento" validate:"omitempty,max=50"`
	EnlaceAcceso          *string      `json:"enlace_acceso" validate:"omitempty,max=255"`
	Telefono              *string      `json:"telefono" validate:"omitempty,max=20"`
	EmailContacto         *string      `json:"email_contacto" validate:"omitempty,email"`
	EsOnline              *bool        `json:"es_online"`
	Marca                 *MarcaInline `json:"marca" validate:"omitempty"`
}

type LibroCompletoRequest struct {
	LibroSlug           *string                `json:"libro_slug" validate:"omitempty,min=1,max=50,slug"`
	EstablecimientoSlug *string                `json:"establecimiento_slug" validate:"omitempty,min=1,max=50,slug"`
	Establecimiento     *EstablecimientoInline `json:"establecimiento" validate:"omitempty"`
}

type LibroURLResponse struct {
	URL string `json:"url"`
}
