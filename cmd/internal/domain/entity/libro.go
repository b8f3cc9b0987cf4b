package entity

import "strings"

// EstadoLibro is the lifecycle state of a complaint book.
type EstadoLibro string

const (
	LibroActivo   EstadoLibro = "activo"
	LibroInactivo EstadoLibro = "inactivo"
	LibroCerrado  EstadoLibro = "cerrado"
)

// LibroReclamacion is the regulatory complaint book. The public
// submission URL is keyed by the (LibroSlug, EstablecimientoSlug) pair,
// which is unique across all books.
//
// EstablecimientoID is nullable: deleting an establishment clears the
// link but the book and its complaints survive.
type LibroReclamacion struct {
	ID                  int64       `gorm:"primaryKey" json:"id"`
	EstablecimientoID   *int64      `gorm:"index" json:"establecimiento_id,omitempty"` // References: establecimientos(id)
	LibroSlug           string      `gorm:"not null;uniqueIndex:idx_libro_slug_pair" json:"libro_slug"`
	EstablecimientoSlug string      `gorm:"not null;uniqueIndex:idx_libro_slug_pair" json:"establecimiento_slug"`
	CodigoLibro         string      `gorm:"not null" json:"codigo_libro"`
	Estado              EstadoLibro `gorm:"not null" json:"estado"`
	CreatedAt           int64       `gorm:"not null" json:"created_at"`

	// Relationships
	Establecimiento *Establecimiento `gorm:"foreignKey:EstablecimientoID;references:ID" json:"establecimiento,omitempty"`
	Reclamaciones   []*Reclamacion   `gorm:"foreignKey:LibroID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reclamaciones,omitempty"`
}

func (LibroReclamacion) TableName() string { return "libros_reclamaciones" }

// URLPublica builds the public complaint-submission URL for this book.
func (l *LibroReclamacion) URLPublica(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	return base + "/libros/libro-reclamacion/" + l.LibroSlug + "/" + l.EstablecimientoSlug + "/"
}

// Slugify turns a book code into its URL-safe slug form. It keeps
// letters and digits, folds everything else into single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // trims leading hyphens
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
