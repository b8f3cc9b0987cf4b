package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"LIB-001":            "lib-001",
		"Libro Principal":    "libro-principal",
		"  espacios  ":       "espacios",
		"Tienda--Centro":     "tienda-centro",
		"¡Ñandú 2024!":       "and-2024",
		"---":                "",
		"ya-es-un-slug":      "ya-es-un-slug",
		"MAYUSCULAS Y 123":   "mayusculas-y-123",
		"puntos.y,comas;":    "puntos-y-comas",
	}

	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestURLPublica(t *testing.T) {
	libro := &LibroReclamacion{
		LibroSlug:           "lib-001",
		EstablecimientoSlug: "tienda-centro",
	}

	assert.Equal(t,
		"https://reclamalibro.pe/libros/libro-reclamacion/lib-001/tienda-centro/",
		libro.URLPublica("https://reclamalibro.pe"))

	// A trailing slash on the base does not double up.
	assert.Equal(t,
		"https://reclamalibro.pe/libros/libro-reclamacion/lib-001/tienda-centro/",
		libro.URLPublica("https://reclamalibro.pe/"))
}
