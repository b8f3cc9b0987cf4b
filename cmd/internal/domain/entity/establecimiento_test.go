package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOnlineRejectsAddress(t *testing.T) {
	cases := map[string]*Establecimiento{
		"direccion":    {EsOnline: true, Direccion: "Av. Lima 1"},
		"distrito":     {EsOnline: true, Distrito: "Miraflores"},
		"provincia":    {EsOnline: true, Provincia: "Lima"},
		"departamento": {EsOnline: true, Departamento: "Lima"},
	}

	for name, establecimiento := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, establecimiento.Validate(), ErrOnlineConDireccion)
		})
	}
}

func TestValidateFisicoRejectsEnlace(t *testing.T) {
	establecimiento := &Establecimiento{EnlaceAcceso: "https://tienda.pe"}
	assert.ErrorIs(t, establecimiento.Validate(), ErrFisicoConEnlace)
}

func TestValidateAcceptsBothShapes(t *testing.T) {
	online := NuevoEstablecimientoOnline("Tienda Web", "https://tienda.pe")
	assert.NoError(t, online.Validate())

	fisico := NuevoEstablecimientoFisico("Tienda Centro", DireccionFisica{
		Direccion: "Jr. Unión 500",
		Distrito:  "Lima",
	})
	assert.NoError(t, fisico.Validate())

	// A physical location with no address at all is still legal.
	vacio := &Establecimiento{}
	assert.NoError(t, vacio.Validate())

	// And an online channel without a link is tolerated too.
	sinEnlace := &Establecimiento{EsOnline: true}
	assert.NoError(t, sinEnlace.Validate())
}
