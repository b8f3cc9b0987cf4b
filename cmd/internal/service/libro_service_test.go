package service

import (
	"strconv"
	"testing"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLibroDerivesSlug(t *testing.T) {
	env := newTestEnv(t)
	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)

	libro, apierr := env.Libros.CreateLibro(admin, &contract.LibroRequest{
		CodigoLibro:         "Libro Ñandú 001",
		EstablecimientoSlug: "tienda-centro",
		Estado:              "activo",
	})
	require.Nil(t, apierr)
	assert.Equal(t, "libro-and-001", libro.LibroSlug)
	assert.Equal(t, entity.LibroActivo, libro.Estado)
}

func TestCreateLibroDuplicateSlugPair(t *testing.T) {
	env := newTestEnv(t)
	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)

	req := &contract.LibroRequest{
		CodigoLibro:         "LIB-010",
		EstablecimientoSlug: "tienda-centro",
		Estado:              "activo",
	}

	_, apierr := env.Libros.CreateLibro(admin, req)
	require.Nil(t, apierr)

	_, apierr = env.Libros.CreateLibro(admin, req)
	assert.Equal(t, apierror.SlugsDuplicadosError, apierr)
}

func TestGetLibrosScopedByProveedor(t *testing.T) {
	env := newTestEnv(t)
	libroA := env.crearCadena(t, "20100070970", "LIB-001")
	libroB := env.crearCadena(t, "20131312955", "LIB-002")

	duenoA := env.duenoDe(t, libroA, "a@cadena.pe")

	libros, apierr := env.Libros.GetAllLibros(duenoA)
	require.Nil(t, apierr)
	require.Len(t, libros, 1)
	assert.Equal(t, libroA.ID, libros[0].ID)

	// A foreign book by ID is a plain 404, not a 403.
	_, apierr = env.Libros.GetLibroByID(duenoA, strconv.FormatInt(libroB.ID, 10))
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestGetLibrosUnboundUserSeesNothing(t *testing.T) {
	env := newTestEnv(t)
	env.crearCadena(t, "20100070970", "LIB-001")
	suelto := env.crearUsuario(t, "suelto@panel.pe", "Correcta#1", nil, false)

	libros, apierr := env.Libros.GetAllLibros(suelto)
	require.Nil(t, apierr)
	assert.Empty(t, libros)
}

func TestEditarSlugsCollision(t *testing.T) {
	env := newTestEnv(t)
	libroA := env.crearCadena(t, "20100070970", "LIB-001")
	libroB := env.crearCadena(t, "20131312955", "LIB-002")
	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)

	_, apierr := env.Libros.EditarSlugs(admin, strconv.FormatInt(libroB.ID, 10), &contract.EditarSlugsRequest{
		LibroSlug:           &libroA.LibroSlug,
		EstablecimientoSlug: &libroA.EstablecimientoSlug,
	})
	assert.Equal(t, apierror.SlugsDuplicadosError, apierr)

	// Saving a book over its own pair stays legal.
	actualizado, apierr := env.Libros.EditarSlugs(admin, strconv.FormatInt(libroA.ID, 10), &contract.EditarSlugsRequest{
		LibroSlug: &libroA.LibroSlug,
	})
	require.Nil(t, apierr)
	assert.Equal(t, libroA.LibroSlug, actualizado.LibroSlug)
}

func TestObtenerURL(t *testing.T) {
	env := newTestEnv(t)
	libroA := env.crearCadena(t, "20100070970", "LIB-001")
	libroB := env.crearCadena(t, "20131312955", "LIB-002")

	duenoA := env.duenoDe(t, libroA, "a@cadena.pe")

	resp, apierr := env.Libros.ObtenerURL(duenoA, libroA.LibroSlug, libroA.EstablecimientoSlug)
	require.Nil(t, apierr)
	assert.Equal(t,
		"https://reclamalibro.pe/libros/libro-reclamacion/"+libroA.LibroSlug+"/"+libroA.EstablecimientoSlug+"/",
		resp.URL)

	// The slug lookup is unscoped, so a foreign book is found and the
	// denial is explicit.
	_, apierr = env.Libros.ObtenerURL(duenoA, libroB.LibroSlug, libroB.EstablecimientoSlug)
	assert.Equal(t, apierror.LibroAjenoError, apierr)

	_, apierr = env.Libros.ObtenerURL(duenoA, "no-existe", "tampoco")
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestDeleteLibroClosesIt(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")

	apierr := env.Libros.DeleteLibro(dueno, strconv.FormatInt(libro.ID, 10))
	require.Nil(t, apierr)

	cerrado, err := env.LibroRepo.FindScopedByID(policy.Alcance{Superuser: true}, libro.ID)
	require.NoError(t, err)
	require.NotNil(t, cerrado)
	assert.Equal(t, entity.LibroCerrado, cerrado.Estado)

	// A closed book no longer accepts complaints.
	_, apierr = env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-010"), nil)
	assert.Equal(t, apierror.LibroNoActivoError, apierr)
}

func TestEditarCompletoUpdatesChain(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")

	nuevoNombre := "Local Renovado"
	nuevaMarca := "Marca Renovada"
	nuevoSlug := "lib-001-nuevo"

	actualizado, apierr := env.Libros.EditarCompleto(dueno, strconv.FormatInt(libro.ID, 10), &contract.LibroCompletoRequest{
		LibroSlug: &nuevoSlug,
		Establecimiento: &contract.EstablecimientoInline{
			NombreEstablecimiento: &nuevoNombre,
			Marca:                 &contract.MarcaInline{NombreMarca: &nuevaMarca},
		},
	})
	require.Nil(t, apierr)
	assert.Equal(t, nuevoSlug, actualizado.LibroSlug)

	releido, err := env.LibroRepo.FindScopedByID(policy.Alcance{Superuser: true}, libro.ID)
	require.NoError(t, err)
	assert.Equal(t, nuevoNombre, releido.Establecimiento.NombreEstablecimiento)
	assert.Equal(t, nuevaMarca, releido.Establecimiento.Marca.NombreMarca)
}
