package service

import (
	"strconv"
	"testing"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"
	"reclamalibro/cmd/internal/utils/uid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) crearMarca(t *testing.T, proveedorID int64) *entity.Marca {
	t.Helper()

	marca := &entity.Marca{
		ID:          uid.Generate(),
		ProveedorID: proveedorID,
		NombreMarca: "Marca Test",
		Descripcion: "Marca de prueba",
		Activa:      true,
		CreatedAt:   utils.NowUTC(),
	}
	require.NoError(t, e.MarcaRepo.Save(marca))
	return marca
}

func TestCreateEstablecimientoOnlineRejectsAddress(t *testing.T) {
	env := newTestEnv(t)
	proveedor := env.crearProveedor(t, "Comercial Lima", "20100070970")
	marca := env.crearMarca(t, proveedor.ID)
	dueno := env.crearUsuario(t, "dueno@comercial.pe", "Correcta#1", &proveedor.ID, false)

	_, apierr := env.Establecimiento.CreateEstablecimiento(dueno, &contract.EstablecimientoRequest{
		MarcaID:               marca.ID,
		NombreEstablecimiento: "Tienda Web",
		EnlaceAcceso:          "https://tienda.pe",
		Direccion:             "Av. Lima 1",
		Telefono:              "+51 1 555 0400",
		EmailContacto:         "web@comercial.pe",
		EsOnline:              true,
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestCreateEstablecimientoForeignMarca(t *testing.T) {
	env := newTestEnv(t)
	ajeno := env.crearProveedor(t, "Otro SAC", "20131312955")
	marcaAjena := env.crearMarca(t, ajeno.ID)

	proveedor := env.crearProveedor(t, "Comercial Lima", "20100070970")
	dueno := env.crearUsuario(t, "dueno@comercial.pe", "Correcta#1", &proveedor.ID, false)

	_, apierr := env.Establecimiento.CreateEstablecimiento(dueno, &contract.EstablecimientoRequest{
		MarcaID:               marcaAjena.ID,
		NombreEstablecimiento: "Colado",
		Telefono:              "+51 1 555 0400",
		EmailContacto:         "web@comercial.pe",
	})
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestDeleteEstablecimientoClearsBookLink(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")

	apierr := env.Establecimiento.DeleteEstablecimiento(dueno, strconv.FormatInt(*libro.EstablecimientoID, 10))
	require.Nil(t, apierr)

	// The book survives, orphaned.
	huerfano, err := env.LibroRepo.FindScopedByID(policy.Alcance{Superuser: true}, libro.ID)
	require.NoError(t, err)
	require.NotNil(t, huerfano)
	assert.Nil(t, huerfano.EstablecimientoID)

	// And drops out of the previous owner's scoped listing.
	libros, apierr := env.Libros.GetAllLibros(dueno)
	require.Nil(t, apierr)
	assert.Empty(t, libros)
}
