package service

import (
	"strconv"
	"testing"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMarcaCascadesEstablecimientos(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)

	marcas, err := env.MarcaRepo.FindAllScoped(policy.Alcance{Superuser: true})
	require.NoError(t, err)
	require.Len(t, marcas, 1)

	apierr := env.Marcas.DeleteMarca(admin, strconv.FormatInt(marcas[0].ID, 10))
	require.Nil(t, apierr)

	assert.EqualValues(t, 0, env.contar(t, &entity.Marca{}))
	assert.EqualValues(t, 0, env.contar(t, &entity.Establecimiento{}))

	// The book survives, orphaned like after a direct establecimiento
	// delete.
	huerfano, err := env.LibroRepo.FindScopedByID(policy.Alcance{Superuser: true}, libro.ID)
	require.NoError(t, err)
	require.NotNil(t, huerfano)
	assert.Nil(t, huerfano.EstablecimientoID)
}

func TestDeleteMarcaForeignIsInvisible(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")
	otro := env.crearCadena(t, "20131312955", "LIB-002")
	intruso := env.duenoDe(t, otro, "intruso@otro.pe")

	marcas, err := env.MarcaRepo.FindAllScoped(policy.AlcanceDe(dueno))
	require.NoError(t, err)
	require.Len(t, marcas, 1)

	apierr := env.Marcas.DeleteMarca(intruso, strconv.FormatInt(marcas[0].ID, 10))
	assert.Equal(t, apierror.NotFoundError, apierr)
	assert.EqualValues(t, 2, env.contar(t, &entity.Marca{}))
}
