package service

import (
	"strconv"
	"testing"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadosSeededOnFreshDatabase(t *testing.T) {
	env := newTestEnv(t)

	estados, apierr := env.Estados.GetAllEstados()
	require.Nil(t, apierr)

	nombres := make([]string, len(estados))
	for i, estado := range estados {
		nombres[i] = estado.Nombre
	}
	assert.ElementsMatch(t, []string{"Registrado", "Respondido", "Cerrado"}, nombres)
}

func TestEstadoMutationsRequireSuperuser(t *testing.T) {
	env := newTestEnv(t)
	comun := env.crearUsuario(t, "comun@panel.pe", "Correcta#1", nil, false)

	_, apierr := env.Estados.CreateEstado(comun, &contract.EstadoRequest{Nombre: "En revisión"})
	assert.Equal(t, apierror.SuperuserOnlyError, apierr)
}

func TestDeleteEstadoInUse(t *testing.T) {
	env := newTestEnv(t)
	env.crearCadena(t, "20100070970", "LIB-001")
	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)

	creada, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-020"), nil)
	require.Nil(t, apierr)

	// "Registrado" now anchors a complaint and must not disappear.
	apierr = env.Estados.DeleteEstado(admin, strconv.FormatInt(creada.EstadoID, 10))
	assert.Equal(t, apierror.EstadoEnUsoError, apierr)

	// An unused state deletes cleanly.
	nuevo, apierr := env.Estados.CreateEstado(admin, &contract.EstadoRequest{Nombre: "En revisión"})
	require.Nil(t, apierr)
	apierr = env.Estados.DeleteEstado(admin, strconv.FormatInt(nuevo.ID, 10))
	assert.Nil(t, apierr)
}
