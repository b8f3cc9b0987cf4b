package service

import (
	"strconv"
	"testing"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reclamoValido(codigoLibro, codigoHoja string) *contract.CrearReclamoRequest {
	return &contract.CrearReclamoRequest{
		Libro: codigoLibro,
		Cliente: &contract.ClientePayload{
			NombreCliente:   "María Quispe",
			TipoDocCliente:  "DNI",
			DocIDCliente:    "45678912",
			FechaNacimiento: "1990-04-12",
			Email:           "maria@correo.pe",
			Telefono:        "+51 999 888 777",
		},
		CodigoHoja:      codigoHoja,
		Tipo:            "reclamo",
		TipoBien:        "producto",
		DescripcionBien: "Licuadora modelo X",
		Detalle:         "El producto llegó dañado y nadie responde.",
	}
}

func TestCrearReclamoSuccess(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")

	reclamacion, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-001"), nil)
	require.Nil(t, apierr)
	require.NotNil(t, reclamacion)

	assert.Equal(t, libro.ID, reclamacion.LibroID)
	assert.Equal(t, entity.TipoReclamo, reclamacion.Tipo)
	require.NotNil(t, reclamacion.Estado)
	assert.Equal(t, "Registrado", reclamacion.Estado.Nombre)

	assert.EqualValues(t, 1, env.contar(t, &entity.Cliente{}))
	assert.EqualValues(t, 1, env.contar(t, &entity.Reclamacion{}))
}

func TestCrearReclamoWithRepresentantes(t *testing.T) {
	env := newTestEnv(t)
	env.crearCadena(t, "20100070970", "LIB-001")

	req := reclamoValido("LIB-001", "HOJA-002")
	req.Cliente.Representantes = []contract.RepresentantePayload{{
		NombreRepresentante:  "Jorge Quispe",
		TipoDocRepresentante: "DNI",
		DocIDRepresentante:   "09876543",
		Parentesco:           "padre",
		Telefono:             "+51 999 111 222",
	}}

	reclamacion, apierr := env.Reclamaciones.CrearReclamo(req, nil)
	require.Nil(t, apierr)
	require.NotNil(t, reclamacion.Cliente)
	require.Len(t, reclamacion.Cliente.Representantes, 1)

	assert.EqualValues(t, 1, env.contar(t, &entity.RepresentanteLegal{}))
}

func TestCrearReclamoInactiveBook(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	libro.Estado = entity.LibroInactivo
	require.NoError(t, env.LibroRepo.Save(libro))

	reclamacion, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-003"), nil)
	assert.Nil(t, reclamacion)
	assert.Equal(t, apierror.LibroNoActivoError, apierr)

	// The complainant must not be half-registered.
	assert.EqualValues(t, 0, env.contar(t, &entity.Cliente{}))
	assert.EqualValues(t, 0, env.contar(t, &entity.Reclamacion{}))
}

func TestCrearReclamoUnknownBookSameAnswer(t *testing.T) {
	env := newTestEnv(t)
	env.crearCadena(t, "20100070970", "LIB-001")

	_, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("NO-EXISTE", "HOJA-004"), nil)
	assert.Equal(t, apierror.LibroNoActivoError, apierr)
}

func TestCrearReclamoDuplicateCodigoHoja(t *testing.T) {
	env := newTestEnv(t)
	env.crearCadena(t, "20100070970", "LIB-001")

	_, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-005"), nil)
	require.Nil(t, apierr)

	_, apierr = env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-005"), nil)
	assert.Equal(t, apierror.CodigoHojaDuplicadoError, apierr)
	assert.EqualValues(t, 1, env.contar(t, &entity.Cliente{}))
}

func TestResponderTransitionsEstado(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")

	creada, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-006"), nil)
	require.Nil(t, apierr)

	respondida, apierr := env.Reclamaciones.Responder(dueno, strconv.FormatInt(creada.ID, 10), &contract.ResponderRequest{
		Respuesta: "Le enviaremos un reemplazo esta semana.",
	})
	require.Nil(t, apierr)
	require.NotNil(t, respondida.Respuesta)
	assert.Equal(t, "Le enviaremos un reemplazo esta semana.", *respondida.Respuesta)
	require.NotNil(t, respondida.Estado)
	assert.Equal(t, "Respondido", respondida.Estado.Nombre)

	// The transition must be persisted, not just echoed.
	releida, apierr := env.Reclamaciones.GetReclamacionByID(dueno, strconv.FormatInt(creada.ID, 10))
	require.Nil(t, apierr)
	assert.Equal(t, "Respondido", releida.Estado.Nombre)
}

func TestResponderWithoutEstadoRespondido(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")

	creada, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-011"), nil)
	require.Nil(t, apierr)

	require.NoError(t, env.db.Where("nombre = ?", "Respondido").Delete(&entity.EstadoReclamacion{}).Error)

	respondida, apierr := env.Reclamaciones.Responder(dueno, strconv.FormatInt(creada.ID, 10), &contract.ResponderRequest{
		Respuesta: "Atendido por otro canal.",
	})
	require.Nil(t, apierr)
	require.NotNil(t, respondida.Respuesta)

	// The reply lands; the estado stays where it was.
	releida, apierr := env.Reclamaciones.GetReclamacionByID(dueno, strconv.FormatInt(creada.ID, 10))
	require.Nil(t, apierr)
	require.NotNil(t, releida.Respuesta)
	assert.Equal(t, "Atendido por otro canal.", *releida.Respuesta)
	require.NotNil(t, releida.Estado)
	assert.Equal(t, "Registrado", releida.Estado.Nombre)
}

func TestResponderForeignComplaintIsInvisible(t *testing.T) {
	env := newTestEnv(t)
	env.crearCadena(t, "20100070970", "LIB-001")
	otro := env.crearCadena(t, "20131312955", "LIB-002")

	intruso := env.duenoDe(t, otro, "intruso@otro.pe")

	creada, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-007"), nil)
	require.Nil(t, apierr)

	_, apierr = env.Reclamaciones.Responder(intruso, strconv.FormatInt(creada.ID, 10), &contract.ResponderRequest{
		Respuesta: "No debería poder.",
	})
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestGetTablaScopedByProveedor(t *testing.T) {
	env := newTestEnv(t)
	libroA := env.crearCadena(t, "20100070970", "LIB-001")
	libroB := env.crearCadena(t, "20131312955", "LIB-002")

	duenoA := env.duenoDe(t, libroA, "a@cadena.pe")
	duenoB := env.duenoDe(t, libroB, "b@cadena.pe")

	_, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-008"), nil)
	require.Nil(t, apierr)
	_, apierr = env.Reclamaciones.CrearReclamo(reclamoValido("LIB-002", "HOJA-009"), nil)
	require.Nil(t, apierr)

	filasA, apierr := env.Reclamaciones.GetTabla(duenoA)
	require.Nil(t, apierr)
	require.Len(t, filasA, 1)
	assert.Equal(t, "HOJA-008", filasA[0].CodigoHoja)
	assert.Equal(t, "Registrado", filasA[0].Estado)
	require.NotNil(t, filasA[0].Reclamante)
	assert.Equal(t, "María Quispe", filasA[0].Reclamante.Nombre)

	filasB, apierr := env.Reclamaciones.GetTabla(duenoB)
	require.Nil(t, apierr)
	require.Len(t, filasB, 1)
	assert.Equal(t, "HOJA-009", filasB[0].CodigoHoja)

	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)
	todas, apierr := env.Reclamaciones.GetTabla(admin)
	require.Nil(t, apierr)
	assert.Len(t, todas, 2)
}

func TestGetArchivosScopedThroughComplaint(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	otro := env.crearCadena(t, "20131312955", "LIB-002")

	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")
	intruso := env.duenoDe(t, otro, "intruso@otro.pe")

	creada, apierr := env.Reclamaciones.CrearReclamo(reclamoValido("LIB-001", "HOJA-010"), nil)
	require.Nil(t, apierr)

	require.NoError(t, env.db.Create(&entity.ArchivoAdjunto{
		ID:            creada.ID + 1,
		ReclamacionID: creada.ID,
		NombreArchivo: "boleta.pdf",
		Ruta:          "adjuntos/boleta.pdf",
	}).Error)

	archivos, apierr := env.Reclamaciones.GetArchivos(dueno, strconv.FormatInt(creada.ID, 10))
	require.Nil(t, apierr)
	require.Len(t, archivos, 1)
	assert.Equal(t, "boleta.pdf", archivos[0].NombreArchivo)

	_, apierr = env.Reclamaciones.GetArchivos(intruso, strconv.FormatInt(creada.ID, 10))
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestGetAllClientesRequiresSuperuser(t *testing.T) {
	env := newTestEnv(t)
	libro := env.crearCadena(t, "20100070970", "LIB-001")
	dueno := env.duenoDe(t, libro, "dueno@cadena.pe")

	_, apierr := env.Reclamaciones.GetAllClientes(dueno)
	assert.Equal(t, apierror.SuperuserOnlyError, apierr)
}
