package service

import (
	"testing"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateProveedorValidatesRUC(t *testing.T) {
	env := newTestEnv(t)
	admin := env.crearUsuario(t, "admin@panel.pe", "Correcta#1", nil, true)

	req := &contract.ProveedorRequest{
		RazonSocial:     "Distribuidora Andina SAC",
		RUC:             "20100070971", // bad check digit
		DomicilioFiscal: "Av. Brasil 100, Lima",
		Telefono:        "+51 1 555 0300",
		EmailContacto:   "ventas@andina.pe",
	}

	_, apierr := env.Proveedores.CreateProveedor(admin, req)
	assert.Equal(t, apierror.RUCInvalidoError, apierr)

	req.RUC = "20100070970"
	proveedor, apierr := env.Proveedores.CreateProveedor(admin, req)
	require.Nil(t, apierr)
	assert.True(t, proveedor.Activo)

	// Same RUC twice is a conflict.
	_, apierr = env.Proveedores.CreateProveedor(admin, req)
	assert.Equal(t, apierror.RUCDuplicadoError, apierr)
}

func TestProveedorCatalogRequiresSuperuser(t *testing.T) {
	env := newTestEnv(t)
	comun := env.crearUsuario(t, "comun@panel.pe", "Correcta#1", nil, false)

	_, apierr := env.Proveedores.GetAllProveedores(comun)
	assert.Equal(t, apierror.SuperuserOnlyError, apierr)
}

func TestPerfilAllowlist(t *testing.T) {
	env := newTestEnv(t)
	proveedor := env.crearProveedor(t, "Comercial Lima", "20100070970")
	dueno := env.crearUsuario(t, "dueno@comercial.pe", "Correcta#1", &proveedor.ID, false)

	nuevoTelefono := "+51 1 555 9999"
	actualizado, apierr := env.Proveedores.UpdatePerfil(dueno, &contract.PerfilUpdateRequest{
		Telefono: &nuevoTelefono,
	})
	require.Nil(t, apierr)
	assert.Equal(t, nuevoTelefono, actualizado.Telefono)
	// Untouched fields stay put.
	assert.Equal(t, "Comercial Lima", actualizado.RazonSocial)
}

func TestPerfilWithoutProveedor(t *testing.T) {
	env := newTestEnv(t)
	suelto := env.crearUsuario(t, "suelto@panel.pe", "Correcta#1", nil, false)

	_, apierr := env.Proveedores.GetPerfil(suelto)
	assert.Equal(t, apierror.SinProveedorError, apierr)
}

func TestCambiarContrasena(t *testing.T) {
	env := newTestEnv(t)
	dueno := env.crearUsuario(t, "dueno@comercial.pe", "Correcta#1", nil, false)

	// Wrong current password.
	apierr := env.Proveedores.CambiarContrasena(dueno, &contract.CambiarContrasenaRequest{
		Actual:    "Equivocada#1",
		Nueva:     "NuevaClave#9",
		Confirmar: "NuevaClave#9",
	})
	assert.Equal(t, apierror.ContrasenaActualError, apierr)

	// Mismatched confirmation.
	apierr = env.Proveedores.CambiarContrasena(dueno, &contract.CambiarContrasenaRequest{
		Actual:    "Correcta#1",
		Nueva:     "NuevaClave#9",
		Confirmar: "OtraClave#9",
	})
	assert.Equal(t, apierror.ContrasenasNoCoincidenError, apierr)

	// Weak password fails the strength rules.
	apierr = env.Proveedores.CambiarContrasena(dueno, &contract.CambiarContrasenaRequest{
		Actual:    "Correcta#1",
		Nueva:     "solominusculas",
		Confirmar: "solominusculas",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())

	// And the happy path re-hashes.
	apierr = env.Proveedores.CambiarContrasena(dueno, &contract.CambiarContrasenaRequest{
		Actual:    "Correcta#1",
		Nueva:     "NuevaClave#9",
		Confirmar: "NuevaClave#9",
	})
	require.Nil(t, apierr)

	guardado, err := env.UsuarioRepo.FindByID(dueno.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Password), []byte("NuevaClave#9")))
}
