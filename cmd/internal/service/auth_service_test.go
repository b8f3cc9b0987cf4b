package service

import (
	"strconv"
	"testing"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	resp, apierr := env.Auth.Login(&contract.LoginRequest{
		Email:    "nadie@ejemplo.pe",
		Password: "loquesea",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apierror.CorreoNoRegistradoError, apierr)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.crearUsuario(t, "ana@ejemplo.pe", "Correcta#1", nil, false)

	resp, apierr := env.Auth.Login(&contract.LoginRequest{
		Email:    "ana@ejemplo.pe",
		Password: "Incorrecta#1",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apierror.CredencialesInvalidasError, apierr)
}

func TestLoginInactiveUser(t *testing.T) {
	env := newTestEnv(t)
	usuario := env.crearUsuario(t, "baja@ejemplo.pe", "Correcta#1", nil, false)
	usuario.Activo = false
	require.NoError(t, env.UsuarioRepo.Save(usuario))

	resp, apierr := env.Auth.Login(&contract.LoginRequest{
		Email:    "baja@ejemplo.pe",
		Password: "Correcta#1",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apierror.UsuarioInactivoError, apierr)
}

func TestLoginSuccessIssuesTokenPair(t *testing.T) {
	env := newTestEnv(t)
	proveedor := env.crearProveedor(t, "Comercial Lima", "20100070970")
	env.crearUsuario(t, "dueno@comercial.pe", "Correcta#1", &proveedor.ID, false)

	resp, apierr := env.Auth.Login(&contract.LoginRequest{
		Email:    "dueno@comercial.pe",
		Password: "Correcta#1",
	})

	require.Nil(t, apierr)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)
	assert.NotEqual(t, resp.Access, resp.Refresh)
	assert.Equal(t, "proveedor", resp.Role)
	require.NotNil(t, resp.Proveedor)
	assert.Equal(t, proveedor.ID, resp.Proveedor.ID)

	// The access token must resolve back to the same account.
	data, err := utils.ValidateToken(resp.Access)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, data.UserID)
	assert.Equal(t, "dueno@comercial.pe", data.Email)
}

func TestGetUsuarioPorIDRequiresSuperuser(t *testing.T) {
	env := newTestEnv(t)
	comun := env.crearUsuario(t, "comun@ejemplo.pe", "Correcta#1", nil, false)
	admin := env.crearUsuario(t, "admin@ejemplo.pe", "Correcta#1", nil, true)

	_, apierr := env.Auth.GetUsuarioPorID(comun, strconv.FormatInt(admin.ID, 10))
	assert.Equal(t, apierror.SuperuserOnlyError, apierr)

	resp, apierr := env.Auth.GetUsuarioPorID(admin, strconv.FormatInt(comun.ID, 10))
	require.Nil(t, apierr)
	assert.Equal(t, "comun@ejemplo.pe", resp.Email)
}
