package handler

import (
	"net/http"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AuthService interface {
	Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
	GetUsuario(actor *entity.Usuario) *contract.UsuarioResponse
	GetUsuarioPorID(actor *entity.Usuario, rawID string) (*contract.UsuarioResponse, apierror.ErrorResponse)
}

type DefaultAuthRoute struct {
	AuthService AuthService
}

func NewAuthDefault(authService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{AuthService: authService}
}

func (a *DefaultAuthRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AuthService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) GetUsuario(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}
	return c.JSON(http.StatusOK, a.AuthService.GetUsuario(usuario))
}

func (a *DefaultAuthRoute) GetUsuarioByID(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := a.AuthService.GetUsuarioPorID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
