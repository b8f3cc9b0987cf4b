package handler

import (
	"net/http"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EstadoService interface {
	GetAllEstados() ([]*entity.EstadoReclamacion, apierror.ErrorResponse)
	GetEstadoByID(rawID string) (*entity.EstadoReclamacion, apierror.ErrorResponse)
	CreateEstado(actor *entity.Usuario, req *contract.EstadoRequest) (*entity.EstadoReclamacion, apierror.ErrorResponse)
	UpdateEstado(actor *entity.Usuario, rawID string, req *contract.EstadoRequest) (*entity.EstadoReclamacion, apierror.ErrorResponse)
	DeleteEstado(actor *entity.Usuario, rawID string) apierror.ErrorResponse
}

type DefaultEstadoRoute struct {
	EstadoService EstadoService
}

func NewEstadoDefault(estadoService EstadoService) *DefaultEstadoRoute {
	return &DefaultEstadoRoute{EstadoService: estadoService}
}

func (e *DefaultEstadoRoute) GetEstados(c echo.Context) error {
	estados, apierr := e.EstadoService.GetAllEstados()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"estados": estados}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEstadoRoute) GetEstado(c echo.Context) error {
	estado, apierr := e.EstadoService.GetEstadoByID(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, estado)
}

func (e *DefaultEstadoRoute) CreateEstado(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.EstadoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	estado, apierr := e.EstadoService.CreateEstado(usuario, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, estado)
}

func (e *DefaultEstadoRoute) UpdateEstado(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.EstadoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	estado, apierr := e.EstadoService.UpdateEstado(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, estado)
}

func (e *DefaultEstadoRoute) DeleteEstado(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := e.EstadoService.DeleteEstado(usuario, c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
