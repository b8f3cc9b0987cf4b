package handler

import (
	"net/http"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EstablecimientoService interface {
	GetAllEstablecimientos(actor *entity.Usuario) ([]*entity.Establecimiento, apierror.ErrorResponse)
	GetEstablecimientoByID(actor *entity.Usuario, rawID string) (*entity.Establecimiento, apierror.ErrorResponse)
	CreateEstablecimiento(actor *entity.Usuario, req *contract.EstablecimientoRequest) (*entity.Establecimiento, apierror.ErrorResponse)
	UpdateEstablecimiento(actor *entity.Usuario, rawID string, req *contract.EstablecimientoRequest) (*entity.Establecimiento, apierror.ErrorResponse)
	DeleteEstablecimiento(actor *entity.Usuario, rawID string) apierror.ErrorResponse
}

type DefaultEstablecimientoRoute struct {
	EstablecimientoService EstablecimientoService
}

func NewEstablecimientoDefault(establecimientoService EstablecimientoService) *DefaultEstablecimientoRoute {
	return &DefaultEstablecimientoRoute{EstablecimientoService: establecimientoService}
}

func (e *DefaultEstablecimientoRoute) GetEstablecimientos(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	establecimientos, apierr := e.EstablecimientoService.GetAllEstablecimientos(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"establecimientos": establecimientos}
	return c.JSON(http.StatusOK, &resp)
}

func (e *DefaultEstablecimientoRoute) GetEstablecimiento(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	establecimiento, apierr := e.EstablecimientoService.GetEstablecimientoByID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, establecimiento)
}

func (e *DefaultEstablecimientoRoute) CreateEstablecimiento(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.EstablecimientoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	establecimiento, apierr := e.EstablecimientoService.CreateEstablecimiento(usuario, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, establecimiento)
}

func (e *DefaultEstablecimientoRoute) UpdateEstablecimiento(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.EstablecimientoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	establecimiento, apierr := e.EstablecimientoService.UpdateEstablecimiento(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, establecimiento)
}

func (e *DefaultEstablecimientoRoute) DeleteEstablecimiento(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := e.EstablecimientoService.DeleteEstablecimiento(usuario, c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
