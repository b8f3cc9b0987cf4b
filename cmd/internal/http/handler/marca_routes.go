package handler

import (
	"net/http"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type MarcaService interface {
	GetAllMarcas(actor *entity.Usuario) ([]*entity.Marca, apierror.ErrorResponse)
	GetMarcaByID(actor *entity.Usuario, rawID string) (*entity.Marca, apierror.ErrorResponse)
	CreateMarca(actor *entity.Usuario, req *contract.MarcaRequest) (*entity.Marca, apierror.ErrorResponse)
	UpdateMarca(actor *entity.Usuario, rawID string, req *contract.MarcaRequest) (*entity.Marca, apierror.ErrorResponse)
	DeleteMarca(actor *entity.Usuario, rawID string) apierror.ErrorResponse
}

type DefaultMarcaRoute struct {
	MarcaService MarcaService
}

func NewMarcaDefault(marcaService MarcaService) *DefaultMarcaRoute {
	return &DefaultMarcaRoute{MarcaService: marcaService}
}

func (m *DefaultMarcaRoute) GetMarcas(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	marcas, apierr := m.MarcaService.GetAllMarcas(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"marcas": marcas}
	return c.JSON(http.StatusOK, &resp)
}

func (m *DefaultMarcaRoute) GetMarca(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	marca, apierr := m.MarcaService.GetMarcaByID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, marca)
}

func (m *DefaultMarcaRoute) CreateMarca(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.MarcaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	marca, apierr := m.MarcaService.CreateMarca(usuario, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, marca)
}

func (m *DefaultMarcaRoute) UpdateMarca(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.MarcaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	marca, apierr := m.MarcaService.UpdateMarca(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, marca)
}

func (m *DefaultMarcaRoute) DeleteMarca(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := m.MarcaService.DeleteMarca(usuario, c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
