package handler

import (
	"net/http"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProveedorService interface {
	GetAllProveedores(actor *entity.Usuario) ([]*entity.Proveedor, apierror.ErrorResponse)
	GetProveedorByID(actor *entity.Usuario, rawID string) (*entity.Proveedor, apierror.ErrorResponse)
	CreateProveedor(actor *entity.Usuario, req *contract.ProveedorRequest) (*entity.Proveedor, apierror.ErrorResponse)
	UpdateProveedor(actor *entity.Usuario, rawID string, req *contract.ProveedorRequest) (*entity.Proveedor, apierror.ErrorResponse)
	DeleteProveedor(actor *entity.Usuario, rawID string) apierror.ErrorResponse
	GetPerfil(actor *entity.Usuario) (*entity.Proveedor, apierror.ErrorResponse)
	UpdatePerfil(actor *entity.Usuario, req *contract.PerfilUpdateRequest) (*entity.Proveedor, apierror.ErrorResponse)
	CambiarContrasena(actor *entity.Usuario, req *contract.CambiarContrasenaRequest) apierror.ErrorResponse
}

type DefaultProveedorRoute struct {
	ProveedorService ProveedorService
}

func NewProveedorDefault(proveedorService ProveedorService) *DefaultProveedorRoute {
	return &DefaultProveedorRoute{ProveedorService: proveedorService}
}

func (p *DefaultProveedorRoute) GetProveedores(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	proveedores, apierr := p.ProveedorService.GetAllProveedores(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"proveedores": proveedores}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultProveedorRoute) GetProveedor(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	proveedor, apierr := p.ProveedorService.GetProveedorByID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, proveedor)
}

func (p *DefaultProveedorRoute) CreateProveedor(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ProveedorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	proveedor, apierr := p.ProveedorService.CreateProveedor(usuario, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, proveedor)
}

func (p *DefaultProveedorRoute) UpdateProveedor(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ProveedorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	proveedor, apierr := p.ProveedorService.UpdateProveedor(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, proveedor)
}

func (p *DefaultProveedorRoute) DeleteProveedor(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := p.ProveedorService.DeleteProveedor(usuario, c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (p *DefaultProveedorRoute) GetPerfil(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	proveedor, apierr := p.ProveedorService.GetPerfil(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, proveedor)
}

func (p *DefaultProveedorRoute) UpdatePerfil(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.PerfilUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	proveedor, apierr := p.ProveedorService.UpdatePerfil(usuario, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, proveedor)
}

func (p *DefaultProveedorRoute) CambiarContrasena(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CambiarContrasenaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := p.ProveedorService.CambiarContrasena(usuario, &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
