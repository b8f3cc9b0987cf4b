package handler

import (
	"net/http"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type LibroService interface {
	GetAllLibros(actor *entity.Usuario) ([]*entity.LibroReclamacion, apierror.ErrorResponse)
	GetLibroByID(actor *entity.Usuario, rawID string) (*entity.LibroReclamacion, apierror.ErrorResponse)
	CreateLibro(actor *entity.Usuario, req *contract.LibroRequest) (*entity.LibroReclamacion, apierror.ErrorResponse)
	UpdateLibro(actor *entity.Usuario, rawID string, req *contract.LibroRequest) (*entity.LibroReclamacion, apierror.ErrorResponse)
	DeleteLibro(actor *entity.Usuario, rawID string) apierror.ErrorResponse
	EditarSlugs(actor *entity.Usuario, rawID string, req *contract.EditarSlugsRequest) (*entity.LibroReclamacion, apierror.ErrorResponse)
	EditarCompleto(actor *entity.Usuario, rawID string, req *contract.LibroCompletoRequest) (*entity.LibroReclamacion, apierror.ErrorResponse)
	ObtenerURL(actor *entity.Usuario, libroSlug, establecimientoSlug string) (*contract.LibroURLResponse, apierror.ErrorResponse)
}

type DefaultLibroRoute struct {
	LibroService LibroService
}

func NewLibroDefault(libroService LibroService) *DefaultLibroRoute {
	return &DefaultLibroRoute{LibroService: libroService}
}

func (l *DefaultLibroRoute) GetLibros(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	libros, apierr := l.LibroService.GetAllLibros(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"libros": libros}
	return c.JSON(http.StatusOK, &resp)
}

func (l *DefaultLibroRoute) GetLibro(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	libro, apierr := l.LibroService.GetLibroByID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, libro)
}

func (l *DefaultLibroRoute) CreateLibro(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.LibroRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	libro, apierr := l.LibroService.CreateLibro(usuario, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, libro)
}

func (l *DefaultLibroRoute) UpdateLibro(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.LibroRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	libro, apierr := l.LibroService.UpdateLibro(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, libro)
}

func (l *DefaultLibroRoute) DeleteLibro(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := l.LibroService.DeleteLibro(usuario, c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (l *DefaultLibroRoute) EditarSlugs(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.EditarSlugsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	libro, apierr := l.LibroService.EditarSlugs(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, libro)
}

func (l *DefaultLibroRoute) EditarCompleto(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.LibroCompletoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	libro, apierr := l.LibroService.EditarCompleto(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, libro)
}

func (l *DefaultLibroRoute) ObtenerURL(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := l.LibroService.ObtenerURL(usuario, c.Param("libro_slug"), c.Param("establecimiento_slug"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
