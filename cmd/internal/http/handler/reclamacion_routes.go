package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ReclamacionService interface {
	CrearReclamo(req *contract.CrearReclamoRequest, files []*multipart.FileHeader) (*entity.Reclamacion, apierror.ErrorResponse)
	GetAllReclamaciones(actor *entity.Usuario) ([]*entity.Reclamacion, apierror.ErrorResponse)
	GetReclamacionByID(actor *entity.Usuario, rawID string) (*entity.Reclamacion, apierror.ErrorResponse)
	GetTabla(actor *entity.Usuario) ([]*contract.ReclamacionPlanaResponse, apierror.ErrorResponse)
	Responder(actor *entity.Usuario, rawID string, req *contract.ResponderRequest) (*entity.Reclamacion, apierror.ErrorResponse)
	GetArchivos(actor *entity.Usuario, rawID string) ([]*entity.ArchivoAdjunto, apierror.ErrorResponse)
	GetAllClientes(actor *entity.Usuario) ([]*entity.Cliente, apierror.ErrorResponse)
	GetClienteByID(actor *entity.Usuario, rawID string) (*entity.Cliente, apierror.ErrorResponse)
}

type DefaultReclamacionRoute struct {
	ReclamacionService ReclamacionService
}

func NewReclamacionDefault(reclamacionService ReclamacionService) *DefaultReclamacionRoute {
	return &DefaultReclamacionRoute{ReclamacionService: reclamacionService}
}

// CrearReclamo is the public intake endpoint. Plain JSON carries the
// complaint alone; multipart carries the same JSON in a 'json_payload'
// form field plus any number of 'archivos' attachments.
func (r *DefaultReclamacionRoute) CrearReclamo(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return r.crearFromJSON(c)
	}

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return r.crearFromMultipart(c)
	}

	mediaTypeError := apierror.InvalidMediaTypeError
	return c.JSON(http.StatusUnsupportedMediaType, &mediaTypeError)
}

func (r *DefaultReclamacionRoute) GetReclamaciones(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	reclamaciones, apierr := r.ReclamacionService.GetAllReclamaciones(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"reclamaciones": reclamaciones}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReclamacionRoute) GetReclamacion(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	reclamacion, apierr := r.ReclamacionService.GetReclamacionByID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reclamacion)
}

func (r *DefaultReclamacionRoute) GetTabla(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	filas, apierr := r.ReclamacionService.GetTabla(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"reclamaciones": filas}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReclamacionRoute) Responder(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.ResponderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reclamacion, apierr := r.ReclamacionService.Responder(usuario, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, reclamacion)
}

func (r *DefaultReclamacionRoute) GetArchivos(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	archivos, apierr := r.ReclamacionService.GetArchivos(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"archivos": archivos}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReclamacionRoute) GetClientes(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	clientes, apierr := r.ReclamacionService.GetAllClientes(usuario)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"clientes": clientes}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultReclamacionRoute) GetCliente(c echo.Context) error {
	usuario, cerr := utils.GetUsuarioFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	cliente, apierr := r.ReclamacionService.GetClienteByID(usuario, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, cliente)
}

func (r *DefaultReclamacionRoute) crearFromJSON(c echo.Context) error {
	var req contract.CrearReclamoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reclamacion, apierr := r.ReclamacionService.CrearReclamo(&req, nil)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, reclamacion)
}

func (r *DefaultReclamacionRoute) crearFromMultipart(c echo.Context) error {
	jsonPayload := strings.TrimSpace(c.FormValue("json_payload"))
	if jsonPayload == "" {
		return c.JSON(http.StatusBadRequest, apierror.FormJSONRequiredError)
	}

	var req contract.CrearReclamoRequest
	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	reclamacion, apierr := r.ReclamacionService.CrearReclamo(&req, form.File["archivos"])
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, reclamacion)
}
