package service

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/infrastructure/aws/storage"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"
	"reclamalibro/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// EstadoRespondido is the state the responder transition moves a
// complaint into, matched by name case-insensitively.
const EstadoRespondido = "Respondido"

// EstadoInicial is the state assigned at intake when the caller does not
// pick one explicitly.
const EstadoInicial = "Registrado"

type ReclamacionRepository interface {
	FindAllScoped(alcance policy.Alcance) ([]*entity.Reclamacion, error)
	FindScopedByID(alcance policy.Alcance, id int64) (*entity.Reclamacion, error)
	ExistsByCodigoHoja(codigo string) (bool, error)
	CreateConCliente(cliente *entity.Cliente, reclamacion *entity.Reclamacion) error
	UpdateRespuesta(id int64, respuesta string, estadoID int64) error
	CountByEstado(estadoID int64) (int64, error)
}

type EstadoRepository interface {
	FindAll() ([]*entity.EstadoReclamacion, error)
	FindByID(id int64) (*entity.EstadoReclamacion, error)
	FindByNombre(nombre string) (*entity.EstadoReclamacion, error)
	Save(estado *entity.EstadoReclamacion) error
	Delete(estado *entity.EstadoReclamacion) error
}

type ClienteRepository interface {
	FindAll() ([]*entity.Cliente, error)
	FindByID(id int64) (*entity.Cliente, error)
}

type ArchivoRepository interface {
	FindAllByReclamacion(reclamacionID int64) ([]*entity.ArchivoAdjunto, error)
}

type ReclamacionService struct {
	ReclamacionRepo ReclamacionRepository
	LibroRepo       LibroRepository
	EstadoRepo      EstadoRepository
	ClienteRepo     ClienteRepository
	ArchivoRepo     ArchivoRepository
	S3              storage.S3Client
	Validate        *validator.Validate
}

func NewReclamacionService(
	reclamacionRepo ReclamacionRepository,
	libroRepo LibroRepository,
	estadoRepo EstadoRepository,
	clienteRepo ClienteRepository,
	archivoRepo ArchivoRepository,
	s3 storage.S3Client,
	validate *validator.Validate,
) *ReclamacionService {
	return &ReclamacionService{
		ReclamacionRepo: reclamacionRepo,
		LibroRepo:       libroRepo,
		EstadoRepo:      estadoRepo,
		ClienteRepo:     clienteRepo,
		ArchivoRepo:     archivoRepo,
		S3:              s3,
		Validate:        validate,
	}
}

// CrearReclamo is the unauthenticated intake. It resolves the target
// book by its code, requires it to be active, and persists the cliente
// (with representantes) plus the reclamación atomically. Files, when
// present, are uploaded before the transaction; a failed insert never
// leaves a half-registered complainant behind.
//
// A missing book and an inactive book answer identically on purpose:
// the public form must not leak which codes exist.
func (r *ReclamacionService) CrearReclamo(req *contract.CrearReclamoRequest, files []*multipart.FileHeader) (*entity.Reclamacion, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.Cliente != nil {
		utils.Sanitize(req.Cliente)
	}
	if valerr := r.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	libro, err := r.LibroRepo.FindActivoByCodigo(req.Libro)
	if err != nil {
		log.Errorf("failed to fetch libro by codigo: %v", err)
		return nil, apierror.InternalServerError
	}

	if libro == nil {
		return nil, apierror.LibroNoActivoError
	}

	taken, err := r.ReclamacionRepo.ExistsByCodigoHoja(req.CodigoHoja)
	if err != nil {
		log.Errorf("failed to check codigo de hoja: %v", err)
		return nil, apierror.InternalServerError
	}

	if taken {
		return nil, apierror.CodigoHojaDuplicadoError
	}

	estado, apierr := r.resolveEstadoIntake(req.EstadoID)
	if apierr != nil {
		return nil, apierr
	}

	fecha, apierr := parseFecha(req.Fecha)
	if apierr != nil {
		return nil, apierr
	}

	archivos, apierr := r.uploadAdjuntos(files)
	if apierr != nil {
		return nil, apierr
	}

	cliente := buildCliente(req.Cliente)
	reclamacion := &entity.Reclamacion{
		ID:               uid.Generate(),
		LibroID:          libro.ID,
		Fecha:            fecha,
		CodigoHoja:       req.CodigoHoja,
		Tipo:             entity.TipoReclamacion(req.Tipo),
		TipoBien:         entity.TipoBien(req.TipoBien),
		DescripcionBien:  req.DescripcionBien,
		MontoReclamado:   req.MontoReclamado,
		Detalle:          req.Detalle,
		SolicitudCliente: req.SolicitudCliente,
		EstadoID:         estado.ID,
		Archivos:         archivos,
	}

	if err := r.ReclamacionRepo.CreateConCliente(cliente, reclamacion); err != nil {
		log.Errorf("failed to create reclamacion: %v", err)
		return nil, apierror.InternalServerError
	}

	reclamacion.Cliente = cliente
	reclamacion.Estado = estado
	return reclamacion, nil
}

func (r *ReclamacionService) GetAllReclamaciones(actor *entity.Usuario) ([]*entity.Reclamacion, apierror.ErrorResponse) {
	reclamaciones, err := r.ReclamacionRepo.FindAllScoped(policy.AlcanceDe(actor))
	if err != nil {
		log.Errorf("failed to fetch reclamaciones: %v", err)
		return nil, apierror.InternalServerError
	}
	return reclamaciones, nil
}

func (r *ReclamacionService) GetReclamacionByID(actor *entity.Usuario, rawID string) (*entity.Reclamacion, apierror.ErrorResponse) {
	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	reclamacion, err := r.ReclamacionRepo.FindScopedByID(policy.AlcanceDe(actor), id)
	if err != nil {
		log.Errorf("failed to fetch reclamacion: %v", err)
		return nil, apierror.InternalServerError
	}

	if reclamacion == nil {
		return nil, apierror.NotFoundError
	}
	return reclamacion, nil
}

// GetTabla flattens the actor's complaints into the dashboard rows.
func (r *ReclamacionService) GetTabla(actor *entity.Usuario) ([]*contract.ReclamacionPlanaResponse, apierror.ErrorResponse) {
	reclamaciones, apierr := r.GetAllReclamaciones(actor)
	if apierr != nil {
		return nil, apierr
	}

	resp := make([]*contract.ReclamacionPlanaResponse, len(reclamaciones))
	for i, reclamacion := range reclamaciones {
		resp[i] = toReclamacionPlana(reclamacion)
	}
	return resp, nil
}

// Responder stores the supplier reply and moves the complaint into the
// "Respondido" state. When that state row does not exist the reply is
// still stored and the current state stays put.
func (r *ReclamacionService) Responder(actor *entity.Usuario, rawID string, req *contract.ResponderRequest) (*entity.Reclamacion, apierror.ErrorResponse) {
	reclamacion, apierr := r.GetReclamacionByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := r.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	estadoID := reclamacion.EstadoID
	respondido, err := r.EstadoRepo.FindByNombre(EstadoRespondido)
	if err != nil {
		log.Errorf("failed to fetch estado respondido: %v", err)
		return nil, apierror.InternalServerError
	}
	if respondido != nil {
		estadoID = respondido.ID
	}

	if err := r.ReclamacionRepo.UpdateRespuesta(reclamacion.ID, req.Respuesta, estadoID); err != nil {
		log.Errorf("failed to store respuesta: %v", err)
		return nil, apierror.InternalServerError
	}

	reclamacion.Respuesta = &req.Respuesta
	reclamacion.EstadoID = estadoID
	if respondido != nil {
		reclamacion.Estado = respondido
	}
	return reclamacion, nil
}

// GetArchivos lists the attachments filed with a complaint. The parent
// complaint is resolved through the actor's scope first, so foreign
// complaints answer 404 here too.
func (r *ReclamacionService) GetArchivos(actor *entity.Usuario, rawID string) ([]*entity.ArchivoAdjunto, apierror.ErrorResponse) {
	reclamacion, apierr := r.GetReclamacionByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	archivos, err := r.ArchivoRepo.FindAllByReclamacion(reclamacion.ID)
	if err != nil {
		log.Errorf("failed to fetch archivos: %v", err)
		return nil, apierror.InternalServerError
	}
	return archivos, nil
}

// GetAllClientes is the cross-tenant complainant registry, restricted
// to superusers.
func (r *ReclamacionService) GetAllClientes(actor *entity.Usuario) ([]*entity.Cliente, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	clientes, err := r.ClienteRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch clientes: %v", err)
		return nil, apierror.InternalServerError
	}
	return clientes, nil
}

func (r *ReclamacionService) GetClienteByID(actor *entity.Usuario, rawID string) (*entity.Cliente, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	cliente, err := r.ClienteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cliente: %v", err)
		return nil, apierror.InternalServerError
	}

	if cliente == nil {
		return nil, apierror.NotFoundError
	}
	return cliente, nil
}

func (r *ReclamacionService) resolveEstadoIntake(estadoID *int64) (*entity.EstadoReclamacion, apierror.ErrorResponse) {
	if estadoID != nil {
		estado, err := r.EstadoRepo.FindByID(*estadoID)
		if err != nil {
			log.Errorf("failed to fetch estado: %v", err)
			return nil, apierror.InternalServerError
		}

		if estado == nil {
			return nil, apierror.NotFoundError
		}
		return estado, nil
	}

	estado, err := r.EstadoRepo.FindByNombre(EstadoInicial)
	if err != nil {
		log.Errorf("failed to fetch estado inicial: %v", err)
		return nil, apierror.InternalServerError
	}

	if estado == nil {
		log.Errorf("estado inicial %q is missing from the database", EstadoInicial)
		return nil, apierror.InternalServerError
	}
	return estado, nil
}

// uploadAdjuntos validates and ships every attachment to the bucket,
// returning the rows to persist alongside the complaint. Stored objects
// get fresh UUID names; the original filename survives only as metadata.
func (r *ReclamacionService) uploadAdjuntos(files []*multipart.FileHeader) ([]*entity.ArchivoAdjunto, apierror.ErrorResponse) {
	if len(files) == 0 {
		return nil, nil
	}

	archivos := make([]*entity.ArchivoAdjunto, 0, len(files))
	for _, fileHeader := range files {
		if apierr := checkAdjunto(fileHeader); apierr != nil {
			return nil, apierr
		}

		data, apierr := readAdjunto(fileHeader)
		if apierr != nil {
			return nil, apierr
		}

		filename := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
		key, err := r.S3.UploadFile(data, filename)
		if err != nil {
			log.Errorf("failed to upload adjunto: %v", err)
			return nil, apierror.InternalServerError
		}

		archivos = append(archivos, &entity.ArchivoAdjunto{
			ID:            uid.Generate(),
			NombreArchivo: fileHeader.Filename,
			Ruta:          key,
		})
	}
	return archivos, nil
}

func checkAdjunto(fileHeader *multipart.FileHeader) apierror.ErrorResponse {
	if fileHeader.Size > contract.MaxAdjuntoSizeBytes {
		return apierror.NewSimple(400, "El archivo supera el tamaño máximo de %d bytes", contract.MaxAdjuntoSizeBytes)
	}

	if strings.TrimSpace(fileHeader.Filename) == "" {
		return apierror.MalformedBodyError
	}

	if ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidAdjuntoFileTypes); !ok {
		return apierror.NewInvalidFileExtError(ext)
	}
	return nil
}

func readAdjunto(fileHeader *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open adjunto: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read adjunto: %v", err)
		return nil, apierror.InternalServerError
	}
	return data, nil
}

func buildCliente(in *contract.ClientePayload) *entity.Cliente {
	cliente := &entity.Cliente{
		ID:              uid.Generate(),
		NombreCliente:   in.NombreCliente,
		TipoDocCliente:  in.TipoDocCliente,
		DocIDCliente:    in.DocIDCliente,
		FechaNacimiento: in.FechaNacimiento,
		Email:           in.Email,
		Telefono:        in.Telefono,
		CreatedAt:       utils.NowUTC(),
	}

	for _, rep := range in.Representantes {
		cliente.Representantes = append(cliente.Representantes, &entity.RepresentanteLegal{
			ID:                   uid.Generate(),
			NombreRepresentante:  rep.NombreRepresentante,
			TipoDocRepresentante: rep.TipoDocRepresentante,
			DocIDRepresentante:   rep.DocIDRepresentante,
			Parentesco:           rep.Parentesco,
			Telefono:             rep.Telefono,
		})
	}
	return cliente
}

// parseFecha accepts the filing date as RFC3339 or plain yyyy-mm-dd and
// defaults to the current instant when omitted.
func parseFecha(raw string) (int64, apierror.ErrorResponse) {
	if raw == "" {
		return utils.NowUTC(), nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().UnixMilli(), nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		structured := apierror.NewStructured(400)
		structured.Add("fecha", "Value must be an RFC 3339 timestamp or a yyyy-mm-dd date")
		return 0, structured
	}
	return t.UTC().UnixMilli(), nil
}

func toReclamacionPlana(reclamacion *entity.Reclamacion) *contract.ReclamacionPlanaResponse {
	resp := &contract.ReclamacionPlanaResponse{
		ID:                 reclamacion.ID,
		CodigoHoja:         reclamacion.CodigoHoja,
		Tipo:               string(reclamacion.Tipo),
		Fecha:              utils.FormatEpoch(reclamacion.Fecha),
		DetalleReclamacion: reclamacion.Detalle,
	}

	if reclamacion.Estado != nil {
		resp.Estado = reclamacion.Estado.Nombre
	}
	if reclamacion.Libro != nil && reclamacion.Libro.Establecimiento != nil {
		resp.Establecimiento = reclamacion.Libro.Establecimiento.NombreEstablecimiento
	}
	if reclamacion.Cliente != nil {
		resp.Reclamante = &contract.ReclamanteResumen{
			Nombre:             reclamacion.Cliente.NombreCliente,
			DocumentoIdentidad: reclamacion.Cliente.DocIDCliente,
			Email:              reclamacion.Cliente.Email,
		}
	}
	return resp
}
