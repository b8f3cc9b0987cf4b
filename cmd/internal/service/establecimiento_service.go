package service

import (
	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"
	"reclamalibro/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type EstablecimientoRepository interface {
	FindAllScoped(alcance policy.Alcance) ([]*entity.Establecimiento, error)
	FindScopedByID(alcance policy.Alcance, id int64) (*entity.Establecimiento, error)
	Save(establecimiento *entity.Establecimiento) error
	Delete(establecimiento *entity.Establecimiento) error
}

type EstablecimientoService struct {
	EstablecimientoRepo EstablecimientoRepository
	MarcaRepo           MarcaRepository
	Validate            *validator.Validate
}

func NewEstablecimientoService(
	establecimientoRepo EstablecimientoRepository,
	marcaRepo MarcaRepository,
	validate *validator.Validate,
) *EstablecimientoService {
	return &EstablecimientoService{
		EstablecimientoRepo: establecimientoRepo,
		MarcaRepo:           marcaRepo,
		Validate:            validate,
	}
}

func (e *EstablecimientoService) GetAllEstablecimientos(actor *entity.Usuario) ([]*entity.Establecimiento, apierror.ErrorResponse) {
	establecimientos, err := e.EstablecimientoRepo.FindAllScoped(policy.AlcanceDe(actor))
	if err != nil {
		log.Errorf("failed to fetch establecimientos: %v", err)
		return nil, apierror.InternalServerError
	}
	return establecimientos, nil
}

func (e *EstablecimientoService) GetEstablecimientoByID(actor *entity.Usuario, rawID string) (*entity.Establecimiento, apierror.ErrorResponse) {
	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	establecimiento, err := e.EstablecimientoRepo.FindScopedByID(policy.AlcanceDe(actor), id)
	if err != nil {
		log.Errorf("failed to fetch establecimiento: %v", err)
		return nil, apierror.InternalServerError
	}

	if establecimiento == nil {
		return nil, apierror.NotFoundError
	}
	return establecimiento, nil
}

func (e *EstablecimientoService) CreateEstablecimiento(actor *entity.Usuario, req *contract.EstablecimientoRequest) (*entity.Establecimiento, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// The parent marca must be visible to the actor; anything else is a
	// plain 404.
	marca, err := e.MarcaRepo.FindScopedByID(policy.AlcanceDe(actor), req.MarcaID)
	if err != nil {
		log.Errorf("failed to fetch marca: %v", err)
		return nil, apierror.InternalServerError
	}

	if marca == nil {
		return nil, apierror.NotFoundError
	}

	var establecimiento *entity.Establecimiento
	if req.EsOnline {
		establecimiento = entity.NuevoEstablecimientoOnline(req.NombreEstablecimiento, req.EnlaceAcceso)
	} else {
		establecimiento = entity.NuevoEstablecimientoFisico(req.NombreEstablecimiento, entity.DireccionFisica{
			Direccion:    req.Direccion,
			Distrito:     req.Distrito,
			Provincia:    req.Provincia,
			Departamento: req.Departamento,
		})
	}

	establecimiento.ID = uid.Generate()
	establecimiento.MarcaID = marca.ID
	establecimiento.Telefono = req.Telefono
	establecimiento.EmailContacto = req.EmailContacto
	establecimiento.Activo = true
	establecimiento.CreatedAt = utils.NowUTC()
	if req.Activo != nil {
		establecimiento.Activo = *req.Activo
	}

	if err := establecimiento.Validate(); err != nil {
		return nil, apierror.NewSimple(400, err.Error())
	}

	if err := e.EstablecimientoRepo.Save(establecimiento); err != nil {
		log.Errorf("failed to save establecimiento: %v", err)
		return nil, apierror.InternalServerError
	}
	return establecimiento, nil
}

func (e *EstablecimientoService) UpdateEstablecimiento(actor *entity.Usuario, rawID string, req *contract.EstablecimientoRequest) (*entity.Establecimiento, apierror.ErrorResponse) {
	establecimiento, apierr := e.GetEstablecimientoByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// Moving an establecimiento to another marca is not supported.
	if req.MarcaID != establecimiento.MarcaID {
		return nil, apierror.NotFoundError
	}

	establecimiento.NombreEstablecimiento = req.NombreEstablecimiento
	establecimiento.Direccion = req.Direccion
	establecimiento.Distrito = req.Distrito
	establecimiento.Provincia = req.Provincia
	establecimiento.Departamento = req.Departamento
	establecimiento.EnlaceAcceso = req.EnlaceAcceso
	establecimiento.Telefono = req.Telefono
	establecimiento.EmailContacto = req.EmailContacto
	establecimiento.EsOnline = req.EsOnline
	if req.Activo != nil {
		establecimiento.Activo = *req.Activo
	}

	if err := establecimiento.Validate(); err != nil {
		return nil, apierror.NewSimple(400, err.Error())
	}

	if err := e.EstablecimientoRepo.Save(establecimiento); err != nil {
		log.Errorf("failed to update establecimiento: %v", err)
		return nil, apierror.InternalServerError
	}
	return establecimiento, nil
}

// DeleteEstablecimiento hard-deletes the row. Books referencing it keep
// existing with the establishment link cleared.
func (e *EstablecimientoService) DeleteEstablecimiento(actor *entity.Usuario, rawID string) apierror.ErrorResponse {
	establecimiento, apierr := e.GetEstablecimientoByID(actor, rawID)
	if apierr != nil {
		return apierr
	}

	if err := e.EstablecimientoRepo.Delete(establecimiento); err != nil {
		log.Errorf("failed to delete establecimiento: %v", err)
		return apierror.InternalServerError
	}
	return nil
}
