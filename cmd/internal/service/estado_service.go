package service

import (
	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"
	"reclamalibro/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// EstadoService manages the complaint-state lookup table. Estados are
// global rows shared by every proveedor; reading is open to any
// authenticated actor, mutations are superuser territory.
type EstadoService struct {
	EstadoRepo      EstadoRepository
	ReclamacionRepo ReclamacionRepository
	Validate        *validator.Validate
}

func NewEstadoService(
	estadoRepo EstadoRepository,
	reclamacionRepo ReclamacionRepository,
	validate *validator.Validate,
) *EstadoService {
	return &EstadoService{
		EstadoRepo:      estadoRepo,
		ReclamacionRepo: reclamacionRepo,
		Validate:        validate,
	}
}

func (e *EstadoService) GetAllEstados() ([]*entity.EstadoReclamacion, apierror.ErrorResponse) {
	estados, err := e.EstadoRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch estados: %v", err)
		return nil, apierror.InternalServerError
	}
	return estados, nil
}

func (e *EstadoService) GetEstadoByID(rawID string) (*entity.EstadoReclamacion, apierror.ErrorResponse) {
	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	estado, err := e.EstadoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch estado: %v", err)
		return nil, apierror.InternalServerError
	}

	if estado == nil {
		return nil, apierror.NotFoundError
	}
	return estado, nil
}

func (e *EstadoService) CreateEstado(actor *entity.Usuario, req *contract.EstadoRequest) (*entity.EstadoReclamacion, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	estado := &entity.EstadoReclamacion{
		ID:          uid.Generate(),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}

	if err := e.EstadoRepo.Save(estado); err != nil {
		log.Errorf("failed to save estado: %v", err)
		return nil, apierror.InternalServerError
	}
	return estado, nil
}

func (e *EstadoService) UpdateEstado(actor *entity.Usuario, rawID string, req *contract.EstadoRequest) (*entity.EstadoReclamacion, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	estado, apierr := e.GetEstadoByID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := e.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	estado.Nombre = req.Nombre
	estado.Descripcion = req.Descripcion
	if err := e.EstadoRepo.Save(estado); err != nil {
		log.Errorf("failed to update estado: %v", err)
		return nil, apierror.InternalServerError
	}
	return estado, nil
}

// DeleteEstado refuses to remove a state that still has complaints
// attached, mirroring the protected foreign key on reclamaciones.
func (e *EstadoService) DeleteEstado(actor *entity.Usuario, rawID string) apierror.ErrorResponse {
	if !actor.IsSuperuser {
		return apierror.SuperuserOnlyError
	}

	estado, apierr := e.GetEstadoByID(rawID)
	if apierr != nil {
		return apierr
	}

	count, err := e.ReclamacionRepo.CountByEstado(estado.ID)
	if err != nil {
		log.Errorf("failed to count reclamaciones by estado: %v", err)
		return apierror.InternalServerError
	}

	if count > 0 {
		return apierror.EstadoEnUsoError
	}

	if err := e.EstadoRepo.Delete(estado); err != nil {
		log.Errorf("failed to delete estado: %v", err)
		return apierror.InternalServerError
	}
	return nil
}
