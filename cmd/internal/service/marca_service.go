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

type MarcaRepository interface {
	FindAllScoped(alcance policy.Alcance) ([]*entity.Marca, error)
	FindScopedByID(alcance policy.Alcance, id int64) (*entity.Marca, error)
	Save(marca *entity.Marca) error
	Delete(marca *entity.Marca) error
}

type MarcaService struct {
	MarcaRepo     MarcaRepository
	ProveedorRepo ProveedorRepository
	Validate      *validator.Validate
}

func NewMarcaService(
	marcaRepo MarcaRepository,
	proveedorRepo ProveedorRepository,
	validate *validator.Validate,
) *MarcaService {
	return &MarcaService{
		MarcaRepo:     marcaRepo,
		ProveedorRepo: proveedorRepo,
		Validate:      validate,
	}
}

func (m *MarcaService) GetAllMarcas(actor *entity.Usuario) ([]*entity.Marca, apierror.ErrorResponse) {
	marcas, err := m.MarcaRepo.FindAllScoped(policy.AlcanceDe(actor))
	if err != nil {
		log.Errorf("failed to fetch marcas: %v", err)
		return nil, apierror.InternalServerError
	}
	return marcas, nil
}

func (m *MarcaService) GetMarcaByID(actor *entity.Usuario, rawID string) (*entity.Marca, apierror.ErrorResponse) {
	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	marca, err := m.MarcaRepo.FindScopedByID(policy.AlcanceDe(actor), id)
	if err != nil {
		log.Errorf("failed to fetch marca: %v", err)
		return nil, apierror.InternalServerError
	}

	if marca == nil {
		return nil, apierror.NotFoundError
	}
	return marca, nil
}

func (m *MarcaService) CreateMarca(actor *entity.Usuario, req *contract.MarcaRequest) (*entity.Marca, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := m.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// A proveedor account can only hang marcas off itself. The target
	// proveedor is invisible to anyone else, hence 404 and not 403.
	alcance := policy.AlcanceDe(actor)
	if !alcance.Total() && req.ProveedorID != alcance.ProveedorID {
		return nil, apierror.NotFoundError
	}

	proveedor, err := m.ProveedorRepo.FindByID(req.ProveedorID)
	if err != nil {
		log.Errorf("failed to fetch proveedor: %v", err)
		return nil, apierror.InternalServerError
	}

	if proveedor == nil {
		return nil, apierror.NotFoundError
	}

	marca := &entity.Marca{
		ID:          uid.Generate(),
		ProveedorID: req.ProveedorID,
		NombreMarca: req.NombreMarca,
		Descripcion: req.Descripcion,
		Activa:      true,
		CreatedAt:   utils.NowUTC(),
	}
	if req.Activa != nil {
		marca.Activa = *req.Activa
	}

	if err := m.MarcaRepo.Save(marca); err != nil {
		log.Errorf("failed to save marca: %v", err)
		return nil, apierror.InternalServerError
	}
	return marca, nil
}

func (m *MarcaService) UpdateMarca(actor *entity.Usuario, rawID string, req *contract.MarcaRequest) (*entity.Marca, apierror.ErrorResponse) {
	marca, apierr := m.GetMarcaByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := m.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// Re-parenting a marca across proveedores is not supported.
	if req.ProveedorID != marca.ProveedorID {
		return nil, apierror.NotFoundError
	}

	marca.NombreMarca = req.NombreMarca
	marca.Descripcion = req.Descripcion
	if req.Activa != nil {
		marca.Activa = *req.Activa
	}

	if err := m.MarcaRepo.Save(marca); err != nil {
		log.Errorf("failed to update marca: %v", err)
		return nil, apierror.InternalServerError
	}
	return marca, nil
}

// DeleteMarca removes the marca together with its establecimientos.
func (m *MarcaService) DeleteMarca(actor *entity.Usuario, rawID string) apierror.ErrorResponse {
	marca, apierr := m.GetMarcaByID(actor, rawID)
	if apierr != nil {
		return apierr
	}

	if err := m.MarcaRepo.Delete(marca); err != nil {
		log.Errorf("failed to delete marca: %v", err)
		return apierror.InternalServerError
	}
	return nil
}
