package service

import (
	"strconv"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"
	"reclamalibro/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type ProveedorRepository interface {
	FindAll() ([]*entity.Proveedor, error)
	FindByID(id int64) (*entity.Proveedor, error)
	ExistsOtherWithRUC(excludeID int64, ruc string) (bool, error)
	Save(proveedor *entity.Proveedor) error
}

// ProveedorService covers both surfaces over the proveedores table: the
// superuser-only catalog CRUD, and the self-service perfil endpoints
// where the target row always comes from the authenticated actor.
type ProveedorService struct {
	ProveedorRepo ProveedorRepository
	UsuarioRepo   UsuarioRepository
	Validate      *validator.Validate
}

func NewProveedorService(
	proveedorRepo ProveedorRepository,
	usuarioRepo UsuarioRepository,
	validate *validator.Validate,
) *ProveedorService {
	return &ProveedorService{
		ProveedorRepo: proveedorRepo,
		UsuarioRepo:   usuarioRepo,
		Validate:      validate,
	}
}

func (p *ProveedorService) GetAllProveedores(actor *entity.Usuario) ([]*entity.Proveedor, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	proveedores, err := p.ProveedorRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch proveedores: %v", err)
		return nil, apierror.InternalServerError
	}
	return proveedores, nil
}

func (p *ProveedorService) GetProveedorByID(actor *entity.Usuario, rawID string) (*entity.Proveedor, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	proveedor, err := p.ProveedorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch proveedor: %v", err)
		return nil, apierror.InternalServerError
	}

	if proveedor == nil {
		return nil, apierror.NotFoundError
	}
	return proveedor, nil
}

func (p *ProveedorService) CreateProveedor(actor *entity.Usuario, req *contract.ProveedorRequest) (*entity.Proveedor, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := p.checkRUC(0, req.RUC); apierr != nil {
		return nil, apierr
	}

	proveedor := &entity.Proveedor{
		ID:              uid.Generate(),
		RazonSocial:     req.RazonSocial,
		RUC:             req.RUC,
		DomicilioFiscal: req.DomicilioFiscal,
		Telefono:        req.Telefono,
		EmailContacto:   req.EmailContacto,
		Activo:          true,
		CreatedAt:       utils.NowUTC(),
	}
	if req.Activo != nil {
		proveedor.Activo = *req.Activo
	}

	if err := p.ProveedorRepo.Save(proveedor); err != nil {
		log.Errorf("failed to save proveedor: %v", err)
		return nil, apierror.InternalServerError
	}
	return proveedor, nil
}

func (p *ProveedorService) UpdateProveedor(actor *entity.Usuario, rawID string, req *contract.ProveedorRequest) (*entity.Proveedor, apierror.ErrorResponse) {
	proveedor, apierr := p.GetProveedorByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := p.checkRUC(proveedor.ID, req.RUC); apierr != nil {
		return nil, apierr
	}

	proveedor.RazonSocial = req.RazonSocial
	proveedor.RUC = req.RUC
	proveedor.DomicilioFiscal = req.DomicilioFiscal
	proveedor.Telefono = req.Telefono
	proveedor.EmailContacto = req.EmailContacto
	if req.Activo != nil {
		proveedor.Activo = *req.Activo
	}

	if err := p.ProveedorRepo.Save(proveedor); err != nil {
		log.Errorf("failed to update proveedor: %v", err)
		return nil, apierror.InternalServerError
	}
	return proveedor, nil
}

// DeleteProveedor deactivates the row instead of deleting it. A
// proveedor anchors historical complaints that must stay auditable.
func (p *ProveedorService) DeleteProveedor(actor *entity.Usuario, rawID string) apierror.ErrorResponse {
	proveedor, apierr := p.GetProveedorByID(actor, rawID)
	if apierr != nil {
		return apierr
	}

	proveedor.Activo = false
	if err := p.ProveedorRepo.Save(proveedor); err != nil {
		log.Errorf("failed to deactivate proveedor: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// GetPerfil returns the proveedor bound to the caller.
func (p *ProveedorService) GetPerfil(actor *entity.Usuario) (*entity.Proveedor, apierror.ErrorResponse) {
	if actor.ProveedorID == nil {
		return nil, apierror.SinProveedorError
	}

	proveedor, err := p.ProveedorRepo.FindByID(*actor.ProveedorID)
	if err != nil {
		log.Errorf("failed to fetch perfil: %v", err)
		return nil, apierror.InternalServerError
	}

	if proveedor == nil {
		return nil, apierror.SinProveedorError
	}
	return proveedor, nil
}

// UpdatePerfil applies the fixed field allowlist onto the actor's own
// proveedor. Fields outside the allowlist never move, whatever the
// request carries.
func (p *ProveedorService) UpdatePerfil(actor *entity.Usuario, req *contract.PerfilUpdateRequest) (*entity.Proveedor, apierror.ErrorResponse) {
	proveedor, apierr := p.GetPerfil(actor)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.RUC != nil {
		if apierr := p.checkRUC(proveedor.ID, *req.RUC); apierr != nil {
			return nil, apierr
		}
		proveedor.RUC = *req.RUC
	}
	if req.RazonSocial != nil {
		proveedor.RazonSocial = *req.RazonSocial
	}
	if req.DomicilioFiscal != nil {
		proveedor.DomicilioFiscal = *req.DomicilioFiscal
	}
	if req.Telefono != nil {
		proveedor.Telefono = *req.Telefono
	}
	if req.EmailContacto != nil {
		proveedor.EmailContacto = *req.EmailContacto
	}

	if err := p.ProveedorRepo.Save(proveedor); err != nil {
		log.Errorf("failed to update perfil: %v", err)
		return nil, apierror.InternalServerError
	}
	return proveedor, nil
}

// CambiarContrasena re-proves the current password before accepting the
// new one. The strength rules live on the request contract.
func (p *ProveedorService) CambiarContrasena(actor *entity.Usuario, req *contract.CambiarContrasenaRequest) apierror.ErrorResponse {
	if valerr := p.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	if bcrypt.CompareHashAndPassword([]byte(actor.Password), []byte(req.Actual)) != nil {
		return apierror.ContrasenaActualError
	}

	if req.Nueva != req.Confirmar {
		return apierror.ContrasenasNoCoincidenError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Nueva), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return apierror.InternalServerError
	}

	actor.Password = string(hash)
	if err := p.UsuarioRepo.Save(actor); err != nil {
		log.Errorf("failed to update password: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (p *ProveedorService) checkRUC(excludeID int64, ruc string) apierror.ErrorResponse {
	if !utils.IsRUCValid(ruc) {
		return apierror.RUCInvalidoError
	}

	taken, err := p.ProveedorRepo.ExistsOtherWithRUC(excludeID, ruc)
	if err != nil {
		log.Errorf("failed to check RUC uniqueness: %v", err)
		return apierror.InternalServerError
	}

	if taken {
		return apierror.RUCDuplicadoError
	}
	return nil
}

func parseID(raw string) (int64, apierror.ErrorResponse) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}
