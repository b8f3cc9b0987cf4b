package service

import (
	"strconv"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioRepository interface {
	FindByID(id int64) (*entity.Usuario, error)
	FindActiveByID(id int64) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	Save(usuario *entity.Usuario) error
}

type AuthService struct {
	UsuarioRepo UsuarioRepository
	Validate    *validator.Validate
}

func NewAuthService(usuarioRepo UsuarioRepository, validate *validator.Validate) *AuthService {
	return &AuthService{
		UsuarioRepo: usuarioRepo,
		Validate:    validate,
	}
}

// Login exchanges email+password for a token pair. The three failure
// causes stay textually distinct: unknown email, wrong password,
// deactivated account.
func (a *AuthService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	usuario, err := a.UsuarioRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch usuario by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if usuario == nil {
		return nil, apierror.CorreoNoRegistradoError
	}

	if bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(req.Password)) != nil {
		return nil, apierror.CredencialesInvalidasError
	}

	if !usuario.Activo {
		return nil, apierror.UsuarioInactivoError
	}

	access, refresh, err := utils.GenerateTokenPair(usuario.ID, usuario.Email)
	if err != nil {
		log.Errorf("failed to sign token pair: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.LoginResponse{
		Refresh:   refresh,
		Access:    access,
		UserID:    usuario.ID,
		Username:  usuario.Username,
		Role:      usuario.Role,
		Proveedor: usuario.Proveedor,
	}, nil
}

// GetUsuario returns the caller's own profile.
func (a *AuthService) GetUsuario(actor *entity.Usuario) *contract.UsuarioResponse {
	return toUsuarioResponse(actor)
}

// GetUsuarioPorID is the admin lookup. Only superusers may inspect
// arbitrary accounts.
func (a *AuthService) GetUsuarioPorID(actor *entity.Usuario, rawID string) (*contract.UsuarioResponse, apierror.ErrorResponse) {
	if !actor.IsSuperuser {
		return nil, apierror.SuperuserOnlyError
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return nil, apierror.InvalidIDError
	}

	usuario, ferr := a.UsuarioRepo.FindByID(id)
	if ferr != nil {
		log.Errorf("failed to fetch usuario: %v", ferr)
		return nil, apierror.InternalServerError
	}

	if usuario == nil {
		return nil, apierror.NotFoundError
	}
	return toUsuarioResponse(usuario), nil
}

func toUsuarioResponse(usuario *entity.Usuario) *contract.UsuarioResponse {
	return &contract.UsuarioResponse{
		ID:        usuario.ID,
		Username:  usuario.Username,
		Email:     usuario.Email,
		Role:      usuario.Role,
		Activo:    usuario.Activo,
		Proveedor: usuario.Proveedor,
		CreatedAt: utils.FormatEpoch(usuario.CreatedAt),
	}
}
