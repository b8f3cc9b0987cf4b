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

type LibroRepository interface {
	FindAllScoped(alcance policy.Alcance) ([]*entity.LibroReclamacion, error)
	FindScopedByID(alcance policy.Alcance, id int64) (*entity.LibroReclamacion, error)
	FindActivoByCodigo(codigo string) (*entity.LibroReclamacion, error)
	FindBySlugs(libroSlug, establecimientoSlug string) (*entity.LibroReclamacion, error)
	ExistsOtherWithSlugs(excludeID int64, libroSlug, establecimientoSlug string) (bool, error)
	Save(libro *entity.LibroReclamacion) error
	SaveCompleto(libro *entity.LibroReclamacion, establecimiento *entity.Establecimiento, marca *entity.Marca) error
}

// LibroService manages complaint books. BaseURL is the public host the
// printable submission URLs are built against.
type LibroService struct {
	LibroRepo           LibroRepository
	EstablecimientoRepo EstablecimientoRepository
	LibroPolicy         *policy.LibroPolicy
	BaseURL             string
	Validate            *validator.Validate
}

func NewLibroService(
	libroRepo LibroRepository,
	establecimientoRepo EstablecimientoRepository,
	libroPolicy *policy.LibroPolicy,
	baseURL string,
	validate *validator.Validate,
) *LibroService {
	return &LibroService{
		LibroRepo:           libroRepo,
		EstablecimientoRepo: establecimientoRepo,
		LibroPolicy:         libroPolicy,
		BaseURL:             baseURL,
		Validate:            validate,
	}
}

func (l *LibroService) GetAllLibros(actor *entity.Usuario) ([]*entity.LibroReclamacion, apierror.ErrorResponse) {
	libros, err := l.LibroRepo.FindAllScoped(policy.AlcanceDe(actor))
	if err != nil {
		log.Errorf("failed to fetch libros: %v", err)
		return nil, apierror.InternalServerError
	}
	return libros, nil
}

func (l *LibroService) GetLibroByID(actor *entity.Usuario, rawID string) (*entity.LibroReclamacion, apierror.ErrorResponse) {
	id, apierr := parseID(rawID)
	if apierr != nil {
		return nil, apierr
	}

	libro, err := l.LibroRepo.FindScopedByID(policy.AlcanceDe(actor), id)
	if err != nil {
		log.Errorf("failed to fetch libro: %v", err)
		return nil, apierror.InternalServerError
	}

	if libro == nil {
		return nil, apierror.NotFoundError
	}
	return libro, nil
}

func (l *LibroService) CreateLibro(actor *entity.Usuario, req *contract.LibroRequest) (*entity.LibroReclamacion, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	var establecimientoID *int64
	if req.EstablecimientoID != nil {
		establecimiento, err := l.EstablecimientoRepo.FindScopedByID(policy.AlcanceDe(actor), *req.EstablecimientoID)
		if err != nil {
			log.Errorf("failed to fetch establecimiento: %v", err)
			return nil, apierror.InternalServerError
		}

		if establecimiento == nil {
			return nil, apierror.NotFoundError
		}
		establecimientoID = &establecimiento.ID
	}

	// The book slug defaults to the slugified book code; the
	// establishment slug always comes in explicitly.
	libroSlug := req.LibroSlug
	if libroSlug == "" {
		libroSlug = entity.Slugify(req.CodigoLibro)
	}

	if apierr := l.checkSlugs(0, libroSlug, req.EstablecimientoSlug); apierr != nil {
		return nil, apierr
	}

	libro := &entity.LibroReclamacion{
		ID:                  uid.Generate(),
		EstablecimientoID:   establecimientoID,
		LibroSlug:           libroSlug,
		EstablecimientoSlug: req.EstablecimientoSlug,
		CodigoLibro:         req.CodigoLibro,
		Estado:              entity.EstadoLibro(req.Estado),
		CreatedAt:           utils.NowUTC(),
	}

	if err := l.LibroRepo.Save(libro); err != nil {
		log.Errorf("failed to save libro: %v", err)
		return nil, apierror.InternalServerError
	}
	return libro, nil
}

func (l *LibroService) UpdateLibro(actor *entity.Usuario, rawID string, req *contract.LibroRequest) (*entity.LibroReclamacion, apierror.ErrorResponse) {
	libro, apierr := l.GetLibroByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.EstablecimientoID != nil {
		establecimiento, err := l.EstablecimientoRepo.FindScopedByID(policy.AlcanceDe(actor), *req.EstablecimientoID)
		if err != nil {
			log.Errorf("failed to fetch establecimiento: %v", err)
			return nil, apierror.InternalServerError
		}

		if establecimiento == nil {
			return nil, apierror.NotFoundError
		}
		libro.EstablecimientoID = &establecimiento.ID
	}

	libroSlug := req.LibroSlug
	if libroSlug == "" {
		libroSlug = entity.Slugify(req.CodigoLibro)
	}

	if apierr := l.checkSlugs(libro.ID, libroSlug, req.EstablecimientoSlug); apierr != nil {
		return nil, apierr
	}

	libro.LibroSlug = libroSlug
	libro.EstablecimientoSlug = req.EstablecimientoSlug
	libro.CodigoLibro = req.CodigoLibro
	libro.Estado = entity.EstadoLibro(req.Estado)

	if err := l.LibroRepo.Save(libro); err != nil {
		log.Errorf("failed to update libro: %v", err)
		return nil, apierror.InternalServerError
	}
	return libro, nil
}

// DeleteLibro closes the book rather than removing the row, so filed
// complaints keep their anchor.
func (l *LibroService) DeleteLibro(actor *entity.Usuario, rawID string) apierror.ErrorResponse {
	libro, apierr := l.GetLibroByID(actor, rawID)
	if apierr != nil {
		return apierr
	}

	libro.Estado = entity.LibroCerrado
	if err := l.LibroRepo.Save(libro); err != nil {
		log.Errorf("failed to close libro: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// EditarSlugs edits strictly the public routing slug pair.
func (l *LibroService) EditarSlugs(actor *entity.Usuario, rawID string, req *contract.EditarSlugsRequest) (*entity.LibroReclamacion, apierror.ErrorResponse) {
	libro, apierr := l.GetLibroByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	libroSlug := libro.LibroSlug
	establecimientoSlug := libro.EstablecimientoSlug
	if req.LibroSlug != nil {
		libroSlug = *req.LibroSlug
	}
	if req.EstablecimientoSlug != nil {
		establecimientoSlug = *req.EstablecimientoSlug
	}

	if apierr := l.checkSlugs(libro.ID, libroSlug, establecimientoSlug); apierr != nil {
		return nil, apierr
	}

	libro.LibroSlug = libroSlug
	libro.EstablecimientoSlug = establecimientoSlug
	if err := l.LibroRepo.Save(libro); err != nil {
		log.Errorf("failed to update slugs: %v", err)
		return nil, apierror.InternalServerError
	}
	return libro, nil
}

// EditarCompleto applies one partial update across the libro, its
// establecimiento and the marca above it, persisted atomically.
func (l *LibroService) EditarCompleto(actor *entity.Usuario, rawID string, req *contract.LibroCompletoRequest) (*entity.LibroReclamacion, apierror.ErrorResponse) {
	libro, apierr := l.GetLibroByID(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	libroSlug := libro.LibroSlug
	establecimientoSlug := libro.EstablecimientoSlug
	if req.LibroSlug != nil {
		libroSlug = *req.LibroSlug
	}
	if req.EstablecimientoSlug != nil {
		establecimientoSlug = *req.EstablecimientoSlug
	}

	if apierr := l.checkSlugs(libro.ID, libroSlug, establecimientoSlug); apierr != nil {
		return nil, apierr
	}
	libro.LibroSlug = libroSlug
	libro.EstablecimientoSlug = establecimientoSlug

	var establecimiento *entity.Establecimiento
	var marca *entity.Marca
	if req.Establecimiento != nil {
		if libro.Establecimiento == nil {
			return nil, apierror.NotFoundError
		}

		establecimiento = libro.Establecimiento
		applyEstablecimientoInline(establecimiento, req.Establecimiento)
		if err := establecimiento.Validate(); err != nil {
			return nil, apierror.NewSimple(400, err.Error())
		}

		if req.Establecimiento.Marca != nil {
			if establecimiento.Marca == nil {
				return nil, apierror.NotFoundError
			}

			marca = establecimiento.Marca
			if req.Establecimiento.Marca.NombreMarca != nil {
				marca.NombreMarca = *req.Establecimiento.Marca.NombreMarca
			}
			if req.Establecimiento.Marca.Descripcion != nil {
				marca.Descripcion = *req.Establecimiento.Marca.Descripcion
			}
		}
	}

	if err := l.LibroRepo.SaveCompleto(libro, establecimiento, marca); err != nil {
		log.Errorf("failed to save libro completo: %v", err)
		return nil, apierror.InternalServerError
	}
	return libro, nil
}

// ObtenerURL resolves a book by its public slug pair and returns the
// submission URL. Unlike the ID lookups, the row is fetched unscoped and
// ownership is denied explicitly with a 403.
func (l *LibroService) ObtenerURL(actor *entity.Usuario, libroSlug, establecimientoSlug string) (*contract.LibroURLResponse, apierror.ErrorResponse) {
	libro, err := l.LibroRepo.FindBySlugs(libroSlug, establecimientoSlug)
	if err != nil {
		log.Errorf("failed to fetch libro by slugs: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := l.LibroPolicy.CanAccess(libro, policy.AlcanceDe(actor)); apierr != nil {
		return nil, apierr
	}

	return &contract.LibroURLResponse{URL: libro.URLPublica(l.BaseURL)}, nil
}

func (l *LibroService) checkSlugs(excludeID int64, libroSlug, establecimientoSlug string) apierror.ErrorResponse {
	taken, err := l.LibroRepo.ExistsOtherWithSlugs(excludeID, libroSlug, establecimientoSlug)
	if err != nil {
		log.Errorf("failed to check slug uniqueness: %v", err)
		return apierror.InternalServerError
	}

	if taken {
		return apierror.SlugsDuplicadosError
	}
	return nil
}

func applyEstablecimientoInline(e *entity.Establecimiento, in *contract.EstablecimientoInline) {
	if in.NombreEstablecimiento != nil {
		e.NombreEstablecimiento = *in.NombreEstablecimiento
	}
	if in.Direccion != nil {
		e.Direccion = *in.Direccion
	}
	if in.Distrito != nil {
		e.Distrito = *in.Distrito
	}
	if in.Provincia != nil {
		e.Provincia = *in.Provincia
	}
	if in.Departamento != nil {
		e.Departamento = *in.Departamento
	}
	if in.EnlaceAcceso != nil {
		e.EnlaceAcceso = *in.EnlaceAcceso
	}
	if in.Telefono != nil {
		e.Telefono = *in.Telefono
	}
	if in.EmailContacto != nil {
		e.EmailContacto = *in.EmailContacto
	}
	if in.EsOnline != nil {
		e.EsOnline = *in.EsOnline
	}
}
