package service

import (
	"testing"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/domain/sqlite"
	"reclamalibro/cmd/internal/domain/sqlite/repository"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/uid"
	"reclamalibro/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeBucket stands in for the S3 client; it records what would have
// been uploaded.
type fakeBucket struct {
	uploads []string
}

func (f *fakeBucket) UploadFile(data []byte, filename string) (string, error) {
	f.uploads = append(f.uploads, filename)
	return "adjuntos/" + filename, nil
}

type testEnv struct {
	db *gorm.DB

	UsuarioRepo         *repository.DefaultUsuarioRepository
	ProveedorRepo       *repository.DefaultProveedorRepository
	MarcaRepo           *repository.DefaultMarcaRepository
	EstablecimientoRepo *repository.DefaultEstablecimientoRepository
	LibroRepo           *repository.DefaultLibroRepository
	ReclamacionRepo     *repository.DefaultReclamacionRepository
	EstadoRepo          *repository.DefaultEstadoRepository
	ClienteRepo         *repository.DefaultClienteRepository
	ArchivoRepo         *repository.DefaultArchivoRepository

	Bucket *fakeBucket

	Auth            *AuthService
	Proveedores     *ProveedorService
	Marcas          *MarcaService
	Establecimiento *EstablecimientoService
	Libros          *LibroService
	Reclamaciones   *ReclamacionService
	Estados         *EstadoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	uid.Init(1)
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, utils.InitJWT())

	db, err := sqlite.InitInMemory()
	require.NoError(t, err)

	validate := validator.New()
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("slug", validators.Slug)

	env := &testEnv{
		db:                  db,
		UsuarioRepo:         repository.NewUsuarioRepository(db),
		ProveedorRepo:       repository.NewProveedorRepository(db),
		MarcaRepo:           repository.NewMarcaRepository(db),
		EstablecimientoRepo: repository.NewEstablecimientoRepository(db),
		LibroRepo:           repository.NewLibroRepository(db),
		ReclamacionRepo:     repository.NewReclamacionRepository(db),
		EstadoRepo:          repository.NewEstadoRepository(db),
		ClienteRepo:         repository.NewClienteRepository(db),
		ArchivoRepo:         repository.NewArchivoRepository(db),
		Bucket:              &fakeBucket{},
	}

	env.Auth = NewAuthService(env.UsuarioRepo, validate)
	env.Proveedores = NewProveedorService(env.ProveedorRepo, env.UsuarioRepo, validate)
	env.Marcas = NewMarcaService(env.MarcaRepo, env.ProveedorRepo, validate)
	env.Establecimiento = NewEstablecimientoService(env.EstablecimientoRepo, env.MarcaRepo, validate)
	env.Libros = NewLibroService(env.LibroRepo, env.EstablecimientoRepo, policy.NewLibroPolicy(), "https://reclamalibro.pe", validate)
	env.Reclamaciones = NewReclamacionService(env.ReclamacionRepo, env.LibroRepo, env.EstadoRepo, env.ClienteRepo, env.ArchivoRepo, env.Bucket, validate)
	env.Estados = NewEstadoService(env.EstadoRepo, env.ReclamacionRepo, validate)
	return env
}

func (e *testEnv) crearProveedor(t *testing.T, razonSocial, ruc string) *entity.Proveedor {
	t.Helper()

	proveedor := &entity.Proveedor{
		ID:              uid.Generate(),
		RazonSocial:     razonSocial,
		RUC:             ruc,
		DomicilioFiscal: "Av. Arequipa 1234, Lima",
		Telefono:        "+51 1 555 0100",
		EmailContacto:   "contacto@" + entity.Slugify(razonSocial) + ".pe",
		Activo:          true,
		CreatedAt:       utils.NowUTC(),
	}
	require.NoError(t, e.ProveedorRepo.Save(proveedor))
	return proveedor
}

// crearCadena seeds a full proveedor → marca → establecimiento → libro
// chain and returns the book, which is created in estado activo.
func (e *testEnv) crearCadena(t *testing.T, ruc, codigoLibro string) *entity.LibroReclamacion {
	t.Helper()

	proveedor := e.crearProveedor(t, "Cadena "+codigoLibro, ruc)
	marca := &entity.Marca{
		ID:          uid.Generate(),
		ProveedorID: proveedor.ID,
		NombreMarca: "Marca " + codigoLibro,
		Descripcion: "Marca de prueba",
		Activa:      true,
		CreatedAt:   utils.NowUTC(),
	}
	require.NoError(t, e.MarcaRepo.Save(marca))

	establecimiento := entity.NuevoEstablecimientoFisico("Local "+codigoLibro, entity.DireccionFisica{
		Direccion:    "Jr. Unión 500",
		Distrito:     "Miraflores",
		Provincia:    "Lima",
		Departamento: "Lima",
	})
	establecimiento.ID = uid.Generate()
	establecimiento.MarcaID = marca.ID
	establecimiento.Telefono = "+51 1 555 0200"
	establecimiento.EmailContacto = "local@cadena.pe"
	establecimiento.Activo = true
	establecimiento.CreatedAt = utils.NowUTC()
	require.NoError(t, e.EstablecimientoRepo.Save(establecimiento))

	libro := &entity.LibroReclamacion{
		ID:                  uid.Generate(),
		EstablecimientoID:   &establecimiento.ID,
		LibroSlug:           entity.Slugify(codigoLibro),
		EstablecimientoSlug: entity.Slugify("Local " + codigoLibro),
		CodigoLibro:         codigoLibro,
		Estado:              entity.LibroActivo,
		CreatedAt:           utils.NowUTC(),
	}
	require.NoError(t, e.LibroRepo.Save(libro))
	return libro
}

func (e *testEnv) crearUsuario(t *testing.T, email, password string, proveedorID *int64, superuser bool) *entity.Usuario {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	usuario := &entity.Usuario{
		ID:          uid.Generate(),
		Username:    email,
		Email:       email,
		Password:    string(hash),
		ProveedorID: proveedorID,
		Role:        entity.RoleProveedor,
		IsSuperuser: superuser,
		Activo:      true,
		CreatedAt:   utils.NowUTC(),
	}
	if superuser {
		usuario.Role = entity.RoleAdmin
	}
	require.NoError(t, e.UsuarioRepo.Save(usuario))
	return usuario
}

// duenoDe resolves the proveedor that owns a seeded chain and returns a
// bound panel account for it.
func (e *testEnv) duenoDe(t *testing.T, libro *entity.LibroReclamacion, email string) *entity.Usuario {
	t.Helper()

	establecimiento, err := e.EstablecimientoRepo.FindScopedByID(policy.Alcance{Superuser: true}, *libro.EstablecimientoID)
	require.NoError(t, err)
	require.NotNil(t, establecimiento)

	return e.crearUsuario(t, email, "Secreta#123", &establecimiento.Marca.ProveedorID, false)
}

func (e *testEnv) contar(t *testing.T, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(model).Count(&count).Error)
	return count
}
