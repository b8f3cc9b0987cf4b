package main

import (
	"context"
	"os"
	"strconv"

	"reclamalibro/cmd/internal/domain/policy"
	"reclamalibro/cmd/internal/domain/sqlite"
	"reclamalibro/cmd/internal/domain/sqlite/repository"
	handler2 "reclamalibro/cmd/internal/http/handler"
	authmw "reclamalibro/cmd/internal/http/middleware"
	"reclamalibro/cmd/internal/infrastructure/aws/storage"
	"reclamalibro/cmd/internal/infrastructure/sunat"
	"reclamalibro/cmd/internal/service"
	"reclamalibro/cmd/internal/service/jobs"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/uid"
	"reclamalibro/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/reclamalibro/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(mustMachineID())
	if err := utils.InitJWT(); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Gettings repos
	usuarioRepo := repository.NewUsuarioRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	marcaRepo := repository.NewMarcaRepository(db)
	establecimientoRepo := repository.NewEstablecimientoRepository(db)
	libroRepo := repository.NewLibroRepository(db)
	reclamacionRepo := repository.NewReclamacionRepository(db)
	estadoRepo := repository.NewEstadoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	archivoRepo := repository.NewArchivoRepository(db)
	fichaRepo := repository.NewFichaRepository(db)

	// Getting services
	authService := service.NewAuthService(usuarioRepo, validate)
	proveedorService := service.NewProveedorService(proveedorRepo, usuarioRepo, validate)
	marcaService := service.NewMarcaService(marcaRepo, proveedorRepo, validate)
	establecimientoService := service.NewEstablecimientoService(establecimientoRepo, marcaRepo, validate)
	libroService := service.NewLibroService(libroRepo, establecimientoRepo, policy.NewLibroPolicy(), os.Getenv("PUBLIC_BASE_URL"), validate)
	reclamacionService := service.NewReclamacionService(reclamacionRepo, libroRepo, estadoRepo, clienteRepo, archivoRepo, s3Client, validate)
	estadoService := service.NewEstadoService(estadoRepo, reclamacionRepo, validate)
	consultaService := service.NewConsultaService(sunat.NewClient(), fichaRepo)

	// Gettings handler
	authRoutes := handler2.NewAuthDefault(authService)
	proveedorRoutes := handler2.NewProveedorDefault(proveedorService)
	marcaRoutes := handler2.NewMarcaDefault(marcaService)
	establecimientoRoutes := handler2.NewEstablecimientoDefault(establecimientoService)
	libroRoutes := handler2.NewLibroDefault(libroService)
	reclamacionRoutes := handler2.NewReclamacionDefault(reclamacionService)
	estadoRoutes := handler2.NewEstadoDefault(estadoService)
	consultaRoutes := handler2.NewConsultaRoute(consultaService)

	// Background sweep of stale SUNAT lookups
	go jobs.NewFichaCacheCleaner(fichaRepo).Start(context.Background())

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("30M"))

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{UsuarioRepo: usuarioRepo})

	// Public surface: login and the citizen-facing complaint intake.
	e.POST("/api/login", authRoutes.Login)
	e.POST("/api/reclamos", reclamacionRoutes.CrearReclamo)

	api := e.Group("/api", auth)

	// Authenticated account
	api.GET("/usuario", authRoutes.GetUsuario)
	api.GET("/usuarios/:id", authRoutes.GetUsuarioByID)

	// Proveedores (catalog + self-service perfil)
	api.GET("/proveedores", proveedorRoutes.GetProveedores)
	api.GET("/proveedores/:id", proveedorRoutes.GetProveedor)
	api.POST("/proveedores", proveedorRoutes.CreateProveedor)
	api.PUT("/proveedores/:id", proveedorRoutes.UpdateProveedor)
	api.DELETE("/proveedores/:id", proveedorRoutes.DeleteProveedor)
	api.GET("/perfil", proveedorRoutes.GetPerfil)
	api.PUT("/perfil", proveedorRoutes.UpdatePerfil)
	api.POST("/perfil/cambiar-contrasena", proveedorRoutes.CambiarContrasena)

	// Marcas
	api.GET("/marcas", marcaRoutes.GetMarcas)
	api.GET("/marcas/:id", marcaRoutes.GetMarca)
	api.POST("/marcas", marcaRoutes.CreateMarca)
	api.PUT("/marcas/:id", marcaRoutes.UpdateMarca)
	api.DELETE("/marcas/:id", marcaRoutes.DeleteMarca)

	// Establecimientos
	api.GET("/establecimientos", establecimientoRoutes.GetEstablecimientos)
	api.GET("/establecimientos/:id", establecimientoRoutes.GetEstablecimiento)
	api.POST("/establecimientos", establecimientoRoutes.CreateEstablecimiento)
	api.PUT("/establecimientos/:id", establecimientoRoutes.UpdateEstablecimiento)
	api.DELETE("/establecimientos/:id", establecimientoRoutes.DeleteEstablecimiento)

	// Libros de reclamaciones
	api.GET("/libros", libroRoutes.GetLibros)
	api.GET("/libros/:id", libroRoutes.GetLibro)
	api.POST("/libros", libroRoutes.CreateLibro)
	api.PUT("/libros/:id", libroRoutes.UpdateLibro)
	api.DELETE("/libros/:id", libroRoutes.DeleteLibro)
	api.PATCH("/libros/:id/slugs", libroRoutes.EditarSlugs)
	api.PATCH("/libros/:id/completo", libroRoutes.EditarCompleto)
	api.GET("/libros/url/:libro_slug/:establecimiento_slug", libroRoutes.ObtenerURL)

	// Reclamaciones
	api.GET("/reclamaciones", reclamacionRoutes.GetReclamaciones)
	api.GET("/reclamaciones/tabla", reclamacionRoutes.GetTabla)
	api.GET("/reclamaciones/:id", reclamacionRoutes.GetReclamacion)
	api.GET("/reclamaciones/:id/archivos", reclamacionRoutes.GetArchivos)
	api.PUT("/reclamaciones/:id/responder", reclamacionRoutes.Responder)

	// Estados de reclamación
	api.GET("/estados", estadoRoutes.GetEstados)
	api.GET("/estados/:id", estadoRoutes.GetEstado)
	api.POST("/estados", estadoRoutes.CreateEstado)
	api.PUT("/estados/:id", estadoRoutes.UpdateEstado)
	api.DELETE("/estados/:id", estadoRoutes.DeleteEstado)

	// Clientes (superuser registry)
	api.GET("/clientes", reclamacionRoutes.GetClientes)
	api.GET("/clientes/:id", reclamacionRoutes.GetCliente)

	// SUNAT taxpayer lookup
	api.GET("/consulta-ruc/:ruc", consultaRoutes.ConsultarRUC)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("slug", validators.Slug)
}

func mustMachineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return 1
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("MACHINE_ID must be numeric, got %q", raw)
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
