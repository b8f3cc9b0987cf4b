package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError         = NewSimple(404, "Resource not found")
	UnauthorizedError     = NewSimple(401, "Missing or invalid credentials")
	InvalidAuthTokenError = NewSimple(401, "Invalid or expired auth token")
	InvalidIDError        = NewSimple(400, "The provided ID is invalid, IDs are usually int64 > 0")

	/*
	 * Login failures. The three causes must stay textually
	 * distinguishable for the panel frontend.
	 */
	CorreoNoRegistradoError    = NewSimple(401, "Correo no registrado.")
	CredencialesInvalidasError = NewSimple(401, "Credenciales inválidas.")
	UsuarioInactivoError       = NewSimple(403, "Usuario inactivo.")

	// SinProveedorError covers proveedor self-service endpoints hit by
	// accounts with no bound proveedor.
	SinProveedorError = NewSimple(400, "El usuario no tiene proveedor asignado.")

	// LibroAjenoError is the explicit post-lookup ownership denial.
	LibroAjenoError = NewSimple(403, "No tienes permiso para acceder a este libro.")

	SuperuserOnlyError = NewSimple(403, "No autorizado")

	/*
	 * Integrity conflicts, surfaced as 400 with a descriptive message.
	 */
	RUCInvalidoError         = NewSimple(400, "El RUC no es válido.")
	LibroNoActivoError       = NewSimple(400, "No existe un libro activo con ese código.")
	SlugsDuplicadosError     = NewSimple(400, "Ya existe un libro con ese alias para este proveedor.")
	CodigoHojaDuplicadoError = NewSimple(400, "Ya existe una reclamación con ese código de hoja.")
	RUCDuplicadoError        = NewSimple(400, "Ya existe un proveedor con ese RUC.")
	EstadoEnUsoError         = NewSimple(400, "El estado tiene reclamaciones asociadas y no puede eliminarse.")

	/*
	 * Password change failures.
	 */
	ContrasenaActualError       = NewSimple(400, "La contraseña actual es incorrecta.")
	ContrasenasNoCoincidenError = NewSimple(400, "Las contraseñas no coinciden.")

	FormJSONRequiredError = NewSimple(400, "Multipart intake requires a 'json_payload' form field")
	InvalidMediaTypeError = NewSimple(415, "Content type must be application/json or multipart/form-data")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "hasupper":
			problems[field] = append(problems[field], "Value must have at least one uppercase character")
		case "haslower":
			problems[field] = append(problems[field], "Value must have at least one lowercase character")
		case "hasdigit":
			problems[field] = append(problems[field], "Value must have at least one number")
		case "hasspecial":
			problems[field] = append(problems[field], "Value must have at least one special character")
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewInvalidFileExtError(ext string) *APIError {
	return NewSimple(http.StatusBadRequest, "Files with extension '%s' are not accepted", ext)
}
