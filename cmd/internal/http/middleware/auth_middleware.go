package middleware

import (
	"net/http"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UsuarioRepository interface {
	FindActiveByID(id int64) (*entity.Usuario, error)
}

type AuthMiddlewareConfig struct {
	UsuarioRepo UsuarioRepository
}

// NewAuthMiddleware validates the bearer token and resolves the acting
// Usuario, which downstream handlers read from the request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			usuario, err := cfg.UsuarioRepo.FindActiveByID(tokenData.UserID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			// Deactivated accounts keep their signed tokens until
			// expiry; they still must not get in.
			if usuario == nil {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set("usuario", usuario)
			return next(c)
		}
	}
}
