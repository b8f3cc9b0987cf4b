package utils

import (
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func GetUsuarioFromContext(c echo.Context) (*entity.Usuario, apierror.ErrorResponse) {
	val := c.Get("usuario")
	if val == nil {
		log.Warnf("route %s attempted to read nil usuario from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	usuario, ok := val.(*entity.Usuario)
	if !ok {
		log.Warnf("expected usuario type at 'usuario' context key, got %v", val)
		return nil, apierror.InternalServerError
	}
	return usuario, nil
}
