package handler

import (
	"net/http"
	"strings"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ConsultaService interface {
	ConsultarRUC(ruc string) (*contract.FichaRUCResponse, apierror.ErrorResponse)
}

type DefaultConsultaRoute struct {
	ConsultaService ConsultaService
}

func NewConsultaRoute(consultaService ConsultaService) *DefaultConsultaRoute {
	return &DefaultConsultaRoute{ConsultaService: consultaService}
}

func (u *DefaultConsultaRoute) ConsultarRUC(c echo.Context) error {
	ruc := strings.TrimSpace(c.Param("ruc"))
	if !utils.IsRUCValid(ruc) {
		apierr := apierror.RUCInvalidoError
		return c.JSON(apierr.Code(), apierr)
	}

	ficha, apierr := u.ConsultaService.ConsultarRUC(ruc)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ficha)
}
