package service

import (
	"context"
	"errors"

	"reclamalibro/cmd/internal/contract"
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/infrastructure/sunat"
	"reclamalibro/cmd/internal/utils"
	"reclamalibro/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type FichaRepository interface {
	Save(ficha *entity.FichaRUC) error
	FindByRUC(ruc string) (*entity.FichaRUC, error)
}

// ConsultaService resolves RUCs against SUNAT with a write-through
// cache, so the registration form can prefill the proveedor data.
type ConsultaService struct {
	SunatClient *sunat.Client
	FichaRepo   FichaRepository
}

func NewConsultaService(client *sunat.Client, fichaRepo FichaRepository) *ConsultaService {
	return &ConsultaService{
		SunatClient: client,
		FichaRepo:   fichaRepo,
	}
}

func (u *ConsultaService) ConsultarRUC(ruc string) (*contract.FichaRUCResponse, apierror.ErrorResponse) {
	ficha, fromCache, err := u.findFicha(ruc)
	if err != nil {
		return nil, err
	}
	return toFichaResp(ficha, fromCache), nil
}

// findFicha tries to resolve the RUC into a taxpayer record. It returns
// the ficha, a boolean (true = cached, false = API fetch) and a
// possible error response.
func (u *ConsultaService) findFicha(ruc string) (*entity.FichaRUC, bool, apierror.ErrorResponse) {
	cached, err := u.FichaRepo.FindByRUC(ruc)
	if err != nil {
		log.Errorf("failed to find ficha by ruc %s: %v", ruc, err)
		return nil, false, apierror.InternalServerError
	}

	// If we have some kind of cache
	if cached != nil {
		if cached.Found {
			return cached, true, nil
		} else {
			return nil, false, apierror.NotFoundError
		}
	}

	// Cache miss
	apiFicha, apierr := u.fetchFromAPI(ruc)
	if apierr != nil {
		return nil, false, apierr
	}

	err = u.FichaRepo.Save(apiFicha)
	if err != nil {
		// We don't return a 500 here, since we have the data we need
		// and only the cache has failed. We can just log it and proceed.
		log.Errorf("failed to save ficha cache for RUC %s: %v", ruc, err)
	}

	return apiFicha, false, nil
}

func (u *ConsultaService) fetchFromAPI(ruc string) (*entity.FichaRUC, apierror.ErrorResponse) {
	ficha, err := u.SunatClient.GetByRUC(context.Background(), ruc)
	if err != nil {
		if errors.Is(err, sunat.ErrNotFound) {
			u.cacheNegativeResult(ruc)
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to fetch ficha by ruc %s: %v", ruc, err)
		return nil, apierror.InternalServerError
	}

	ficha.Found = true
	ficha.CachedAt = utils.NowUTC()
	return ficha, nil
}

func (u *ConsultaService) cacheNegativeResult(ruc string) {
	emptyFicha := &entity.FichaRUC{
		RUC:   ruc,
		Found: false,
	}
	_ = u.FichaRepo.Save(emptyFicha)
}

func toFichaResp(f *entity.FichaRUC, cached bool) *contract.FichaRUCResponse {
	return &contract.FichaRUCResponse{
		RUC:          f.RUC,
		RazonSocial:  f.RazonSocial,
		Estado:       string(f.Estado),
		Condicion:    f.Condicion,
		Direccion:    f.Direccion,
		Distrito:     f.Distrito,
		Provincia:    f.Provincia,
		Departamento: f.Departamento,
		Cached:       cached,
	}
}
