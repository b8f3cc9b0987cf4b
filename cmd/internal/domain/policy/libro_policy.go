package policy

import (
	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils/apierror"
)

// LibroPolicy encapsulates the ownership rules for complaint books.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
//
// Read paths hide cross-tenant rows behind the scoped repository
// queries (a foreign book is a plain 404). This policy covers the one
// place the contract differs: an explicit post-lookup ownership check,
// where the row is known to exist and the denial is a 403.
type LibroPolicy struct{}

func NewLibroPolicy() *LibroPolicy {
	return &LibroPolicy{}
}

// CanAccess checks that 'actor' owns 'libro'. The libro must arrive
// with its Establecimiento→Marca chain preloaded; a book whose
// establishment link was cleared is only reachable by superusers.
func (p *LibroPolicy) CanAccess(libro *entity.LibroReclamacion, alcance Alcance) apierror.ErrorResponse {
	if libro == nil {
		return apierror.NotFoundError
	}

	if alcance.Total() {
		return nil
	}

	if libro.Establecimiento == nil || libro.Establecimiento.Marca == nil {
		return apierror.LibroAjenoError
	}

	if alcance.Vacio() || libro.Establecimiento.Marca.ProveedorID != alcance.ProveedorID {
		return apierror.LibroAjenoError
	}
	return nil
}
