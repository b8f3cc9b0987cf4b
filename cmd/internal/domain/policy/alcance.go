package policy

import "reclamalibro/cmd/internal/domain/entity"

// Alcance is the visibility scope of an authenticated actor. It is
// computed once per request from the Usuario row and threaded
// explicitly into every repository query over tenant-scoped entities
// (libros, reclamaciones, and the proveedor hierarchy beneath them).
//
// Exactly one of three cases holds:
//
// 1. Superuser: unconditional full visibility.
//
// 2. Bound to one Proveedor: rows whose ancestor chain
// (establecimiento → marca → proveedor) resolves to that Proveedor.
//
// 3. Neither: the empty set. This is the fail-closed default — an
// unbound, non-superuser actor gets empty collections, never an error.
type Alcance struct {
	Superuser   bool
	ProveedorID int64 // 0 when the actor has no bound proveedor
}

// AlcanceDe derives the scope of an actor.
func AlcanceDe(actor *entity.Usuario) Alcance {
	if actor == nil {
		return Alcance{}
	}
	if actor.IsSuperuser {
		return Alcance{Superuser: true}
	}
	if actor.ProveedorID != nil {
		return Alcance{ProveedorID: *actor.ProveedorID}
	}
	return Alcance{}
}

// Total reports full, unscoped visibility.
func (a Alcance) Total() bool {
	return a.Superuser
}

// Vacio reports the fail-closed empty scope.
func (a Alcance) Vacio() bool {
	return !a.Superuser && a.ProveedorID == 0
}
