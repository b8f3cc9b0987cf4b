package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"

	"gorm.io/gorm"
)

type DefaultLibroRepository struct {
	db *gorm.DB
}

func NewLibroRepository(db *gorm.DB) *DefaultLibroRepository {
	return &DefaultLibroRepository{db: db}
}

// scoped applies the ownership predicate: a book is visible when its
// establecimiento → marca chain resolves to the actor's proveedor.
// Books whose establishment link was cleared have no ancestor chain and
// stay visible to superusers only.
func (r *DefaultLibroRepository) scoped(alcance policy.Alcance) *gorm.DB {
	q := r.db.
		Preload("Establecimiento").
		Preload("Establecimiento.Marca").
		Preload("Establecimiento.Marca.Proveedor")
	if alcance.Total() {
		return q
	}
	return q.
		Joins("JOIN establecimientos ON establecimientos.id = libros_reclamaciones.establecimiento_id").
		Joins("JOIN marcas ON marcas.id = establecimientos.marca_id").
		Where("marcas.proveedor_id = ?", alcance.ProveedorID)
}

func (r *DefaultLibroRepository) FindAllScoped(alcance policy.Alcance) ([]*entity.LibroReclamacion, error) {
	if alcance.Vacio() {
		return []*entity.LibroReclamacion{}, nil
	}

	var libros []*entity.LibroReclamacion
	if err := r.scoped(alcance).Find(&libros).Error; err != nil {
		return nil, err
	}
	return libros, nil
}

func (r *DefaultLibroRepository) FindScopedByID(alcance policy.Alcance, id int64) (*entity.LibroReclamacion, error) {
	if alcance.Vacio() {
		return nil, nil
	}

	var libro entity.LibroReclamacion
	err := r.scoped(alcance).Where("libros_reclamaciones.id = ?", id).First(&libro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &libro, nil
}

// FindActivoByCodigo is the single authorization gate of the intake
// workflow: only a book in estado "activo" resolves.
func (r *DefaultLibroRepository) FindActivoByCodigo(codigo string) (*entity.LibroReclamacion, error) {
	var libro entity.LibroReclamacion
	err := r.db.
		Preload("Establecimiento").
		Where("codigo_libro = ? AND estado = ?", codigo, entity.LibroActivo).
		First(&libro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &libro, nil
}

// FindBySlugs resolves a book by its public routing key, with the full
// ancestor chain preloaded for the post-lookup ownership check.
func (r *DefaultLibroRepository) FindBySlugs(libroSlug, establecimientoSlug string) (*entity.LibroReclamacion, error) {
	var libro entity.LibroReclamacion
	err := r.db.
		Preload("Establecimiento").
		Preload("Establecimiento.Marca").
		Preload("Establecimiento.Marca.Proveedor").
		Where("libro_slug = ? AND establecimiento_slug = ?", libroSlug, establecimientoSlug).
		First(&libro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &libro, nil
}

// ExistsOtherWithSlugs reports whether any other book already uses the
// slug pair. The book being edited excludes itself by primary key.
func (r *DefaultLibroRepository) ExistsOtherWithSlugs(excludeID int64, libroSlug, establecimientoSlug string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM libros_reclamaciones WHERE libro_slug = ? AND establecimiento_slug = ? AND id != ?)",
			libroSlug, establecimientoSlug, excludeID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultLibroRepository) Save(libro *entity.LibroReclamacion) error {
	return r.db.Save(libro).Error
}

// SaveCompleto persists partial updates of up to three rows of the
// chain in one transaction.
func (r *DefaultLibroRepository) SaveCompleto(libro *entity.LibroReclamacion, establecimiento *entity.Establecimiento, marca *entity.Marca) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(libro).Error; err != nil {
			return err
		}
		if establecimiento != nil {
			if err := tx.Save(establecimiento).Error; err != nil {
				return err
			}
		}
		if marca != nil {
			if err := tx.Save(marca).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
