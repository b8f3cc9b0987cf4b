package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"

	"gorm.io/gorm"
)

type DefaultEstablecimientoRepository struct {
	db *gorm.DB
}

func NewEstablecimientoRepository(db *gorm.DB) *DefaultEstablecimientoRepository {
	return &DefaultEstablecimientoRepository{db: db}
}

// scoped narrows the query to establishments whose marca belongs to the
// actor's proveedor. One explicit hop, no lazy traversal.
func (r *DefaultEstablecimientoRepository) scoped(alcance policy.Alcance) *gorm.DB {
	q := r.db.Preload("Marca").Preload("Marca.Proveedor")
	if alcance.Total() {
		return q
	}
	return q.
		Joins("JOIN marcas ON marcas.id = establecimientos.marca_id").
		Where("marcas.proveedor_id = ?", alcance.ProveedorID)
}

func (r *DefaultEstablecimientoRepository) FindAllScoped(alcance policy.Alcance) ([]*entity.Establecimiento, error) {
	if alcance.Vacio() {
		return []*entity.Establecimiento{}, nil
	}

	var establecimientos []*entity.Establecimiento
	if err := r.scoped(alcance).Find(&establecimientos).Error; err != nil {
		return nil, err
	}
	return establecimientos, nil
}

func (r *DefaultEstablecimientoRepository) FindScopedByID(alcance policy.Alcance, id int64) (*entity.Establecimiento, error) {
	if alcance.Vacio() {
		return nil, nil
	}

	var establecimiento entity.Establecimiento
	err := r.scoped(alcance).Where("establecimientos.id = ?", id).First(&establecimiento).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &establecimiento, nil
}

func (r *DefaultEstablecimientoRepository) Save(establecimiento *entity.Establecimiento) error {
	return r.db.Save(establecimiento).Error
}

// Delete hard-deletes the row. Linked books survive with their
// establishment reference cleared.
func (r *DefaultEstablecimientoRepository) Delete(establecimiento *entity.Establecimiento) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.LibroReclamacion{}).
			Where("establecimiento_id = ?", establecimiento.ID).
			Update("establecimiento_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(establecimiento).Error
	})
}
