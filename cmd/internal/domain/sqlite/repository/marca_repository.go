package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"

	"gorm.io/gorm"
)

type DefaultMarcaRepository struct {
	db *gorm.DB
}

func NewMarcaRepository(db *gorm.DB) *DefaultMarcaRepository {
	return &DefaultMarcaRepository{db: db}
}

func (r *DefaultMarcaRepository) FindAllScoped(alcance policy.Alcance) ([]*entity.Marca, error) {
	if alcance.Vacio() {
		return []*entity.Marca{}, nil
	}

	q := r.db.Preload("Proveedor")
	if !alcance.Total() {
		q = q.Where("proveedor_id = ?", alcance.ProveedorID)
	}

	var marcas []*entity.Marca
	if err := q.Find(&marcas).Error; err != nil {
		return nil, err
	}
	return marcas, nil
}

func (r *DefaultMarcaRepository) FindScopedByID(alcance policy.Alcance, id int64) (*entity.Marca, error) {
	if alcance.Vacio() {
		return nil, nil
	}

	q := r.db.Preload("Proveedor")
	if !alcance.Total() {
		q = q.Where("proveedor_id = ?", alcance.ProveedorID)
	}

	var marca entity.Marca
	err := q.First(&marca, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &marca, nil
}

func (r *DefaultMarcaRepository) Save(marca *entity.Marca) error {
	return r.db.Save(marca).Error
}

// Delete hard-deletes the marca and its establecimientos in one
// transaction. Books linked to those establecimientos survive with the
// reference cleared, same as a direct establecimiento delete.
func (r *DefaultMarcaRepository) Delete(marca *entity.Marca) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		propios := tx.Model(&entity.Establecimiento{}).
			Select("id").
			Where("marca_id = ?", marca.ID)

		err := tx.Model(&entity.LibroReclamacion{}).
			Where("establecimiento_id IN (?)", propios).
			Update("establecimiento_id", nil).Error
		if err != nil {
			return err
		}

		err = tx.Where("marca_id = ?", marca.ID).
			Delete(&entity.Establecimiento{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(marca).Error
	})
}
