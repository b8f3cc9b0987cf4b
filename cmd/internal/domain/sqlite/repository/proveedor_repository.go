package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultProveedorRepository struct {
	db *gorm.DB
}

func NewProveedorRepository(db *gorm.DB) *DefaultProveedorRepository {
	return &DefaultProveedorRepository{db: db}
}

func (r *DefaultProveedorRepository) FindAll() ([]*entity.Proveedor, error) {
	var proveedores []*entity.Proveedor
	err := r.db.Find(&proveedores).Error
	if err != nil {
		return nil, err
	}
	return proveedores, nil
}

func (r *DefaultProveedorRepository) FindByID(id int64) (*entity.Proveedor, error) {
	var proveedor entity.Proveedor
	err := r.db.First(&proveedor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &proveedor, nil
}

// ExistsOtherWithRUC reports whether a different proveedor already
// holds the RUC. Self-exclusion keeps updates idempotent.
func (r *DefaultProveedorRepository) ExistsOtherWithRUC(excludeID int64, ruc string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM proveedores WHERE ruc = ? AND id != ?)", ruc, excludeID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultProveedorRepository) Save(proveedor *entity.Proveedor) error {
	return r.db.Save(proveedor).Error
}
