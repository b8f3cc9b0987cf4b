package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEstadoRepository struct {
	db *gorm.DB
}

func NewEstadoRepository(db *gorm.DB) *DefaultEstadoRepository {
	return &DefaultEstadoRepository{db: db}
}

func (r *DefaultEstadoRepository) FindAll() ([]*entity.EstadoReclamacion, error) {
	var estados []*entity.EstadoReclamacion
	err := r.db.Find(&estados).Error
	if err != nil {
		return nil, err
	}
	return estados, nil
}

func (r *DefaultEstadoRepository) FindByID(id int64) (*entity.EstadoReclamacion, error) {
	var estado entity.EstadoReclamacion
	err := r.db.First(&estado, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &estado, nil
}

// FindByNombre matches the state name case-insensitively, the lookup
// the responder transition depends on.
func (r *DefaultEstadoRepository) FindByNombre(nombre string) (*entity.EstadoReclamacion, error) {
	var estado entity.EstadoReclamacion
	err := r.db.
		Where("LOWER(nombre) = LOWER(?)", nombre).
		First(&estado).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &estado, nil
}

func (r *DefaultEstadoRepository) Save(estado *entity.EstadoReclamacion) error {
	return r.db.Save(estado).Error
}

func (r *DefaultEstadoRepository) Delete(estado *entity.EstadoReclamacion) error {
	return r.db.Delete(estado).Error
}
