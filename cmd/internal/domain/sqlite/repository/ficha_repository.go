package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultFichaRepository struct {
	db *gorm.DB
}

func NewFichaRepository(db *gorm.DB) *DefaultFichaRepository {
	return &DefaultFichaRepository{db: db}
}

func (r *DefaultFichaRepository) FindByRUC(ruc string) (*entity.FichaRUC, error) {
	var ficha entity.FichaRUC
	err := r.db.
		Where("ruc = ?", ruc).
		First(&ficha).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &ficha, nil
}

func (r *DefaultFichaRepository) Save(ficha *entity.FichaRUC) error {
	return r.db.Save(ficha).Error
}

func (r *DefaultFichaRepository) DeleteExpired(before int64) error {
	return r.db.
		Where("cached_at < ?", before).
		Delete(&entity.FichaRUC{}).Error
}
