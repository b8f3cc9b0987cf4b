package repository

import (
	"reclamalibro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultArchivoRepository struct {
	db *gorm.DB
}

func NewArchivoRepository(db *gorm.DB) *DefaultArchivoRepository {
	return &DefaultArchivoRepository{db: db}
}

func (r *DefaultArchivoRepository) FindAllByReclamacion(reclamacionID int64) ([]*entity.ArchivoAdjunto, error) {
	var archivos []*entity.ArchivoAdjunto
	err := r.db.
		Where("reclamacion_id = ?", reclamacionID).
		Find(&archivos).Error
	if err != nil {
		return nil, err
	}
	return archivos, nil
}
