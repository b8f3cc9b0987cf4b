package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultClienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *DefaultClienteRepository {
	return &DefaultClienteRepository{db: db}
}

func (r *DefaultClienteRepository) FindAll() ([]*entity.Cliente, error) {
	var clientes []*entity.Cliente
	err := r.db.Preload("Representantes").Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *DefaultClienteRepository) FindByID(id int64) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.db.Preload("Representantes").First(&cliente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &cliente, nil
}
