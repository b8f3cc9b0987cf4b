package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *DefaultUsuarioRepository {
	return &DefaultUsuarioRepository{db: db}
}

func (u *DefaultUsuarioRepository) FindByID(id int64) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := u.db.
		Preload("Proveedor").
		First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (u *DefaultUsuarioRepository) FindActiveByID(id int64) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := u.db.
		Preload("Proveedor").
		Where("activo = ?", true).
		First(&usuario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// FindByEmail resolves the account by email, not by username. Username
// is a derived duplicate of email and never drives lookups.
func (u *DefaultUsuarioRepository) FindByEmail(email string) (*entity.Usuario, error) {
	var usuario entity.Usuario
	err := u.db.
		Preload("Proveedor").
		Where("email = ?", email).
		First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (u *DefaultUsuarioRepository) Save(usuario *entity.Usuario) error {
	return u.db.Save(usuario).Error
}
