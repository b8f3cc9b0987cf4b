package repository

import (
	"errors"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/domain/policy"

	"gorm.io/gorm"
)

type DefaultReclamacionRepository struct {
	db *gorm.DB
}

func NewReclamacionRepository(db *gorm.DB) *DefaultReclamacionRepository {
	return &DefaultReclamacionRepository{db: db}
}

// scoped applies the ownership predicate through the full chain:
// reclamación → libro → establecimiento → marca → proveedor.
func (r *DefaultReclamacionRepository) scoped(alcance policy.Alcance) *gorm.DB {
	q := r.db.
		Preload("Estado").
		Preload("Cliente").
		Preload("Cliente.Representantes").
		Preload("Archivos").
		Preload("Libro").
		Preload("Libro.Establecimiento").
		Preload("Libro.Establecimiento.Marca").
		Preload("Libro.Establecimiento.Marca.Proveedor")
	if alcance.Total() {
		return q
	}
	return q.
		Joins("JOIN libros_reclamaciones ON libros_reclamaciones.id = reclamaciones.libro_id").
		Joins("JOIN establecimientos ON establecimientos.id = libros_reclamaciones.establecimiento_id").
		Joins("JOIN marcas ON marcas.id = establecimientos.marca_id").
		Where("marcas.proveedor_id = ?", alcance.ProveedorID)
}

func (r *DefaultReclamacionRepository) FindAllScoped(alcance policy.Alcance) ([]*entity.Reclamacion, error) {
	if alcance.Vacio() {
		return []*entity.Reclamacion{}, nil
	}

	var reclamaciones []*entity.Reclamacion
	if err := r.scoped(alcance).Find(&reclamaciones).Error; err != nil {
		return nil, err
	}
	return reclamaciones, nil
}

func (r *DefaultReclamacionRepository) FindScopedByID(alcance policy.Alcance, id int64) (*entity.Reclamacion, error) {
	if alcance.Vacio() {
		return nil, nil
	}

	var reclamacion entity.Reclamacion
	err := r.scoped(alcance).Where("reclamaciones.id = ?", id).First(&reclamacion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &reclamacion, nil
}

func (r *DefaultReclamacionRepository) ExistsByCodigoHoja(codigo string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM reclamaciones WHERE codigo_hoja = ?)", codigo).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

// CreateConCliente materializes one intake: the cliente (with its
// representantes), the reclamación and its adjuntos, all-or-nothing.
// A cliente must never survive a failed complaint insert.
func (r *DefaultReclamacionRepository) CreateConCliente(cliente *entity.Cliente, reclamacion *entity.Reclamacion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cliente).Error; err != nil {
			return err
		}

		reclamacion.ClienteID = cliente.ID
		return tx.Create(reclamacion).Error
	})
}

// UpdateRespuesta writes the supplier reply and the state transition as
// a targeted update, leaving every other column untouched.
func (r *DefaultReclamacionRepository) UpdateRespuesta(id int64, respuesta string, estadoID int64) error {
	return r.db.Model(&entity.Reclamacion{}).
		Where("id = ?", id).
		Updates(map[string]any{"respuesta": respuesta, "estado_id": estadoID}).Error
}

func (r *DefaultReclamacionRepository) CountByEstado(estadoID int64) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Reclamacion{}).
		Where("estado_id = ?", estadoID).
		Count(&count).Error
	return count, err
}
