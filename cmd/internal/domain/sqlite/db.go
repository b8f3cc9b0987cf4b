package sqlite

import (
	"path/filepath"
	"time"

	"reclamalibro/cmd/internal/domain/entity"
	"reclamalibro/cmd/internal/utils/uid"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Init() (*gorm.DB, error) {
	dbPath := filepath.Join(".", "database.db")
	return open(dbPath)
}

// InitInMemory opens a private in-memory database, used by tests.
func InitInMemory() (*gorm.DB, error) {
	return open(":memory:")
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Proveedor{},
		&entity.Marca{},
		&entity.Establecimiento{},
		&entity.LibroReclamacion{},
		&entity.Cliente{},
		&entity.RepresentanteLegal{},
		&entity.EstadoReclamacion{},
		&entity.Reclamacion{},
		&entity.ArchivoAdjunto{},
		&entity.Usuario{},
		&entity.FichaRUC{},
	)
	if err != nil {
		return nil, err
	}

	if err := seedEstados(db); err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// seedEstados inserts the baseline complaint states on a fresh
// database. Estados remain ordinary rows: operators may add more, and
// nothing outside the responder transition depends on these names.
func seedEstados(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.EstadoReclamacion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	estados := []*entity.EstadoReclamacion{
		{ID: uid.Generate(), Nombre: "Registrado", Descripcion: "Reclamación recibida y pendiente de atención"},
		{ID: uid.Generate(), Nombre: "Respondido", Descripcion: "El proveedor registró una respuesta"},
		{ID: uid.Generate(), Nombre: "Cerrado", Descripcion: "Reclamación atendida y cerrada"},
	}
	return db.Create(&estados).Error
}
