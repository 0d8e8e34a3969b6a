package database

import (
	"fmt"

	"comercial-backend/internal/config"
	"comercial-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect abre la conexión Postgres y ejecuta las migraciones.
// El *gorm.DB resultante se inyecta a los handlers; no hay singleton global.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate crea/actualiza el esquema. Separado de Connect para que los
// tests puedan migrar una base sqlite en memoria.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.TipoDocumento{},
		&models.Marca{},
		&models.Categoria{},
		&models.Presentacion{},
		&models.SerieComprobante{},
		&models.Lote{},
		&models.Proveedor{},
		&models.Cliente{},
		&models.Producto{},
		&models.Compra{},
		&models.DetalleCompra{},
		&models.Pedido{},
		&models.Usuario{},
	)
	if err != nil {
		return fmt.Errorf("error en AutoMigrate: %w", err)
	}
	return nil
}
