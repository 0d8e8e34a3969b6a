package compras

import (
	"errors"
	"fmt"
	"time"

	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompraNoEncontrada = errors.New("compra no encontrada")

// CabeceraCompra agrupa los campos editables de la cabecera.
type CabeceraCompra struct {
	ProveedorID      uint
	TipoDocumentoID  uint
	NumComprobante   string
	FechaCompra      time.Time
	FechaVencimiento *time.Time
	Moneda           string
	MetodoPago       string
	Estado           string
}

// RegistrarCompra inserta la cabecera con sus detalles (creación anidada)
// y suma al stock de cada producto la cantidad de su línea, todo dentro
// de una transacción: o se confirma todo, o no queda nada.
func RegistrarCompra(db *gorm.DB, compra *models.Compra) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(compra).Error; err != nil {
			return fmt.Errorf("no se pudo registrar la compra: %w", err)
		}
		for _, d := range compra.Detalles {
			if err := inventario.IncrementarStockCaja(tx, d.ProductoID, d.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
}

// EditarCompra reemplaza cabecera y detalles completos: revierte el stock
// de cada línea original, borra las líneas, actualiza la cabecera, inserta
// el juego nuevo y aplica sus cantidades. El efecto neto sobre el stock es
// (nuevo − original), aplicado atómicamente. Si un producto original ya no
// existe la edición entera se aborta.
func EditarCompra(db *gorm.DB, compraID uint, cab CabeceraCompra, detalles []models.DetalleCompra) (*models.Compra, error) {
	var compra models.Compra

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Detalles").First(&compra, "id = ?", compraID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompraNoEncontrada
			}
			return err
		}

		// Reversión completa de las líneas originales
		for _, d := range compra.Detalles {
			if err := inventario.DescontarStockCaja(tx, d.ProductoID, d.Cantidad); err != nil {
				return err
			}
		}

		if err := tx.Where("compra_id = ?", compra.ID).Delete(&models.DetalleCompra{}).Error; err != nil {
			return err
		}

		compra.ProveedorID = cab.ProveedorID
		compra.TipoDocumentoID = cab.TipoDocumentoID
		compra.NumComprobante = cab.NumComprobante
		compra.FechaCompra = cab.FechaCompra
		compra.FechaVencimiento = cab.FechaVencimiento
		compra.Moneda = cab.Moneda
		compra.MetodoPago = cab.MetodoPago
		compra.Estado = cab.Estado
		compra.Detalles = nil
		if err := tx.Save(&compra).Error; err != nil {
			return err
		}

		for i := range detalles {
			detalles[i].ID = 0
			detalles[i].CompraID = compra.ID
		}
		if err := tx.Create(&detalles).Error; err != nil {
			return err
		}

		for _, d := range detalles {
			if err := inventario.IncrementarStockCaja(tx, d.ProductoID, d.Cantidad); err != nil {
				return err
			}
		}

		compra.Detalles = detalles
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &compra, nil
}

// ActualizarEstado cambia solo el estado de la cabecera; no toca stock.
func ActualizarEstado(db *gorm.DB, compraID uint, estado string) (*models.Compra, error) {
	var compra models.Compra
	if err := db.First(&compra, "id = ?", compraID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompraNoEncontrada
		}
		return nil, err
	}

	if err := db.Model(&compra).Update("estado", estado).Error; err != nil {
		return nil, err
	}
	return &compra, nil
}
