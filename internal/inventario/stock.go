package inventario

import (
	"errors"

	"comercial-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
)

// IncrementarStockCaja suma cantidad cajas al stock del producto en una
// sola sentencia UPDATE. Cero filas afectadas significa que el producto
// no existe.
func IncrementarStockCaja(tx *gorm.DB, productoID uint, cantidad int) error {
	res := tx.Model(&models.Producto{}).
		Where("id = ?", productoID).
		Update("stock_caja", gorm.Expr("stock_caja + ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}

// DescontarStockCaja resta cantidad cajas con la condición stock_caja >= cantidad
// en el mismo UPDATE. Así dos descuentos concurrentes sobre el mismo producto
// no pueden dejar el stock en negativo: el que pierde la carrera afecta cero
// filas y recibe ErrStockInsuficiente.
func DescontarStockCaja(tx *gorm.DB, productoID uint, cantidad int) error {
	res := tx.Model(&models.Producto{}).
		Where("id = ? AND stock_caja >= ?", productoID, cantidad).
		Update("stock_caja", gorm.Expr("stock_caja - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguir producto inexistente de stock insuficiente
		var p models.Producto
		if err := tx.Select("id").First(&p, "id = ?", productoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductoNoEncontrado
			}
			return err
		}
		return ErrStockInsuficiente
	}
	return nil
}
