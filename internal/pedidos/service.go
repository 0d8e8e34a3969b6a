package pedidos

import (
	"errors"

	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrPedidoNoEncontrado = errors.New("pedido no encontrado")

// CrearPedido descuenta el stock y registra el pedido en una sola
// transacción. El descuento condicional garantiza que nunca se crea un
// pedido contra stock insuficiente, aun con pedidos concurrentes sobre
// el mismo producto.
func CrearPedido(db *gorm.DB, pedido *models.Pedido) error {
	pedido.Total = pedido.PrecioUnitario.Mul(decimal.NewFromInt(int64(pedido.Cantidad)))

	return db.Transaction(func(tx *gorm.DB) error {
		if err := inventario.DescontarStockCaja(tx, pedido.ProductoID, pedido.Cantidad); err != nil {
			return err
		}
		return tx.Create(pedido).Error
	})
}

// EliminarPedido borra el pedido y, solo si sigue Pendiente, devuelve su
// cantidad al stock. Los pedidos entregados no se reponen.
func EliminarPedido(db *gorm.DB, pedidoID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pedido models.Pedido
		if err := tx.First(&pedido, "id = ?", pedidoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPedidoNoEncontrado
			}
			return err
		}

		if pedido.Estado == models.PedidoPendiente {
			if err := inventario.IncrementarStockCaja(tx, pedido.ProductoID, pedido.Cantidad); err != nil {
				return err
			}
		}

		return tx.Delete(&pedido).Error
	})
}

// ActualizarEstado cambia solo el estado del pedido; no toca stock.
func ActualizarEstado(db *gorm.DB, pedidoID uint, estado string) (*models.Pedido, error) {
	var pedido models.Pedido
	if err := db.First(&pedido, "id = ?", pedidoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNoEncontrado
		}
		return nil, err
	}

	if err := db.Model(&pedido).Update("estado", estado).Error; err != nil {
		return nil, err
	}
	return &pedido, nil
}
