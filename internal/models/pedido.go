package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PedidoPendiente = "Pendiente"
	PedidoEntregado = "Entregado"
)

// Pedido: venta simple de un producto. El producto se referencia por ID
// y su nombre se resuelve al leer; el cliente queda como texto libre.
type Pedido struct {
	ID             uint   `gorm:"primaryKey"`
	Cliente        string `gorm:"size:150;not null"`
	ProductoID     uint   `gorm:"index;not null"`
	Producto       Producto
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado         string          `gorm:"size:20;not null;default:'Pendiente'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
