package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CompraPendiente = "PENDIENTE"
	CompraPagada    = "PAGADO"
)

// Compra: cabecera de una compra a proveedor. Los detalles se
// reemplazan completos en cada edición, nunca se hace diff parcial.
type Compra struct {
	ID               uint `gorm:"primaryKey"`
	ProveedorID      uint `gorm:"index;not null"`
	Proveedor        Proveedor
	TipoDocumentoID  uint `gorm:"index;not null"` // tipo de comprobante
	TipoDocumento    TipoDocumento
	NumComprobante   string    `gorm:"size:20;not null"`
	FechaCompra      time.Time `gorm:"index;not null"`
	FechaVencimiento *time.Time
	Moneda           string `gorm:"size:10;not null;default:'PEN'"`
	MetodoPago       string `gorm:"size:30"`
	Estado           string `gorm:"size:20;not null;default:'PENDIENTE'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Detalles []DetalleCompra `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

type DetalleCompra struct {
	ID           uint `gorm:"primaryKey"`
	CompraID     uint `gorm:"index;not null"`
	ProductoID   uint `gorm:"index;not null"`
	Producto     Producto
	LoteID       *uint `gorm:"index"`
	Lote         *Lote
	Cantidad     int             `gorm:"not null"` // cajas compradas
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
