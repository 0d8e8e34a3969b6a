package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

type Producto struct {
	ID              uint   `gorm:"primaryKey"`
	Codigo          string `gorm:"size:50;uniqueIndex;not null"` // código interno
	Nombre          string `gorm:"size:150;not null"`
	MarcaID         uint   `gorm:"index;not null"`
	Marca           Marca
	CategoriaID     *uint `gorm:"index"`
	Categoria       *Categoria
	PresentacionID  *uint `gorm:"index"`
	Presentacion    *Presentacion
	UnidadesPorCaja int             `gorm:"not null;default:1"` // unidades que contiene una caja
	StockCaja       int             `gorm:"not null;default:0"`
	StockUnidad     int             `gorm:"not null;default:0"`
	StockMinimo     int             `gorm:"not null;default:0"` // umbral de alerta en cajas
	PrecioCompra    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioVentaCaja decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioVentaUnid decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Imagen          string          `gorm:"size:255"` // ruta de la imagen, la carga es externa
	Estado          string          `gorm:"size:20;not null;default:'ACTIVO'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
