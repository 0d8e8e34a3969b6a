package models

import "time"

const (
	EstadoVigente       = "VIGENTE"
	EstadoDescontinuado = "DESCONTINUADO"
)

type Marca struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"size:100;not null;unique"`
	Estado    string `gorm:"size:20;not null;default:'VIGENTE'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Categoria struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null;unique"`
	Descripcion string `gorm:"size:255"`
	Estado      string `gorm:"size:20;not null;default:'VIGENTE'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Presentacion: unidad de empaque (caja, blister, frasco, etc.)
type Presentacion struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null;unique"`
	Abreviatura string `gorm:"size:10"`
	Estado      string `gorm:"size:20;not null;default:'VIGENTE'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TipoDocumento cubre tanto documentos de identidad (DNI, RUC) como
// tipos de comprobante (FACTURA, BOLETA); clientes/proveedores y
// compras/series referencian la misma tabla.
type TipoDocumento struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null;unique"`
	Abreviatura string `gorm:"size:10"`
	Estado      string `gorm:"size:20;not null;default:'ACTIVO'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SerieComprobante: serie de numeración con su correlativo actual.
// El correlativo solo se avanza con el incremento atómico del
// paquete catalogo, nunca con un read-modify-write desde el cliente.
type SerieComprobante struct {
	ID              uint `gorm:"primaryKey"`
	TipoDocumentoID uint `gorm:"index;not null;uniqueIndex:idx_serie_tipo"`
	TipoDocumento   TipoDocumento
	Serie           string `gorm:"size:10;not null;uniqueIndex:idx_serie_tipo"`
	Correlativo     int    `gorm:"not null;default:0"`
	Estado          string `gorm:"size:20;not null;default:'ACTIVO'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Lote: partida de producción con fecha de vencimiento, para productos perecibles.
type Lote struct {
	ID               uint   `gorm:"primaryKey"`
	Numero           string `gorm:"size:50;not null"`
	FechaVencimiento time.Time
	Estado           string `gorm:"size:20;not null;default:'ACTIVO'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
