package models

import "time"

type Proveedor struct {
	ID              uint `gorm:"primaryKey"`
	TipoDocumentoID uint `gorm:"index;not null"`
	TipoDocumento   TipoDocumento
	NumDocumento    string `gorm:"size:20;not null"`
	Nombre          string `gorm:"size:150;not null"` // razón social o nombre comercial
	Direccion       string `gorm:"size:255"`
	Telefono        string `gorm:"size:20"`
	Email           string `gorm:"size:100"`
	Estado          string `gorm:"size:20;not null;default:'ACTIVO'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Cliente struct {
	ID              uint `gorm:"primaryKey"`
	TipoDocumentoID uint `gorm:"index;not null"`
	TipoDocumento   TipoDocumento
	NumDocumento    string `gorm:"size:20;not null"`
	Nombres         string `gorm:"size:150;not null"`
	Direccion       string `gorm:"size:255"`
	Telefono        string `gorm:"size:20"`
	Email           string `gorm:"size:100"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
