package compras

import (
	"errors"
	"testing"
	"time"

	"comercial-backend/internal/database"
	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Base en memoria única por test para evitar colisiones entre tests.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProducto(t *testing.T, db *gorm.DB, codigo string, stockCaja int) *models.Producto {
	t.Helper()
	marca := models.Marca{Nombre: "Marca " + codigo, Estado: models.EstadoVigente}
	if err := db.Create(&marca).Error; err != nil {
		t.Fatalf("seed marca: %v", err)
	}
	p := models.Producto{
		Codigo:          codigo,
		Nombre:          "Producto " + codigo,
		MarcaID:         marca.ID,
		UnidadesPorCaja: 12,
		StockCaja:       stockCaja,
		PrecioCompra:    decimal.RequireFromString("8.00"),
		PrecioVentaCaja: decimal.RequireFromString("10.00"),
		PrecioVentaUnid: decimal.RequireFromString("1.00"),
		Estado:          models.EstadoActivo,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed producto: %v", err)
	}
	return &p
}

func seedCompraBase(t *testing.T, db *gorm.DB) (*models.Proveedor, *models.TipoDocumento) {
	t.Helper()
	tipo := models.TipoDocumento{Nombre: "FACTURA", Abreviatura: "F", Estado: models.EstadoActivo}
	if err := db.Create(&tipo).Error; err != nil {
		t.Fatalf("seed tipo documento: %v", err)
	}
	prov := models.Proveedor{
		TipoDocumentoID: tipo.ID,
		NumDocumento:    "20100000001",
		Nombre:          "Distribuidora Norte",
		Estado:          models.EstadoActivo,
	}
	if err := db.Create(&prov).Error; err != nil {
		t.Fatalf("seed proveedor: %v", err)
	}
	return &prov, &tipo
}

func stockDe(t *testing.T, db *gorm.DB, productoID uint) int {
	t.Helper()
	var p models.Producto
	if err := db.First(&p, productoID).Error; err != nil {
		t.Fatalf("leer producto: %v", err)
	}
	return p.StockCaja
}

func TestRegistrarCompraIncrementaStockPorLinea(t *testing.T) {
	db := setupTestDB(t)
	prov, tipo := seedCompraBase(t, db)
	p1 := seedProducto(t, db, "P001", 10)
	p2 := seedProducto(t, db, "P002", 0)

	compra := models.Compra{
		ProveedorID:     prov.ID,
		TipoDocumentoID: tipo.ID,
		NumComprobante:  "F001-000123",
		FechaCompra:     time.Now(),
		Moneda:          "PEN",
		Estado:          models.CompraPendiente,
		Detalles: []models.DetalleCompra{
			{ProductoID: p1.ID, Cantidad: 5, PrecioCompra: decimal.RequireFromString("8.00")},
			{ProductoID: p2.ID, Cantidad: 7, PrecioCompra: decimal.RequireFromString("3.50")},
		},
	}

	if err := RegistrarCompra(db, &compra); err != nil {
		t.Fatalf("registrar compra: %v", err)
	}

	if got := stockDe(t, db, p1.ID); got != 15 {
		t.Fatalf("stock p1: esperaba 15, obtuve %d", got)
	}
	if got := stockDe(t, db, p2.ID); got != 7 {
		t.Fatalf("stock p2: esperaba 7, obtuve %d", got)
	}

	var nDetalles int64
	db.Model(&models.DetalleCompra{}).Where("compra_id = ?", compra.ID).Count(&nDetalles)
	if nDetalles != 2 {
		t.Fatalf("esperaba 2 detalles, obtuve %d", nDetalles)
	}
}

func TestRegistrarCompraProductoInexistenteRevierteTodo(t *testing.T) {
	db := setupTestDB(t)
	prov, tipo := seedCompraBase(t, db)
	p1 := seedProducto(t, db, "P001", 10)

	compra := models.Compra{
		ProveedorID:     prov.ID,
		TipoDocumentoID: tipo.ID,
		NumComprobante:  "F001-000124",
		FechaCompra:     time.Now(),
		Moneda:          "PEN",
		Estado:          models.CompraPendiente,
		Detalles: []models.DetalleCompra{
			{ProductoID: p1.ID, Cantidad: 5, PrecioCompra: decimal.RequireFromString("8.00")},
			{ProductoID: 9999, Cantidad: 3, PrecioCompra: decimal.RequireFromString("2.00")},
		},
	}

	err := RegistrarCompra(db, &compra)
	if !errors.Is(err, inventario.ErrProductoNoEncontrado) {
		t.Fatalf("esperaba ErrProductoNoEncontrado, obtuve %v", err)
	}

	// Nada debe haber quedado persistido
	var nCompras, nDetalles int64
	db.Model(&models.Compra{}).Count(&nCompras)
	db.Model(&models.DetalleCompra{}).Count(&nDetalles)
	if nCompras != 0 || nDetalles != 0 {
		t.Fatalf("la transacción no se revirtió: compras=%d detalles=%d", nCompras, nDetalles)
	}
	if got := stockDe(t, db, p1.ID); got != 10 {
		t.Fatalf("el stock no debió cambiar: esperaba 10, obtuve %d", got)
	}
}

func TestEditarCompraAplicaDeltaNeto(t *testing.T) {
	db := setupTestDB(t)
	prov, tipo := seedCompraBase(t, db)
	p1 := seedProducto(t, db, "P001", 10)
	p2 := seedProducto(t, db, "P002", 4)

	compra := models.Compra{
		ProveedorID:     prov.ID,
		TipoDocumentoID: tipo.ID,
		NumComprobante:  "F001-000125",
		FechaCompra:     time.Now(),
		Moneda:          "PEN",
		Estado:          models.CompraPendiente,
		Detalles: []models.DetalleCompra{
			{ProductoID: p1.ID, Cantidad: 5, PrecioCompra: decimal.RequireFromString("8.00")},
			{ProductoID: p2.ID, Cantidad: 2, PrecioCompra: decimal.RequireFromString("3.00")},
		},
	}
	if err := RegistrarCompra(db, &compra); err != nil {
		t.Fatalf("registrar compra: %v", err)
	}
	// p1: 15, p2: 6 tras la compra original

	cab := CabeceraCompra{
		ProveedorID:     prov.ID,
		TipoDocumentoID: tipo.ID,
		NumComprobante:  "F001-000125",
		FechaCompra:     time.Now(),
		Moneda:          "PEN",
		Estado:          models.CompraPagada,
	}
	nuevos := []models.DetalleCompra{
		{ProductoID: p1.ID, Cantidad: 2, PrecioCompra: decimal.RequireFromString("8.00")},
	}

	editada, err := EditarCompra(db, compra.ID, cab, nuevos)
	if err != nil {
		t.Fatalf("editar compra: %v", err)
	}

	// Delta p1: 2 − 5 = −3 → 12; delta p2: 0 − 2 = −2 → 4
	if got := stockDe(t, db, p1.ID); got != 12 {
		t.Fatalf("stock p1: esperaba 12, obtuve %d", got)
	}
	if got := stockDe(t, db, p2.ID); got != 4 {
		t.Fatalf("stock p2: esperaba 4, obtuve %d", got)
	}

	if editada.Estado != models.CompraPagada {
		t.Fatalf("esperaba estado %q, obtuve %q", models.CompraPagada, editada.Estado)
	}
	var nDetalles int64
	db.Model(&models.DetalleCompra{}).Where("compra_id = ?", compra.ID).Count(&nDetalles)
	if nDetalles != 1 {
		t.Fatalf("esperaba 1 detalle tras la edición, obtuve %d", nDetalles)
	}
}

func TestEditarCompraNoEncontrada(t *testing.T) {
	db := setupTestDB(t)
	prov, tipo := seedCompraBase(t, db)
	p1 := seedProducto(t, db, "P001", 10)

	cab := CabeceraCompra{
		ProveedorID:     prov.ID,
		TipoDocumentoID: tipo.ID,
		NumComprobante:  "F001-000999",
		FechaCompra:     time.Now(),
		Moneda:          "PEN",
		Estado:          models.CompraPendiente,
	}
	nuevos := []models.DetalleCompra{
		{ProductoID: p1.ID, Cantidad: 1, PrecioCompra: decimal.RequireFromString("8.00")},
	}

	if _, err := EditarCompra(db, 12345, cab, nuevos); !errors.Is(err, ErrCompraNoEncontrada) {
		t.Fatalf("esperaba ErrCompraNoEncontrada, obtuve %v", err)
	}
	if got := stockDe(t, db, p1.ID); got != 10 {
		t.Fatalf("el stock no debió cambiar: esperaba 10, obtuve %d", got)
	}
}

func TestActualizarEstadoNoTocaStock(t *testing.T) {
	db := setupTestDB(t)
	prov, tipo := seedCompraBase(t, db)
	p1 := seedProducto(t, db, "P001", 10)

	compra := models.Compra{
		ProveedorID:     prov.ID,
		TipoDocumentoID: tipo.ID,
		NumComprobante:  "F001-000126",
		FechaCompra:     time.Now(),
		Moneda:          "PEN",
		Estado:          models.CompraPendiente,
		Detalles: []models.DetalleCompra{
			{ProductoID: p1.ID, Cantidad: 5, PrecioCompra: decimal.RequireFromString("8.00")},
		},
	}
	if err := RegistrarCompra(db, &compra); err != nil {
		t.Fatalf("registrar compra: %v", err)
	}

	actualizada, err := ActualizarEstado(db, compra.ID, models.CompraPagada)
	if err != nil {
		t.Fatalf("actualizar estado: %v", err)
	}
	if actualizada.Estado != models.CompraPagada {
		t.Fatalf("esperaba estado %q, obtuve %q", models.CompraPagada, actualizada.Estado)
	}
	if got := stockDe(t, db, p1.ID); got != 15 {
		t.Fatalf("el cambio de estado no debe tocar stock: esperaba 15, obtuve %d", got)
	}
}
