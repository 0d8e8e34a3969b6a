package pedidos

import (
	"errors"
	"testing"

	"comercial-backend/internal/database"
	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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

func seedProducto(t *testing.T, db *gorm.DB, stockCaja int) *models.Producto {
	t.Helper()
	marca := models.Marca{Nombre: "Genérica", Estado: models.EstadoVigente}
	if err := db.Create(&marca).Error; err != nil {
		t.Fatalf("seed marca: %v", err)
	}
	p := models.Producto{
		Codigo:          "P001",
		Nombre:          "Galletas surtidas",
		MarcaID:         marca.ID,
		UnidadesPorCaja: 24,
		StockCaja:       stockCaja,
		PrecioCompra:    decimal.RequireFromString("8.00"),
		PrecioVentaCaja: decimal.RequireFromString("10.50"),
		PrecioVentaUnid: decimal.RequireFromString("0.50"),
		Estado:          models.EstadoActivo,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed producto: %v", err)
	}
	return &p
}

func stockDe(t *testing.T, db *gorm.DB, productoID uint) int {
	t.Helper()
	var p models.Producto
	if err := db.First(&p, productoID).Error; err != nil {
		t.Fatalf("leer producto: %v", err)
	}
	return p.StockCaja
}

func TestCrearPedidoDescuentaStockYCalculaTotal(t *testing.T) {
	db := setupTestDB(t)
	p := seedProducto(t, db, 10)

	pedido := models.Pedido{
		Cliente:        "María Quispe",
		ProductoID:     p.ID,
		Cantidad:       3,
		PrecioUnitario: decimal.RequireFromString("10.50"),
		Estado:         models.PedidoPendiente,
	}
	if err := CrearPedido(db, &pedido); err != nil {
		t.Fatalf("crear pedido: %v", err)
	}

	if got := stockDe(t, db, p.ID); got != 7 {
		t.Fatalf("stock: esperaba 7, obtuve %d", got)
	}

	esperado := decimal.RequireFromString("31.50")
	var guardado models.Pedido
	if err := db.First(&guardado, pedido.ID).Error; err != nil {
		t.Fatalf("leer pedido: %v", err)
	}
	if !guardado.Total.Equal(esperado) {
		t.Fatalf("total: esperaba %s, obtuve %s", esperado, guardado.Total)
	}
}

func TestCrearPedidoStockInsuficienteNoMuta(t *testing.T) {
	db := setupTestDB(t)
	p := seedProducto(t, db, 2)

	pedido := models.Pedido{
		Cliente:        "María Quispe",
		ProductoID:     p.ID,
		Cantidad:       5,
		PrecioUnitario: decimal.RequireFromString("10.50"),
		Estado:         models.PedidoPendiente,
	}
	err := CrearPedido(db, &pedido)
	if !errors.Is(err, inventario.ErrStockInsuficiente) {
		t.Fatalf("esperaba ErrStockInsuficiente, obtuve %v", err)
	}

	if got := stockDe(t, db, p.ID); got != 2 {
		t.Fatalf("el stock no debió cambiar: esperaba 2, obtuve %d", got)
	}
	var n int64
	db.Model(&models.Pedido{}).Count(&n)
	if n != 0 {
		t.Fatalf("no debió crearse ningún pedido, hay %d", n)
	}
}

func TestCrearPedidoProductoInexistente(t *testing.T) {
	db := setupTestDB(t)

	pedido := models.Pedido{
		Cliente:        "María Quispe",
		ProductoID:     999,
		Cantidad:       1,
		PrecioUnitario: decimal.RequireFromString("10.50"),
		Estado:         models.PedidoPendiente,
	}
	if err := CrearPedido(db, &pedido); !errors.Is(err, inventario.ErrProductoNoEncontrado) {
		t.Fatalf("esperaba ErrProductoNoEncontrado, obtuve %v", err)
	}
}

// El descuento condicional permite a lo sumo un ganador cuando dos pedidos
// compiten por el stock completo: el segundo afecta cero filas.
func TestPedidosCompetidosSoloUnoGana(t *testing.T) {
	db := setupTestDB(t)
	p := seedProducto(t, db, 4)

	primero := models.Pedido{
		Cliente:        "Cliente A",
		ProductoID:     p.ID,
		Cantidad:       4,
		PrecioUnitario: decimal.RequireFromString("10.00"),
		Estado:         models.PedidoPendiente,
	}
	segundo := models.Pedido{
		Cliente:        "Cliente B",
		ProductoID:     p.ID,
		Cantidad:       4,
		PrecioUnitario: decimal.RequireFromString("10.00"),
		Estado:         models.PedidoPendiente,
	}

	if err := CrearPedido(db, &primero); err != nil {
		t.Fatalf("el primer pedido debió crearse: %v", err)
	}
	if err := CrearPedido(db, &segundo); !errors.Is(err, inventario.ErrStockInsuficiente) {
		t.Fatalf("el segundo pedido debió rechazarse por stock, obtuve %v", err)
	}

	if got := stockDe(t, db, p.ID); got != 0 {
		t.Fatalf("stock: esperaba 0, obtuve %d", got)
	}
	var n int64
	db.Model(&models.Pedido{}).Count(&n)
	if n != 1 {
		t.Fatalf("esperaba exactamente 1 pedido, hay %d", n)
	}
}

func TestEliminarPedidoPendienteRepone(t *testing.T) {
	db := setupTestDB(t)
	p := seedProducto(t, db, 10)

	pedido := models.Pedido{
		Cliente:        "María Quispe",
		ProductoID:     p.ID,
		Cantidad:       3,
		PrecioUnitario: decimal.RequireFromString("10.50"),
		Estado:         models.PedidoPendiente,
	}
	if err := CrearPedido(db, &pedido); err != nil {
		t.Fatalf("crear pedido: %v", err)
	}

	if err := EliminarPedido(db, pedido.ID); err != nil {
		t.Fatalf("eliminar pedido: %v", err)
	}

	if got := stockDe(t, db, p.ID); got != 10 {
		t.Fatalf("stock: esperaba 10 tras reponer, obtuve %d", got)
	}
	var n int64
	db.Model(&models.Pedido{}).Count(&n)
	if n != 0 {
		t.Fatalf("el pedido debió borrarse, hay %d", n)
	}
}

func TestEliminarPedidoEntregadoNoRepone(t *testing.T) {
	db := setupTestDB(t)
	p := seedProducto(t, db, 10)

	pedido := models.Pedido{
		Cliente:        "María Quispe",
		ProductoID:     p.ID,
		Cantidad:       3,
		PrecioUnitario: decimal.RequireFromString("10.50"),
		Estado:         models.PedidoPendiente,
	}
	if err := CrearPedido(db, &pedido); err != nil {
		t.Fatalf("crear pedido: %v", err)
	}
	if _, err := ActualizarEstado(db, pedido.ID, models.PedidoEntregado); err != nil {
		t.Fatalf("marcar entregado: %v", err)
	}

	if err := EliminarPedido(db, pedido.ID); err != nil {
		t.Fatalf("eliminar pedido: %v", err)
	}

	if got := stockDe(t, db, p.ID); got != 7 {
		t.Fatalf("un pedido entregado no repone stock: esperaba 7, obtuve %d", got)
	}
	var n int64
	db.Model(&models.Pedido{}).Count(&n)
	if n != 0 {
		t.Fatalf("el pedido debió borrarse, hay %d", n)
	}
}

func TestEliminarPedidoNoEncontrado(t *testing.T) {
	db := setupTestDB(t)

	if err := EliminarPedido(db, 999); !errors.Is(err, ErrPedidoNoEncontrado) {
		t.Fatalf("esperaba ErrPedidoNoEncontrado, obtuve %v", err)
	}
}
