package reportes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"comercial-backend/internal/database"
	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
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

func seedPedido(t *testing.T, db *gorm.DB, productoID uint, cliente string, total string, fecha time.Time) {
	t.Helper()
	p := models.Pedido{
		Cliente:        cliente,
		ProductoID:     productoID,
		Cantidad:       1,
		PrecioUnitario: decimal.RequireFromString(total),
		Total:          decimal.RequireFromString(total),
		Estado:         models.PedidoPendiente,
		CreatedAt:      fecha,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed pedido: %v", err)
	}
}

func TestReporteVentasFiltraPorRango(t *testing.T) {
	db := setupTestDB(t)

	marca := models.Marca{Nombre: "Genérica", Estado: models.EstadoVigente}
	if err := db.Create(&marca).Error; err != nil {
		t.Fatalf("seed marca: %v", err)
	}
	producto := models.Producto{
		Codigo: "P001", Nombre: "Chocolates", MarcaID: marca.ID,
		UnidadesPorCaja: 1, Estado: models.EstadoActivo,
	}
	if err := db.Create(&producto).Error; err != nil {
		t.Fatalf("seed producto: %v", err)
	}

	seedPedido(t, db, producto.ID, "Dentro A", "10.00", time.Date(2026, 8, 5, 10, 0, 0, 0, time.UTC))
	// El último día del rango es inclusivo
	seedPedido(t, db, producto.ID, "Dentro B", "21.50", time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC))
	seedPedido(t, db, producto.ID, "Fuera", "99.00", time.Date(2026, 9, 1, 0, 30, 0, 0, time.UTC))

	app := fiber.New()
	app.Post("/api/reportes/ventas", VentasHandler(db))

	body := `{"fecha_inicio":"2026-08-01","fecha_fin":"2026-08-31"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reportes/ventas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("esperaba 200, obtuve %d", resp.StatusCode)
	}

	var out ReporteVentasResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Ventas) != 2 {
		t.Fatalf("esperaba 2 ventas en el rango, obtuve %d", len(out.Ventas))
	}
	esperado := decimal.RequireFromString("31.50")
	if !out.TotalGeneral.Equal(esperado) {
		t.Fatalf("total general: esperaba %s, obtuve %s", esperado, out.TotalGeneral)
	}
}

func TestReporteVentasSinFechas(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	app.Post("/api/reportes/ventas", VentasHandler(db))

	req := httptest.NewRequest(http.MethodPost, "/api/reportes/ventas", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("esperaba 400, obtuve %d", resp.StatusCode)
	}
}
