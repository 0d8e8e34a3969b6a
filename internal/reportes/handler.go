package reportes

import (
	"fmt"
	"time"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReporteVentasRequest struct {
	FechaInicio string `json:"fecha_inicio"` // "2026-08-01"
	FechaFin    string `json:"fecha_fin"`    // "2026-08-31"
}

type VentaReporteItem struct {
	ID             uint            `json:"id"`
	Cliente        string          `json:"cliente"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	Estado         string          `json:"estado"`
	Fecha          string          `json:"fecha"`
}

type ReporteVentasResponse struct {
	FechaInicio string             `json:"fecha_inicio"`
	FechaFin    string             `json:"fecha_fin"`
	Ventas      []VentaReporteItem `json:"ventas"`
	TotalGeneral decimal.Decimal   `json:"total_general"`
}

func parseRango(inicio, fin string) (time.Time, time.Time, error) {
	desde, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "El formato de fecha_inicio debe ser 'YYYY-MM-DD'")
	}
	hasta, err := time.Parse("2006-01-02", fin)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "El formato de fecha_fin debe ser 'YYYY-MM-DD'")
	}
	// El fin del rango es inclusivo: se compara contra el día siguiente
	return desde, hasta.AddDate(0, 0, 1), nil
}

func ventasEnRango(db *gorm.DB, desde, hastaExclusivo time.Time) ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := db.Preload("Producto").
		Where("created_at >= ? AND created_at < ?", desde, hastaExclusivo).
		Order("created_at asc").
		Find(&pedidos).Error
	return pedidos, err
}

// POST /api/reportes/ventas
func VentasHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReporteVentasRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.FechaInicio == "" || body.FechaFin == "" {
			return fiber.NewError(fiber.StatusBadRequest, "fecha_inicio y fecha_fin son obligatorias")
		}

		desde, hasta, err := parseRango(body.FechaInicio, body.FechaFin)
		if err != nil {
			return err
		}

		pedidos, err := ventasEnRango(db, desde, hasta)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el reporte")
		}

		totalGeneral := decimal.Zero
		ventas := make([]VentaReporteItem, 0, len(pedidos))
		for _, p := range pedidos {
			totalGeneral = totalGeneral.Add(p.Total)
			ventas = append(ventas, VentaReporteItem{
				ID:             p.ID,
				Cliente:        p.Cliente,
				Producto:       p.Producto.Nombre,
				Cantidad:       p.Cantidad,
				PrecioUnitario: p.PrecioUnitario,
				Total:          p.Total,
				Estado:         p.Estado,
				Fecha:          p.CreatedAt.Format("2006-01-02"),
			})
		}

		return c.JSON(ReporteVentasResponse{
			FechaInicio:  body.FechaInicio,
			FechaFin:     body.FechaFin,
			Ventas:       ventas,
			TotalGeneral: totalGeneral,
		})
	}
}

// GET /api/reportes/ventas/excel?fecha_inicio=...&fecha_fin=...
// Mismo rango que el reporte JSON, como archivo .xlsx descargable.
func VentasExcelHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := c.Query("fecha_inicio")
		fin := c.Query("fecha_fin")
		if inicio == "" || fin == "" {
			return fiber.NewError(fiber.StatusBadRequest, "fecha_inicio y fecha_fin son obligatorias")
		}

		desde, hasta, err := parseRango(inicio, fin)
		if err != nil {
			return err
		}

		pedidos, err := ventasEnRango(db, desde, hasta)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el reporte")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		encabezados := []string{"Fecha", "Cliente", "Producto", "Cantidad", "Precio Unitario", "Total", "Estado"}
		for i, h := range encabezados {
			celda, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheet, celda, h); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo armar el archivo")
			}
		}

		totalGeneral := decimal.Zero
		for fila, p := range pedidos {
			totalGeneral = totalGeneral.Add(p.Total)
			valores := []interface{}{
				p.CreatedAt.Format("2006-01-02"),
				p.Cliente,
				p.Producto.Nombre,
				p.Cantidad,
				p.PrecioUnitario.InexactFloat64(),
				p.Total.InexactFloat64(),
				p.Estado,
			}
			for col, v := range valores {
				celda, _ := excelize.CoordinatesToCellName(col+1, fila+2)
				if err := f.SetCellValue(sheet, celda, v); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "No se pudo armar el archivo")
				}
			}
		}

		// Fila de total al final
		filaTotal := len(pedidos) + 2
		celdaEtiqueta, _ := excelize.CoordinatesToCellName(5, filaTotal)
		celdaTotal, _ := excelize.CoordinatesToCellName(6, filaTotal)
		_ = f.SetCellValue(sheet, celdaEtiqueta, "TOTAL GENERAL")
		_ = f.SetCellValue(sheet, celdaTotal, totalGeneral.InexactFloat64())

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo escribir el archivo")
		}

		nombre := fmt.Sprintf("ventas_%s_%s.xlsx", inicio, fin)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nombre))
		return c.SendStream(buf)
	}
}
