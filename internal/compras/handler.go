package compras

import (
	"errors"
	"strings"
	"time"

	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DetalleRequest struct {
	ProductoID   uint            `json:"producto_id"`
	LoteID       *uint           `json:"lote_id"`
	Cantidad     int             `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
}

type CompraRequest struct {
	ProveedorID      uint             `json:"proveedor_id"`
	TipoDocumentoID  uint             `json:"tipo_documento_id"`
	NumComprobante   string           `json:"num_comprobante"`
	FechaCompra      string           `json:"fecha_compra"`      // "2026-08-30"
	FechaVencimiento string           `json:"fecha_vencimiento"` // opcional
	Moneda           string           `json:"moneda"`
	MetodoPago       string           `json:"metodo_pago"`
	Estado           string           `json:"estado"`
	Detalles         []DetalleRequest `json:"detalles"`
}

type ActualizarEstadoRequest struct {
	ID     uint   `json:"id"`
	Estado string `json:"estado"`
}

type DetalleResponse struct {
	ID           uint            `json:"id"`
	ProductoID   uint            `json:"producto_id"`
	Producto     string          `json:"producto"`
	LoteID       *uint           `json:"lote_id"`
	Lote         string          `json:"lote,omitempty"`
	Cantidad     int             `json:"cantidad"`
	PrecioCompra decimal.Decimal `json:"precio_compra"`
}

type CompraResponse struct {
	ID               uint              `json:"id"`
	ProveedorID      uint              `json:"proveedor_id"`
	Proveedor        string            `json:"proveedor"`
	TipoDocumentoID  uint              `json:"tipo_documento_id"`
	TipoDocumento    string            `json:"tipo_documento"`
	NumComprobante   string            `json:"num_comprobante"`
	FechaCompra      string            `json:"fecha_compra"`
	FechaVencimiento string            `json:"fecha_vencimiento,omitempty"`
	Moneda           string            `json:"moneda"`
	MetodoPago       string            `json:"metodo_pago"`
	Estado           string            `json:"estado"`
	Total            decimal.Decimal   `json:"total"`
	Detalles         []DetalleResponse `json:"detalles"`
}

func compraToResponse(compra *models.Compra) CompraResponse {
	total := decimal.Zero
	detalles := make([]DetalleResponse, 0, len(compra.Detalles))
	for _, d := range compra.Detalles {
		subtotal := d.PrecioCompra.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		total = total.Add(subtotal)

		det := DetalleResponse{
			ID:           d.ID,
			ProductoID:   d.ProductoID,
			Producto:     d.Producto.Nombre,
			LoteID:       d.LoteID,
			Cantidad:     d.Cantidad,
			PrecioCompra: d.PrecioCompra,
		}
		if d.Lote != nil {
			det.Lote = d.Lote.Numero
		}
		detalles = append(detalles, det)
	}

	res := CompraResponse{
		ID:              compra.ID,
		ProveedorID:     compra.ProveedorID,
		Proveedor:       compra.Proveedor.Nombre,
		TipoDocumentoID: compra.TipoDocumentoID,
		TipoDocumento:   compra.TipoDocumento.Nombre,
		NumComprobante:  compra.NumComprobante,
		FechaCompra:     compra.FechaCompra.Format("2006-01-02"),
		Moneda:          compra.Moneda,
		MetodoPago:      compra.MetodoPago,
		Estado:          compra.Estado,
		Total:           total,
		Detalles:        detalles,
	}
	if compra.FechaVencimiento != nil {
		res.FechaVencimiento = compra.FechaVencimiento.Format("2006-01-02")
	}
	return res
}

// validarCompra normaliza el body y lo convierte en cabecera + detalles.
// Solo valida presencia de campos; la existencia de productos la resuelve
// la transacción.
func validarCompra(body *CompraRequest) (CabeceraCompra, []models.DetalleCompra, error) {
	body.NumComprobante = strings.TrimSpace(body.NumComprobante)

	if body.ProveedorID == 0 || body.TipoDocumentoID == 0 || body.NumComprobante == "" {
		return CabeceraCompra{}, nil, fiber.NewError(fiber.StatusBadRequest,
			"proveedor_id, tipo_documento_id y num_comprobante son obligatorios")
	}
	if len(body.Detalles) == 0 {
		return CabeceraCompra{}, nil, fiber.NewError(fiber.StatusBadRequest,
			"La compra debe incluir al menos un detalle")
	}

	fechaCompra := time.Now()
	if body.FechaCompra != "" {
		var err error
		fechaCompra, err = time.Parse("2006-01-02", body.FechaCompra)
		if err != nil {
			return CabeceraCompra{}, nil, fiber.NewError(fiber.StatusBadRequest,
				"El formato de fecha_compra debe ser 'YYYY-MM-DD'")
		}
	}

	var fechaVenc *time.Time
	if body.FechaVencimiento != "" {
		f, err := time.Parse("2006-01-02", body.FechaVencimiento)
		if err != nil {
			return CabeceraCompra{}, nil, fiber.NewError(fiber.StatusBadRequest,
				"El formato de fecha_vencimiento debe ser 'YYYY-MM-DD'")
		}
		fechaVenc = &f
	}

	moneda := strings.TrimSpace(body.Moneda)
	if moneda == "" {
		moneda = "PEN"
	}
	estado := body.Estado
	if estado == "" {
		estado = models.CompraPendiente
	}

	detalles := make([]models.DetalleCompra, 0, len(body.Detalles))
	for _, d := range body.Detalles {
		if d.ProductoID == 0 || d.Cantidad <= 0 {
			return CabeceraCompra{}, nil, fiber.NewError(fiber.StatusBadRequest,
				"Cada detalle necesita producto_id y cantidad mayor a 0")
		}
		detalles = append(detalles, models.DetalleCompra{
			ProductoID:   d.ProductoID,
			LoteID:       d.LoteID,
			Cantidad:     d.Cantidad,
			PrecioCompra: d.PrecioCompra,
		})
	}

	cab := CabeceraCompra{
		ProveedorID:      body.ProveedorID,
		TipoDocumentoID:  body.TipoDocumentoID,
		NumComprobante:   body.NumComprobante,
		FechaCompra:      fechaCompra,
		FechaVencimiento: fechaVenc,
		Moneda:           moneda,
		MetodoPago:       strings.TrimSpace(body.MetodoPago),
		Estado:           estado,
	}
	return cab, detalles, nil
}

func cargarCompra(db *gorm.DB, id uint, compra *models.Compra) error {
	return db.Preload("Proveedor").Preload("TipoDocumento").
		Preload("Detalles.Producto").Preload("Detalles.Lote").
		First(compra, "id = ?", id).Error
}

// GET /api/compras
func ListarComprasHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var compras []models.Compra
		if err := db.Preload("Proveedor").Preload("TipoDocumento").
			Preload("Detalles.Producto").Preload("Detalles.Lote").
			Order("fecha_compra desc").Find(&compras).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las compras")
		}

		res := make([]CompraResponse, 0, len(compras))
		for i := range compras {
			res = append(res, compraToResponse(&compras[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/compras
func RegistrarCompraHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CompraRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		cab, detalles, err := validarCompra(&body)
		if err != nil {
			return err
		}

		compra := models.Compra{
			ProveedorID:      cab.ProveedorID,
			TipoDocumentoID:  cab.TipoDocumentoID,
			NumComprobante:   cab.NumComprobante,
			FechaCompra:      cab.FechaCompra,
			FechaVencimiento: cab.FechaVencimiento,
			Moneda:           cab.Moneda,
			MetodoPago:       cab.MetodoPago,
			Estado:           cab.Estado,
			Detalles:         detalles,
		}

		if err := RegistrarCompra(db, &compra); err != nil {
			if errors.Is(err, inventario.ErrProductoNoEncontrado) {
				return fiber.NewError(fiber.StatusBadRequest, "Un producto del detalle no existe")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la compra")
		}

		if err := cargarCompra(db, compra.ID, &compra); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo recargar la compra")
		}

		return c.Status(fiber.StatusCreated).JSON(compraToResponse(&compra))
	}
}

// PUT /api/compras/:id — reemplazo completo de cabecera y detalles
func EditarCompraHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de compra inválido")
		}

		var body CompraRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		cab, detalles, err := validarCompra(&body)
		if err != nil {
			return err
		}

		compra, err := EditarCompra(db, uint(id), cab, detalles)
		if err != nil {
			switch {
			case errors.Is(err, ErrCompraNoEncontrada):
				return fiber.NewError(fiber.StatusNotFound, "Compra no encontrada")
			case errors.Is(err, inventario.ErrProductoNoEncontrado):
				return fiber.NewError(fiber.StatusBadRequest, "Un producto del detalle no existe")
			case errors.Is(err, inventario.ErrStockInsuficiente):
				return fiber.NewError(fiber.StatusBadRequest, "El stock actual no permite revertir la compra original")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo editar la compra")
			}
		}

		if err := cargarCompra(db, compra.ID, compra); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo recargar la compra")
		}

		return c.JSON(compraToResponse(compra))
	}
}

// PATCH /api/compras — actualiza solo el estado, id en el cuerpo
func ActualizarEstadoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ActualizarEstadoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.ID == 0 || body.Estado == "" {
			return fiber.NewError(fiber.StatusBadRequest, "id y estado son obligatorios")
		}
		if body.Estado != models.CompraPendiente && body.Estado != models.CompraPagada {
			return fiber.NewError(fiber.StatusBadRequest, "Estado inválido")
		}

		compra, err := ActualizarEstado(db, body.ID, body.Estado)
		if err != nil {
			if errors.Is(err, ErrCompraNoEncontrada) {
				return fiber.NewError(fiber.StatusNotFound, "Compra no encontrada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el estado")
		}

		if err := cargarCompra(db, compra.ID, compra); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo recargar la compra")
		}

		return c.JSON(compraToResponse(compra))
	}
}
