package pedidos

import (
	"errors"
	"strings"

	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CrearPedidoRequest struct {
	Cliente        string          `json:"cliente"`
	ProductoID     uint            `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Estado         string          `json:"estado"` // opcional, por defecto Pendiente
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado"`
}

type PedidoResponse struct {
	ID             uint            `json:"id"`
	Cliente        string          `json:"cliente"`
	ProductoID     uint            `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	Estado         string          `json:"estado"`
	FechaCreacion  string          `json:"fecha_creacion"`
}

func pedidoToResponse(p *models.Pedido) PedidoResponse {
	return PedidoResponse{
		ID:             p.ID,
		Cliente:        p.Cliente,
		ProductoID:     p.ProductoID,
		Producto:       p.Producto.Nombre,
		Cantidad:       p.Cantidad,
		PrecioUnitario: p.PrecioUnitario,
		Total:          p.Total,
		Estado:         p.Estado,
		FechaCreacion:  p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GET /api/pedidos
func ListarPedidosHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var pedidos []models.Pedido
		if err := db.Preload("Producto").Order("created_at desc").Find(&pedidos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los pedidos")
		}

		res := make([]PedidoResponse, 0, len(pedidos))
		for i := range pedidos {
			res = append(res, pedidoToResponse(&pedidos[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/pedidos
func CrearPedidoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearPedidoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Cliente = strings.TrimSpace(body.Cliente)
		if body.Cliente == "" || body.ProductoID == 0 || body.Cantidad <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "cliente, producto_id y cantidad mayor a 0 son obligatorios")
		}

		estado := models.PedidoPendiente
		if body.Estado != "" {
			if body.Estado != models.PedidoPendiente && body.Estado != models.PedidoEntregado {
				return fiber.NewError(fiber.StatusBadRequest, "Estado inválido")
			}
			estado = body.Estado
		}

		pedido := models.Pedido{
			Cliente:        body.Cliente,
			ProductoID:     body.ProductoID,
			Cantidad:       body.Cantidad,
			PrecioUnitario: body.PrecioUnitario,
			Estado:         estado,
		}

		if err := CrearPedido(db, &pedido); err != nil {
			switch {
			case errors.Is(err, inventario.ErrProductoNoEncontrado):
				return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
			case errors.Is(err, inventario.ErrStockInsuficiente):
				return fiber.NewError(fiber.StatusBadRequest, "Stock insuficiente para el pedido")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el pedido")
			}
		}

		if err := db.Preload("Producto").First(&pedido, pedido.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo recargar el pedido")
		}

		return c.Status(fiber.StatusCreated).JSON(pedidoToResponse(&pedido))
	}
}

// PATCH /api/pedidos/:id — solo el estado
func ActualizarEstadoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de pedido inválido")
		}

		var body ActualizarEstadoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.Estado != models.PedidoPendiente && body.Estado != models.PedidoEntregado {
			return fiber.NewError(fiber.StatusBadRequest, "Estado inválido")
		}

		pedido, err := ActualizarEstado(db, uint(id), body.Estado)
		if err != nil {
			if errors.Is(err, ErrPedidoNoEncontrado) {
				return fiber.NewError(fiber.StatusNotFound, "Pedido no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el estado")
		}

		if err := db.Preload("Producto").First(pedido, pedido.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo recargar el pedido")
		}

		return c.JSON(pedidoToResponse(pedido))
	}
}

// DELETE /api/pedidos/:id
func EliminarPedidoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Identificador de pedido inválido")
		}

		if err := EliminarPedido(db, uint(id)); err != nil {
			switch {
			case errors.Is(err, ErrPedidoNoEncontrado):
				return fiber.NewError(fiber.StatusNotFound, "Pedido no encontrado")
			case errors.Is(err, inventario.ErrProductoNoEncontrado):
				return fiber.NewError(fiber.StatusNotFound, "Producto del pedido no encontrado")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el pedido")
			}
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
