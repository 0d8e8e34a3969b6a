package inventario

import (
	"errors"
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductoResponse struct {
	ID              uint            `json:"id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	MarcaID         uint            `json:"marca_id"`
	Marca           string          `json:"marca"`
	CategoriaID     *uint           `json:"categoria_id"`
	Categoria       string          `json:"categoria,omitempty"`
	PresentacionID  *uint           `json:"presentacion_id"`
	Presentacion    string          `json:"presentacion,omitempty"`
	UnidadesPorCaja int             `json:"unidades_por_caja"`
	StockCaja       int             `json:"stock_caja"`
	StockUnidad     int             `json:"stock_unidad"`
	StockMinimo     int             `json:"stock_minimo"`
	PrecioCompra    decimal.Decimal `json:"precio_compra"`
	PrecioVentaCaja decimal.Decimal `json:"precio_venta_caja"`
	PrecioVentaUnid decimal.Decimal `json:"precio_venta_unidad"`
	Imagen          string          `json:"imagen"`
	Estado          string          `json:"estado"`
}

type CrearProductoRequest struct {
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	MarcaID         uint            `json:"marca_id"`
	CategoriaID     *uint           `json:"categoria_id"`
	PresentacionID  *uint           `json:"presentacion_id"`
	UnidadesPorCaja int             `json:"unidades_por_caja"`
	StockCaja       int             `json:"stock_caja"`
	StockUnidad     int             `json:"stock_unidad"`
	StockMinimo     int             `json:"stock_minimo"`
	PrecioCompra    decimal.Decimal `json:"precio_compra"`
	PrecioVentaCaja decimal.Decimal `json:"precio_venta_caja"`
	PrecioVentaUnid decimal.Decimal `json:"precio_venta_unidad"`
	Imagen          string          `json:"imagen"`
	Estado          string          `json:"estado"`
}

type ActualizarProductoRequest struct {
	Codigo          *string          `json:"codigo"`
	Nombre          *string          `json:"nombre"`
	MarcaID         *uint            `json:"marca_id"`
	CategoriaID     *uint            `json:"categoria_id"`
	PresentacionID  *uint            `json:"presentacion_id"`
	UnidadesPorCaja *int             `json:"unidades_por_caja"`
	StockCaja       *int             `json:"stock_caja"`
	StockUnidad     *int             `json:"stock_unidad"`
	StockMinimo     *int             `json:"stock_minimo"`
	PrecioCompra    *decimal.Decimal `json:"precio_compra"`
	PrecioVentaCaja *decimal.Decimal `json:"precio_venta_caja"`
	PrecioVentaUnid *decimal.Decimal `json:"precio_venta_unidad"`
	Imagen          *string          `json:"imagen"`
	Estado          *string          `json:"estado"`
}

func productoToResponse(p *models.Producto) ProductoResponse {
	res := ProductoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		Nombre:          p.Nombre,
		MarcaID:         p.MarcaID,
		Marca:           p.Marca.Nombre,
		CategoriaID:     p.CategoriaID,
		PresentacionID:  p.PresentacionID,
		UnidadesPorCaja: p.UnidadesPorCaja,
		StockCaja:       p.StockCaja,
		StockUnidad:     p.StockUnidad,
		StockMinimo:     p.StockMinimo,
		PrecioCompra:    p.PrecioCompra,
		PrecioVentaCaja: p.PrecioVentaCaja,
		PrecioVentaUnid: p.PrecioVentaUnid,
		Imagen:          p.Imagen,
		Estado:          p.Estado,
	}
	if p.Categoria != nil {
		res.Categoria = p.Categoria.Nombre
	}
	if p.Presentacion != nil {
		res.Presentacion = p.Presentacion.Nombre
	}
	return res
}

// GET /api/productos?estado=ACTIVO
func ListarProductosHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := db.Preload("Marca").Preload("Categoria").Preload("Presentacion")

		if estado := c.Query("estado"); estado != "" {
			dbq = dbq.Where("estado = ?", estado)
		}

		var productos []models.Producto
		if err := dbq.Order("nombre asc").Find(&productos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los productos")
		}

		res := make([]ProductoResponse, 0, len(productos))
		for i := range productos {
			res = append(res, productoToResponse(&productos[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/productos
func CrearProductoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearProductoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Codigo = strings.TrimSpace(body.Codigo)
		body.Nombre = strings.TrimSpace(body.Nombre)

		if body.Codigo == "" || body.Nombre == "" || body.MarcaID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Código, nombre y marca_id son obligatorios")
		}

		var marca models.Marca
		if err := db.First(&marca, "id = ?", body.MarcaID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Marca no encontrada")
		}

		// El código interno es único
		var existente models.Producto
		err := db.Where("codigo = ?", body.Codigo).First(&existente).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "El código ya está en uso")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el código")
		}

		estado := models.EstadoActivo
		if body.Estado != "" {
			estado = body.Estado
		}
		unidades := body.UnidadesPorCaja
		if unidades <= 0 {
			unidades = 1
		}

		p := models.Producto{
			Codigo:          body.Codigo,
			Nombre:          body.Nombre,
			MarcaID:         body.MarcaID,
			Marca:           marca,
			CategoriaID:     body.CategoriaID,
			PresentacionID:  body.PresentacionID,
			UnidadesPorCaja: unidades,
			StockCaja:       body.StockCaja,
			StockUnidad:     body.StockUnidad,
			StockMinimo:     body.StockMinimo,
			PrecioCompra:    body.PrecioCompra,
			PrecioVentaCaja: body.PrecioVentaCaja,
			PrecioVentaUnid: body.PrecioVentaUnid,
			Imagen:          strings.TrimSpace(body.Imagen),
			Estado:          estado,
		}

		if err := db.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el producto")
		}

		if err := db.Preload("Categoria").Preload("Presentacion").First(&p, p.ID).Error; err == nil {
			p.Marca = marca
		}

		return c.Status(fiber.StatusCreated).JSON(productoToResponse(&p))
	}
}

// PUT /api/productos/:id
func ActualizarProductoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Producto
		if err := db.Preload("Marca").Preload("Categoria").Preload("Presentacion").
			First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}

		var body ActualizarProductoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Codigo != nil {
			codigo := strings.TrimSpace(*body.Codigo)
			if codigo == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El código no puede estar vacío")
			}
			if codigo != p.Codigo {
				var otro models.Producto
				err := db.Where("codigo = ? AND id <> ?", codigo, p.ID).First(&otro).Error
				if err == nil {
					return fiber.NewError(fiber.StatusBadRequest, "El código ya está en uso")
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el código")
				}
			}
			p.Codigo = codigo
		}

		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			p.Nombre = nombre
		}

		if body.MarcaID != nil {
			var marca models.Marca
			if err := db.First(&marca, "id = ?", *body.MarcaID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Marca no encontrada")
			}
			p.MarcaID = *body.MarcaID
			p.Marca = marca
		}

		if body.CategoriaID != nil {
			p.CategoriaID = body.CategoriaID
			p.Categoria = nil
		}
		if body.PresentacionID != nil {
			p.PresentacionID = body.PresentacionID
			p.Presentacion = nil
		}

		if body.UnidadesPorCaja != nil {
			if *body.UnidadesPorCaja <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "unidades_por_caja debe ser mayor a 0")
			}
			p.UnidadesPorCaja = *body.UnidadesPorCaja
		}
		if body.StockCaja != nil {
			p.StockCaja = *body.StockCaja
		}
		if body.StockUnidad != nil {
			p.StockUnidad = *body.StockUnidad
		}
		if body.StockMinimo != nil {
			p.StockMinimo = *body.StockMinimo
		}
		if body.PrecioCompra != nil {
			p.PrecioCompra = *body.PrecioCompra
		}
		if body.PrecioVentaCaja != nil {
			p.PrecioVentaCaja = *body.PrecioVentaCaja
		}
		if body.PrecioVentaUnid != nil {
			p.PrecioVentaUnid = *body.PrecioVentaUnid
		}
		if body.Imagen != nil {
			p.Imagen = strings.TrimSpace(*body.Imagen)
		}
		if body.Estado != nil {
			p.Estado = *body.Estado
		}

		if err := db.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el producto")
		}

		if err := db.Preload("Marca").Preload("Categoria").Preload("Presentacion").
			First(&p, p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo recargar el producto")
		}

		return c.JSON(productoToResponse(&p))
	}
}

// DELETE /api/productos/:id
func EliminarProductoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Producto
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}

		if err := db.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el producto")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
