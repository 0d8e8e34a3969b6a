package main

import (
	"log"
	"strings"

	"comercial-backend/internal/auth"
	"comercial-backend/internal/catalogo"
	"comercial-backend/internal/compras"
	"comercial-backend/internal/config"
	"comercial-backend/internal/database"
	"comercial-backend/internal/inventario"
	"comercial-backend/internal/models"
	"comercial-backend/internal/pedidos"
	"comercial-backend/internal/reportes"
	"comercial-backend/internal/terceros"
	"comercial-backend/internal/usuarios"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Auth pública
	api.Post("/auth/registro", auth.RegistroHandler(db))
	api.Post("/auth/login", auth.LoginHandler(db, cfg))

	// Rutas protegidas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Administración de usuarios (solo admin)
	adminRoutes := protected.Group("/usuarios")
	adminRoutes.Use(auth.RequireRol(models.RolAdmin))
	adminRoutes.Get("/", usuarios.ListarHandler(db))
	adminRoutes.Put("/:id", usuarios.ActualizarHandler(db))

	// Catálogo
	protected.Get("/marcas", catalogo.ListarMarcasHandler(db))
	protected.Post("/marcas", catalogo.CrearMarcaHandler(db))
	protected.Put("/marcas/:id", catalogo.ActualizarMarcaHandler(db))
	protected.Delete("/marcas/:id", catalogo.EliminarMarcaHandler(db))

	protected.Get("/categorias", catalogo.ListarCategoriasHandler(db))
	protected.Post("/categorias", catalogo.CrearCategoriaHandler(db))
	protected.Put("/categorias/:id", catalogo.ActualizarCategoriaHandler(db))
	protected.Delete("/categorias/:id", catalogo.EliminarCategoriaHandler(db))

	protected.Get("/presentaciones", catalogo.ListarPresentacionesHandler(db))
	protected.Post("/presentaciones", catalogo.CrearPresentacionHandler(db))
	protected.Put("/presentaciones/:id", catalogo.ActualizarPresentacionHandler(db))
	protected.Delete("/presentaciones/:id", catalogo.EliminarPresentacionHandler(db))

	protected.Get("/tipos-documento", catalogo.ListarTiposDocumentoHandler(db))
	protected.Post("/tipos-documento", catalogo.CrearTipoDocumentoHandler(db))
	protected.Put("/tipos-documento/:id", catalogo.ActualizarTipoDocumentoHandler(db))

	protected.Get("/series-comprobante", catalogo.ListarSeriesHandler(db))
	protected.Post("/series-comprobante", catalogo.CrearSerieHandler(db))
	protected.Put("/series-comprobante/:id", catalogo.ActualizarSerieHandler(db))
	protected.Post("/series-comprobante/:id/correlativo", catalogo.SiguienteCorrelativoHandler(db))

	// Inventario
	protected.Get("/productos", inventario.ListarProductosHandler(db))
	protected.Post("/productos", inventario.CrearProductoHandler(db))
	protected.Put("/productos/:id", inventario.ActualizarProductoHandler(db))
	protected.Delete("/productos/:id", inventario.EliminarProductoHandler(db))

	protected.Get("/lotes", inventario.ListarLotesHandler(db))
	protected.Post("/lotes", inventario.CrearLoteHandler(db))
	protected.Put("/lotes/:id", inventario.ActualizarLoteHandler(db))
	protected.Delete("/lotes/:id", inventario.EliminarLoteHandler(db))

	// Terceros
	protected.Get("/proveedores", terceros.ListarProveedoresHandler(db))
	protected.Post("/proveedores", terceros.CrearProveedorHandler(db))
	protected.Put("/proveedores/:id", terceros.ActualizarProveedorHandler(db))
	protected.Delete("/proveedores/:id", terceros.EliminarProveedorHandler(db))

	protected.Get("/clientes", terceros.ListarClientesHandler(db))
	protected.Post("/clientes", terceros.CrearClienteHandler(db))
	protected.Put("/clientes/:id", terceros.ActualizarClienteHandler(db))
	protected.Delete("/clientes/:id", terceros.EliminarClienteHandler(db))

	// Compras
	protected.Get("/compras", compras.ListarComprasHandler(db))
	protected.Post("/compras", compras.RegistrarCompraHandler(db))
	protected.Put("/compras/:id", compras.EditarCompraHandler(db))
	protected.Patch("/compras", compras.ActualizarEstadoHandler(db))

	// Pedidos
	protected.Get("/pedidos", pedidos.ListarPedidosHandler(db))
	protected.Post("/pedidos", pedidos.CrearPedidoHandler(db))
	protected.Patch("/pedidos/:id", pedidos.ActualizarEstadoHandler(db))
	protected.Delete("/pedidos/:id", pedidos.EliminarPedidoHandler(db))

	// Reportes
	protected.Post("/reportes/ventas", reportes.VentasHandler(db))
	protected.Get("/reportes/ventas/excel", reportes.VentasExcelHandler(db))

	log.Println("Servidor escuchando en el puerto:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
