package catalogo

import (
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TipoDocumentoResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Abreviatura string `json:"abreviatura"`
	Estado      string `json:"estado"`
}

type CrearTipoDocumentoRequest struct {
	Nombre      string `json:"nombre"`
	Abreviatura string `json:"abreviatura"`
	Estado      string `json:"estado"`
}

type ActualizarTipoDocumentoRequest struct {
	Nombre      *string `json:"nombre"`
	Abreviatura *string `json:"abreviatura"`
	Estado      *string `json:"estado"`
}

// GET /api/tipos-documento
func ListarTiposDocumentoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tipos []models.TipoDocumento
		if err := db.Order("nombre asc").Find(&tipos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los tipos de documento")
		}

		res := make([]TipoDocumentoResponse, 0, len(tipos))
		for _, t := range tipos {
			res = append(res, TipoDocumentoResponse{
				ID:          t.ID,
				Nombre:      t.Nombre,
				Abreviatura: t.Abreviatura,
				Estado:      t.Estado,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/tipos-documento
func CrearTipoDocumentoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearTipoDocumentoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		if body.Nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El nombre es obligatorio")
		}

		estado := models.EstadoActivo
		if body.Estado != "" {
			estado = body.Estado
		}

		t := models.TipoDocumento{
			Nombre:      body.Nombre,
			Abreviatura: strings.TrimSpace(body.Abreviatura),
			Estado:      estado,
		}
		if err := db.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el tipo de documento")
		}

		return c.Status(fiber.StatusCreated).JSON(TipoDocumentoResponse{
			ID:          t.ID,
			Nombre:      t.Nombre,
			Abreviatura: t.Abreviatura,
			Estado:      t.Estado,
		})
	}
}

// PUT /api/tipos-documento/:id
func ActualizarTipoDocumentoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.TipoDocumento
		if err := db.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tipo de documento no encontrado")
		}

		var body ActualizarTipoDocumentoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			t.Nombre = nombre
		}
		if body.Abreviatura != nil {
			t.Abreviatura = strings.TrimSpace(*body.Abreviatura)
		}
		if body.Estado != nil {
			t.Estado = *body.Estado
		}

		if err := db.Save(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el tipo de documento")
		}

		return c.JSON(TipoDocumentoResponse{
			ID:          t.ID,
			Nombre:      t.Nombre,
			Abreviatura: t.Abreviatura,
			Estado:      t.Estado,
		})
	}
}
