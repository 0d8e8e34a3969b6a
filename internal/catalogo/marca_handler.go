package catalogo

import (
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MarcaResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Estado string `json:"estado"`
}

type CrearMarcaRequest struct {
	Nombre string `json:"nombre"`
	Estado string `json:"estado"` // opcional, por defecto VIGENTE
}

type ActualizarMarcaRequest struct {
	Nombre *string `json:"nombre"`
	Estado *string `json:"estado"`
}

// GET /api/marcas
func ListarMarcasHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var marcas []models.Marca
		if err := db.Order("nombre asc").Find(&marcas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las marcas")
		}

		res := make([]MarcaResponse, 0, len(marcas))
		for _, m := range marcas {
			res = append(res, MarcaResponse{ID: m.ID, Nombre: m.Nombre, Estado: m.Estado})
		}
		return c.JSON(res)
	}
}

// POST /api/marcas
func CrearMarcaHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearMarcaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		if body.Nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El nombre es obligatorio")
		}

		estado := models.EstadoVigente
		if body.Estado != "" {
			estado = body.Estado
		}

		m := models.Marca{Nombre: body.Nombre, Estado: estado}
		if err := db.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la marca")
		}

		return c.Status(fiber.StatusCreated).JSON(MarcaResponse{ID: m.ID, Nombre: m.Nombre, Estado: m.Estado})
	}
}

// PUT /api/marcas/:id
func ActualizarMarcaHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var m models.Marca
		if err := db.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Marca no encontrada")
		}

		var body ActualizarMarcaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			m.Nombre = nombre
		}
		if body.Estado != nil {
			m.Estado = *body.Estado
		}

		if err := db.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la marca")
		}

		return c.JSON(MarcaResponse{ID: m.ID, Nombre: m.Nombre, Estado: m.Estado})
	}
}

// DELETE /api/marcas/:id
func EliminarMarcaHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var m models.Marca
		if err := db.First(&m, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Marca no encontrada")
		}

		if err := db.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la marca")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
