package catalogo

import (
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PresentacionResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Abreviatura string `json:"abreviatura"`
	Estado      string `json:"estado"`
}

type CrearPresentacionRequest struct {
	Nombre      string `json:"nombre"`
	Abreviatura string `json:"abreviatura"`
	Estado      string `json:"estado"`
}

type ActualizarPresentacionRequest struct {
	Nombre      *string `json:"nombre"`
	Abreviatura *string `json:"abreviatura"`
	Estado      *string `json:"estado"`
}

// GET /api/presentaciones
func ListarPresentacionesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var presentaciones []models.Presentacion
		if err := db.Order("nombre asc").Find(&presentaciones).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las presentaciones")
		}

		res := make([]PresentacionResponse, 0, len(presentaciones))
		for _, p := range presentaciones {
			res = append(res, PresentacionResponse{
				ID:          p.ID,
				Nombre:      p.Nombre,
				Abreviatura: p.Abreviatura,
				Estado:      p.Estado,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/presentaciones
func CrearPresentacionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearPresentacionRequest
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

		p := models.Presentacion{
			Nombre:      body.Nombre,
			Abreviatura: strings.TrimSpace(body.Abreviatura),
			Estado:      estado,
		}
		if err := db.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la presentación")
		}

		return c.Status(fiber.StatusCreated).JSON(PresentacionResponse{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Abreviatura: p.Abreviatura,
			Estado:      p.Estado,
		})
	}
}

// PUT /api/presentaciones/:id
func ActualizarPresentacionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Presentacion
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Presentación no encontrada")
		}

		var body ActualizarPresentacionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			p.Nombre = nombre
		}
		if body.Abreviatura != nil {
			p.Abreviatura = strings.TrimSpace(*body.Abreviatura)
		}
		if body.Estado != nil {
			p.Estado = *body.Estado
		}

		if err := db.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la presentación")
		}

		return c.JSON(PresentacionResponse{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Abreviatura: p.Abreviatura,
			Estado:      p.Estado,
		})
	}
}

// DELETE /api/presentaciones/:id
func EliminarPresentacionHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Presentacion
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Presentación no encontrada")
		}

		if err := db.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la presentación")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
