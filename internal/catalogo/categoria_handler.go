package catalogo

import (
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoriaResponse struct {
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
}

type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"`
}

// GET /api/categorias
func ListarCategoriasHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categorias []models.Categoria
		if err := db.Order("nombre asc").Find(&categorias).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las categorías")
		}

		res := make([]CategoriaResponse, 0, len(categorias))
		for _, cat := range categorias {
			res = append(res, CategoriaResponse{
				ID:          cat.ID,
				Nombre:      cat.Nombre,
				Descripcion: cat.Descripcion,
				Estado:      cat.Estado,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/categorias
func CrearCategoriaHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearCategoriaRequest
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

		cat := models.Categoria{
			Nombre:      body.Nombre,
			Descripcion: strings.TrimSpace(body.Descripcion),
			Estado:      estado,
		}
		if err := db.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la categoría")
		}

		return c.Status(fiber.StatusCreated).JSON(CategoriaResponse{
			ID:          cat.ID,
			Nombre:      cat.Nombre,
			Descripcion: cat.Descripcion,
			Estado:      cat.Estado,
		})
	}
}

// PUT /api/categorias/:id
func ActualizarCategoriaHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Categoria
		if err := db.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Categoría no encontrada")
		}

		var body ActualizarCategoriaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			cat.Nombre = nombre
		}
		if body.Descripcion != nil {
			cat.Descripcion = strings.TrimSpace(*body.Descripcion)
		}
		if body.Estado != nil {
			cat.Estado = *body.Estado
		}

		if err := db.Save(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la categoría")
		}

		return c.JSON(CategoriaResponse{
			ID:          cat.ID,
			Nombre:      cat.Nombre,
			Descripcion: cat.Descripcion,
			Estado:      cat.Estado,
		})
	}
}

// DELETE /api/categorias/:id
func EliminarCategoriaHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Categoria
		if err := db.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Categoría no encontrada")
		}

		if err := db.Delete(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la categoría")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
