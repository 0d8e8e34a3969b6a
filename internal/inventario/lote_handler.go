package inventario

import (
	"strings"
	"time"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LoteResponse struct {
	ID               uint   `json:"id"`
	Numero           string `json:"numero"`
	FechaVencimiento string `json:"fecha_vencimiento"`
	Estado           string `json:"estado"`
}

type CrearLoteRequest struct {
	Numero           string `json:"numero"`
	FechaVencimiento string `json:"fecha_vencimiento"` // "2026-12-31"
	Estado           string `json:"estado"`
}

type ActualizarLoteRequest struct {
	Numero           *string `json:"numero"`
	FechaVencimiento *string `json:"fecha_vencimiento"`
	Estado           *string `json:"estado"`
}

func loteToResponse(l *models.Lote) LoteResponse {
	fecha := ""
	if !l.FechaVencimiento.IsZero() {
		fecha = l.FechaVencimiento.Format("2006-01-02")
	}
	return LoteResponse{
		ID:               l.ID,
		Numero:           l.Numero,
		FechaVencimiento: fecha,
		Estado:           l.Estado,
	}
}

// GET /api/lotes
func ListarLotesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lotes []models.Lote
		if err := db.Order("fecha_vencimiento asc").Find(&lotes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los lotes")
		}

		res := make([]LoteResponse, 0, len(lotes))
		for i := range lotes {
			res = append(res, loteToResponse(&lotes[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/lotes
func CrearLoteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearLoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Numero = strings.TrimSpace(body.Numero)
		if body.Numero == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El número de lote es obligatorio")
		}

		var fecha time.Time
		if body.FechaVencimiento != "" {
			var err error
			fecha, err = time.Parse("2006-01-02", body.FechaVencimiento)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "El formato de fecha debe ser 'YYYY-MM-DD'")
			}
		}

		estado := models.EstadoActivo
		if body.Estado != "" {
			estado = body.Estado
		}

		l := models.Lote{
			Numero:           body.Numero,
			FechaVencimiento: fecha,
			Estado:           estado,
		}
		if err := db.Create(&l).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el lote")
		}

		return c.Status(fiber.StatusCreated).JSON(loteToResponse(&l))
	}
}

// PUT /api/lotes/:id
func ActualizarLoteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var l models.Lote
		if err := db.First(&l, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lote no encontrado")
		}

		var body ActualizarLoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Numero != nil {
			numero := strings.TrimSpace(*body.Numero)
			if numero == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El número de lote no puede estar vacío")
			}
			l.Numero = numero
		}
		if body.FechaVencimiento != nil {
			fecha, err := time.Parse("2006-01-02", *body.FechaVencimiento)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "El formato de fecha debe ser 'YYYY-MM-DD'")
			}
			l.FechaVencimiento = fecha
		}
		if body.Estado != nil {
			l.Estado = *body.Estado
		}

		if err := db.Save(&l).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el lote")
		}

		return c.JSON(loteToResponse(&l))
	}
}

// DELETE /api/lotes/:id
func EliminarLoteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var l models.Lote
		if err := db.First(&l, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lote no encontrado")
		}

		if err := db.Delete(&l).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el lote")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
