package catalogo

import (
	"errors"
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SerieResponse struct {
	ID              uint   `json:"id"`
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	TipoDocumento   string `json:"tipo_documento"`
	Serie           string `json:"serie"`
	Correlativo     int    `json:"correlativo"`
	Estado          string `json:"estado"`
}

type CrearSerieRequest struct {
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	Serie           string `json:"serie"`
	Correlativo     int    `json:"correlativo"`
	Estado          string `json:"estado"`
}

type ActualizarSerieRequest struct {
	Serie  *string `json:"serie"`
	Estado *string `json:"estado"`
}

func serieToResponse(s *models.SerieComprobante) SerieResponse {
	return SerieResponse{
		ID:              s.ID,
		TipoDocumentoID: s.TipoDocumentoID,
		TipoDocumento:   s.TipoDocumento.Nombre,
		Serie:           s.Serie,
		Correlativo:     s.Correlativo,
		Estado:          s.Estado,
	}
}

// GET /api/series-comprobante
func ListarSeriesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var series []models.SerieComprobante
		if err := db.Preload("TipoDocumento").Order("serie asc").Find(&series).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las series")
		}

		res := make([]SerieResponse, 0, len(series))
		for i := range series {
			res = append(res, serieToResponse(&series[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/series-comprobante
func CrearSerieHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearSerieRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Serie = strings.ToUpper(strings.TrimSpace(body.Serie))
		if body.TipoDocumentoID == 0 || body.Serie == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tipo_documento_id y serie son obligatorios")
		}

		var tipo models.TipoDocumento
		if err := db.First(&tipo, "id = ?", body.TipoDocumentoID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tipo de documento no encontrado")
		}

		// La serie debe ser única dentro de su tipo de comprobante
		var existente models.SerieComprobante
		err := db.Where("tipo_documento_id = ? AND serie = ?", body.TipoDocumentoID, body.Serie).
			First(&existente).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "La serie ya existe para ese tipo de comprobante")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la serie")
		}

		estado := models.EstadoActivo
		if body.Estado != "" {
			estado = body.Estado
		}

		s := models.SerieComprobante{
			TipoDocumentoID: body.TipoDocumentoID,
			TipoDocumento:   tipo,
			Serie:           body.Serie,
			Correlativo:     body.Correlativo,
			Estado:          estado,
		}
		if err := db.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la serie")
		}

		return c.Status(fiber.StatusCreated).JSON(serieToResponse(&s))
	}
}

// PUT /api/series-comprobante/:id
// El correlativo no se edita por aquí; solo avanza con el endpoint de incremento.
func ActualizarSerieHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.SerieComprobante
		if err := db.Preload("TipoDocumento").First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Serie no encontrada")
		}

		var body ActualizarSerieRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Serie != nil {
			serie := strings.ToUpper(strings.TrimSpace(*body.Serie))
			if serie == "" {
				return fiber.NewError(fiber.StatusBadRequest, "La serie no puede estar vacía")
			}
			if serie != s.Serie {
				var otra models.SerieComprobante
				err := db.Where("tipo_documento_id = ? AND serie = ? AND id <> ?", s.TipoDocumentoID, serie, s.ID).
					First(&otra).Error
				if err == nil {
					return fiber.NewError(fiber.StatusBadRequest, "La serie ya existe para ese tipo de comprobante")
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar la serie")
				}
			}
			s.Serie = serie
		}
		if body.Estado != nil {
			s.Estado = *body.Estado
		}

		if err := db.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la serie")
		}

		return c.JSON(serieToResponse(&s))
	}
}

// POST /api/series-comprobante/:id/correlativo
// Avanza el correlativo en una sola sentencia UPDATE y devuelve el valor
// asignado. El lock de fila serializa emisiones concurrentes: nunca se
// entregan dos números iguales.
func SiguienteCorrelativoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.SerieComprobante
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.SerieComprobante{}).
				Where("id = ? AND estado = ?", id, models.EstadoActivo).
				UpdateColumn("correlativo", gorm.Expr("correlativo + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return tx.First(&s, "id = ?", id).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Serie no encontrada o inactiva")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo avanzar el correlativo")
		}

		return c.JSON(fiber.Map{
			"serie":       s.Serie,
			"correlativo": s.Correlativo,
		})
	}
}
