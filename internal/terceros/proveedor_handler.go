package terceros

import (
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProveedorResponse struct {
	ID              uint   `json:"id"`
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	TipoDocumento   string `json:"tipo_documento"`
	NumDocumento    string `json:"num_documento"`
	Nombre          string `json:"nombre"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Estado          string `json:"estado"`
}

type CrearProveedorRequest struct {
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	NumDocumento    string `json:"num_documento"`
	Nombre          string `json:"nombre"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Estado          string `json:"estado"`
}

type ActualizarProveedorRequest struct {
	TipoDocumentoID *uint   `json:"tipo_documento_id"`
	NumDocumento    *string `json:"num_documento"`
	Nombre          *string `json:"nombre"`
	Direccion       *string `json:"direccion"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	Estado          *string `json:"estado"`
}

func proveedorToResponse(p *models.Proveedor) ProveedorResponse {
	return ProveedorResponse{
		ID:              p.ID,
		TipoDocumentoID: p.TipoDocumentoID,
		TipoDocumento:   p.TipoDocumento.Nombre,
		NumDocumento:    p.NumDocumento,
		Nombre:          p.Nombre,
		Direccion:       p.Direccion,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Estado:          p.Estado,
	}
}

// GET /api/proveedores
func ListarProveedoresHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var proveedores []models.Proveedor
		if err := db.Preload("TipoDocumento").Order("nombre asc").Find(&proveedores).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los proveedores")
		}

		res := make([]ProveedorResponse, 0, len(proveedores))
		for i := range proveedores {
			res = append(res, proveedorToResponse(&proveedores[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/proveedores
func CrearProveedorHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearProveedorRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		body.NumDocumento = strings.TrimSpace(body.NumDocumento)

		if body.Nombre == "" || body.TipoDocumentoID == 0 || body.NumDocumento == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre, tipo_documento_id y num_documento son obligatorios")
		}

		var tipo models.TipoDocumento
		if err := db.First(&tipo, "id = ?", body.TipoDocumentoID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tipo de documento no encontrado")
		}

		estado := models.EstadoActivo
		if body.Estado != "" {
			estado = body.Estado
		}

		p := models.Proveedor{
			TipoDocumentoID: body.TipoDocumentoID,
			TipoDocumento:   tipo,
			NumDocumento:    body.NumDocumento,
			Nombre:          body.Nombre,
			Direccion:       strings.TrimSpace(body.Direccion),
			Telefono:        strings.TrimSpace(body.Telefono),
			Email:           strings.TrimSpace(body.Email),
			Estado:          estado,
		}

		if err := db.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el proveedor")
		}

		return c.Status(fiber.StatusCreated).JSON(proveedorToResponse(&p))
	}
}

// PUT /api/proveedores/:id
func ActualizarProveedorHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Proveedor
		if err := db.Preload("TipoDocumento").First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proveedor no encontrado")
		}

		var body ActualizarProveedorRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.TipoDocumentoID != nil {
			var tipo models.TipoDocumento
			if err := db.First(&tipo, "id = ?", *body.TipoDocumentoID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Tipo de documento no encontrado")
			}
			p.TipoDocumentoID = *body.TipoDocumentoID
			p.TipoDocumento = tipo
		}
		if body.NumDocumento != nil {
			num := strings.TrimSpace(*body.NumDocumento)
			if num == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El número de documento no puede estar vacío")
			}
			p.NumDocumento = num
		}
		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			p.Nombre = nombre
		}
		if body.Direccion != nil {
			p.Direccion = strings.TrimSpace(*body.Direccion)
		}
		if body.Telefono != nil {
			p.Telefono = strings.TrimSpace(*body.Telefono)
		}
		if body.Email != nil {
			p.Email = strings.TrimSpace(*body.Email)
		}
		if body.Estado != nil {
			p.Estado = *body.Estado
		}

		if err := db.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el proveedor")
		}

		return c.JSON(proveedorToResponse(&p))
	}
}

// DELETE /api/proveedores/:id
func EliminarProveedorHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Proveedor
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Proveedor no encontrado")
		}

		if err := db.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el proveedor")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
