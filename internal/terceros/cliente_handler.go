package terceros

import (
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClienteResponse struct {
	ID              uint   `json:"id"`
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	TipoDocumento   string `json:"tipo_documento"`
	NumDocumento    string `json:"num_documento"`
	Nombres         string `json:"nombres"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
}

type CrearClienteRequest struct {
	TipoDocumentoID uint   `json:"tipo_documento_id"`
	NumDocumento    string `json:"num_documento"`
	Nombres         string `json:"nombres"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
}

type ActualizarClienteRequest struct {
	TipoDocumentoID *uint   `json:"tipo_documento_id"`
	NumDocumento    *string `json:"num_documento"`
	Nombres         *string `json:"nombres"`
	Direccion       *string `json:"direccion"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
}

func clienteToResponse(cl *models.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:              cl.ID,
		TipoDocumentoID: cl.TipoDocumentoID,
		TipoDocumento:   cl.TipoDocumento.Nombre,
		NumDocumento:    cl.NumDocumento,
		Nombres:         cl.Nombres,
		Direccion:       cl.Direccion,
		Telefono:        cl.Telefono,
		Email:           cl.Email,
	}
}

// GET /api/clientes
func ListarClientesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var clientes []models.Cliente
		if err := db.Preload("TipoDocumento").Order("nombres asc").Find(&clientes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los clientes")
		}

		res := make([]ClienteResponse, 0, len(clientes))
		for i := range clientes {
			res = append(res, clienteToResponse(&clientes[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/clientes
func CrearClienteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearClienteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Nombres = strings.TrimSpace(body.Nombres)
		body.NumDocumento = strings.TrimSpace(body.NumDocumento)

		if body.Nombres == "" || body.TipoDocumentoID == 0 || body.NumDocumento == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombres, tipo_documento_id y num_documento son obligatorios")
		}

		var tipo models.TipoDocumento
		if err := db.First(&tipo, "id = ?", body.TipoDocumentoID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tipo de documento no encontrado")
		}

		cl := models.Cliente{
			TipoDocumentoID: body.TipoDocumentoID,
			TipoDocumento:   tipo,
			NumDocumento:    body.NumDocumento,
			Nombres:         body.Nombres,
			Direccion:       strings.TrimSpace(body.Direccion),
			Telefono:        strings.TrimSpace(body.Telefono),
			Email:           strings.TrimSpace(body.Email),
		}

		if err := db.Create(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el cliente")
		}

		return c.Status(fiber.StatusCreated).JSON(clienteToResponse(&cl))
	}
}

// PUT /api/clientes/:id
func ActualizarClienteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cl models.Cliente
		if err := db.Preload("TipoDocumento").First(&cl, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Cliente no encontrado")
		}

		var body ActualizarClienteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.TipoDocumentoID != nil {
			var tipo models.TipoDocumento
			if err := db.First(&tipo, "id = ?", *body.TipoDocumentoID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Tipo de documento no encontrado")
			}
			cl.TipoDocumentoID = *body.TipoDocumentoID
			cl.TipoDocumento = tipo
		}
		if body.NumDocumento != nil {
			num := strings.TrimSpace(*body.NumDocumento)
			if num == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El número de documento no puede estar vacío")
			}
			cl.NumDocumento = num
		}
		if body.Nombres != nil {
			nombres := strings.TrimSpace(*body.Nombres)
			if nombres == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Los nombres no pueden estar vacíos")
			}
			cl.Nombres = nombres
		}
		if body.Direccion != nil {
			cl.Direccion = strings.TrimSpace(*body.Direccion)
		}
		if body.Telefono != nil {
			cl.Telefono = strings.TrimSpace(*body.Telefono)
		}
		if body.Email != nil {
			cl.Email = strings.TrimSpace(*body.Email)
		}

		if err := db.Save(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el cliente")
		}

		return c.JSON(clienteToResponse(&cl))
	}
}

// DELETE /api/clientes/:id
func EliminarClienteHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cl models.Cliente
		if err := db.First(&cl, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Cliente no encontrado")
		}

		if err := db.Delete(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el cliente")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
