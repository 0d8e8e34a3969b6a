package usuarios

import (
	"errors"
	"strings"

	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioResponse struct {
	ID     uint              `json:"id"`
	Nombre string            `json:"nombre"`
	Email  string            `json:"email"`
	Rol    models.RolUsuario `json:"rol"`
	Estado string            `json:"estado"`
}

type ActualizarUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
	Estado   *string `json:"estado"`
}

func toResponse(u *models.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
		Estado: u.Estado,
	}
}

// GET /api/usuarios (solo admin)
func ListarHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var usuarios []models.Usuario
		if err := db.Order("nombre asc").Find(&usuarios).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los usuarios")
		}

		res := make([]UsuarioResponse, 0, len(usuarios))
		for i := range usuarios {
			res = append(res, toResponse(&usuarios[i]))
		}
		return c.JSON(res)
	}
}

// PUT /api/usuarios/:id (solo admin)
func ActualizarHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var u models.Usuario
		if err := db.First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
		}

		var body ActualizarUsuarioRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Nombre != nil {
			nombre := strings.TrimSpace(*body.Nombre)
			if nombre == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El nombre no puede estar vacío")
			}
			u.Nombre = nombre
		}

		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "El email no puede estar vacío")
			}
			if email != u.Email {
				var otro models.Usuario
				err := db.Where("email = ? AND id <> ?", email, u.ID).First(&otro).Error
				if err == nil {
					return fiber.NewError(fiber.StatusBadRequest, "El email ya está registrado")
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el email")
				}
			}
			u.Email = email
		}

		if body.Password != nil && *body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
			}
			u.PasswordHash = string(hash)
		}

		if body.Rol != nil {
			switch models.RolUsuario(*body.Rol) {
			case models.RolAdmin, models.RolVendedor:
				u.Rol = models.RolUsuario(*body.Rol)
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Rol inválido")
			}
		}

		if body.Estado != nil {
			if *body.Estado != models.EstadoActivo && *body.Estado != models.EstadoInactivo {
				return fiber.NewError(fiber.StatusBadRequest, "Estado inválido")
			}
			u.Estado = *body.Estado
		}

		if err := db.Save(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
		}

		return c.JSON(toResponse(&u))
	}
}
