package auth

import (
	"errors"
	"strings"

	"comercial-backend/internal/config"
	"comercial-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegistroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UsuarioResponse struct {
	ID     uint              `json:"id"`
	Nombre string            `json:"nombre"`
	Email  string            `json:"email"`
	Rol    models.RolUsuario `json:"rol"`
	Estado string            `json:"estado"`
}

// POST /api/auth/registro
// Alta pública de cuenta. La administración de usuarios existentes vive
// en /api/usuarios, protegida por rol.
func RegistroHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegistroRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Nombre == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre, email y password son obligatorios")
		}

		// Pre-chequeo de unicidad para devolver un mensaje claro
		var existente models.Usuario
		err := db.Where("email = ?", body.Email).First(&existente).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "El email ya está registrado")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el email")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
		}

		rol := models.RolVendedor
		if body.Rol == string(models.RolAdmin) {
			rol = models.RolAdmin
		}

		u := models.Usuario{
			Nombre:       body.Nombre,
			Email:        body.Email,
			PasswordHash: string(hash),
			Rol:          rol,
			Estado:       models.EstadoActivo,
		}

		if err := db.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el usuario")
		}

		return c.Status(fiber.StatusCreated).JSON(UsuarioResponse{
			ID:     u.ID,
			Nombre: u.Nombre,
			Email:  u.Email,
			Rol:    u.Rol,
			Estado: u.Estado,
		})
	}
}

// POST /api/auth/login
func LoginHandler(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var u models.Usuario
		if err := db.Where("email = ?", body.Email).First(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email o contraseña incorrectos")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email o contraseña incorrectos")
		}

		if u.Estado != models.EstadoActivo {
			return fiber.NewError(fiber.StatusUnauthorized, "El usuario está inactivo")
		}

		token, err := GenerateToken(cfg.JWTSecret, &u)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"usuario": UsuarioResponse{
				ID:     u.ID,
				Nombre: u.Nombre,
				Email:  u.Email,
				Rol:    u.Rol,
				Estado: u.Estado,
			},
		})
	}
}
