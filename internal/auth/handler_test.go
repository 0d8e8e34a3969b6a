package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comercial-backend/internal/config"
	"comercial-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/registro", RegistroHandler(db))
	app.Post("/api/auth/login", LoginHandler(db, cfg))
	return app
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: strings.Repeat("s", 32)}
}

func postJSON(t *testing.T, app *fiber.App, url, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestRegistroEmailDuplicado(t *testing.T) {
	db := setupTestDB(t)
	app := testApp(db, testConfig())

	body := `{"nombre":"Ana","email":"ana@tienda.pe","password":"secreta123"}`
	resp := postJSON(t, app, "/api/auth/registro", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("primer registro: esperaba 201, obtuve %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/auth/registro", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("registro duplicado: esperaba 400, obtuve %d", resp.StatusCode)
	}
}

func TestRegistroNoDevuelveHash(t *testing.T) {
	db := setupTestDB(t)
	app := testApp(db, testConfig())

	resp := postJSON(t, app, "/api/auth/registro", `{"nombre":"Ana","email":"ana@tienda.pe","password":"secreta123"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("esperaba 201, obtuve %d", resp.StatusCode)
	}
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := out["password"]; ok {
		t.Fatal("la respuesta no debe incluir la contraseña")
	}
	if _, ok := out["password_hash"]; ok {
		t.Fatal("la respuesta no debe incluir el hash")
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	app := testApp(db, cfg)

	resp := postJSON(t, app, "/api/auth/registro", `{"nombre":"Ana","email":"ana@tienda.pe","password":"secreta123"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("registro: esperaba 201, obtuve %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/auth/login", `{"email":"ana@tienda.pe","password":"secreta123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: esperaba 200, obtuve %d", resp.StatusCode)
	}
	var out struct {
		Token   string          `json:"token"`
		Usuario UsuarioResponse `json:"usuario"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Token == "" {
		t.Fatal("el login debe devolver un token")
	}
	if out.Usuario.Email != "ana@tienda.pe" {
		t.Fatalf("email: esperaba ana@tienda.pe, obtuve %q", out.Usuario.Email)
	}

	resp = postJSON(t, app, "/api/auth/login", `{"email":"ana@tienda.pe","password":"otra"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("contraseña incorrecta: esperaba 401, obtuve %d", resp.StatusCode)
	}
}
