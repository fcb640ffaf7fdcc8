package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/roles-api/internal/application/auth"
	"github.com/tu-usuario/roles-api/internal/domain"
	"github.com/tu-usuario/roles-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/roles-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/roles-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers
// ──────────────────────────────────────────────────────────────────────────────

// memoryUserRepo store en memoria para tests de handlers.
type memoryUserRepo struct {
	byUsername map[string]*entity.User
	nextID     int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byUsername: map[string]*entity.User{}, nextID: 1}
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) Insert(_ context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, domain.ErrUsernameAlreadyExists
	}
	created := *user
	created.ID = r.nextID
	r.nextID++
	r.byUsername[user.Username] = &created
	copied := created
	return &copied, nil
}

func (r *memoryUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byUsername))
	for _, u := range r.byUsername {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

// buildAPI construye la app Fiber completa (router + use case) sobre el store dado.
func buildAPI(repo *memoryUserRepo) *fiber.App {
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{AuthUC: uc, JWTSecret: testJWTSecret})
	return app
}

// postJSON lanza un POST con cuerpo JSON y devuelve la respuesta.
func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registerUser(t *testing.T, app *fiber.App, username, password, role string) {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": username, "password": password, "role_name": role,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: anna / 1234 / angel → 201 con {user_id, username, role_name} y sin hash.
func TestRegister_Anna_Retorna201(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "anna", "password": "1234", "role_name": "angel",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "anna", body["username"])
	assert.Equal(t, "angel", body["role_name"])
	assert.EqualValues(t, 1, body["user_id"], "el user_id lo asigna el store")
	assert.NotContains(t, body, "password", "la respuesta nunca incluye el password")
	assert.NotContains(t, body, "password_hash", "la respuesta nunca incluye el hash")
}

func TestRegister_RolInvalido_Retorna422(t *testing.T) {
	repo := newMemoryUserRepo()
	app := buildAPI(repo)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "anna", "password": "1234", "role_name": "superuser",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, repo.byUsername, "no debe quedar ningún registro")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ROLE")
}

func TestRegister_UsernameDuplicado_Retorna409(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())
	registerUser(t, app, "anna", "1234", "angel")

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "anna", "password": "otro", "role_name": "admin",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USERNAME_EXISTS")
}

func TestRegister_CuerpoIncompleto_Retorna400(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"username": "anna"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: sue / 1234 → 200 {message: "sue is back!", token}.
func TestLogin_Sue_RetornaSaludoYToken(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())
	registerUser(t, app, "sue", "1234", "admin")

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "sue", "password": "1234",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "sue is back!", body["message"])
	require.NotEmpty(t, body["token"])

	claims, err := pkgjwt.Parse(testJWTSecret, body["token"])
	require.NoError(t, err, "el token debe verificar con el mismo secret")
	assert.Equal(t, "sue", claims.Username)
	assert.Equal(t, "admin", claims.RoleName)
	assert.Equal(t, "1", claims.Subject)
}

// Password incorrecto y usuario inexistente: status y cuerpo byte a byte idénticos.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())
	registerUser(t, app, "sue", "1234", "admin")

	respWrongPass := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "sue", "password": "incorrecto",
	})
	defer respWrongPass.Body.Close()
	respNoUser := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "nadie", "password": "1234",
	})
	defer respNoUser.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respWrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respNoUser.StatusCode)

	bodyWrongPass, _ := io.ReadAll(respWrongPass.Body)
	bodyNoUser, _ := io.ReadAll(respNoUser.Body)
	assert.Equal(t, bodyWrongPass, bodyNoUser,
		"las dos respuestas deben ser idénticas para no permitir enumerar usernames")

	assert.NotContains(t, string(bodyWrongPass), "token", "sin token en el fallo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Users (protegido)
// ──────────────────────────────────────────────────────────────────────────────

func TestUsersList_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUsersList_ConToken_RetornaUsuarios(t *testing.T) {
	app := buildAPI(newMemoryUserRepo())
	registerUser(t, app, "sue", "1234", "admin")

	// Obtener token vía login
	loginResp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "sue", "password": "1234",
	})
	defer loginResp.Body.Close()
	var login map[string]string
	require.NoError(t, json.NewDecoder(loginResp.Body).Decode(&login))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+login["token"])
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "sue", users[0]["username"])
	assert.NotContains(t, users[0], "password_hash")
}
