package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/roles-api/internal/application/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users (protegido: requiere Bearer Token válido)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret))
	usersHandler := NewUsersHandler(deps.AuthUC)
	users.Get("/", usersHandler.List)
}
