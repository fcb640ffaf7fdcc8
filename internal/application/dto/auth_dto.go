package dto

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required"`
	RoleName string `json:"role_name" validate:"required"`
}

// UserResponse salida pública de un usuario (nunca incluye el hash).
type UserResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	RoleName string `json:"role_name"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con saludo y token JWT firmado.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
