package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidRole           = errors.New("rol no reconocido")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrStoreUnavailable      = errors.New("almacén de usuarios no disponible")
)
