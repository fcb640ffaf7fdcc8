package repository

import (
	"context"

	"github.com/tu-usuario/roles-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// El adaptador garantiza la unicidad del username (índice único); este core
// no implementa transacciones multi-registro.
type UserRepository interface {
	// FindByUsername devuelve el usuario o (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Insert persiste un usuario nuevo y devuelve el registro con el ID
	// asignado por el store. Username duplicado → domain.ErrUsernameAlreadyExists.
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por ID.
	List(ctx context.Context) ([]*entity.User, error)
}
