package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/roles-api/internal/domain"
	"github.com/tu-usuario/roles-api/internal/domain/entity"
	"github.com/tu-usuario/roles-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Insert persiste un nuevo usuario y devuelve el registro con el user_id
// asignado por la secuencia. La unicidad del username la garantiza el índice
// único: violación 23505 → domain.ErrUsernameAlreadyExists.
func (r *UserRepo) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (username, password_hash, role_name)
		VALUES ($1, $2, $3)
		RETURNING user_id`
	created := *user
	err := r.pool.QueryRow(ctx, query, user.Username, user.PasswordHash, user.RoleName).
		Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// FindByUsername obtiene un usuario por username (match exacto, sensible a
// mayúsculas). Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT user_id, username, password_hash, role_name
		FROM users WHERE username = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios ordenados por user_id.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT user_id, username, password_hash, role_name
		FROM users ORDER BY user_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleName); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
