package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// UsuarioRepository acceso pgx a los operadores.
type UsuarioRepository struct {
	db Querier
}

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

func NewUsuarioRepository(db Querier) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	const q = `
		SELECT id, email, password_hash, COALESCE(nombre, ''), estado, created_at, updated_at
		FROM usuarios
		WHERE email = $1`

	var u entity.Usuario
	err := r.db.QueryRow(ctx, q, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Estado, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	const q = `
		INSERT INTO usuarios (id, email, password_hash, nombre, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, q,
		usuario.ID, usuario.Email, usuario.PasswordHash, nullIfEmpty(usuario.Nombre), usuario.Estado,
	).Scan(&usuario.CreatedAt, &usuario.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("usuario %s: %w", usuario.Email, domain.ErrDuplicate)
		}
		return fmt.Errorf("crear usuario: %w", err)
	}
	return nil
}
