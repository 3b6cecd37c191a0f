package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// UsuarioRepository acceso a los operadores de la aplicación.
type UsuarioRepository interface {
	// GetByEmail devuelve (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)

	Create(ctx context.Context, usuario *entity.Usuario) error
}
