package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// SocioRepository acceso de solo lectura al padrón de clientes.
type SocioRepository interface {
	// GetByDNI devuelve (nil, nil) si el DNI no está en el padrón.
	GetByDNI(ctx context.Context, dni string) (*entity.SocioTitular, error)
}
