package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// IngresoRepository acceso al libro de ingresos.
type IngresoRepository interface {
	// GetByNumeroComprobante busca el ingreso por serie-número (ej. B001-100).
	// Devuelve (nil, nil) si no existe.
	GetByNumeroComprobante(ctx context.Context, numero string) (*entity.Ingreso, error)

	// Create inserta un ingreso nuevo (emisión de boleta).
	Create(ctx context.Context, ingreso *entity.Ingreso) error

	// AplicarNotaCredito transforma el ingreso original de una anulación:
	// monto negado, tipo "Nota de Crédito" y número de comprobante
	// reescrito al de la nota emitida. No crea filas nuevas.
	AplicarNotaCredito(ctx context.Context, ingresoID int64, numeroNota string, monto decimal.Decimal) error

	// ListarPorRango ingresos con fecha en [desde, hasta], orden fecha asc.
	ListarPorRango(ctx context.Context, desde, hasta time.Time) ([]*entity.Ingreso, error)
}
