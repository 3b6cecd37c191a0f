package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// IngresoRepository implementación pgx del libro de ingresos.
type IngresoRepository struct {
	db Querier
}

var _ repository.IngresoRepository = (*IngresoRepository)(nil)

func NewIngresoRepository(db Querier) *IngresoRepository {
	return &IngresoRepository{db: db}
}

func (r *IngresoRepository) GetByNumeroComprobante(ctx context.Context, numero string) (*entity.Ingreso, error) {
	const q = `
		SELECT id, fecha, monto, tipo_transaccion, numero_comprobante, COALESCE(dni, ''), created_at
		FROM ingresos
		WHERE numero_comprobante = $1`

	var ing entity.Ingreso
	err := r.db.QueryRow(ctx, q, numero).Scan(
		&ing.ID, &ing.Fecha, &ing.Monto, &ing.TipoTransaccion, &ing.NumeroComprobante, &ing.DNI, &ing.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar ingreso %s: %w", numero, err)
	}
	return &ing, nil
}

func (r *IngresoRepository) Create(ctx context.Context, ingreso *entity.Ingreso) error {
	const q = `
		INSERT INTO ingresos (fecha, monto, tipo_transaccion, numero_comprobante, dni)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q,
		ingreso.Fecha, ingreso.Monto, ingreso.TipoTransaccion,
		ingreso.NumeroComprobante, nullIfEmpty(ingreso.DNI),
	).Scan(&ingreso.ID, &ingreso.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ingreso %s: %w", ingreso.NumeroComprobante, domain.ErrDuplicate)
		}
		return fmt.Errorf("crear ingreso: %w", err)
	}
	return nil
}

// AplicarNotaCredito reescribe la fila original del ingreso: el libro mantiene
// una sola fila por transacción física, la anulación no inserta una nueva.
func (r *IngresoRepository) AplicarNotaCredito(ctx context.Context, ingresoID int64, numeroNota string, monto decimal.Decimal) error {
	const q = `
		UPDATE ingresos
		SET tipo_transaccion = $2, numero_comprobante = $3, monto = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, ingresoID, sunat.TransaccionNotaCredito, numeroNota, entity.MontoNotaCredito(monto))
	if err != nil {
		return fmt.Errorf("aplicar nota de crédito al ingreso %d: %w", ingresoID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ingreso %d: %w", ingresoID, domain.ErrNotFound)
	}
	return nil
}

func (r *IngresoRepository) ListarPorRango(ctx context.Context, desde, hasta time.Time) ([]*entity.Ingreso, error) {
	const q = `
		SELECT id, fecha, monto, tipo_transaccion, numero_comprobante, COALESCE(dni, ''), created_at
		FROM ingresos
		WHERE fecha BETWEEN $1 AND $2
		ORDER BY fecha ASC, id ASC`

	rows, err := r.db.Query(ctx, q, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("listar ingresos: %w", err)
	}
	defer rows.Close()

	var ingresos []*entity.Ingreso
	for rows.Next() {
		var ing entity.Ingreso
		if err := rows.Scan(&ing.ID, &ing.Fecha, &ing.Monto, &ing.TipoTransaccion, &ing.NumeroComprobante, &ing.DNI, &ing.CreatedAt); err != nil {
			return nil, fmt.Errorf("escanear ingreso: %w", err)
		}
		ingresos = append(ingresos, &ing)
	}
	return ingresos, rows.Err()
}
