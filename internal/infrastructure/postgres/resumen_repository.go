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

// ResumenRepository persistencia pgx de resúmenes diarios. Cabecera y
// detalle se insertan en llamadas separadas adrede: el caso de uso compensa
// con EliminarCabecera si el detalle falla.
type ResumenRepository struct {
	db Querier
}

var _ repository.ResumenRepository = (*ResumenRepository)(nil)

func NewResumenRepository(db Querier) *ResumenRepository {
	return &ResumenRepository{db: db}
}

func (r *ResumenRepository) InsertarCabecera(ctx context.Context, resumen *entity.ResumenDiario) (int64, error) {
	const q = `
		INSERT INTO resumenes_diarios (fecha_resumen, numero_completo, correlativo, ticket, estado_sunat, summary_api_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q,
		resumen.FechaResumen, resumen.NumeroCompleto, resumen.Correlativo,
		nullIfEmpty(resumen.Ticket), resumen.EstadoSunat, resumen.SummaryAPIID,
	).Scan(&resumen.ID, &resumen.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("resumen %s: %w", resumen.NumeroCompleto, domain.ErrDuplicate)
		}
		return 0, fmt.Errorf("insertar cabecera de resumen: %w", err)
	}
	return resumen.ID, nil
}

func (r *ResumenRepository) InsertarDetalles(ctx context.Context, resumenID int64, seriesNumeros []string) error {
	const q = `INSERT INTO resumen_diario_boletas (resumen_id, serie_numero) VALUES ($1, $2)`

	for _, sn := range seriesNumeros {
		if _, err := r.db.Exec(ctx, q, resumenID, sn); err != nil {
			return fmt.Errorf("insertar detalle %s del resumen %d: %w", sn, resumenID, err)
		}
	}
	return nil
}

// EliminarCabecera borra la cabecera huérfana. Los detalles cuelgan con
// ON DELETE CASCADE, así que basta con la fila madre.
func (r *ResumenRepository) EliminarCabecera(ctx context.Context, resumenID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM resumenes_diarios WHERE id = $1`, resumenID)
	if err != nil {
		return fmt.Errorf("eliminar cabecera de resumen %d: %w", resumenID, err)
	}
	return nil
}

func (r *ResumenRepository) Listar(ctx context.Context) ([]*entity.ResumenDiario, error) {
	const q = `
		SELECT id, fecha_resumen, numero_completo, correlativo, COALESCE(ticket, ''), estado_sunat, summary_api_id, created_at
		FROM resumenes_diarios
		ORDER BY fecha_resumen DESC, id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar resúmenes: %w", err)
	}
	defer rows.Close()

	var resumenes []*entity.ResumenDiario
	for rows.Next() {
		var res entity.ResumenDiario
		if err := rows.Scan(&res.ID, &res.FechaResumen, &res.NumeroCompleto, &res.Correlativo,
			&res.Ticket, &res.EstadoSunat, &res.SummaryAPIID, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("escanear resumen: %w", err)
		}
		resumenes = append(resumenes, &res)
	}
	return resumenes, rows.Err()
}

func (r *ResumenRepository) GetByID(ctx context.Context, id int64) (*entity.ResumenDiario, error) {
	const q = `
		SELECT id, fecha_resumen, numero_completo, correlativo, COALESCE(ticket, ''), estado_sunat, summary_api_id, created_at
		FROM resumenes_diarios
		WHERE id = $1`

	var res entity.ResumenDiario
	err := r.db.QueryRow(ctx, q, id).Scan(&res.ID, &res.FechaResumen, &res.NumeroCompleto,
		&res.Correlativo, &res.Ticket, &res.EstadoSunat, &res.SummaryAPIID, &res.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar resumen %d: %w", id, err)
	}
	return &res, nil
}

func (r *ResumenRepository) ActualizarEstado(ctx context.Context, id int64, estado string) error {
	tag, err := r.db.Exec(ctx, `UPDATE resumenes_diarios SET estado_sunat = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("actualizar estado del resumen %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resumen %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *ResumenRepository) DetallesPorResumen(ctx context.Context, resumenID int64) ([]string, error) {
	const q = `SELECT serie_numero FROM resumen_diario_boletas WHERE resumen_id = $1 ORDER BY id ASC`

	rows, err := r.db.Query(ctx, q, resumenID)
	if err != nil {
		return nil, fmt.Errorf("detalles del resumen %d: %w", resumenID, err)
	}
	defer rows.Close()

	var series []string
	for rows.Next() {
		var sn string
		if err := rows.Scan(&sn); err != nil {
			return nil, fmt.Errorf("escanear detalle de resumen: %w", err)
		}
		series = append(series, sn)
	}
	return series, rows.Err()
}
