package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// ResumenRepository persistencia de resúmenes diarios.
//
// La cabecera y el detalle se escriben por separado a propósito: si el
// detalle falla después de insertada la cabecera, el caller compensa con
// EliminarCabecera para no dejar un resumen huérfano.
type ResumenRepository interface {
	// InsertarCabecera persiste la cabecera y devuelve su id.
	InsertarCabecera(ctx context.Context, resumen *entity.ResumenDiario) (int64, error)

	// InsertarDetalles persiste las referencias serie-número de las boletas.
	InsertarDetalles(ctx context.Context, resumenID int64, seriesNumeros []string) error

	// EliminarCabecera borra la cabecera (compensación del paso anterior).
	EliminarCabecera(ctx context.Context, resumenID int64) error

	// Listar resúmenes almacenados, orden fecha_resumen descendente.
	Listar(ctx context.Context) ([]*entity.ResumenDiario, error)

	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.ResumenDiario, error)

	// ActualizarEstado cambia estado_sunat del resumen.
	ActualizarEstado(ctx context.Context, id int64, estado string) error

	// DetallesPorResumen series-número incluidas en el resumen.
	DetallesPorResumen(ctx context.Context, resumenID int64) ([]string, error)
}
