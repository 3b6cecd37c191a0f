package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// ReporteIngresos datos agregados de un período del libro de ingresos.
type ReporteIngresos struct {
	Desde  time.Time
	Hasta  time.Time
	Filas  []*entity.Ingreso
	Ventas decimal.Decimal // suma de boletas (montos positivos)
	Notas  decimal.Decimal // suma de notas de crédito (montos negativos)
	Neto   decimal.Decimal
}

// ReportePDFGenerator puerto de salida para la representación impresa del
// reporte. La implementación vive en internal/infrastructure/pdf.
type ReportePDFGenerator interface {
	GenerarReporteIngresos(ctx context.Context, reporte *ReporteIngresos) ([]byte, error)
}

// ReporteUseCase arma el reporte de ingresos de un rango de fechas.
type ReporteUseCase struct {
	ingresos repository.IngresoRepository
	pdf      ReportePDFGenerator
	log      *logger.Logger
}

func NewReporteUseCase(ingresos repository.IngresoRepository, pdf ReportePDFGenerator, log *logger.Logger) *ReporteUseCase {
	return &ReporteUseCase{
		ingresos: ingresos,
		pdf:      pdf,
		log:      log.Componente("reporte"),
	}
}

// Generar agrega los ingresos del rango [desde, hasta].
func (u *ReporteUseCase) Generar(ctx context.Context, desde, hasta time.Time) (*ReporteIngresos, error) {
	if hasta.Before(desde) {
		return nil, domain.NewValidationError("rango", "la fecha final no puede ser anterior a la inicial")
	}

	filas, err := u.ingresos.ListarPorRango(ctx, desde, hasta)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "listar_ingresos", Err: err}
	}

	reporte := &ReporteIngresos{
		Desde:  desde,
		Hasta:  hasta,
		Filas:  filas,
		Ventas: decimal.Zero,
		Notas:  decimal.Zero,
		Neto:   decimal.Zero,
	}
	for _, ing := range filas {
		switch ing.TipoTransaccion {
		case pkgsunat.TransaccionNotaCredito:
			reporte.Notas = reporte.Notas.Add(ing.Monto)
		default:
			reporte.Ventas = reporte.Ventas.Add(ing.Monto)
		}
		reporte.Neto = reporte.Neto.Add(ing.Monto)
	}
	return reporte, nil
}

// GenerarPDF agrega el período y lo renderiza con el generador inyectado.
func (u *ReporteUseCase) GenerarPDF(ctx context.Context, desde, hasta time.Time) ([]byte, error) {
	reporte, err := u.Generar(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return u.pdf.GenerarReporteIngresos(ctx, reporte)
}
