package billing

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// ResumenUseCase ciclo de vida del resumen diario de boletas: crear en el
// API, enviar a SUNAT y persistir el acuse localmente.
//
// La creación no persiste nada: devuelve un valor que el operador retiene y
// entrega de vuelta al confirmar el envío. Solo los resúmenes enviados con
// éxito existen en la base local.
type ResumenUseCase struct {
	gateway   infrasunat.Gateway
	resumenes repository.ResumenRepository
	log       *logger.Logger
}

func NewResumenUseCase(gateway infrasunat.Gateway, resumenes repository.ResumenRepository, log *logger.Logger) *ResumenUseCase {
	return &ResumenUseCase{
		gateway:   gateway,
		resumenes: resumenes,
		log:       log.Componente("resumen_diario"),
	}
}

// Crear arma el resumen de la fecha en el API de facturación. Un día sin
// boletas devuelve un resumen con cero detalles, no un error.
func (u *ResumenUseCase) Crear(ctx context.Context, fecha string) (*infrasunat.ResumenCreado, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, domain.NewValidationError("fecha_resumen", "la fecha debe tener formato YYYY-MM-DD")
	}
	return u.gateway.CrearResumenDiario(ctx, fecha)
}

// Enviar somete el resumen a SUNAT y persiste el acuse: cabecera primero,
// detalles después. Si los detalles fallan se elimina la cabecera recién
// insertada; la compensación evita resúmenes huérfanos sin sus boletas.
func (u *ResumenUseCase) Enviar(ctx context.Context, resumenAPIID int64) (*entity.ResumenDiario, error) {
	enviado, err := u.gateway.EnviarResumenSunat(ctx, resumenAPIID)
	if err != nil {
		return nil, err
	}

	// El API devuelve fecha_resumen a veces como fecha plana y a veces como
	// timestamp ISO; aquí solo importa el día. El resumen ya fue sometido a
	// SUNAT: rechazar el acuse por el formato dejaría un envío sin registro.
	fechaStr, _, _ := strings.Cut(enviado.FechaResumen, "T")
	fecha, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		return nil, &domain.GatewayError{Operacion: "enviar_resumen", Mensaje: "fecha_resumen con formato inesperado: " + enviado.FechaResumen}
	}

	estado := enviado.EstadoSunat
	if !pkgsunat.EsEstadoResumenValido(estado) {
		// El envío recién hecho siempre queda a la espera del ticket.
		estado = pkgsunat.EstadoResumenPendiente
	}

	resumen := &entity.ResumenDiario{
		FechaResumen:   fecha,
		NumeroCompleto: enviado.NumeroCompleto,
		Correlativo:    enviado.Correlativo,
		Ticket:         enviado.Ticket,
		EstadoSunat:    estado,
		SummaryAPIID:   enviado.ID,
	}

	resumenID, err := u.resumenes.InsertarCabecera(ctx, resumen)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "insertar_cabecera_resumen", Err: err}
	}
	resumen.ID = resumenID

	if err := u.resumenes.InsertarDetalles(ctx, resumenID, enviado.Detalles); err != nil {
		// Compensación: sin detalles la cabecera es un registro huérfano.
		if delErr := u.resumenes.EliminarCabecera(ctx, resumenID); delErr != nil {
			u.log.Error().Err(delErr).Int64("resumen_id", resumenID).
				Msg("compensación falló, cabecera de resumen huérfana en la base")
		}
		return nil, &domain.StoreError{Operacion: "insertar_detalles_resumen", Err: err}
	}

	u.log.Info().Int64("resumen_id", resumenID).Str("numero", resumen.NumeroCompleto).
		Str("ticket", resumen.Ticket).Msg("resumen enviado y persistido")
	return resumen, nil
}

// Listar resúmenes persistidos, más reciente primero.
func (u *ResumenUseCase) Listar(ctx context.Context) ([]*entity.ResumenDiario, error) {
	resumenes, err := u.resumenes.Listar(ctx)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "listar_resumenes", Err: err}
	}
	return resumenes, nil
}

// Detalles series-número de las boletas de un resumen persistido.
func (u *ResumenUseCase) Detalles(ctx context.Context, resumenID int64) ([]string, error) {
	res, err := u.resumenes.GetByID(ctx, resumenID)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "buscar_resumen", Err: err}
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := u.resumenes.DetallesPorResumen(ctx, resumenID)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "detalles_resumen", Err: err}
	}
	return detalles, nil
}
