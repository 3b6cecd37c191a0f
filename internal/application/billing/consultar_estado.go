package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// EstadoResumenResultado acuse de una consulta de estado.
type EstadoResumenResultado struct {
	Resumen  *entity.ResumenDiario `json:"resumen"`
	Cambiado bool                  `json:"cambiado"` // true si la consulta movió el estado local
}

// ConsultarEstadoUseCase conciliación del estado SUNAT de los resúmenes.
// La única transición válida es PENDIENTE -> ACEPTADO | RECHAZADO; un estado
// terminal nunca retrocede, ni siquiera si SUNAT reporta algo distinto.
type ConsultarEstadoUseCase struct {
	gateway   infrasunat.Gateway
	resumenes repository.ResumenRepository
	log       *logger.Logger
}

func NewConsultarEstadoUseCase(gateway infrasunat.Gateway, resumenes repository.ResumenRepository, log *logger.Logger) *ConsultarEstadoUseCase {
	return &ConsultarEstadoUseCase{
		gateway:   gateway,
		resumenes: resumenes,
		log:       log.Componente("conciliacion"),
	}
}

// Consultar verifica el estado del resumen contra SUNAT y actualiza el
// registro local si corresponde. Una falla de consulta es un error de
// conciliación explícito, nunca un RECHAZADO implícito.
func (u *ConsultarEstadoUseCase) Consultar(ctx context.Context, resumenID int64) (*EstadoResumenResultado, error) {
	res, err := u.resumenes.GetByID(ctx, resumenID)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "buscar_resumen", Err: err}
	}
	if res == nil {
		return nil, fmt.Errorf("resumen %d: %w", resumenID, domain.ErrNotFound)
	}

	// Terminal: no hay nada que conciliar y nada que pueda sobreescribirlo.
	if pkgsunat.EsEstadoResumenTerminal(res.EstadoSunat) {
		return &EstadoResumenResultado{Resumen: res, Cambiado: false}, nil
	}

	// Sin id de tracking no hay qué consultar al API.
	if res.SummaryAPIID == 0 {
		return nil, &domain.ReconciliationError{Motivo: fmt.Sprintf("el resumen %d no tiene id de tracking del API", res.ID)}
	}

	estado, err := u.gateway.ConsultarEstadoResumen(ctx, res.SummaryAPIID)
	if err != nil {
		return nil, &domain.ReconciliationError{Motivo: "la consulta de estado a SUNAT falló", Err: err}
	}
	if !pkgsunat.EsEstadoResumenValido(estado) {
		return nil, &domain.ReconciliationError{Motivo: "SUNAT reportó un estado no reconocido: " + estado}
	}

	// Un PENDIENTE repetido no es una transición.
	if estado == res.EstadoSunat || estado == pkgsunat.EstadoResumenPendiente {
		return &EstadoResumenResultado{Resumen: res, Cambiado: false}, nil
	}

	if err := u.resumenes.ActualizarEstado(ctx, res.ID, estado); err != nil {
		return nil, &domain.StoreError{Operacion: "actualizar_estado_resumen", Err: err}
	}
	u.log.Info().Int64("resumen_id", res.ID).Str("de", res.EstadoSunat).Str("a", estado).
		Msg("estado de resumen conciliado")

	res.EstadoSunat = estado
	return &EstadoResumenResultado{Resumen: res, Cambiado: true}, nil
}

// ConciliarPendientes recorre los resúmenes no terminales y consulta cada
// uno. Las fallas individuales se acumulan sin frenar el barrido.
func (u *ConsultarEstadoUseCase) ConciliarPendientes(ctx context.Context) (actualizados int, errs []error) {
	resumenes, err := u.resumenes.Listar(ctx)
	if err != nil {
		return 0, []error{&domain.StoreError{Operacion: "listar_resumenes", Err: err}}
	}

	for _, res := range resumenes {
		if pkgsunat.EsEstadoResumenTerminal(res.EstadoSunat) {
			continue
		}
		resultado, err := u.Consultar(ctx, res.ID)
		if err != nil {
			u.log.Warn().Err(err).Int64("resumen_id", res.ID).Msg("conciliación de resumen falló")
			errs = append(errs, fmt.Errorf("resumen %d: %w", res.ID, err))
			continue
		}
		if resultado.Cambiado {
			actualizados++
		}
	}
	return actualizados, errs
}
