package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	domainsunat "github.com/jhoicas/Facturacion-api/internal/domain/sunat"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// EmitirNotaCreditoInput datos que entrega el operador.
type EmitirNotaCreditoInput struct {
	TipoDocAfectado   string // "boleta" | "factura"
	NumeroDocAfectado string // serie-número del comprobante original (B001-100)
	CodMotivo         string // Catálogo 09
	DesMotivo         string // opcional; defecto el nombre del catálogo
	FechaEmision      time.Time
	Detalles          []entity.DetalleComprobante // requerido para motivos no-anulación
}

// NotaCreditoUseCase orquesta la saga de emisión de una nota de crédito:
//
//	Emitir en el API → Enviar a SUNAT → Conciliar libro de ingresos
//
// Solo el primer paso es abortivo. Los pasos 2 y 3 fallan de forma aislada:
// un comprobante ya emitido no se revierte, el resultado se degrada y el
// operador reintenta después el paso pendiente.
type NotaCreditoUseCase struct {
	gateway  infrasunat.Gateway
	ingresos repository.IngresoRepository
	socios   repository.SocioRepository
	cfg      config.FacturacionConfig
	log      *logger.Logger
}

func NewNotaCreditoUseCase(
	gateway infrasunat.Gateway,
	ingresos repository.IngresoRepository,
	socios repository.SocioRepository,
	cfg config.FacturacionConfig,
	log *logger.Logger,
) *NotaCreditoUseCase {
	return &NotaCreditoUseCase{
		gateway:  gateway,
		ingresos: ingresos,
		socios:   socios,
		cfg:      cfg,
		log:      log.Componente("nota_credito"),
	}
}

// Emitir ejecuta la saga completa. Devuelve error solo si la nota no llegó a
// emitirse; cualquier falla posterior viaja dentro del resultado.
func (u *NotaCreditoUseCase) Emitir(ctx context.Context, input EmitirNotaCreditoInput) (*ResultadoNotaCredito, error) {
	motivo, ok := pkgsunat.BuscarMotivo(input.CodMotivo)
	if !ok {
		return nil, domain.NewValidationError("cod_motivo", "motivo de nota de crédito desconocido: "+input.CodMotivo)
	}
	desMotivo := input.DesMotivo
	if desMotivo == "" {
		desMotivo = motivo.Nombre
	}

	// ═══════════════════════════════════════════════════════════════════════
	// 0. Documento afectado y resolución de líneas (todo local, sin efectos)
	// ═══════════════════════════════════════════════════════════════════════
	doc, err := u.buscarDocumentoAfectado(ctx, input.TipoDocAfectado, input.NumeroDocAfectado)
	if err != nil {
		return nil, err
	}

	detalles, err := domainsunat.ResolverDetalles(input.CodMotivo, doc, input.Detalles)
	if err != nil {
		return nil, err
	}

	payload := &infrasunat.NotaCreditoPayload{
		Serie:          u.cfg.SerieNotaCreditoBoleta,
		FechaEmision:   fechaOHoy(input.FechaEmision),
		Moneda:         u.cfg.Moneda,
		TipDocAfectado: pkgsunat.TipoDocBoleta,
		NumDocAfectado: doc.SerieNumero,
		CodMotivo:      motivo.Codigo,
		DesMotivo:      desMotivo,
		Cliente: infrasunat.NormalizarCliente(infrasunat.ClientePayload{
			TipoDocumento:   doc.Cliente.TipoDocumento,
			NumeroDocumento: doc.Cliente.NumeroDocumento,
			RazonSocial:     doc.Cliente.RazonSocial,
			Direccion:       doc.Cliente.Direccion,
			Distrito:        doc.Cliente.Distrito,
			Provincia:       doc.Cliente.Provincia,
			Departamento:    doc.Cliente.Departamento,
			Telefono:        doc.Cliente.Telefono,
		}),
		Detalles: detallesPayload(detalles),
	}

	resultado := &ResultadoNotaCredito{
		Emision:              PasoResultado{Estado: PasoNoIntentado},
		EnvioSunat:           PasoResultado{Estado: PasoNoIntentado},
		ActualizacionIngreso: PasoResultado{Estado: PasoNoIntentado},
	}

	// ═══════════════════════════════════════════════════════════════════════
	// 1. Emitir la nota en el API. Falla aquí = no existe comprobante: se
	//    aborta sin tocar nada más.
	// ═══════════════════════════════════════════════════════════════════════
	emitida, err := u.gateway.EmitirNotaCredito(ctx, payload)
	if err != nil {
		u.log.Error().Err(err).Str("doc_afectado", doc.SerieNumero).Msg("emisión de nota de crédito falló")
		return nil, err
	}
	resultado.Emision = pasoOK()
	resultado.NotaID = emitida.ID
	resultado.NumeroCompleto = emitida.NumeroCompleto

	// ═══════════════════════════════════════════════════════════════════════
	// 2. Enviar a SUNAT. La nota ya existe: una falla degrada, no revierte.
	// ═══════════════════════════════════════════════════════════════════════
	if err := u.gateway.EnviarNotaCreditoSunat(ctx, emitida.ID); err != nil {
		u.log.Warn().Err(err).Int64("nota_id", emitida.ID).Msg("nota emitida pero sin enviar a sunat")
		resultado.EnvioSunat = pasoFallo(err)
	} else {
		resultado.EnvioSunat = pasoOK()
	}

	// ═══════════════════════════════════════════════════════════════════════
	// 3. Conciliar el libro de ingresos. Se intenta aunque el paso 2 haya
	//    fallado: son fallas independientes.
	// ═══════════════════════════════════════════════════════════════════════
	if err := u.ingresos.AplicarNotaCredito(ctx, doc.IngresoID, emitida.NumeroCompleto, doc.MtoImpVenta); err != nil {
		u.log.Warn().Err(err).Int64("ingreso_id", doc.IngresoID).Msg("nota emitida pero libro sin conciliar")
		resultado.ActualizacionIngreso = pasoFallo(err)
	} else {
		resultado.ActualizacionIngreso = pasoOK()
	}

	u.log.Info().Str("numero", emitida.NumeroCompleto).Str("estado", resultado.EstadoFinal()).
		Msg("saga de nota de crédito terminada")
	return resultado, nil
}

// DocumentoAfectado expone la búsqueda del comprobante original para que el
// operador lo verifique antes de emitir la nota.
func (u *NotaCreditoUseCase) DocumentoAfectado(ctx context.Context, tipo, numero string) (*entity.DocumentoAfectado, error) {
	return u.buscarDocumentoAfectado(ctx, tipo, numero)
}

// buscarDocumentoAfectado reconstruye el comprobante original desde el libro
// de ingresos. El libro no guarda líneas: se arma un detalle genérico único
// por el total, que es suficiente tanto para el colapso de anulación como
// para referenciar el documento.
func (u *NotaCreditoUseCase) buscarDocumentoAfectado(ctx context.Context, tipo, numero string) (*entity.DocumentoAfectado, error) {
	switch tipo {
	case "boleta":
		// continúa abajo
	case "factura":
		// Las facturas se emiten fuera de este sistema y no están en el
		// libro: rechazo explícito en lugar de un "no encontrado" engañoso.
		return nil, fmt.Errorf("notas de crédito sobre factura: %w", domain.ErrTipoDocumentoNoSoportado)
	default:
		return nil, domain.NewValidationError("tipo_doc_afectado", "tipo de documento afectado inválido: "+tipo)
	}

	ingreso, err := u.ingresos.GetByNumeroComprobante(ctx, numero)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "buscar_documento_afectado", Err: err}
	}
	if ingreso == nil {
		return nil, fmt.Errorf("comprobante %s: %w", numero, domain.ErrNotFound)
	}

	var cliente entity.Cliente
	socio, err := u.socios.GetByDNI(ctx, ingreso.DNI)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "buscar_socio", Err: err}
	}
	if socio != nil {
		cliente = entity.Cliente{
			TipoDocumento:   pkgsunat.DocIdentidadDNI,
			NumeroDocumento: socio.DNI,
			RazonSocial:     socio.RazonSocial(),
			Direccion:       socio.Direccion(),
			Distrito:        socio.Distrito(),
			Provincia:       socio.Provincia(),
			Departamento:    socio.Departamento(),
			Telefono:        socio.Celular,
		}
	} else {
		cliente = entity.Cliente{
			TipoDocumento:   pkgsunat.DocIdentidadDNI,
			NumeroDocumento: ingreso.DNI,
			RazonSocial:     "CLIENTE " + ingreso.DNI,
		}
	}

	return &entity.DocumentoAfectado{
		IngresoID:    ingreso.ID,
		SerieNumero:  ingreso.NumeroComprobante,
		FechaEmision: ingreso.Fecha,
		Moneda:       u.cfg.Moneda,
		MtoImpVenta:  ingreso.Monto,
		Cliente:      cliente,
		Detalles: []entity.DetalleComprobante{{
			Descripcion:      "Servicio según comprobante " + ingreso.NumeroComprobante,
			Unidad:           pkgsunat.UnidadUnidad,
			Cantidad:         decimal.NewFromInt(1),
			MtoValorUnitario: ingreso.Monto,
			PorcentajeIGV:    decimal.NewFromInt(pkgsunat.IGVPorcentajeDefecto),
			TipAfeIGV:        pkgsunat.AfectacionGravadoOneroso,
		}},
	}, nil
}
