package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

func cfgFacturacionDePrueba() config.FacturacionConfig {
	return config.FacturacionConfig{
		SerieBoleta:             "B001",
		SerieNotaCreditoBoleta:  "BC01",
		SerieNotaCreditoFactura: "FC01",
		Moneda:                  "PEN",
	}
}

func ingresoBoletaDePrueba() *entity.Ingreso {
	return &entity.Ingreso{
		ID:                42,
		Fecha:             time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
		Monto:             decimal.RequireFromString("118.00"),
		TipoTransaccion:   pkgsunat.TransaccionBoleta,
		NumeroComprobante: "B001-100",
		DNI:               "45781236",
	}
}

func notaCreditoUseCaseDePrueba(gw *gatewayMock, ingresos *ingresoRepoMock) *billing.NotaCreditoUseCase {
	return billing.NewNotaCreditoUseCase(
		gw, ingresos, &socioRepoMock{porDNI: map[string]*entity.SocioTitular{}},
		cfgFacturacionDePrueba(), loggerDePrueba(),
	)
}

func TestEmitir_FallaLaEmision_AbortaSinTocarNadaMas(t *testing.T) {
	gw := &gatewayMock{
		emitirNotaFn: func(p *infrasunat.NotaCreditoPayload) (*infrasunat.ComprobanteEmitido, error) {
			return nil, &domain.GatewayError{Operacion: "/credit-notes", Mensaje: "serie sin autorización"}
		},
	}
	ingresos := nuevoIngresoRepoMock(ingresoBoletaDePrueba())
	uc := notaCreditoUseCaseDePrueba(gw, ingresos)

	_, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-100",
		CodMotivo:         "01",
	})

	require.Error(t, err)
	assert.True(t, domain.IsGateway(err))
	assert.Equal(t, 0, gw.llamadasEnviarNota, "sin emisión no hay nada que enviar a SUNAT")
	assert.Empty(t, ingresos.aplicadas, "sin emisión el libro de ingresos queda intacto")
}

func TestEmitir_EnvioSunatFalla_ElLibroSeConciliaIgual(t *testing.T) {
	gw := &gatewayMock{
		emitirNotaFn: func(p *infrasunat.NotaCreditoPayload) (*infrasunat.ComprobanteEmitido, error) {
			return &infrasunat.ComprobanteEmitido{ID: 77, NumeroCompleto: "BC01-5"}, nil
		},
		enviarNotaFn: func(notaID int64) error {
			return &domain.GatewayError{Operacion: "/credit-notes/77/send-sunat", Mensaje: "timeout"}
		},
	}
	ingresos := nuevoIngresoRepoMock(ingresoBoletaDePrueba())
	uc := notaCreditoUseCaseDePrueba(gw, ingresos)

	resultado, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-100",
		CodMotivo:         "01",
	})

	require.NoError(t, err, "la nota ya existe: la falla del envío no es un error de la operación")
	assert.Equal(t, int64(77), resultado.NotaID)
	assert.Equal(t, "BC01-5", resultado.NumeroCompleto)
	assert.Equal(t, billing.PasoExitoso, resultado.Emision.Estado)
	assert.Equal(t, billing.PasoFallido, resultado.EnvioSunat.Estado)
	assert.Equal(t, billing.PasoExitoso, resultado.ActualizacionIngreso.Estado,
		"el paso 3 se intenta aunque el paso 2 haya fallado")
	assert.Equal(t, billing.EmisionSinEnviar, resultado.EstadoFinal())
	require.Len(t, ingresos.aplicadas, 1)
}

func TestEmitir_ConciliacionFalla_QuedaSinConciliar(t *testing.T) {
	gw := &gatewayMock{
		emitirNotaFn: func(p *infrasunat.NotaCreditoPayload) (*infrasunat.ComprobanteEmitido, error) {
			return &infrasunat.ComprobanteEmitido{ID: 78, NumeroCompleto: "BC01-6"}, nil
		},
		enviarNotaFn: func(notaID int64) error { return nil },
	}
	ingresos := nuevoIngresoRepoMock(ingresoBoletaDePrueba())
	ingresos.errAplicar = errors.New("conexión perdida")
	uc := notaCreditoUseCaseDePrueba(gw, ingresos)

	resultado, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-100",
		CodMotivo:         "01",
	})

	require.NoError(t, err)
	assert.Equal(t, billing.PasoExitoso, resultado.EnvioSunat.Estado)
	assert.Equal(t, billing.PasoFallido, resultado.ActualizacionIngreso.Estado)
	assert.Equal(t, billing.EmisionSinConciliar, resultado.EstadoFinal())
}

// Escenario completo de anulación: boleta B001-100 por S/ 118.00, motivo 01.
// El payload debe llevar la línea sintética con valor sin IGV 100.00 y el
// libro recibe el monto total con el número de la nota.
func TestEmitir_AnulacionCompleta_PayloadYLibro(t *testing.T) {
	var payload *infrasunat.NotaCreditoPayload
	gw := &gatewayMock{
		emitirNotaFn: func(p *infrasunat.NotaCreditoPayload) (*infrasunat.ComprobanteEmitido, error) {
			payload = p
			return &infrasunat.ComprobanteEmitido{ID: 77, NumeroCompleto: "BC01-5"}, nil
		},
		enviarNotaFn: func(notaID int64) error { return nil },
	}
	ingresos := nuevoIngresoRepoMock(ingresoBoletaDePrueba())
	uc := notaCreditoUseCaseDePrueba(gw, ingresos)

	resultado, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-100",
		CodMotivo:         "01",
	})
	require.NoError(t, err)
	assert.Equal(t, billing.EmisionCompleta, resultado.EstadoFinal())

	require.NotNil(t, payload)
	assert.Equal(t, "BC01", payload.Serie)
	assert.Equal(t, pkgsunat.TipoDocBoleta, payload.TipDocAfectado)
	assert.Equal(t, "B001-100", payload.NumDocAfectado)
	assert.Equal(t, "01", payload.CodMotivo)
	assert.Equal(t, "Anulación de la operación", payload.DesMotivo)
	require.Len(t, payload.Detalles, 1, "la anulación total colapsa a una única línea")
	linea := payload.Detalles[0]
	assert.Equal(t, pkgsunat.CodigoItemAnulado, linea.Codigo)
	assert.Equal(t, pkgsunat.DescripcionAnulacion, linea.Descripcion)
	assert.Equal(t, pkgsunat.UnidadServicio, linea.Unidad)
	assert.Equal(t, "100.00", linea.MtoValorUnitario.StringFixed(2))
	assert.Equal(t, pkgsunat.AfectacionGravadoOneroso, linea.TipAfeIGV)

	require.Len(t, ingresos.aplicadas, 1)
	aplicada := ingresos.aplicadas[0]
	assert.Equal(t, int64(42), aplicada.IngresoID)
	assert.Equal(t, "BC01-5", aplicada.NumeroNota, "el libro queda referenciando la nota, no la boleta")
	assert.Equal(t, "118.00", aplicada.Monto.StringFixed(2), "al libro va el total CON IGV")
}

func TestEmitir_MotivoItemizado_RequiereDetalles(t *testing.T) {
	gw := &gatewayMock{}
	uc := notaCreditoUseCaseDePrueba(gw, nuevoIngresoRepoMock(ingresoBoletaDePrueba()))

	_, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-100",
		CodMotivo:         "07",
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 0, gw.llamadasEmitirNota, "la validación ocurre antes de cualquier llamada remota")
}

func TestEmitir_SobreFactura_RechazoExplicito(t *testing.T) {
	gw := &gatewayMock{}
	uc := notaCreditoUseCaseDePrueba(gw, nuevoIngresoRepoMock())

	_, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "factura",
		NumeroDocAfectado: "F001-12",
		CodMotivo:         "01",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTipoDocumentoNoSoportado,
		"una factura no debe confundirse con un comprobante inexistente")
	assert.Equal(t, 0, gw.llamadasEmitirNota)
}

func TestEmitir_ComprobanteInexistente_EsNotFound(t *testing.T) {
	uc := notaCreditoUseCaseDePrueba(&gatewayMock{}, nuevoIngresoRepoMock())

	_, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-999",
		CodMotivo:         "01",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentoAfectado_SocioFueraDelPadron_ClienteMinimo(t *testing.T) {
	uc := notaCreditoUseCaseDePrueba(&gatewayMock{}, nuevoIngresoRepoMock(ingresoBoletaDePrueba()))

	doc, err := uc.DocumentoAfectado(context.Background(), "boleta", "B001-100")
	require.NoError(t, err)

	assert.Equal(t, int64(42), doc.IngresoID)
	assert.Equal(t, "B001-100", doc.SerieNumero)
	assert.Equal(t, "118.00", doc.MtoImpVenta.StringFixed(2))
	assert.Equal(t, "CLIENTE 45781236", doc.Cliente.RazonSocial,
		"sin registro en el padrón se arma un cliente mínimo con el DNI")
	require.Len(t, doc.Detalles, 1, "el libro no guarda líneas: se reconstruye un detalle único por el total")
}

func TestEmitir_MotivoDesconocido_EsValidacion(t *testing.T) {
	uc := notaCreditoUseCaseDePrueba(&gatewayMock{}, nuevoIngresoRepoMock(ingresoBoletaDePrueba()))

	_, err := uc.Emitir(context.Background(), billing.EmitirNotaCreditoInput{
		TipoDocAfectado:   "boleta",
		NumeroDocAfectado: "B001-100",
		CodMotivo:         "99",
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
