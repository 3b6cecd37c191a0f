package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

func detalleVentaDePrueba() entity.DetalleComprobante {
	return entity.DetalleComprobante{
		Descripcion:      "Cuota mensual",
		Unidad:           pkgsunat.UnidadServicio,
		Cantidad:         decimal.NewFromInt(1),
		MtoValorUnitario: decimal.RequireFromString("59.00"),
		PorcentajeIGV:    decimal.NewFromInt(18),
		TipAfeIGV:        pkgsunat.AfectacionGravadoOneroso,
	}
}

func boletaUseCaseDePrueba(gw *gatewayMock, ingresos *ingresoRepoMock) *billing.BoletaUseCase {
	return billing.NewBoletaUseCase(
		gw, ingresos, &socioRepoMock{porDNI: map[string]*entity.SocioTitular{}},
		cfgFacturacionDePrueba(), loggerDePrueba(),
	)
}

func TestEmitirBoleta_Exito_RegistraElIngresoConElTotal(t *testing.T) {
	var payload *infrasunat.BoletaPayload
	gw := &gatewayMock{
		emitirBoletaFn: func(p *infrasunat.BoletaPayload) (*infrasunat.ComprobanteEmitido, error) {
			payload = p
			return &infrasunat.ComprobanteEmitido{ID: 15, NumeroCompleto: "B001-102"}, nil
		},
		generarPDFFn: func(boletaID int64, formato string) error { return nil },
	}
	ingresos := nuevoIngresoRepoMock()
	uc := boletaUseCaseDePrueba(gw, ingresos)

	resultado, err := uc.Emitir(context.Background(), billing.EmitirBoletaInput{
		DNI:      "45781236",
		Detalles: []entity.DetalleComprobante{detalleVentaDePrueba()},
	})
	require.NoError(t, err)

	assert.Equal(t, billing.PasoExitoso, resultado.Emision.Estado)
	assert.Equal(t, billing.PasoExitoso, resultado.GeneracionPDF.Estado)
	assert.Equal(t, billing.PasoExitoso, resultado.RegistroIngreso.Estado)

	require.NotNil(t, payload)
	assert.Equal(t, "B001", payload.Serie)
	require.Len(t, payload.Detalles, 1)
	assert.Equal(t, "50.00", payload.Detalles[0].MtoValorUnitario.StringFixed(2),
		"el payload lleva el valor SIN IGV")

	require.Len(t, ingresos.creados, 1)
	ingreso := ingresos.creados[0]
	assert.Equal(t, "59.00", ingreso.Monto.StringFixed(2), "el libro registra el total CON IGV")
	assert.Equal(t, pkgsunat.TransaccionBoleta, ingreso.TipoTransaccion)
	assert.Equal(t, "B001-102", ingreso.NumeroComprobante)
}

func TestEmitirBoleta_PDFFalla_NoImpideElRegistro(t *testing.T) {
	gw := &gatewayMock{
		emitirBoletaFn: func(p *infrasunat.BoletaPayload) (*infrasunat.ComprobanteEmitido, error) {
			return &infrasunat.ComprobanteEmitido{ID: 16, NumeroCompleto: "B001-103"}, nil
		},
		generarPDFFn: func(boletaID int64, formato string) error {
			return &domain.GatewayError{Operacion: "generate-pdf", Mensaje: "timeout"}
		},
	}
	ingresos := nuevoIngresoRepoMock()
	uc := boletaUseCaseDePrueba(gw, ingresos)

	resultado, err := uc.Emitir(context.Background(), billing.EmitirBoletaInput{
		DNI:      "45781236",
		Detalles: []entity.DetalleComprobante{detalleVentaDePrueba()},
	})

	require.NoError(t, err)
	assert.Equal(t, billing.PasoFallido, resultado.GeneracionPDF.Estado)
	assert.Equal(t, billing.PasoExitoso, resultado.RegistroIngreso.Estado)
	assert.Len(t, ingresos.creados, 1)
}

func TestEmitirBoleta_SinDetalles_EsValidacion(t *testing.T) {
	uc := boletaUseCaseDePrueba(&gatewayMock{}, nuevoIngresoRepoMock())

	_, err := uc.Emitir(context.Background(), billing.EmitirBoletaInput{DNI: "45781236"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
