package billing_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func loggerDePrueba() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ── gateway mock ──────────────────────────────────────────────────────────────

type gatewayMock struct {
	emitirBoletaFn    func(p *infrasunat.BoletaPayload) (*infrasunat.ComprobanteEmitido, error)
	emitirNotaFn      func(p *infrasunat.NotaCreditoPayload) (*infrasunat.ComprobanteEmitido, error)
	enviarNotaFn      func(notaID int64) error
	generarPDFFn      func(boletaID int64, formato string) error
	descargarPDFFn    func(boletaID int64, formato string) ([]byte, error)
	crearResumenFn    func(fecha string) (*infrasunat.ResumenCreado, error)
	enviarResumenFn   func(id int64) (*infrasunat.ResumenEnviado, error)
	consultarEstadoFn func(id int64) (string, error)

	llamadasEmitirNota      int
	llamadasEnviarNota      int
	llamadasConsultarEstado int
}

func (m *gatewayMock) EmitirBoleta(_ context.Context, p *infrasunat.BoletaPayload) (*infrasunat.ComprobanteEmitido, error) {
	return m.emitirBoletaFn(p)
}

func (m *gatewayMock) EmitirNotaCredito(_ context.Context, p *infrasunat.NotaCreditoPayload) (*infrasunat.ComprobanteEmitido, error) {
	m.llamadasEmitirNota++
	return m.emitirNotaFn(p)
}

func (m *gatewayMock) EnviarNotaCreditoSunat(_ context.Context, notaID int64) error {
	m.llamadasEnviarNota++
	return m.enviarNotaFn(notaID)
}

func (m *gatewayMock) GenerarPDFBoleta(_ context.Context, boletaID int64, formato string) error {
	return m.generarPDFFn(boletaID, formato)
}

func (m *gatewayMock) DescargarPDFBoleta(_ context.Context, boletaID int64, formato string) ([]byte, error) {
	return m.descargarPDFFn(boletaID, formato)
}

func (m *gatewayMock) CrearResumenDiario(_ context.Context, fecha string) (*infrasunat.ResumenCreado, error) {
	return m.crearResumenFn(fecha)
}

func (m *gatewayMock) EnviarResumenSunat(_ context.Context, id int64) (*infrasunat.ResumenEnviado, error) {
	return m.enviarResumenFn(id)
}

func (m *gatewayMock) ConsultarEstadoResumen(_ context.Context, id int64) (string, error) {
	m.llamadasConsultarEstado++
	return m.consultarEstadoFn(id)
}

// ── ingresos mock ─────────────────────────────────────────────────────────────

type aplicarNCLlamada struct {
	IngresoID  int64
	NumeroNota string
	Monto      decimal.Decimal
}

type ingresoRepoMock struct {
	porNumero map[string]*entity.Ingreso

	errAplicar error
	errCreate  error

	aplicadas []aplicarNCLlamada
	creados   []*entity.Ingreso
}

func nuevoIngresoRepoMock(ingresos ...*entity.Ingreso) *ingresoRepoMock {
	m := &ingresoRepoMock{porNumero: map[string]*entity.Ingreso{}}
	for _, ing := range ingresos {
		m.porNumero[ing.NumeroComprobante] = ing
	}
	return m
}

func (m *ingresoRepoMock) GetByNumeroComprobante(_ context.Context, numero string) (*entity.Ingreso, error) {
	return m.porNumero[numero], nil
}

func (m *ingresoRepoMock) Create(_ context.Context, ingreso *entity.Ingreso) error {
	if m.errCreate != nil {
		return m.errCreate
	}
	m.creados = append(m.creados, ingreso)
	return nil
}

func (m *ingresoRepoMock) AplicarNotaCredito(_ context.Context, ingresoID int64, numeroNota string, monto decimal.Decimal) error {
	if m.errAplicar != nil {
		return m.errAplicar
	}
	m.aplicadas = append(m.aplicadas, aplicarNCLlamada{IngresoID: ingresoID, NumeroNota: numeroNota, Monto: monto})
	return nil
}

func (m *ingresoRepoMock) ListarPorRango(_ context.Context, desde, hasta time.Time) ([]*entity.Ingreso, error) {
	var out []*entity.Ingreso
	for _, ing := range m.porNumero {
		if !ing.Fecha.Before(desde) && !ing.Fecha.After(hasta) {
			out = append(out, ing)
		}
	}
	return out, nil
}

// ── socios mock ───────────────────────────────────────────────────────────────

type socioRepoMock struct {
	porDNI map[string]*entity.SocioTitular
}

func (m *socioRepoMock) GetByDNI(_ context.Context, dni string) (*entity.SocioTitular, error) {
	return m.porDNI[dni], nil
}

// ── resúmenes mock (en memoria, con inyección de fallas) ─────────────────────

type resumenRepoMock struct {
	siguienteID int64
	cabeceras   map[int64]*entity.ResumenDiario
	detalles    map[int64][]string

	errInsertarDetalles error
	errActualizar       error

	eliminadas []int64
}

func nuevoResumenRepoMock() *resumenRepoMock {
	return &resumenRepoMock{
		siguienteID: 1,
		cabeceras:   map[int64]*entity.ResumenDiario{},
		detalles:    map[int64][]string{},
	}
}

func (m *resumenRepoMock) InsertarCabecera(_ context.Context, resumen *entity.ResumenDiario) (int64, error) {
	resumen.ID = m.siguienteID
	m.siguienteID++
	copia := *resumen
	m.cabeceras[resumen.ID] = &copia
	return resumen.ID, nil
}

func (m *resumenRepoMock) InsertarDetalles(_ context.Context, resumenID int64, seriesNumeros []string) error {
	if m.errInsertarDetalles != nil {
		return m.errInsertarDetalles
	}
	m.detalles[resumenID] = append(m.detalles[resumenID], seriesNumeros...)
	return nil
}

func (m *resumenRepoMock) EliminarCabecera(_ context.Context, resumenID int64) error {
	delete(m.cabeceras, resumenID)
	delete(m.detalles, resumenID)
	m.eliminadas = append(m.eliminadas, resumenID)
	return nil
}

func (m *resumenRepoMock) Listar(_ context.Context) ([]*entity.ResumenDiario, error) {
	var out []*entity.ResumenDiario
	for _, res := range m.cabeceras {
		out = append(out, res)
	}
	return out, nil
}

func (m *resumenRepoMock) GetByID(_ context.Context, id int64) (*entity.ResumenDiario, error) {
	return m.cabeceras[id], nil
}

func (m *resumenRepoMock) ActualizarEstado(_ context.Context, id int64, estado string) error {
	if m.errActualizar != nil {
		return m.errActualizar
	}
	m.cabeceras[id].EstadoSunat = estado
	return nil
}

func (m *resumenRepoMock) DetallesPorResumen(_ context.Context, resumenID int64) ([]string, error) {
	return m.detalles[resumenID], nil
}
