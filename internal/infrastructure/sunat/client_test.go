package sunat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func clienteDePrueba(t *testing.T, handler http.HandlerFunc) (*sunat.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.FacturacionConfig{
		BaseURL:   srv.URL,
		AuthToken: "token-prueba",
		CompanyID: 7,
		BranchID:  3,
	}
	return sunat.NewClient(cfg, logger.New(logger.Config{Env: "production", Level: "error"})), srv
}

func TestEmitirNotaCredito_EnviaCompanyYBranchDeConfiguracion(t *testing.T) {
	var recibido map[string]any
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credit-notes", r.URL.Path)
		assert.Equal(t, "Bearer token-prueba", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 77, "numero_completo": "BC01-5"},
		})
	})

	emitido, err := c.EmitirNotaCredito(context.Background(), &sunat.NotaCreditoPayload{
		Serie:          "BC01",
		TipDocAfectado: "03",
		NumDocAfectado: "B001-100",
		CodMotivo:      "01",
		Detalles: []sunat.DetallePayload{{
			Descripcion:      "OPERACION ANULADA COMPLETAMENTE",
			Unidad:           "ZZ",
			Cantidad:         decimal.NewFromInt(1),
			MtoValorUnitario: decimal.RequireFromString("100.00"),
			PorcentajeIGV:    decimal.NewFromInt(18),
			TipAfeIGV:        "10",
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), emitido.ID)
	assert.Equal(t, "BC01-5", emitido.NumeroCompleto)
	assert.EqualValues(t, 7, recibido["company_id"], "company_id sale de la configuración, no del caller")
	assert.EqualValues(t, 3, recibido["branch_id"])
}

func TestPost_RechazoDelAPI_EsGatewayErrorConSuMensaje(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "serie no autorizada",
		})
	})

	err := c.EnviarNotaCreditoSunat(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, domain.IsGateway(err), "un rechazo del API debe ser GatewayError, nunca pánico ni error genérico")
	assert.Contains(t, err.Error(), "serie no autorizada", "el mensaje del API se conserva para el operador")
}

func TestPost_SuccessFalseConHTTP200_TambienEsGatewayError(t *testing.T) {
	// El API a veces responde 200 con success=false; el sobre manda, no el status.
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "sin boletas en la fecha"})
	})

	_, err := c.CrearResumenDiario(context.Background(), "2025-07-28")
	require.Error(t, err)
	assert.True(t, domain.IsGateway(err))
}

func TestPost_RespuestaNoJSON_EsGatewayError(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502</html>"))
	})

	_, err := c.ConsultarEstadoResumen(context.Background(), 12)
	require.Error(t, err)
	assert.True(t, domain.IsGateway(err))
}

func TestCrearResumenDiario_MapeaDetallesYSummaryID(t *testing.T) {
	var recibido map[string]any
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boletas/create-daily-summary", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":              310,
				"fecha_resumen":   "2025-07-28",
				"numero_completo": "RC-20250728-1",
				"detalles": []map[string]any{
					{"serie_numero": "B001-100"},
					{"serie_numero": "B001-101"},
				},
			},
		})
	})

	creado, err := c.CrearResumenDiario(context.Background(), "2025-07-28")
	require.NoError(t, err)

	assert.Equal(t, int64(310), creado.ID)
	assert.Equal(t, []string{"B001-100", "B001-101"}, creado.Detalles)
	assert.Equal(t, "2025-07-28", recibido["fecha_resumen"])
	assert.EqualValues(t, 7, recibido["company_id"])
}

func TestCrearResumenDiario_SinBoletas_NoEsError(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":            311,
				"fecha_resumen": "2025-07-29",
				"detalles":      []any{},
			},
		})
	})

	creado, err := c.CrearResumenDiario(context.Background(), "2025-07-29")
	require.NoError(t, err, "un día sin boletas produce un resumen vacío, no un error")
	assert.Empty(t, creado.Detalles)
}

func TestEnviarResumenSunat_DevuelveTicketYEstado(t *testing.T) {
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/daily-summaries/310/send-sunat", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":              310,
				"fecha_resumen":   "2025-07-28",
				"numero_completo": "RC-20250728-1",
				"correlativo":     1,
				"ticket":          "1595061494830",
				"estado_sunat":    "PENDIENTE",
				"detalles":        []map[string]any{{"serie_numero": "B001-100"}},
			},
		})
	})

	enviado, err := c.EnviarResumenSunat(context.Background(), 310)
	require.NoError(t, err)

	assert.Equal(t, "1595061494830", enviado.Ticket)
	assert.Equal(t, "PENDIENTE", enviado.EstadoSunat)
	assert.Equal(t, int64(1), enviado.Correlativo)
	assert.Equal(t, []string{"B001-100"}, enviado.Detalles)
}

func TestDescargarPDFBoleta_DevuelveElBinarioDirecto(t *testing.T) {
	pdf := []byte("%PDF-1.7 contenido")
	c, _ := clienteDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boletas/15/download-pdf", r.URL.Path)
		assert.Equal(t, "A4", r.URL.Query().Get("formato"))
		_, _ = w.Write(pdf)
	})

	got, err := c.DescargarPDFBoleta(context.Background(), 15, "A4")
	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestNormalizarTexto(t *testing.T) {
	assert.Equal(t, "PEREZ NUNEZ", sunat.NormalizarTexto("PÉREZ NÚÑEZ"))
	assert.Equal(t, "Jiron Union 123", sunat.NormalizarTexto("  Jirón   Unión 123 "))
}
