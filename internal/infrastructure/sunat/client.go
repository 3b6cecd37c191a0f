package sunat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

const timeoutGateway = 60 * time.Second

// Client implementación REST del Gateway. Autentica con Bearer token y
// propaga un X-Request-ID por llamada para correlacionar logs con el API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
	companyID  int64
	branchID   int64
	log        *logger.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient construye el cliente del API de facturación.
func NewClient(cfg config.FacturacionConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeoutGateway},
		baseURL:    cfg.BaseURL,
		authToken:  cfg.AuthToken,
		companyID:  cfg.CompanyID,
		branchID:   cfg.BranchID,
		log:        log.Componente("sunat_gateway"),
	}
}

// EmitirBoleta crea la boleta en el API. No la envía a SUNAT: las boletas
// viajan después, agrupadas en el resumen diario.
func (c *Client) EmitirBoleta(ctx context.Context, p *BoletaPayload) (*ComprobanteEmitido, error) {
	p.CompanyID = c.companyID
	p.BranchID = c.branchID

	var data comprobanteData
	if err := c.post(ctx, "/boletas", p, &data); err != nil {
		return nil, err
	}
	c.log.Info().Int64("boleta_id", data.ID).Str("numero", data.NumeroCompleto).Msg("boleta emitida")
	return &ComprobanteEmitido{ID: data.ID, NumeroCompleto: data.NumeroCompleto}, nil
}

func (c *Client) EmitirNotaCredito(ctx context.Context, p *NotaCreditoPayload) (*ComprobanteEmitido, error) {
	p.CompanyID = c.companyID
	p.BranchID = c.branchID

	var data comprobanteData
	if err := c.post(ctx, "/credit-notes", p, &data); err != nil {
		return nil, err
	}
	c.log.Info().Int64("nota_id", data.ID).Str("numero", data.NumeroCompleto).Msg("nota de crédito emitida")
	return &ComprobanteEmitido{ID: data.ID, NumeroCompleto: data.NumeroCompleto}, nil
}

func (c *Client) EnviarNotaCreditoSunat(ctx context.Context, notaID int64) error {
	return c.post(ctx, fmt.Sprintf("/credit-notes/%d/send-sunat", notaID), struct{}{}, nil)
}

func (c *Client) GenerarPDFBoleta(ctx context.Context, boletaID int64, formato string) error {
	body := map[string]string{"formato": formato}
	return c.post(ctx, fmt.Sprintf("/boletas/%d/generate-pdf", boletaID), body, nil)
}

// DescargarPDFBoleta devuelve el binario del PDF. Esta ruta responde el
// archivo directo, sin sobre {success, data}.
func (c *Client) DescargarPDFBoleta(ctx context.Context, boletaID int64, formato string) ([]byte, error) {
	op := "descargar_pdf_boleta"
	url := fmt.Sprintf("%s/boletas/%d/download-pdf?formato=%s", c.baseURL, boletaID, formato)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.GatewayError{Operacion: op, Mensaje: "armando request", Err: err}
	}
	c.cabeceras(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{Operacion: op, Mensaje: "el API de facturación no respondió", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.GatewayError{Operacion: op, Mensaje: fmt.Sprintf("el API respondió HTTP %d", resp.StatusCode)}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) CrearResumenDiario(ctx context.Context, fecha string) (*ResumenCreado, error) {
	body := map[string]any{
		"company_id":    c.companyID,
		"branch_id":     c.branchID,
		"fecha_resumen": fecha,
	}

	var data resumenData
	if err := c.post(ctx, "/boletas/create-daily-summary", body, &data); err != nil {
		return nil, err
	}
	c.log.Info().Int64("resumen_api_id", data.ID).Str("fecha", data.FechaResumen).
		Int("boletas", len(data.Detalles)).Msg("resumen diario creado")
	return &ResumenCreado{
		ID:             data.ID,
		FechaResumen:   data.FechaResumen,
		NumeroCompleto: data.NumeroCompleto,
		Detalles:       data.seriesNumeros(),
	}, nil
}

func (c *Client) EnviarResumenSunat(ctx context.Context, resumenAPIID int64) (*ResumenEnviado, error) {
	var data resumenData
	if err := c.post(ctx, fmt.Sprintf("/daily-summaries/%d/send-sunat", resumenAPIID), struct{}{}, &data); err != nil {
		return nil, err
	}
	c.log.Info().Int64("resumen_api_id", data.ID).Str("ticket", data.Ticket).
		Str("estado", data.EstadoSunat).Msg("resumen enviado a sunat")
	return &ResumenEnviado{
		ID:             data.ID,
		FechaResumen:   data.FechaResumen,
		NumeroCompleto: data.NumeroCompleto,
		Correlativo:    data.Correlativo,
		Ticket:         data.Ticket,
		EstadoSunat:    data.EstadoSunat,
		Detalles:       data.seriesNumeros(),
	}, nil
}

func (c *Client) ConsultarEstadoResumen(ctx context.Context, resumenAPIID int64) (string, error) {
	var data estadoData
	if err := c.post(ctx, fmt.Sprintf("/daily-summaries/%d/check-status", resumenAPIID), struct{}{}, &data); err != nil {
		return "", err
	}
	return data.EstadoSunat, nil
}

// post ejecuta un POST JSON contra el API y decodifica data del sobre en out
// (out nil descarta data). Cualquier falla vuelve como *domain.GatewayError
// con el message del API cuando existe.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &domain.GatewayError{Operacion: path, Mensaje: "serializando payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &domain.GatewayError{Operacion: path, Mensaje: "armando request", Err: err}
	}
	c.cabeceras(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.GatewayError{Operacion: path, Mensaje: "el API de facturación no respondió", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.GatewayError{Operacion: path, Mensaje: "leyendo respuesta", Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &domain.GatewayError{
			Operacion: path,
			Mensaje:   fmt.Sprintf("respuesta no interpretable (HTTP %d)", resp.StatusCode),
			Err:       err,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("el API respondió HTTP %d", resp.StatusCode)
		}
		c.log.Warn().Str("operacion", path).Int("status", resp.StatusCode).Str("mensaje", msg).
			Msg("rechazo del API de facturación")
		return &domain.GatewayError{Operacion: path, Mensaje: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &domain.GatewayError{Operacion: path, Mensaje: "data con forma inesperada", Err: err}
		}
	}
	return nil
}

func (c *Client) cabeceras(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("X-Request-ID", uuid.NewString())
}
