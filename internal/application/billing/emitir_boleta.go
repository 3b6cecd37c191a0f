package billing

import (
	"context"
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

// FormatoPDFDefecto representación impresa que se genera tras emitir.
const FormatoPDFDefecto = "A4"

// EmitirBoletaInput datos de la venta a facturar. Los valores unitarios de
// las líneas vienen CON IGV, como los maneja toda la aplicación.
type EmitirBoletaInput struct {
	DNI          string
	FechaEmision time.Time
	FormatoPDF   string // A4 | TICKET; vacío usa el defecto
	Detalles     []entity.DetalleComprobante
}

// BoletaUseCase emisión de boletas de venta. La boleta no viaja a SUNAT al
// emitirse: queda a la espera del resumen diario de su fecha.
type BoletaUseCase struct {
	gateway  infrasunat.Gateway
	ingresos repository.IngresoRepository
	socios   repository.SocioRepository
	cfg      config.FacturacionConfig
	log      *logger.Logger
}

func NewBoletaUseCase(
	gateway infrasunat.Gateway,
	ingresos repository.IngresoRepository,
	socios repository.SocioRepository,
	cfg config.FacturacionConfig,
	log *logger.Logger,
) *BoletaUseCase {
	return &BoletaUseCase{
		gateway:  gateway,
		ingresos: ingresos,
		socios:   socios,
		cfg:      cfg,
		log:      log.Componente("boleta"),
	}
}

// Emitir crea la boleta en el API, genera su PDF y registra el ingreso.
// Igual que en la nota de crédito, solo la emisión aborta: PDF y libro de
// ingresos degradan el resultado sin revertir el comprobante.
func (u *BoletaUseCase) Emitir(ctx context.Context, input EmitirBoletaInput) (*ResultadoBoleta, error) {
	if len(input.Detalles) == 0 {
		return nil, domain.NewValidationError("detalles", "se requiere al menos una línea de detalle")
	}
	formato := input.FormatoPDF
	if formato == "" {
		formato = FormatoPDFDefecto
	}

	// Total CON IGV para el libro de ingresos; líneas SIN IGV para el payload.
	total := decimal.Zero
	lineas := make([]entity.DetalleComprobante, len(input.Detalles))
	for i, d := range input.Detalles {
		if !d.Cantidad.IsPositive() {
			return nil, domain.NewValidationError("cantidad", "la cantidad debe ser mayor que cero")
		}
		total = total.Add(d.Subtotal())

		valor, err := domainsunat.ValorSinIGV(d.MtoValorUnitario, d.PorcentajeIGV)
		if err != nil {
			return nil, err
		}
		linea := d
		linea.MtoValorUnitario = valor
		lineas[i] = linea
	}
	if !total.IsPositive() {
		return nil, domain.NewValidationError("detalles", "el total de la boleta debe ser mayor que cero")
	}

	socio, err := u.socios.GetByDNI(ctx, input.DNI)
	if err != nil {
		return nil, &domain.StoreError{Operacion: "buscar_socio", Err: err}
	}

	payload := &infrasunat.BoletaPayload{
		Serie:        u.cfg.SerieBoleta,
		FechaEmision: fechaOHoy(input.FechaEmision),
		Moneda:       u.cfg.Moneda,
		Cliente:      clientePayloadDesdeSocio(socio, input.DNI),
		Detalles:     detallesPayload(lineas),
	}

	resultado := &ResultadoBoleta{
		Emision:         PasoResultado{Estado: PasoNoIntentado},
		GeneracionPDF:   PasoResultado{Estado: PasoNoIntentado},
		RegistroIngreso: PasoResultado{Estado: PasoNoIntentado},
	}

	emitida, err := u.gateway.EmitirBoleta(ctx, payload)
	if err != nil {
		u.log.Error().Err(err).Str("dni", input.DNI).Msg("emisión de boleta falló")
		return nil, err
	}
	resultado.Emision = pasoOK()
	resultado.BoletaID = emitida.ID
	resultado.NumeroCompleto = emitida.NumeroCompleto

	if err := u.gateway.GenerarPDFBoleta(ctx, emitida.ID, formato); err != nil {
		u.log.Warn().Err(err).Int64("boleta_id", emitida.ID).Msg("boleta emitida pero sin PDF")
		resultado.GeneracionPDF = pasoFallo(err)
	} else {
		resultado.GeneracionPDF = pasoOK()
	}

	fecha := input.FechaEmision
	if fecha.IsZero() {
		fecha = time.Now()
	}
	ingreso := &entity.Ingreso{
		Fecha:             fecha,
		Monto:             total,
		TipoTransaccion:   pkgsunat.TransaccionBoleta,
		NumeroComprobante: emitida.NumeroCompleto,
		DNI:               input.DNI,
	}
	if err := u.ingresos.Create(ctx, ingreso); err != nil {
		u.log.Warn().Err(err).Str("numero", emitida.NumeroCompleto).Msg("boleta emitida pero sin registrar en el libro")
		resultado.RegistroIngreso = pasoFallo(err)
	} else {
		resultado.RegistroIngreso = pasoOK()
	}

	return resultado, nil
}

// DescargarPDF obtiene el binario del PDF de una boleta ya emitida.
func (u *BoletaUseCase) DescargarPDF(ctx context.Context, boletaID int64, formato string) ([]byte, error) {
	if formato == "" {
		formato = FormatoPDFDefecto
	}
	return u.gateway.DescargarPDFBoleta(ctx, boletaID, formato)
}
