// Package billing contiene los casos de uso de facturación electrónica:
// emisión de boletas, emisión de notas de crédito con su saga de tres pasos,
// ciclo de vida del resumen diario y conciliación de estados ante SUNAT.
package billing

// PasoEstado resultado de un paso de la saga de emisión.
type PasoEstado string

const (
	PasoNoIntentado PasoEstado = "NO_INTENTADO"
	PasoExitoso     PasoEstado = "EXITOSO"
	PasoFallido     PasoEstado = "FALLIDO"
)

// PasoResultado estado de un paso más el detalle del error si falló.
type PasoResultado struct {
	Estado  PasoEstado `json:"estado"`
	Mensaje string     `json:"mensaje,omitempty"`
}

func pasoOK() PasoResultado { return PasoResultado{Estado: PasoExitoso} }

func pasoFallo(err error) PasoResultado {
	return PasoResultado{Estado: PasoFallido, Mensaje: err.Error()}
}

// Estados finales de una emisión de nota de crédito. Solo la emisión es
// obligatoria: los pasos posteriores degradan el estado sin revertir nada,
// porque un comprobante emitido ante el API ya existe legalmente.
const (
	EmisionCompleta     = "COMPLETA"
	EmisionSinEnviar    = "EMITIDA_SIN_ENVIAR"
	EmisionSinConciliar = "EMITIDA_SIN_CONCILIAR"
)

// ResultadoNotaCredito acuse de la saga completa. NotaID y NumeroCompleto
// solo tienen valor si la emisión (paso 1) fue exitosa.
type ResultadoNotaCredito struct {
	NotaID         int64  `json:"nota_id"`
	NumeroCompleto string `json:"numero_completo"`

	Emision              PasoResultado `json:"emision"`
	EnvioSunat           PasoResultado `json:"envio_sunat"`
	ActualizacionIngreso PasoResultado `json:"actualizacion_ingreso"`
}

// EstadoFinal colapsa los tres pasos en un estado legible para el operador.
// El primer paso degradado manda: sin envío a SUNAT el comprobante queda
// EMITIDA_SIN_ENVIAR aunque el libro tampoco se haya conciliado.
func (r ResultadoNotaCredito) EstadoFinal() string {
	if r.EnvioSunat.Estado == PasoFallido {
		return EmisionSinEnviar
	}
	if r.ActualizacionIngreso.Estado == PasoFallido {
		return EmisionSinConciliar
	}
	return EmisionCompleta
}

// ResultadoBoleta acuse de la emisión de una boleta. El PDF y el registro en
// el libro de ingresos degradan igual que en la nota de crédito.
type ResultadoBoleta struct {
	BoletaID       int64  `json:"boleta_id"`
	NumeroCompleto string `json:"numero_completo"`

	Emision         PasoResultado `json:"emision"`
	GeneracionPDF   PasoResultado `json:"generacion_pdf"`
	RegistroIngreso PasoResultado `json:"registro_ingreso"`
}
