package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingreso registro del libro interno de ingresos. Hay exactamente una fila
// por transacción física: una anulación por nota de crédito transforma la
// fila original (signo, tipo y número de comprobante) en lugar de insertar
// una nueva.
type Ingreso struct {
	ID                int64
	Fecha             time.Time
	Monto             decimal.Decimal // positivo para ventas, negativo para devoluciones
	TipoTransaccion   string          // "Boleta de Venta" | "Nota de Crédito"
	NumeroComprobante string          // serie-número (ej. B001-100)
	DNI               string          // documento del cliente asociado
	CreatedAt         time.Time
}

// MontoNotaCredito monto con el que queda la fila tras aplicar una nota de
// crédito: siempre negativo, sin importar el signo con el que esté registrado
// el original.
func MontoNotaCredito(monto decimal.Decimal) decimal.Decimal {
	return monto.Abs().Neg()
}
