package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// La anulación de una boleta de S/ 118.00 debe dejar el libro en -118.00:
// el monto resultante es negativo sin importar el signo de entrada.
func TestMontoNotaCredito_SiempreNegativo(t *testing.T) {
	casos := []struct {
		nombre   string
		monto    string
		esperado string
	}{
		{"venta positiva se niega", "118.00", "-118.00"},
		{"monto ya negativo queda igual", "-118.00", "-118.00"},
		{"decimales se conservan", "25.90", "-25.90"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := entity.MontoNotaCredito(decimal.RequireFromString(c.monto))
			assert.Equal(t, c.esperado, got.StringFixed(2))
		})
	}
}
