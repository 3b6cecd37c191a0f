package billing

import (
	"time"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	infrasunat "github.com/jhoicas/Facturacion-api/internal/infrastructure/sunat"
	pkgsunat "github.com/jhoicas/Facturacion-api/pkg/sunat"
)

// clientePayloadDesdeSocio copia el registro del padrón al payload del
// comprobante. Si el DNI no está en el padrón se arma un cliente mínimo:
// para boletas SUNAT no exige datos completos del cliente.
func clientePayloadDesdeSocio(socio *entity.SocioTitular, dni string) infrasunat.ClientePayload {
	if socio == nil {
		return infrasunat.NormalizarCliente(infrasunat.ClientePayload{
			TipoDocumento:   pkgsunat.DocIdentidadDNI,
			NumeroDocumento: dni,
			RazonSocial:     "CLIENTE " + dni,
		})
	}
	return infrasunat.NormalizarCliente(infrasunat.ClientePayload{
		TipoDocumento:   pkgsunat.DocIdentidadDNI,
		NumeroDocumento: socio.DNI,
		RazonSocial:     socio.RazonSocial(),
		Direccion:       socio.Direccion(),
		Distrito:        socio.Distrito(),
		Provincia:       socio.Provincia(),
		Departamento:    socio.Departamento(),
		Telefono:        socio.Celular,
	})
}

// detallesPayload convierte líneas de dominio (ya con valor SIN IGV) al
// formato de alambre.
func detallesPayload(detalles []entity.DetalleComprobante) []infrasunat.DetallePayload {
	out := make([]infrasunat.DetallePayload, len(detalles))
	for i, d := range detalles {
		out[i] = infrasunat.DetallePayload{
			Codigo:           d.Codigo,
			Descripcion:      infrasunat.NormalizarTexto(d.Descripcion),
			Unidad:           d.Unidad,
			Cantidad:         d.Cantidad,
			MtoValorUnitario: d.MtoValorUnitario,
			PorcentajeIGV:    d.PorcentajeIGV,
			TipAfeIGV:        d.TipAfeIGV,
		}
	}
	return out
}

// fechaOHoy devuelve la fecha en formato YYYY-MM-DD, hoy si viene en cero.
func fechaOHoy(fecha time.Time) string {
	if fecha.IsZero() {
		fecha = time.Now()
	}
	return fecha.Format("2006-01-02")
}
