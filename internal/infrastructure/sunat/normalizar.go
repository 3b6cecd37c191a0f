package sunat

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto quita tildes y diéresis y colapsa espacios. El validador
// del API rechaza caracteres fuera de su alfabeto en razones sociales y
// direcciones; los nombres del padrón vienen con acentos.
func NormalizarTexto(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpio, _, err := transform.String(t, s)
	if err != nil {
		limpio = s
	}
	return strings.Join(strings.Fields(limpio), " ")
}

// NormalizarCliente aplica la normalización a los campos de texto libre del
// cliente. Los números de documento y el email viajan intactos.
func NormalizarCliente(p ClientePayload) ClientePayload {
	p.RazonSocial = NormalizarTexto(p.RazonSocial)
	p.NombreComercial = NormalizarTexto(p.NombreComercial)
	p.Direccion = NormalizarTexto(p.Direccion)
	p.Distrito = NormalizarTexto(p.Distrito)
	p.Provincia = NormalizarTexto(p.Provincia)
	p.Departamento = NormalizarTexto(p.Departamento)
	return p
}
