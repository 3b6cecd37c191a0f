package entity

// SocioTitular fila del padrón interno de clientes (socio_titulares).
// Es la fuente de los datos de cliente que se copian en los comprobantes.
type SocioTitular struct {
	ID                int64
	DNI               string
	Nombres           string
	ApellidoPaterno   string
	ApellidoMaterno   string
	DireccionDNI      string
	DireccionVivienda string
	DistritoDNI       string
	DistritoVivienda  string
	ProvinciaDNI      string
	ProvinciaVivienda string
	RegionDNI         string
	RegionVivienda    string
	Celular           string
}

// RazonSocial nombre completo para el payload del comprobante.
func (s SocioTitular) RazonSocial() string {
	nombre := s.Nombres
	if s.ApellidoPaterno != "" {
		nombre += " " + s.ApellidoPaterno
	}
	if s.ApellidoMaterno != "" {
		nombre += " " + s.ApellidoMaterno
	}
	return nombre
}

// Direccion devuelve la dirección del DNI y, si está vacía, la de vivienda.
func (s SocioTitular) Direccion() string {
	if s.DireccionDNI != "" {
		return s.DireccionDNI
	}
	return s.DireccionVivienda
}

// Distrito preferencia DNI sobre vivienda, igual que Direccion.
func (s SocioTitular) Distrito() string {
	if s.DistritoDNI != "" {
		return s.DistritoDNI
	}
	return s.DistritoVivienda
}

// Provincia preferencia DNI sobre vivienda.
func (s SocioTitular) Provincia() string {
	if s.ProvinciaDNI != "" {
		return s.ProvinciaDNI
	}
	return s.ProvinciaVivienda
}

// Departamento preferencia DNI sobre vivienda.
func (s SocioTitular) Departamento() string {
	if s.RegionDNI != "" {
		return s.RegionDNI
	}
	return s.RegionVivienda
}
