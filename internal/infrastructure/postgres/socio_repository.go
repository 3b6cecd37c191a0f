package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// SocioRepository lectura del padrón de socios titulares.
type SocioRepository struct {
	db Querier
}

var _ repository.SocioRepository = (*SocioRepository)(nil)

func NewSocioRepository(db Querier) *SocioRepository {
	return &SocioRepository{db: db}
}

func (r *SocioRepository) GetByDNI(ctx context.Context, dni string) (*entity.SocioTitular, error) {
	const q = `
		SELECT id, dni,
		       COALESCE(nombres, ''), COALESCE(apellido_paterno, ''), COALESCE(apellido_materno, ''),
		       COALESCE(direccion_dni, ''), COALESCE(direccion_vivienda, ''),
		       COALESCE(distrito_dni, ''), COALESCE(distrito_vivienda, ''),
		       COALESCE(provincia_dni, ''), COALESCE(provincia_vivienda, ''),
		       COALESCE(region_dni, ''), COALESCE(region_vivienda, ''),
		       COALESCE(celular, '')
		FROM socio_titulares
		WHERE dni = $1`

	var s entity.SocioTitular
	err := r.db.QueryRow(ctx, q, dni).Scan(
		&s.ID, &s.DNI,
		&s.Nombres, &s.ApellidoPaterno, &s.ApellidoMaterno,
		&s.DireccionDNI, &s.DireccionVivienda,
		&s.DistritoDNI, &s.DistritoVivienda,
		&s.ProvinciaDNI, &s.ProvinciaVivienda,
		&s.RegionDNI, &s.RegionVivienda,
		&s.Celular,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar socio %s: %w", dni, err)
	}
	return &s, nil
}
