// Package auth autenticación de los operadores del sistema.
package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/jwt"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// EstadoActivo único estado que permite iniciar sesión.
const EstadoActivo = "ACTIVO"

// UseCase login y alta de operadores.
type UseCase struct {
	usuarios repository.UsuarioRepository
	cfg      config.JWTConfig
	log      *logger.Logger
}

func NewUseCase(usuarios repository.UsuarioRepository, cfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{usuarios: usuarios, cfg: cfg, log: log.Componente("auth")}
}

// Login valida credenciales y devuelve un JWT. Credencial inválida y usuario
// inexistente responden el mismo error para no filtrar qué emails existen.
func (u *UseCase) Login(ctx context.Context, email, password string) (string, *entity.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("credenciales", "email y contraseña son requeridos")
	}

	usuario, err := u.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, &domain.StoreError{Operacion: "buscar_usuario", Err: err}
	}
	if usuario == nil || usuario.Estado != EstadoActivo {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		u.log.Warn().Str("email", email).Msg("intento de login con contraseña inválida")
		return "", nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(u.cfg.Secret, usuario.ID, usuario.Email, u.cfg.Issuer, u.cfg.Expiration)
	if err != nil {
		return "", nil, err
	}
	return token, usuario, nil
}

// Registrar crea un operador nuevo con la contraseña hasheada.
func (u *UseCase) Registrar(ctx context.Context, email, password, nombre string) (*entity.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("email", "email inválido")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "la contraseña debe tener al menos 8 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &entity.Usuario{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       strings.TrimSpace(nombre),
		Estado:       EstadoActivo,
	}
	if err := u.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	u.log.Info().Str("email", email).Msg("operador registrado")
	return usuario, nil
}
