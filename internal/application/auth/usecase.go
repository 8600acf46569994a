package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/internal/domain"
	"github.com/amartindev/TenjoConecta/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación del administrador. El directorio tiene exactamente un
// administrador, fijado por configuración; cualquier otro email es rechazado
// sin comparar contraseñas.
type UseCase struct {
	adminEmail        string
	adminPasswordHash string
	jwtCfg            JWTConfig
}

// NewUseCase construye el caso de uso de auth con la identidad del admin.
func NewUseCase(adminEmail, adminPasswordHash string, jwtCfg JWTConfig) *UseCase {
	return &UseCase{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: adminPasswordHash,
		jwtCfg:            jwtCfg,
	}
}

// Login verifica email y contraseña contra la identidad configurada y genera
// el token de sesión. Email desconocido y contraseña incorrecta devuelven el
// mismo error para no filtrar cuál de los dos falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || email != uc.adminEmail {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.adminPasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.adminEmail, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Email: uc.adminEmail}, nil
}

// AdminEmail devuelve el email configurado del administrador (para el middleware).
func (uc *UseCase) AdminEmail() string {
	return uc.adminEmail
}
