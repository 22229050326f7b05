// Package auth implementa la puerta de autenticación de la consola: un único
// usuario operador configurado por entorno (hash bcrypt) y tokens JWT.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/domain"
	"github.com/gestock/gestock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credential credencial del operador: el hash bcrypt viene de configuración,
// nunca la contraseña en claro.
type Credential struct {
	Username     string
	PasswordHash string
}

// AuthUseCase caso de uso de autenticación (login).
type AuthUseCase struct {
	credential Credential
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(credential Credential, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credential: credential, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña contra la credencial configurada y genera
// el JWT. Devuelve ErrUnauthorized sin distinguir usuario o contraseña mala.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.credential.Username || uc.credential.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.credential.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: in.Username}, nil
}
