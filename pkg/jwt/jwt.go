package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token. El kind viaja firmado en el payload para que un access token
// no pueda usarse en el endpoint de refresh ni al revés.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más el discriminador de tipo de token.
type Claims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind"`
}

// Generate genera un token JWT firmado (HS256) con subject, kind y expiración absoluta.
// El jti (uuid) garantiza que dos tokens emitidos en el mismo segundo sean distintos.
func Generate(secret, subject, kind, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if kind != KindAccess && kind != KindRefresh {
		return "", fmt.Errorf("jwt: kind desconocido %q", kind)
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Kind: kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, expiración y kind, y devuelve el subject (user ID).
// Retorna error si el token es inválido, expirado, con firma incorrecta
// o si el kind no coincide con el esperado.
func Parse(secret, tokenString, wantKind string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Kind != wantKind {
		return "", fmt.Errorf("tipo de token inesperado: %q", claims.Kind)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token sin subject")
	}
	return claims.Subject, nil
}
