package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos pelo par access/refresh.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// FarmaciaID permite ao middleware resolver o escopo do tenant sem consultar a DB;
// fica vazio quando o usuário ainda não possui farmácia associada.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	FarmaciaID string `json:"farmacia_id"`
	TokenType  string `json:"token_type"` // "access" | "refresh"
}

// Pair par de tokens emitidos no login/registro.
type Pair struct {
	Access  string
	Refresh string
}

// GeneratePair gera os tokens access e refresh assinados com HS256.
func GeneratePair(secret, userID, farmaciaID, issuer string, accessMin, refreshHours int) (*Pair, error) {
	access, err := generate(secret, userID, farmaciaID, issuer, TokenTypeAccess, time.Duration(accessMin)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := generate(secret, userID, farmaciaID, issuer, TokenTypeRefresh, time.Duration(refreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

func generate(secret, userID, farmaciaID, issuer, tokenType string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:     userID,
		FarmaciaID: farmaciaID,
		TokenType:  tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve os claims.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseAccess valida o token e exige que seja do tipo access.
func ParseAccess(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token não é de acesso")
	}
	return claims, nil
}

// ParseRefresh valida o token e exige que seja do tipo refresh (rota /token/refresh).
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token não é de refresh")
	}
	return claims, nil
}
