package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do access token (RBAC simples via Admin).
type Claims struct {
	InvestidorID uint `json:"investidorId"`
	Admin        bool `json:"admin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token.
const TTLAcesso = 15 * time.Minute

const emissor = "api-imoveis"

var segredo []byte

// Configurar define o segredo HMAC usado para assinar e validar tokens.
// Deve ser chamado uma vez na subida do serviço, antes de qualquer
// GerarToken/ValidarToken.
func Configurar(chave string) error {
	if chave == "" {
		return errors.New("JWT_SECRET não configurado")
	}
	segredo = []byte(chave)
	return nil
}

// GerarToken emite um JWT HS256 com iss, sub, iat, nbf, exp e jti.
func GerarToken(investidorID uint, admin bool) (string, error) {
	if len(segredo) == 0 {
		return "", errors.New("segredo JWT não configurado")
	}

	agora := time.Now()
	claims := &Claims{
		InvestidorID: investidorID,
		Admin:        admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    emissor,
			Subject:   fmt.Sprint(investidorID),
			ExpiresAt: jwt.NewNumericDate(agora.Add(TTLAcesso)),
			IssuedAt:  jwt.NewNumericDate(agora),
			NotBefore: jwt.NewNumericDate(agora.Add(-1 * time.Minute)),
			ID:        fmt.Sprintf("%d-%d", investidorID, agora.UnixNano()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(segredo)
}

// ValidarToken confere assinatura, emissor e expiração.
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if len(segredo) == 0 {
			return nil, errors.New("segredo JWT não configurado")
		}
		return segredo, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if claims.Issuer != emissor {
		return nil, errors.New("emissor inválido")
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}
	return claims, nil
}
