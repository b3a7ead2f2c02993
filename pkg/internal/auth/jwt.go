package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Claims is what the authentication collaborator signs into its access
// tokens. The subject is the canonical username.
type Claims struct {
	jwt.RegisteredClaims

	Nick   string `json:"nick,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func jwtSecret() []byte {
	return []byte(viper.GetString("security.jwt_secret"))
}

func ReadToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, fmt.Errorf("invalid token")
	}
	if len(claims.Subject) == 0 {
		return claims, fmt.Errorf("token has no subject")
	}

	return claims, nil
}

// NewToken is mostly for tests and local setups; in production the
// authentication collaborator issues the tokens this service verifies.
func NewToken(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}
