package user

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenDuration = 72 * time.Hour

type JwtCustomClaims struct {
	Id string `json:"id"`
	jwt.RegisteredClaims
}

var GenerateJWT = func(id string) (string, time.Time, error) {
	expires := time.Now().Add(TokenDuration)
	claims := JwtCustomClaims{
		Id: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	return signed, expires, err
}
