package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTTL = 24 * time.Hour

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies admin tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *Codec) Issue(subject, role string) (string, error) {
	if len(c.secret) == 0 {
		return "", errors.New("jwt secret not set")
	}
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.secret)
}

// Parse returns the claims of a valid token. Any failure yields false, never an error.
func (c *Codec) Parse(tokenStr string) (*Claims, bool) {
	if tokenStr == "" || len(c.secret) == 0 {
		return nil, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
