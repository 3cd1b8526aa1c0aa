package server

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const nonceLifetime = 24 * time.Hour

// Nonces issues and checks the tokens the picker script must send with
// every AJAX action. Tokens are HMAC-signed and expire after a day, like
// the admin nonces they replace.
type Nonces struct {
	secret []byte
}

// NewNonces builds the service. An empty secret gets a random one, which
// means a restart invalidates outstanding nonces; set nonce_secret to keep
// them valid across restarts.
func NewNonces(secret string) *Nonces {
	if secret == "" {
		secret = uuid.New().String()
	}
	return &Nonces{secret: []byte(secret)}
}

func (n *Nonces) Issue() (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Id:        uuid.New().String(),
		Subject:   "canto_field_ajax",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(nonceLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(n.secret)
}

func (n *Nonces) Verify(token string) bool {
	if token == "" {
		return false
	}
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return n.secret, nil
	})
	return err == nil && parsed.Valid && claims.Subject == "canto_field_ajax"
}
