package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims is what the API trusts from a bearer token: the user and
// the session it was minted for. The session row stays authoritative,
// so logging out revokes tokens immediately.
type AccessClaims struct {
	UserID    string
	SessionID string
}

func SignAccessToken(secret string, userID, sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"sid": sessionID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseAccessToken(secret, tokenString string) (*AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok1 := claims["sub"].(string)
	sid, ok2 := claims["sid"].(string)
	if !ok1 || !ok2 || sub == "" || sid == "" {
		return nil, ErrInvalidToken
	}

	return &AccessClaims{UserID: sub, SessionID: sid}, nil
}
