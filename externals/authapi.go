package externals

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// TokenVerifier validates a bearer token and returns its claims. The
// claims carry at least a "user_id" entry identifying the caller.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (jwt.MapClaims, error)
}

var (
	verifier TokenVerifier
	once     sync.Once
)

func InitAuthApi(testModeArg string) {
	once.Do(func() {
		if testModeArg == "real" {
			secret := os.Getenv("AUTH_SECRET")
			if secret == "" {
				logrus.Fatal("AUTH_SECRET environment variable is not set")
			}
			verifier = NewJWTVerifier([]byte(secret))
		} else {
			// if test mode, accept every token with a fake user id
			verifier = stubVerifier{}
		}
	})
}

// SetVerifier replaces the token verifier, used by unit tests.
func SetVerifier(v TokenVerifier) {
	verifier = v
}

func VerifyBearerToken(ctx context.Context, token string) (jwt.MapClaims, error) {
	if verifier == nil {
		return nil, errors.New("token verifier not initialized")
	}
	return verifier.VerifyToken(ctx, token)
}

type jwtVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret []byte) TokenVerifier {
	return &jwtVerifier{secret: secret}
}

func (v *jwtVerifier) VerifyToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid authorization token")
	}

	return claims, nil
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	return jwt.MapClaims{"user_id": "test_user_id"}, nil
}
