package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"climbing-profiles-server/externals"
	"github.com/sirupsen/logrus"
)

// authenticateRequest enforces the bearer-token contract: a missing
// Authorization header is 401, a malformed or unverifiable token is 403.
// On success it returns the user identifier carried by the token claims,
// which may be empty when the issuer put none in. The error response has
// already been written when ok is false.
func authenticateRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logrus.Println("Authorization header missing")
		http.Error(w, "Authorization header missing", http.StatusUnauthorized)
		return "", false
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		logrus.Println("Malformed authorization header")
		http.Error(w, "Invalid authorization token", http.StatusForbidden)
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := externals.VerifyBearerToken(r.Context(), token)
	if err != nil {
		logrus.Println("Invalid authorization token: ", err)
		http.Error(w, "Invalid authorization token", http.StatusForbidden)
		return "", false
	}

	return userIDFromClaims(claims), true
}

// userIDFromClaims tolerates issuers that encode the user id as a string
// or as a JSON number.
func userIDFromClaims(claims map[string]interface{}) string {
	switch id := claims["user_id"].(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}
