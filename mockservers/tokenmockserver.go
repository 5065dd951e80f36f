package mockservers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// StartTokenApiServer runs a local stand-in for the identity service. It
// issues signed bearer tokens so the frontend can exercise the protected
// endpoints without a real issuer.
func StartTokenApiServer() {
	http.HandleFunc("/token", TokenApiHandler)

	fmt.Println("Token API server starting on port 8081")

	err := http.ListenAndServe(":8081", nil)
	if err != nil {
		// fatal condition
		logrus.Fatal("Failed to start Token API server")
	}
}

func TokenApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		secret = "test_secret"
	}

	claims := jwt.MapClaims{
		"user_id": "test_user_id",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.Println("Error signing token: ", err)
		http.Error(w, "error while signing the token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(map[string]string{
		"access_token": signed,
		"token_type":   "bearer",
	})
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
