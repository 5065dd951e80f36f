package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func HandleRoot(w http.ResponseWriter, r *http.Request) {
	// the "/" pattern is a catch-all, reject anything but the root itself
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Welcome to the Climbing Profiles & Routes API",
		"description": "Explore climber profiles and climbing routes from around the world!",
		"endpoints": map[string]string{
			"/api":         "Basic Hello API",
			"/health":      "API Health Check",
			"/api/headers": "Decode custom headers",
		},
	})
}

func HandleApi(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]string{"Hello": "Api"})
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]string{"message": "Api is running fine!"})
}

// HandleApiHeaders decodes the base64 JSON payload of the X-Userinfo
// header, a debugging aid for gateway setups that inject identity headers.
func HandleApiHeaders(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userInfo := r.Header.Get("X-Userinfo")
	if userInfo == "" {
		logrus.Println("X-Userinfo header missing")
		http.Error(w, "X-Userinfo header missing", http.StatusBadRequest)
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(userInfo)
	if err != nil {
		logrus.Println("Invalid X-Userinfo header: ", err)
		http.Error(w, "Invalid X-Userinfo header", http.StatusBadRequest)
		return
	}

	var headers map[string]interface{}
	err = json.Unmarshal(decoded, &headers)
	if err != nil {
		logrus.Println("Invalid X-Userinfo header: ", err)
		http.Error(w, "Invalid X-Userinfo header", http.StatusBadRequest)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]interface{}{"Headers": headers})
}
