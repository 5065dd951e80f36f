package handlers

import (
	"net/http"

	"climbing-profiles-server/db"
	"github.com/sirupsen/logrus"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		resetTestDatabase(w, r)
	default:
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func resetTestDatabase(w http.ResponseWriter, r *http.Request) {
	err := db.ResetTestDatabase()
	if err != nil {
		logrus.Println("Error resetting test database: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]string{"message": "Test database reset"})
}
