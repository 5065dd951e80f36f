package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Shared query/path parsing for the handler package. Each helper writes
// the 400 response itself and reports ok=false so callers can just return.

func parsePagination(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	skip := 0
	limit := 10

	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		value, err := strconv.Atoi(skipStr)
		if err != nil || value < 0 {
			logrus.Println("Invalid skip value")
			http.Error(w, "Invalid skip value", http.StatusBadRequest)
			return 0, 0, false
		}
		skip = value
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		value, err := strconv.Atoi(limitStr)
		if err != nil {
			logrus.Println("Invalid limit value")
			http.Error(w, "Invalid limit value", http.StatusBadRequest)
			return 0, 0, false
		}
		limit = value
	}

	if limit <= 0 {
		logrus.Println("Limit must be greater than 0")
		http.Error(w, "Limit must be greater than 0", http.StatusBadRequest)
		return 0, 0, false
	}

	return skip, limit, true
}

func parseLimit(w http.ResponseWriter, r *http.Request, defaultLimit int) (int, bool) {
	limit := defaultLimit

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		value, err := strconv.Atoi(limitStr)
		if err != nil {
			logrus.Println("Invalid limit value")
			http.Error(w, "Invalid limit value", http.StatusBadRequest)
			return 0, false
		}
		limit = value
	}

	if limit <= 0 {
		logrus.Println("Limit must be greater than 0")
		http.Error(w, "Limit must be greater than 0", http.StatusBadRequest)
		return 0, false
	}

	return limit, true
}

// atoiParam converts a non-empty query value, writing the 400 itself.
func atoiParam(w http.ResponseWriter, valueStr string, name string) (int, error) {
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Println("Invalid " + name + " value")
		http.Error(w, "Invalid "+name+" value", http.StatusBadRequest)
		return 0, err
	}
	return value, nil
}

func parseFloatParam(w http.ResponseWriter, r *http.Request, name string, defaultValue float64) (float64, bool) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return defaultValue, true
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logrus.Println("Invalid " + name + " value")
		http.Error(w, "Invalid "+name+" value", http.StatusBadRequest)
		return 0, false
	}

	return value, true
}

// parseMaxAge reads the optional dashboard age cutoff; nil means no filter.
func parseMaxAge(w http.ResponseWriter, r *http.Request) (*float64, bool) {
	maxAgeStr := r.URL.Query().Get("max_age")
	if maxAgeStr == "" {
		return nil, true
	}

	maxAge, err := strconv.ParseFloat(maxAgeStr, 64)
	if err != nil || maxAge < 0 {
		logrus.Println("Invalid max_age value")
		http.Error(w, "Invalid max_age value", http.StatusBadRequest)
		return nil, false
	}

	return &maxAge, true
}

// pathSegmentID extracts a positive integer id from the given path
// segment, e.g. segment 2 of /climbers/{id}.
func pathSegmentID(w http.ResponseWriter, r *http.Request, segment int, label string) (int, bool) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) <= segment || parts[segment] == "" {
		logrus.Println("Invalid path")
		http.Error(w, label+" not provided", http.StatusBadRequest)
		return 0, false
	}

	id, err := strconv.Atoi(parts[segment])
	if err != nil || id <= 0 {
		logrus.Println("Invalid " + label)
		http.Error(w, "Invalid "+label, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func pathSegment(w http.ResponseWriter, r *http.Request, segment int, label string) (string, bool) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) <= segment || parts[segment] == "" {
		logrus.Println("Invalid path")
		http.Error(w, label+" is required", http.StatusBadRequest)
		return "", false
	}

	return parts[segment], true
}

func encodeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		logrus.Println("Error encoding JSON: ", err)
	}
}
