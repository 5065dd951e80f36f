package handlers

import (
	"net/http"

	"climbing-profiles-server/db"
	"climbing-profiles-server/internals"
	"github.com/sirupsen/logrus"
)

// Dashboard endpoints feeding the charts of the web frontend. All accept
// an optional max_age cutoff; without it the whole population is counted.

func HandleGenderDistribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	maxAge, ok := parseMaxAge(w, r)
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	counts, err := climberDAO.GetClimberCountBySex(maxAge)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if counts["0"] == 0 && counts["1"] == 0 {
		logrus.Println("No climbers found")
		http.Error(w, "No climbers found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, counts)
}

func HandleExperienceDistribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	maxAge, ok := parseMaxAge(w, r)
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climbers, err := climberDAO.GetClimbersUpToAge(maxAge)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(climbers) == 0 {
		logrus.Println("No climbers found")
		http.Error(w, "No climbers found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, internals.ComputeExperienceBuckets(climbers))
}

func HandleCountryDistribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	maxAge, ok := parseMaxAge(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, 10)
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	counts, err := climberDAO.GetTopCountriesByCount(maxAge, limit)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(counts) == 0 {
		logrus.Println("No climbers found")
		http.Error(w, "No climbers found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, internals.CountryCountsToMap(counts))
}

func HandleGradesByAge(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	maxAge, ok := parseMaxAge(w, r)
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	points, err := climberDAO.GetAverageGradeMaxByAge(maxAge)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(points) == 0 {
		logrus.Println("No climbers found")
		http.Error(w, "No climbers found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, points)
}
