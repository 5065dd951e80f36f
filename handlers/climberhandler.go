package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"climbing-profiles-server/db"
	"climbing-profiles-server/internals"
	"climbing-profiles-server/model"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var validate = validator.New()

func HandleClimbers(w http.ResponseWriter, r *http.Request) {
	// collection endpoint, everything deeper carries a climber id
	if r.URL.Path == "/climbers/" || r.URL.Path == "/climbers" {
		switch r.Method {
		case "GET":
			getAllClimbers(w, r)
		case "POST":
			addClimber(w, r)
		default:
			logrus.Println("HandleClimbers received an unsupported method")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case "GET":
		getClimberById(w, r)
	case "PUT":
		updateClimber(w, r)
	case "DELETE":
		deleteClimber(w, r)
	default:
		logrus.Println("HandleClimbers received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getAllClimbers(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := parsePagination(w, r)
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climbers, err := climberDAO.GetAllClimbers(skip, limit)
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

	encodeJSON(w, http.StatusOK, climbers)
}

func getClimberById(w http.ResponseWriter, r *http.Request) {
	id, ok := pathSegmentID(w, r, 2, "climber ID")
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climber, err := climberDAO.GetClimberById(id)
	if err != nil {
		logrus.Println("Climber not found: ", err)
		http.Error(w, "Climber not found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, climber)
}

func addClimber(w http.ResponseWriter, r *http.Request) {
	_, ok := authenticateRequest(w, r)
	if !ok {
		return
	}

	var climber model.Climber
	err := json.NewDecoder(r.Body).Decode(&climber)
	if err != nil {
		logrus.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			logrus.Println("Error closing request body: ", err)
		}
	}()

	err = validate.Struct(climber)
	if err != nil {
		logrus.Println("Invalid climber data: ", err)
		http.Error(w, "Missing or invalid required fields", http.StatusBadRequest)
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climber, err = climberDAO.AddClimber(climber)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Println("Climber already exists: ", err)
			http.Error(w, "Climber already exists", http.StatusConflict)
			return
		}
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Failed to create the climber", http.StatusInternalServerError)
		return
	}

	encodeJSON(w, http.StatusCreated, climber)
}

func updateClimber(w http.ResponseWriter, r *http.Request) {
	_, ok := authenticateRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathSegmentID(w, r, 2, "climber ID")
	if !ok {
		return
	}

	// get the climber
	climberDAO := db.NewClimberDAO(db.GetDB())
	climber, err := climberDAO.GetClimberById(id)
	if err != nil {
		logrus.Println("Climber not found: ", err)
		http.Error(w, "Climber not found", http.StatusNotFound)
		return
	}

	var updateData model.ClimberUpdate
	err = json.NewDecoder(r.Body).Decode(&updateData)
	if err != nil {
		logrus.Println("Error while decoding JSON: ", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			logrus.Println("Error closing request body: ", err)
		}
	}()

	if updateData.Sex != nil && *updateData.Sex != 0 && *updateData.Sex != 1 {
		logrus.Println("Invalid sex value")
		http.Error(w, "Invalid sex value, must be 0 or 1", http.StatusBadRequest)
		return
	}

	applyClimberUpdate(&climber, updateData)

	err = climberDAO.UpdateClimber(climber)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// reload so the response reflects what is actually stored
	climber, err = climberDAO.GetClimberById(id)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	encodeJSON(w, http.StatusOK, climber)
}

// applyClimberUpdate merges only the fields present in the update payload.
func applyClimberUpdate(climber *model.Climber, updateData model.ClimberUpdate) {
	if updateData.Country != nil && *updateData.Country != "" {
		climber.Country = *updateData.Country
	}
	if updateData.Sex != nil {
		climber.Sex = *updateData.Sex
	}
	if updateData.Height != nil {
		climber.Height = *updateData.Height
	}
	if updateData.Weight != nil {
		climber.Weight = *updateData.Weight
	}
	if updateData.Age != nil {
		climber.Age = *updateData.Age
	}
	if updateData.YearsCl != nil {
		climber.YearsCl = *updateData.YearsCl
	}
	if updateData.DateFirst != nil {
		climber.DateFirst = *updateData.DateFirst
	}
	if updateData.DateLast != nil {
		climber.DateLast = *updateData.DateLast
	}
	if updateData.GradesCount != nil {
		climber.GradesCount = *updateData.GradesCount
	}
	if updateData.GradesFirst != nil {
		climber.GradesFirst = *updateData.GradesFirst
	}
	if updateData.GradesLast != nil {
		climber.GradesLast = *updateData.GradesLast
	}
	if updateData.GradesMax != nil {
		climber.GradesMax = *updateData.GradesMax
	}
	if updateData.GradesMean != nil {
		climber.GradesMean = *updateData.GradesMean
	}
	if updateData.YearFirst != nil {
		climber.YearFirst = *updateData.YearFirst
	}
	if updateData.YearLast != nil {
		climber.YearLast = *updateData.YearLast
	}
}

func deleteClimber(w http.ResponseWriter, r *http.Request) {
	_, ok := authenticateRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathSegmentID(w, r, 2, "climber ID")
	if !ok {
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	deleted, err := climberDAO.DeleteClimber(id)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		logrus.Println("Climber not found")
		http.Error(w, "Climber not found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]string{"message": "Climber deleted successfully"})
}

func HandleClimberCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	countries, err := climberDAO.GetDistinctCountries()
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	encodeJSON(w, http.StatusOK, countries)
}

func HandleClimbersBySex(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	sexStr := r.URL.Query().Get("sex")
	if sexStr != "0" && sexStr != "1" {
		logrus.Println("Invalid sex value")
		http.Error(w, "Invalid sex value, must be 0 or 1", http.StatusBadRequest)
		return
	}
	sex := 0
	if sexStr == "1" {
		sex = 1
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climbers, err := climberDAO.GetClimbersBySex(sex)
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

	encodeJSON(w, http.StatusOK, climbers)
}

func HandleClimbersByExperience(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	minYears := 0
	if minStr := r.URL.Query().Get("min_years"); minStr != "" {
		value, err := atoiParam(w, minStr, "min_years")
		if err != nil {
			return
		}
		minYears = value
	}
	if minYears < 0 {
		logrus.Println("Invalid experience range")
		http.Error(w, "min_years must not be negative", http.StatusBadRequest)
		return
	}

	// no upper bound when max_years is absent
	var maxYears *int
	if maxStr := r.URL.Query().Get("max_years"); maxStr != "" {
		value, err := atoiParam(w, maxStr, "max_years")
		if err != nil {
			return
		}
		maxYears = &value
	}
	if maxYears != nil && *maxYears < minYears {
		logrus.Println("Invalid experience range")
		http.Error(w, "max_years must not be lower than min_years", http.StatusBadRequest)
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climbers, err := climberDAO.GetClimbersByYearsClimbing(minYears, maxYears)
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

	encodeJSON(w, http.StatusOK, climbers)
}

func HandleClimbersByCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	country := r.URL.Query().Get("country")
	if country == "" {
		country = "FRA"
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	climbers, err := climberDAO.GetClimbersByCountry(country)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(climbers) == 0 {
		logrus.Println("No climbers found for country " + country)
		http.Error(w, "No climbers found for country '"+country+"'", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, climbers)
}

func HandleClimbersByHeight(w http.ResponseWriter, r *http.Request) {
	rangeFilterClimbers(w, r, "min_height", "max_height", 190, 200,
		db.NewClimberDAO(db.GetDB()).GetClimbersByHeight)
}

func HandleClimbersByWeight(w http.ResponseWriter, r *http.Request) {
	rangeFilterClimbers(w, r, "min_weight", "max_weight", 90, 100,
		db.NewClimberDAO(db.GetDB()).GetClimbersByWeight)
}

func HandleClimbersByAge(w http.ResponseWriter, r *http.Request) {
	rangeFilterClimbers(w, r, "min_age", "max_age", 55, 58,
		db.NewClimberDAO(db.GetDB()).GetClimbersByAge)
}

// rangeFilterClimbers implements the shared inclusive-range filter
// contract for height, weight and age.
func rangeFilterClimbers(w http.ResponseWriter, r *http.Request, minName, maxName string,
	defaultMin, defaultMax float64, query func(float64, float64) ([]model.Climber, error)) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	minValue, ok := parseFloatParam(w, r, minName, defaultMin)
	if !ok {
		return
	}
	maxValue, ok := parseFloatParam(w, r, maxName, defaultMax)
	if !ok {
		return
	}
	if minValue < 0 {
		logrus.Println("Invalid range")
		http.Error(w, minName+" must not be negative", http.StatusBadRequest)
		return
	}
	if maxValue < minValue {
		logrus.Println("Invalid range")
		http.Error(w, maxName+" must not be lower than "+minName, http.StatusBadRequest)
		return
	}

	climbers, err := query(minValue, maxValue)
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

	encodeJSON(w, http.StatusOK, climbers)
}

func HandleYoungestClimbers(w http.ResponseWriter, r *http.Request) {
	sortedClimbers(w, r, func(limit int) ([]model.Climber, error) {
		return db.NewClimberDAO(db.GetDB()).GetClimbersSortedByAge(limit, true)
	})
}

func HandleOldestClimbers(w http.ResponseWriter, r *http.Request) {
	sortedClimbers(w, r, func(limit int) ([]model.Climber, error) {
		return db.NewClimberDAO(db.GetDB()).GetClimbersSortedByAge(limit, false)
	})
}

func HandleShortestClimbers(w http.ResponseWriter, r *http.Request) {
	sortedClimbers(w, r, func(limit int) ([]model.Climber, error) {
		return db.NewClimberDAO(db.GetDB()).GetClimbersSortedByHeight(limit, true)
	})
}

func HandleTallestClimbers(w http.ResponseWriter, r *http.Request) {
	sortedClimbers(w, r, func(limit int) ([]model.Climber, error) {
		return db.NewClimberDAO(db.GetDB()).GetClimbersSortedByHeight(limit, false)
	})
}

func sortedClimbers(w http.ResponseWriter, r *http.Request, query func(int) ([]model.Climber, error)) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	limit, ok := parseLimit(w, r, 10)
	if !ok {
		return
	}

	climbers, err := query(limit)
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

	encodeJSON(w, http.StatusOK, climbers)
}

func HandleClimberCountByCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	climberDAO := db.NewClimberDAO(db.GetDB())
	counts, err := climberDAO.GetClimberCountByCountry()
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
