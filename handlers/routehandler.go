package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"climbing-profiles-server/db"
	"climbing-profiles-server/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func HandleRoutes(w http.ResponseWriter, r *http.Request) {
	// collection endpoint, everything deeper carries a route id
	if r.URL.Path == "/routes/" || r.URL.Path == "/routes" {
		switch r.Method {
		case "GET":
			getAllRoutes(w, r)
		case "POST":
			addRoute(w, r)
		default:
			logrus.Println("HandleRoutes received an unsupported method")
			http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case "GET":
		getRouteById(w, r)
	case "PUT":
		updateRoute(w, r)
	case "DELETE":
		deleteRoute(w, r)
	default:
		logrus.Println("HandleRoutes received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getAllRoutes(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := parsePagination(w, r)
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	routes, err := routeDAO.GetAllRoutes(skip, limit)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(routes) == 0 {
		logrus.Println("No routes found")
		http.Error(w, "No routes found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, routes)
}

func getRouteById(w http.ResponseWriter, r *http.Request) {
	nameID, ok := pathSegmentID(w, r, 2, "route ID")
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	route, err := routeDAO.GetRouteById(nameID)
	if err != nil {
		logrus.Println("Route not found: ", err)
		http.Error(w, "Route not found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, route)
}

func addRoute(w http.ResponseWriter, r *http.Request) {
	_, ok := authenticateRequest(w, r)
	if !ok {
		return
	}

	// the recommendation sum keeps its sentinel when the payload omits it
	route := model.Route{TallRecommendSum: -1}
	err := json.NewDecoder(r.Body).Decode(&route)
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

	err = validate.Struct(route)
	if err != nil {
		logrus.Println("Invalid route data: ", err)
		http.Error(w, "Missing or invalid required fields", http.StatusBadRequest)
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	route, err = routeDAO.AddRoute(route)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Println("Route already exists: ", err)
			http.Error(w, "Route already exists", http.StatusConflict)
			return
		}
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Failed to create the route", http.StatusInternalServerError)
		return
	}

	encodeJSON(w, http.StatusCreated, route)
}

func updateRoute(w http.ResponseWriter, r *http.Request) {
	_, ok := authenticateRequest(w, r)
	if !ok {
		return
	}

	nameID, ok := pathSegmentID(w, r, 2, "route ID")
	if !ok {
		return
	}

	// get the route
	routeDAO := db.NewRouteDAO(db.GetDB())
	route, err := routeDAO.GetRouteById(nameID)
	if err != nil {
		logrus.Println("Route not found: ", err)
		http.Error(w, "Route not found", http.StatusNotFound)
		return
	}

	var updateData model.RouteUpdate
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

	applyRouteUpdate(&route, updateData)

	err = routeDAO.UpdateRoute(route)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// reload so the response reflects what is actually stored
	route, err = routeDAO.GetRouteById(nameID)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	encodeJSON(w, http.StatusOK, route)
}

// applyRouteUpdate merges only the fields present in the update payload.
func applyRouteUpdate(route *model.Route, updateData model.RouteUpdate) {
	if updateData.Country != nil && *updateData.Country != "" {
		route.Country = *updateData.Country
	}
	if updateData.Crag != nil && *updateData.Crag != "" {
		route.Crag = *updateData.Crag
	}
	if updateData.Sector != nil && *updateData.Sector != "" {
		route.Sector = *updateData.Sector
	}
	if updateData.Name != nil && *updateData.Name != "" {
		route.Name = *updateData.Name
	}
	if updateData.TallRecommendSum != nil {
		route.TallRecommendSum = *updateData.TallRecommendSum
	}
	if updateData.GradeMean != nil {
		route.GradeMean = *updateData.GradeMean
	}
	if updateData.Cluster != nil {
		route.Cluster = *updateData.Cluster
	}
	if updateData.RatingTot != nil {
		route.RatingTot = *updateData.RatingTot
	}
}

func deleteRoute(w http.ResponseWriter, r *http.Request) {
	_, ok := authenticateRequest(w, r)
	if !ok {
		return
	}

	nameID, ok := pathSegmentID(w, r, 2, "route ID")
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	deleted, err := routeDAO.DeleteRoute(nameID)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		logrus.Println("Route not found")
		http.Error(w, "Route not found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, map[string]string{"message": "Route deleted successfully"})
}

func HandleRoutesByCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	country, ok := pathSegment(w, r, 3, "Country name")
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	routes, err := routeDAO.GetRoutesByCountry(country)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(routes) == 0 {
		logrus.Println("No routes found for country " + country)
		http.Error(w, "No routes found for country '"+country+"'", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, routes)
}

func HandleTopRoutesByGrade(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	limit, ok := parseLimit(w, r, 10)
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	routes, err := routeDAO.GetTopRoutesByGrade(limit)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(routes) == 0 {
		logrus.Println("No top routes found")
		http.Error(w, "No top routes found", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, routes)
}

func HandleBestRoutesByCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		logrus.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	country, ok := pathSegment(w, r, 3, "Country name")
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, 1)
	if !ok {
		return
	}

	routeDAO := db.NewRouteDAO(db.GetDB())
	routes, err := routeDAO.GetBestRoutesByCountry(country, limit)
	if err != nil {
		logrus.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(routes) == 0 {
		logrus.Println("No routes found for country " + country)
		http.Error(w, "No routes found for country '"+country+"'", http.StatusNotFound)
		return
	}

	encodeJSON(w, http.StatusOK, routes)
}
