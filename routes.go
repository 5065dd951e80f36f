package main

import (
	"net/http"

	"climbing-profiles-server/handlers"
	"climbing-profiles-server/middleware"
	"github.com/sirupsen/logrus"
)

// origins of the local web frontends
var allowedOrigins = []string{
	"http://localhost:4200",
	"http://localhost:3000",
	"http://localhost:3001",
}

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/climbers/", handlers.HandleClimbers)
	mux.HandleFunc("/climbers/countries/", handlers.HandleClimberCountries)
	mux.HandleFunc("/climbers/count_by_country/", handlers.HandleClimberCountByCountry)
	mux.HandleFunc("/climbers/filter_by_sex/", handlers.HandleClimbersBySex)
	mux.HandleFunc("/climbers/filter_experience/", handlers.HandleClimbersByExperience)
	mux.HandleFunc("/climbers/by_country/", handlers.HandleClimbersByCountry)
	mux.HandleFunc("/climbers/filter_height/", handlers.HandleClimbersByHeight)
	mux.HandleFunc("/climbers/filter_weight/", handlers.HandleClimbersByWeight)
	mux.HandleFunc("/climbers/filter_age/", handlers.HandleClimbersByAge)
	mux.HandleFunc("/climbers/youngest/", handlers.HandleYoungestClimbers)
	mux.HandleFunc("/climbers/oldest/", handlers.HandleOldestClimbers)
	mux.HandleFunc("/climbers/tallest/", handlers.HandleTallestClimbers)
	mux.HandleFunc("/climbers/shortest/", handlers.HandleShortestClimbers)

	// dashboard endpoints, registered with and without the trailing slash
	// because the frontend calls them without one
	mux.HandleFunc("/BarChart_Climbers_Genders", handlers.HandleGenderDistribution)
	mux.HandleFunc("/BarChart_Climbers_Genders/", handlers.HandleGenderDistribution)
	mux.HandleFunc("/PieChart_Climbers_Genders", handlers.HandleGenderDistribution)
	mux.HandleFunc("/PieChart_Climbers_Genders/", handlers.HandleGenderDistribution)
	mux.HandleFunc("/PieChart_Climbers_Experience", handlers.HandleExperienceDistribution)
	mux.HandleFunc("/PieChart_Climbers_Experience/", handlers.HandleExperienceDistribution)
	mux.HandleFunc("/PieChart_Climbers_Countries", handlers.HandleCountryDistribution)
	mux.HandleFunc("/PieChart_Climbers_Countries/", handlers.HandleCountryDistribution)
	mux.HandleFunc("/scatterGradesByAge", handlers.HandleGradesByAge)
	mux.HandleFunc("/scatterGradesByAge/", handlers.HandleGradesByAge)

	mux.HandleFunc("/routes/", handlers.HandleRoutes)
	mux.HandleFunc("/routes/country/", handlers.HandleRoutesByCountry)
	mux.HandleFunc("/routes/top/", handlers.HandleTopRoutesByGrade)
	mux.HandleFunc("/routes/best_by_country/", handlers.HandleBestRoutesByCountry)

	mux.HandleFunc("/users/", handlers.HandleUsers)

	mux.HandleFunc("/api", handlers.HandleApi)
	mux.HandleFunc("/api/headers", handlers.HandleApiHeaders)
	mux.HandleFunc("/health", handlers.HandleHealth)
	mux.Handle("/metrics", middleware.MetricsHandler())
	mux.HandleFunc("/", handlers.HandleRoot)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	cors := middleware.NewCORSMiddleware(allowedOrigins)
	handler := middleware.Metrics(cors.Handler(mux))

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	logrus.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
