package main

import (
	"flag"
	"os"

	"climbing-profiles-server/db"
	"climbing-profiles-server/externals"
	"climbing-profiles-server/logger"
	"climbing-profiles-server/mockservers"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		logrus.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	logger.InitLogger(testMode)

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		logrus.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			logrus.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// init token verification
	externals.InitAuthApi(testMode)

	// in test mode, run a local token issuer in a new go routine
	if testMode == "test" {
		go mockservers.StartTokenApiServer()
	}

	// setup routes
	SetupRoutes(*port)
}
