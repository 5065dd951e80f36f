package db

import (
	"fmt"
	"os"

	"climbing-profiles-server/model"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB
var testMode string

func InitDB(testModeArg string) (*gorm.DB, error) {
	// save testMode
	testMode = testModeArg

	err := godotenv.Load()
	if err != nil {
		logrus.Fatal("Error loading .env file")
	}

	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")

	var dsn string
	if testMode == "real" {
		dsn = "host=localhost user=" + user + " password=" + password + " dbname=climbing_db port=5432 sslmode=disable"
	} else if testMode == "test" {
		dsn = "host=localhost user=" + user + " password=" + password + " dbname=climbing_db_test port=5432 sslmode=disable"
	} else {
		logrus.Fatal("Invalid test mode")
	}

	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})

	if err != nil {
		// can't connect to the db, the server should stop
		logrus.Fatalf("Failed to connect to database: %v", err)
		return nil, err
	}

	// create tables if they don't exist yet
	err = db.AutoMigrate(&model.Climber{}, &model.Route{}, &model.User{})
	if err != nil {
		logrus.Fatalf("Failed to migrate database schema: %v", err)
		return nil, err
	}

	return db, nil
}

func GetDB() *gorm.DB {
	return db
}

// SetTestDB replaces the database instance, used by unit tests to run
// against an in-memory database.
func SetTestDB(testDB *gorm.DB) {
	db = testDB
	testMode = "test"
}

func CloseDBConnection() {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed closing connection: ", err)
	}
	err = sqlDB.Close()
	if err != nil {
		logrus.Fatal("Failed closing connection: ", err)
	}
}

func ResetTestDatabase() error {
	// check correct test mode
	if testMode != "test" {
		return fmt.Errorf("wrong test mode")
	}

	err := db.Exec(`TRUNCATE TABLE climbers, routes, users CASCADE;`)

	if err.Error != nil {
		return err.Error
	}

	return nil
}
