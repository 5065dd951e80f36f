package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"climbing-profiles-server/db"
	"climbing-profiles-server/externals"
	"climbing-profiles-server/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubTokenVerifier accepts exactly "valid-token"; "no-id-token" passes
// verification but carries no user id claim.
type stubTokenVerifier struct{}

func (stubTokenVerifier) VerifyToken(ctx context.Context, token string) (jwt.MapClaims, error) {
	switch token {
	case "valid-token":
		return jwt.MapClaims{"user_id": "user-1"}, nil
	case "no-id-token":
		return jwt.MapClaims{}, nil
	default:
		return nil, errors.New("invalid token")
	}
}

// setupTestEnv wires an in-memory database and the stub verifier into the
// package-level seams the handlers read.
func setupTestEnv(t *testing.T) *gorm.DB {
	t.Helper()

	logrus.SetOutput(io.Discard)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	err = testDB.AutoMigrate(&model.Climber{}, &model.Route{}, &model.User{})
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	db.SetTestDB(testDB)
	externals.SetVerifier(stubTokenVerifier{})

	return testDB
}

func seedClimber(t *testing.T, testDB *gorm.DB, climber model.Climber) {
	t.Helper()
	require.NoError(t, testDB.Create(&climber).Error)
}

func seedRoute(t *testing.T, testDB *gorm.DB, route model.Route) {
	t.Helper()
	require.NoError(t, testDB.Create(&route).Error)
}

func climberFixture(id int) model.Climber {
	return model.Climber{
		ClimberID:   id,
		Country:     "FRA",
		Sex:         0,
		Height:      165,
		Weight:      55,
		Age:         30,
		YearsCl:     5,
		DateFirst:   time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC),
		DateLast:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		GradesCount: 120,
		GradesFirst: 30,
		GradesLast:  55,
		GradesMax:   62,
		GradesMean:  48.5,
		YearFirst:   2015,
		YearLast:    2023,
	}
}

func routeFixture(id int) model.Route {
	return model.Route{
		NameID:           id,
		Country:          "ESP",
		Crag:             "siurana",
		Sector:           "el pati",
		Name:             "la rambla",
		TallRecommendSum: -1,
		GradeMean:        75,
		Cluster:          2,
		RatingTot:        3.8,
	}
}

// doRequest runs a handler directly and returns the recorder.
func doRequest(handler http.HandlerFunc, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
