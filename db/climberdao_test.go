package db

import (
	"fmt"
	"testing"
	"time"

	"climbing-profiles-server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	err = testDB.AutoMigrate(&model.Climber{}, &model.Route{}, &model.User{})
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return testDB
}

func testClimber(id int) model.Climber {
	return model.Climber{
		ClimberID:   id,
		Country:     "FRA",
		Sex:         0,
		Height:      175,
		Weight:      70,
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

func TestClimberCRUD(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))

	created, err := climberDAO.AddClimber(testClimber(1))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ClimberID)

	loaded, err := climberDAO.GetClimberById(1)
	require.NoError(t, err)
	assert.Equal(t, created, loaded)

	// same primary key again violates uniqueness
	_, err = climberDAO.AddClimber(testClimber(1))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	loaded.Age = 31
	require.NoError(t, climberDAO.UpdateClimber(loaded))
	reloaded, err := climberDAO.GetClimberById(1)
	require.NoError(t, err)
	assert.Equal(t, 31.0, reloaded.Age)

	deleted, err := climberDAO.DeleteClimber(1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = climberDAO.GetClimberById(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// deleting a missing record is not an error
	deleted, err = climberDAO.DeleteClimber(1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetAllClimbersPagination(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	for id := 1; id <= 5; id++ {
		_, err := climberDAO.AddClimber(testClimber(id))
		require.NoError(t, err)
	}

	climbers, err := climberDAO.GetAllClimbers(1, 2)
	require.NoError(t, err)
	require.Len(t, climbers, 2)
	assert.Equal(t, 2, climbers[0].ClimberID)
	assert.Equal(t, 3, climbers[1].ClimberID)

	// window past the end is empty, not an error
	climbers, err = climberDAO.GetAllClimbers(10, 2)
	require.NoError(t, err)
	assert.Empty(t, climbers)
}

func TestUpdateClimberLeavesOtherFieldsUntouched(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	original, err := climberDAO.AddClimber(testClimber(1))
	require.NoError(t, err)

	changed := original
	changed.Weight = 75
	require.NoError(t, climberDAO.UpdateClimber(changed))

	reloaded, err := climberDAO.GetClimberById(1)
	require.NoError(t, err)
	assert.Equal(t, 75.0, reloaded.Weight)

	reloaded.Weight = original.Weight
	assert.Equal(t, original, reloaded)
}

func TestGetClimbersBySex(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	male := testClimber(1)
	female := testClimber(2)
	female.Sex = 1
	for _, climber := range []model.Climber{male, female} {
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	climbers, err := climberDAO.GetClimbersBySex(1)
	require.NoError(t, err)
	require.Len(t, climbers, 1)
	assert.Equal(t, 2, climbers[0].ClimberID)
}

func TestGetClimbersByYearsClimbing(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	for id, years := range map[int]int{1: 0, 2: 2, 3: 5, 4: 12} {
		climber := testClimber(id)
		climber.YearsCl = years
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	// bounds are inclusive
	maxYears := 5
	climbers, err := climberDAO.GetClimbersByYearsClimbing(2, &maxYears)
	require.NoError(t, err)
	require.Len(t, climbers, 2)
	assert.Equal(t, 2, climbers[0].ClimberID)
	assert.Equal(t, 3, climbers[1].ClimberID)

	// nil upper bound is unbounded
	climbers, err = climberDAO.GetClimbersByYearsClimbing(3, nil)
	require.NoError(t, err)
	require.Len(t, climbers, 2)
	assert.Equal(t, 3, climbers[0].ClimberID)
	assert.Equal(t, 4, climbers[1].ClimberID)
}

func TestGetClimbersByHeightInclusiveBounds(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	for id, height := range map[int]float64{1: 189.9, 2: 190, 3: 195, 4: 200, 5: 200.1} {
		climber := testClimber(id)
		climber.Height = height
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	climbers, err := climberDAO.GetClimbersByHeight(190, 200)
	require.NoError(t, err)
	require.Len(t, climbers, 3)
	assert.Equal(t, 2, climbers[0].ClimberID)
	assert.Equal(t, 4, climbers[2].ClimberID)
}

func TestGetDistinctCountries(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	for id, country := range map[int]string{1: "FRA", 2: "ESP", 3: "FRA", 4: "USA"} {
		climber := testClimber(id)
		climber.Country = country
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	countries, err := climberDAO.GetDistinctCountries()
	require.NoError(t, err)
	assert.Equal(t, []string{"ESP", "FRA", "USA"}, countries)
}

func TestGetClimbersSortedByAgeDeterministicTies(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	for id, age := range map[int]float64{1: 40, 2: 25, 3: 25, 4: 60} {
		climber := testClimber(id)
		climber.Age = age
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	youngest, err := climberDAO.GetClimbersSortedByAge(3, true)
	require.NoError(t, err)
	require.Len(t, youngest, 3)
	// equal ages fall back to primary key order
	assert.Equal(t, 2, youngest[0].ClimberID)
	assert.Equal(t, 3, youngest[1].ClimberID)
	assert.Equal(t, 1, youngest[2].ClimberID)

	oldest, err := climberDAO.GetClimbersSortedByAge(1, false)
	require.NoError(t, err)
	require.Len(t, oldest, 1)
	assert.Equal(t, 4, oldest[0].ClimberID)
}

func TestGetClimberCountBySex(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	for id, sex := range map[int]int{1: 0, 2: 0, 3: 1} {
		climber := testClimber(id)
		climber.Sex = sex
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	counts, err := climberDAO.GetClimberCountBySex(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"0": 2, "1": 1}, counts)

	// age cutoff excluding everyone still yields both keys
	maxAge := 10.0
	counts, err = climberDAO.GetClimberCountBySex(&maxAge)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"0": 0, "1": 0}, counts)
}

func TestGetTopCountriesByCount(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	countries := []string{"FRA", "FRA", "FRA", "ESP", "ESP", "USA"}
	for i, country := range countries {
		climber := testClimber(i + 1)
		climber.Country = country
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	counts, err := climberDAO.GetTopCountriesByCount(nil, 2)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, model.CountryCount{Country: "FRA", Count: 3}, counts[0])
	assert.Equal(t, model.CountryCount{Country: "ESP", Count: 2}, counts[1])
}

func TestGetAverageGradeMaxByAge(t *testing.T) {
	climberDAO := NewClimberDAO(newTestDB(t))
	fixtures := []struct {
		id        int
		age       float64
		gradesMax int
	}{
		{1, 25, 60},
		{2, 25, 70},
		{3, 40, 50},
		{4, 60, 80},
	}
	for _, fixture := range fixtures {
		climber := testClimber(fixture.id)
		climber.Age = fixture.age
		climber.GradesMax = fixture.gradesMax
		_, err := climberDAO.AddClimber(climber)
		require.NoError(t, err)
	}

	maxAge := 50.0
	points, err := climberDAO.GetAverageGradeMaxByAge(&maxAge)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, model.AgeGradePoint{Age: 25, AverageGradeMax: 65}, points[0])
	assert.Equal(t, model.AgeGradePoint{Age: 40, AverageGradeMax: 50}, points[1])
}
