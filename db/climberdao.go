package db

import (
	"strconv"

	"climbing-profiles-server/model"
	"gorm.io/gorm"
)

type ClimberDAO struct {
	db *gorm.DB
}

func NewClimberDAO(db *gorm.DB) *ClimberDAO {
	return &ClimberDAO{db: db}
}

func (climberDAO *ClimberDAO) GetAllClimbers(skip int, limit int) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.db.Order("climber_id ASC").Offset(skip).Limit(limit).Find(&climbers)
	return climbers, result.Error
}

func (climberDAO *ClimberDAO) GetClimberById(id int) (model.Climber, error) {
	var climber model.Climber
	result := climberDAO.db.First(&climber, id)
	return climber, result.Error
}

func (climberDAO *ClimberDAO) AddClimber(climber model.Climber) (model.Climber, error) {
	result := climberDAO.db.Create(&climber)
	return climber, result.Error
}

func (climberDAO *ClimberDAO) UpdateClimber(climber model.Climber) error {
	result := climberDAO.db.Save(&climber)
	return result.Error
}

// DeleteClimber removes a climber and reports whether a record existed.
func (climberDAO *ClimberDAO) DeleteClimber(id int) (bool, error) {
	result := climberDAO.db.Delete(&model.Climber{}, id)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (climberDAO *ClimberDAO) GetDistinctCountries() ([]string, error) {
	var countries []string
	result := climberDAO.db.Model(&model.Climber{}).Distinct().Order("country ASC").Pluck("country", &countries)
	return countries, result.Error
}

func (climberDAO *ClimberDAO) GetClimbersBySex(sex int) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.db.Where("sex = ?", sex).Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

// GetClimbersByYearsClimbing returns climbers whose experience lies in the
// inclusive range [minYears, maxYears]; a nil maxYears leaves the range
// unbounded above.
func (climberDAO *ClimberDAO) GetClimbersByYearsClimbing(minYears int, maxYears *int) ([]model.Climber, error) {
	var climbers []model.Climber
	query := climberDAO.db.Where("years_cl >= ?", minYears)
	if maxYears != nil {
		query = query.Where("years_cl <= ?", *maxYears)
	}
	result := query.Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

func (climberDAO *ClimberDAO) GetClimbersByCountry(country string) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.db.Where("country = ?", country).Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

func (climberDAO *ClimberDAO) GetClimbersByHeight(minHeight float64, maxHeight float64) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.db.Where("height >= ? AND height <= ?", minHeight, maxHeight).Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

func (climberDAO *ClimberDAO) GetClimbersByWeight(minWeight float64, maxWeight float64) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.db.Where("weight >= ? AND weight <= ?", minWeight, maxWeight).Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

func (climberDAO *ClimberDAO) GetClimbersByAge(minAge float64, maxAge float64) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.db.Where("age >= ? AND age <= ?", minAge, maxAge).Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

// GetClimbersSortedByAge returns the limit youngest (ascending) or oldest
// (descending) climbers, with ties broken by primary key.
func (climberDAO *ClimberDAO) GetClimbersSortedByAge(limit int, ascending bool) ([]model.Climber, error) {
	var climbers []model.Climber
	order := "age DESC, climber_id ASC"
	if ascending {
		order = "age ASC, climber_id ASC"
	}
	result := climberDAO.db.Order(order).Limit(limit).Find(&climbers)
	return climbers, result.Error
}

// GetClimbersSortedByHeight returns the limit shortest (ascending) or
// tallest (descending) climbers, with ties broken by primary key.
func (climberDAO *ClimberDAO) GetClimbersSortedByHeight(limit int, ascending bool) ([]model.Climber, error) {
	var climbers []model.Climber
	order := "height DESC, climber_id ASC"
	if ascending {
		order = "height ASC, climber_id ASC"
	}
	result := climberDAO.db.Order(order).Limit(limit).Find(&climbers)
	return climbers, result.Error
}

func (climberDAO *ClimberDAO) GetClimberCountByCountry() ([]model.CountryCount, error) {
	var counts []model.CountryCount
	result := climberDAO.db.Model(&model.Climber{}).
		Select("country, COUNT(climber_id) AS count").
		Group("country").
		Order("count DESC, country ASC").
		Scan(&counts)
	return counts, result.Error
}

// withMaxAge applies the optional dashboard age filter.
func (climberDAO *ClimberDAO) withMaxAge(maxAge *float64) *gorm.DB {
	query := climberDAO.db.Model(&model.Climber{})
	if maxAge != nil {
		query = query.Where("age <= ?", *maxAge)
	}
	return query
}

// GetClimberCountBySex counts climbers per sex, keyed by "0" and "1";
// both keys are always present.
func (climberDAO *ClimberDAO) GetClimberCountBySex(maxAge *float64) (map[string]int64, error) {
	var rows []struct {
		Sex   int
		Count int64
	}
	result := climberDAO.withMaxAge(maxAge).
		Select("sex, COUNT(climber_id) AS count").
		Group("sex").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := map[string]int64{"0": 0, "1": 0}
	for _, row := range rows {
		counts[strconv.Itoa(row.Sex)] = row.Count
	}

	return counts, nil
}

func (climberDAO *ClimberDAO) GetClimbersUpToAge(maxAge *float64) ([]model.Climber, error) {
	var climbers []model.Climber
	result := climberDAO.withMaxAge(maxAge).Order("climber_id ASC").Find(&climbers)
	return climbers, result.Error
}

// GetTopCountriesByCount returns the limit countries with the most
// climbers, most populous first, ties broken by country name.
func (climberDAO *ClimberDAO) GetTopCountriesByCount(maxAge *float64, limit int) ([]model.CountryCount, error) {
	var counts []model.CountryCount
	result := climberDAO.withMaxAge(maxAge).
		Select("country, COUNT(climber_id) AS count").
		Group("country").
		Order("count DESC, country ASC").
		Limit(limit).
		Scan(&counts)
	return counts, result.Error
}

// GetAverageGradeMaxByAge computes the mean of grades_max per distinct age.
func (climberDAO *ClimberDAO) GetAverageGradeMaxByAge(maxAge *float64) ([]model.AgeGradePoint, error) {
	var points []model.AgeGradePoint
	result := climberDAO.withMaxAge(maxAge).
		Select("age, AVG(grades_max) AS average_grade_max").
		Group("age").
		Order("age ASC").
		Scan(&points)
	return points, result.Error
}
