package db

import (
	"climbing-profiles-server/model"
	"gorm.io/gorm"
)

type RouteDAO struct {
	db *gorm.DB
}

func NewRouteDAO(db *gorm.DB) *RouteDAO {
	return &RouteDAO{db: db}
}

func (routeDAO *RouteDAO) GetAllRoutes(skip int, limit int) ([]model.Route, error) {
	var routes []model.Route
	result := routeDAO.db.Order("name_id ASC").Offset(skip).Limit(limit).Find(&routes)
	return routes, result.Error
}

func (routeDAO *RouteDAO) GetRouteById(nameID int) (model.Route, error) {
	var route model.Route
	result := routeDAO.db.First(&route, nameID)
	return route, result.Error
}

func (routeDAO *RouteDAO) AddRoute(route model.Route) (model.Route, error) {
	result := routeDAO.db.Create(&route)
	return route, result.Error
}

func (routeDAO *RouteDAO) UpdateRoute(route model.Route) error {
	result := routeDAO.db.Save(&route)
	return result.Error
}

// DeleteRoute removes a route and reports whether a record existed.
func (routeDAO *RouteDAO) DeleteRoute(nameID int) (bool, error) {
	result := routeDAO.db.Delete(&model.Route{}, nameID)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (routeDAO *RouteDAO) GetRoutesByCountry(country string) ([]model.Route, error) {
	var routes []model.Route
	result := routeDAO.db.Where("country = ?", country).Order("name_id ASC").Find(&routes)
	return routes, result.Error
}

// GetTopRoutesByGrade returns the limit hardest routes by mean grade,
// ties broken by primary key.
func (routeDAO *RouteDAO) GetTopRoutesByGrade(limit int) ([]model.Route, error) {
	var routes []model.Route
	result := routeDAO.db.Order("grade_mean DESC, name_id ASC").Limit(limit).Find(&routes)
	return routes, result.Error
}

func (routeDAO *RouteDAO) GetBestRoutesByCountry(country string, limit int) ([]model.Route, error) {
	var routes []model.Route
	result := routeDAO.db.Where("country = ?", country).Order("grade_mean DESC, name_id ASC").Limit(limit).Find(&routes)
	return routes, result.Error
}
