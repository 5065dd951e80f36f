package model

type Route struct {
	NameID           int     `gorm:"column:name_id;primaryKey" json:"name_id" validate:"gt=0"`
	Country          string  `gorm:"column:country;type:text;not null" json:"country" validate:"required"`
	Crag             string  `gorm:"column:crag;type:text;not null" json:"crag" validate:"required"`
	Sector           string  `gorm:"column:sector;type:text;not null" json:"sector" validate:"required"`
	Name             string  `gorm:"column:name;type:text;not null" json:"name" validate:"required"`
	TallRecommendSum int     `gorm:"column:tall_recommend_sum;type:integer;not null;default:-1" json:"tall_recommend_sum"`
	GradeMean        float64 `gorm:"column:grade_mean;type:double precision;not null" json:"grade_mean"`
	Cluster          int     `gorm:"column:cluster;type:integer;not null" json:"cluster"`
	RatingTot        float64 `gorm:"column:rating_tot;type:double precision;not null" json:"rating_tot"`
}

func (Route) TableName() string {
	return "routes"
}

// RouteUpdate carries the fields of a partial update; only non-nil
// fields are applied to the stored record.
type RouteUpdate struct {
	Country          *string  `json:"country"`
	Crag             *string  `json:"crag"`
	Sector           *string  `json:"sector"`
	Name             *string  `json:"name"`
	TallRecommendSum *int     `json:"tall_recommend_sum"`
	GradeMean        *float64 `json:"grade_mean"`
	Cluster          *int     `json:"cluster"`
	RatingTot        *float64 `json:"rating_tot"`
}
