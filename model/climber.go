package model

import "time"

type Climber struct {
	ClimberID   int       `gorm:"column:climber_id;primaryKey" json:"climber_id" validate:"gt=0"`
	Country     string    `gorm:"column:country;type:text;not null" json:"country" validate:"required"`
	Sex         int       `gorm:"column:sex;type:integer;not null" json:"sex" validate:"oneof=0 1"`
	Height      float64   `gorm:"column:height;type:double precision;not null" json:"height" validate:"gte=0"`
	Weight      float64   `gorm:"column:weight;type:double precision;not null" json:"weight" validate:"gte=0"`
	Age         float64   `gorm:"column:age;type:double precision;not null" json:"age" validate:"gte=0"`
	YearsCl     int       `gorm:"column:years_cl;type:integer;not null" json:"years_cl" validate:"gte=0"`
	DateFirst   time.Time `gorm:"column:date_first;type:timestamptz" json:"date_first"`
	DateLast    time.Time `gorm:"column:date_last;type:timestamptz" json:"date_last"`
	GradesCount int       `gorm:"column:grades_count;type:integer" json:"grades_count"`
	GradesFirst int       `gorm:"column:grades_first;type:integer" json:"grades_first"`
	GradesLast  int       `gorm:"column:grades_last;type:integer" json:"grades_last"`
	GradesMax   int       `gorm:"column:grades_max;type:integer" json:"grades_max"`
	GradesMean  float64   `gorm:"column:grades_mean;type:double precision" json:"grades_mean"`
	YearFirst   int       `gorm:"column:year_first;type:integer" json:"year_first"`
	YearLast    int       `gorm:"column:year_last;type:integer" json:"year_last"`
}

func (Climber) TableName() string {
	return "climbers"
}

// ClimberUpdate carries the fields of a partial update; only non-nil
// fields are applied to the stored record.
type ClimberUpdate struct {
	Country     *string    `json:"country"`
	Sex         *int       `json:"sex"`
	Height      *float64   `json:"height"`
	Weight      *float64   `json:"weight"`
	Age         *float64   `json:"age"`
	YearsCl     *int       `json:"years_cl"`
	DateFirst   *time.Time `json:"date_first"`
	DateLast    *time.Time `json:"date_last"`
	GradesCount *int       `json:"grades_count"`
	GradesFirst *int       `json:"grades_first"`
	GradesLast  *int       `json:"grades_last"`
	GradesMax   *int       `json:"grades_max"`
	GradesMean  *float64   `json:"grades_mean"`
	YearFirst   *int       `json:"year_first"`
	YearLast    *int       `json:"year_last"`
}
