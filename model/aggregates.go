package model

// CountryCount is one row of a climbers-per-country aggregation.
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// AgeGradePoint is one row of the grades-by-age aggregation: the mean of
// grades_max over all climbers of the same age.
type AgeGradePoint struct {
	Age             float64 `json:"age"`
	AverageGradeMax float64 `json:"average_grade_max"`
}
