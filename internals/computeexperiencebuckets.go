package internals

import "climbing-profiles-server/model"

const (
	bucketBeginner     = "0-2 ans"
	bucketIntermediate = "3-5 ans"
	bucketAdvanced     = "6-10 ans"
	bucketExpert       = "10+ ans"
)

// ComputeExperienceBuckets partitions climbers into fixed experience
// buckets by years climbed. Every bucket is present in the result, empty
// ones with a zero count.
func ComputeExperienceBuckets(climbers []model.Climber) map[string]int {
	buckets := map[string]int{
		bucketBeginner:     0,
		bucketIntermediate: 0,
		bucketAdvanced:     0,
		bucketExpert:       0,
	}

	for _, climber := range climbers {
		switch {
		case climber.YearsCl <= 2:
			buckets[bucketBeginner]++
		case climber.YearsCl <= 5:
			buckets[bucketIntermediate]++
		case climber.YearsCl <= 10:
			buckets[bucketAdvanced]++
		default:
			buckets[bucketExpert]++
		}
	}

	return buckets
}

// CountryCountsToMap flattens grouped country counts into the mapping
// shape the dashboard consumes.
func CountryCountsToMap(counts []model.CountryCount) map[string]int64 {
	result := make(map[string]int64, len(counts))
	for _, count := range counts {
		result[count.Country] = count.Count
	}
	return result
}
