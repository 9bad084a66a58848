package config

import "time"

const (
	// Queue
	WaitMinutesPerPosition = 10
	QueueRefreshSchedule   = "@every 1m"

	// Ratings
	RatingMin = 1
	RatingMax = 5

	// Caching
	LastRatingCacheTTL = time.Minute

	// Uploads
	MaxGrievanceFiles = 10

	// Defaults applied to grievance submissions with missing location fields.
	DefaultDistrict = "Uttarkashi"
	DefaultLocation = "N/A"
)
