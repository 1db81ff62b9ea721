package service

const (
	MaxTermMonths = 600 // 50 years
	MinTermMonths = 1

	// Widest span of terms evaluated per recommendation request.
	MaxTermRangeMonths = 120
)
