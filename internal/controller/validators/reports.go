package validators

import (
	"errors"
	"math"
	"strconv"
)

var (
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
	ErrInvalidThreshold = errors.New("threshold must be a number within [0, 100]")
)

// ParseLimit returns def for an empty value.
func ParseLimit(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

// ParseThreshold returns def for an empty value.
func ParseThreshold(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(threshold) || threshold < 0 || threshold > 100 {
		return 0, ErrInvalidThreshold
	}
	return threshold, nil
}
