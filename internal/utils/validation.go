package utils

import "fmt"

// ValidateRatio validates that a fraction lies strictly between 0 and 1.
func ValidateRatio(name string, v float64) error {
	if v <= 0 || v >= 1 {
		return fmt.Errorf("%s must be between 0 and 1 (exclusive), got %g", name, v)
	}
	return nil
}

// ValidatePositiveInt validates that an integer parameter is positive.
func ValidatePositiveInt(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return nil
}

// ValidatePositiveFloat validates that a float parameter is positive.
func ValidatePositiveFloat(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %g", name, v)
	}
	return nil
}
