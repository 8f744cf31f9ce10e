package errors

import "math"

// ValidateDimensions checks that a width × height grid fits inside
// 1x1..maxWidth x maxHeight.
func ValidateDimensions(width, height, maxWidth, maxHeight int) error {
	if width < 1 || height < 1 {
		return New(ErrCodeInvalidDimensions, "grid %dx%d must be at least 1x1", width, height)
	}
	if width > maxWidth || height > maxHeight {
		return New(ErrCodeInvalidDimensions, "grid %dx%d exceeds %dx%d", width, height, maxWidth, maxHeight)
	}
	return nil
}

// ValidateBias checks that a weight bias is a finite, non-negative number.
// A zero bias is allowed and makes every passage on that axis tie.
func ValidateBias(name string, bias float64) error {
	if math.IsNaN(bias) || math.IsInf(bias, 0) {
		return New(ErrCodeInvalidBias, "%s must be a finite number", name)
	}
	if bias < 0 {
		return New(ErrCodeInvalidBias, "%s must not be negative (got %g)", name, bias)
	}
	return nil
}
