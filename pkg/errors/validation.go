package errors

import (
	"math"
	"strings"
	"unicode"
)

const (
	// MaxDimension bounds container and viewport sizes accepted from clients.
	MaxDimension = 1 << 20

	// MaxItemCount bounds the number of tiles a request may lay out.
	MaxItemCount = 10_000_000

	maxProfileIDLength = 128
)

// ValidateDimension checks a single width, height or offset value.
// NaN, infinities, negative values and values above MaxDimension are rejected.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSize, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidSize, "%s must be non-negative, got %v", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidSize, "%s too large (max %d), got %v", name, MaxDimension, v)
	}
	return nil
}

// ValidateSize checks both dimensions of a container or viewport.
func ValidateSize(width, height float64) error {
	if err := ValidateDimension("width", width); err != nil {
		return err
	}
	return ValidateDimension("height", height)
}

// ValidateItemCount checks a tile count supplied by a client.
func ValidateItemCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "item count must be non-negative, got %d", n)
	}
	if n > MaxItemCount {
		return New(ErrCodeInvalidInput, "item count too large (max %d), got %d", MaxItemCount, n)
	}
	return nil
}

// ValidateProfileID validates a profile identifier before it reaches the
// store or a cache key.
//
// Rules:
//   - not empty
//   - at most 128 bytes
//   - no control characters or whitespace
//   - no path separators
func ValidateProfileID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidProfile, "profile id cannot be empty")
	}
	if len(id) > maxProfileIDLength {
		return New(ErrCodeInvalidProfile, "profile id too long (max %d characters)", maxProfileIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidProfile, "profile id contains invalid characters")
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidProfile, "profile id cannot contain path separators")
	}
	return nil
}
