package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxColumns bounds the column count accepted from flags, query parameters
// and scene files. The grid constructors only require at least one column.
const MaxColumns = 1024

// ValidateColumns checks a column count supplied by the user.
func ValidateColumns(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfiguration, "columns must be >= 1, got %d", n)
	}
	if n > MaxColumns {
		return New(ErrCodeInvalidConfiguration, "columns must be <= %d, got %d", MaxColumns, n)
	}
	return nil
}

// ValidateSpacing rejects negative and non-finite spacing values.
func ValidateSpacing(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfiguration, "spacing must be finite")
	}
	if v < 0 {
		return New(ErrCodeInvalidConfiguration, "spacing must be >= 0, got %g", v)
	}
	return nil
}

// ValidateWidth checks a container width supplied by the user. Zero means
// "unbounded" everywhere a width is optional, so only negative and NaN
// values are rejected here.
func ValidateWidth(v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidInput, "width must be a number")
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "width must be >= 0, got %g", v)
	}
	return nil
}

// ValidateItemID validates an item identifier from a scene file.
//
// IDs end up as SVG element ids and DOT node names, so they are restricted to
// printable characters without quotes or whitespace.
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidItem, "item id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidItem, "item id %q contains whitespace or control characters", id)
		}
	}
	if strings.ContainsAny(id, `"'<>&`) {
		return New(ErrCodeInvalidItem, "item id %q contains reserved characters", id)
	}
	return nil
}
