// Package example is a small calculator kept as filler for projects created
// from the template. Its examples double as documentation and tests.
package example

import (
	"errors"
	"fmt"

	"github.com/poruru-code/projinit/internal/domain/value"
)

var (
	// ErrNotNumber is returned when an operand is not a Go numeric value.
	ErrNotNumber = errors.New("inputs must be numbers")
	// ErrDivideByZero is returned by Divide for a zero divisor.
	ErrDivideByZero = errors.New("cannot divide by zero")
	// ErrEmptyInput is returned by Average when called without values.
	ErrEmptyInput = errors.New("cannot calculate average of empty list")
)

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Divide returns a / b as a float64.
//
// Operands may be any integer or float kind. Anything else, strings
// included, yields ErrNotNumber; a zero divisor yields ErrDivideByZero.
func Divide(a, b any) (float64, error) {
	num, okA := value.AsFloat(a)
	den, okB := value.AsFloat(b)
	if !okA || !okB {
		return 0, fmt.Errorf("divide %v by %v: %w", a, b, ErrNotNumber)
	}
	if den == 0 {
		return 0, ErrDivideByZero
	}
	return num / den, nil
}

// Average returns the arithmetic mean of values.
func Average(values ...any) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	nums, idx, ok := value.AsFloats(values)
	if !ok {
		return 0, fmt.Errorf("element %d (%v): %w", idx, values[idx], ErrNotNumber)
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums)), nil
}
