// Package parse validates path and query parameters.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid marks a parameter that failed validation.
var ErrInvalid = errors.New("invalid parameter")

const (
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultUserLimit = 100
	MaxUserLimit     = 1000
)

// Limit parses a limit query value in [1, max]. An empty value yields def.
func Limit(raw string, def, max int) (int, error) {
	n, err := intOr(raw, def, "limit")
	if err != nil {
		return 0, err
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalid, max)
	}
	return n, nil
}

// Skip parses a non-negative offset. An empty value yields 0.
func Skip(raw string) (int, error) {
	n, err := intOr(raw, 0, "skip")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: skip must not be negative", ErrInvalid)
	}
	return n, nil
}

// ID parses an integer path id. Any integer is accepted; range checks belong
// to the lookup.
func ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalid, raw)
	}
	return id, nil
}

func intOr(raw string, def int, field string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalid, field, raw)
	}
	return n, nil
}
