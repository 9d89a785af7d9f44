package formula

import (
	"errors"
	"fmt"
)

// ErrInvalidDomain is returned when a formula input violates its domain
// guard, or when a result would not be finite.
var ErrInvalidDomain = errors.New("invalid domain")

// DomainError names the parameter and the guard that failed.
type DomainError struct {
	Param string
	Value float64
	Rule  string // e.g. "> 0", "!= t1", "finite"
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %v, must be %s", ErrInvalidDomain, e.Param, e.Value, e.Rule)
}

func (e *DomainError) Unwrap() error {
	return ErrInvalidDomain
}
