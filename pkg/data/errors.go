package data

import (
	"errors"
	"fmt"
)

//ErrInvalidRange flags a malformed or unsupported CIDR block supplied
//during network range registration
var ErrInvalidRange = errors.New("invalid network range")

//InvalidFilterFieldError flags an unrecognized filter key supplied to
//a listing operation
type InvalidFilterFieldError struct {
	Field string
}

func (e *InvalidFilterFieldError) Error() string {
	return fmt.Sprintf("no such filter field: %s", e.Field)
}

//LookupError wraps a backing store error, tagged with the sub-lookup
//which failed. Soft not-found conditions are never reported this way;
//they resolve to nil results instead.
type LookupError struct {
	Stage string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %s", e.Stage, e.Err.Error())
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
