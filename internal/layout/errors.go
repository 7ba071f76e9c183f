package layout

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-gridview/internal/dimension"
)

var (
	// ErrInvalidArgument reports a negative length or an invalid
	// row, column or span assignment.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormat reports a malformed length or dimension string.
	ErrFormat = dimension.ErrFormat
)

// ArgumentError names the argument that failed validation.
type ArgumentError struct {
	Name  string
	Value any
	Want  string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: must be %s", e.Name, e.Value, e.Want)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
