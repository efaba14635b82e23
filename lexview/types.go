// Package lexview defines sentinel errors and construction options for
// the lexview subpackage of github.com/katalvlaran/lexgrid.
package lexview

import (
	"errors"
)

// Sentinel errors for lexview operations. Constructors and checked cell
// accessors MUST return these sentinels and tests MUST check them via
// errors.Is. Cursor accessors never return errors; their index
// preconditions are documented instead (zero-overhead by design).
var (
	// ErrNilSequence indicates a nil Sequence was passed to a constructor.
	ErrNilSequence = errors.New("lexview: sequence must not be nil")
	// ErrRangeInvalid indicates begin/end do not denote a valid sub-range.
	ErrRangeInvalid = errors.New("lexview: begin/end out of sequence range")
	// ErrNonPositiveXSize indicates a requested row width smaller than 1.
	ErrNonPositiveXSize = errors.New("lexview: xSize must be >= 1")
	// ErrIndivisible indicates the attached length is not an exact
	// multiple of xSize and truncation was not requested.
	ErrIndivisible = errors.New("lexview: xSize is not an exact divisor of the sequence length")
	// ErrOutOfRange indicates an At/Set coordinate outside the grid.
	ErrOutOfRange = errors.New("lexview: cell coordinate out of range")
)

// config collects construction knobs; it is only mutated by Options.
type config struct {
	truncate bool
}

// Option configures view construction before validation.
type Option func(*config)

// WithTruncate makes an indivisible length defined behavior instead of an
// error: ySize is rounded down and the trailing remainder of the attached
// range is excluded from every row and column of the view.
//
// Without this option an indivisible length fails construction with
// ErrIndivisible.
func WithTruncate() Option {
	return func(c *config) { c.truncate = true }
}
