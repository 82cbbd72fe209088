package game

import "github.com/pkg/errors"

var (
	// ErrInvariant marks caller contract violations. It is only ever raised
	// through panic.
	ErrInvariant = errors.New("structural invariant violated")

	ErrNoFreeCell    = errors.New("no free interior cell for food")
	ErrInvalidConfig = errors.New("invalid game config")
)

func invariantViolation(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrInvariant, format, args...))
}
