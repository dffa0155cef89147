package check

import (
	"errors"
	"fmt"

	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

// Error is a condition that ended a check early.
type Error struct {
	Kind outcome.Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// structural builds a StructuralPrecondition error.
func structural(format string, args ...any) error {
	return &Error{Kind: outcome.KindStructural, Err: fmt.Errorf(format, args...)}
}

// classify maps any error returned from a check onto the failure taxonomy.
func classify(err error) *Error {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr
	}

	switch {
	case errors.Is(err, fixture.ErrFixtureNotFound):
		return &Error{Kind: outcome.KindFixtureNotFound, Err: err}
	case errors.Is(err, fixture.ErrFixtureParse):
		return &Error{Kind: outcome.KindFixtureParse, Err: err}
	case errors.Is(err, snapshot.ErrCapabilityAbsent):
		return &Error{Kind: outcome.KindCapabilityAbsent, Err: err}
	case errors.Is(err, snapshot.ErrElementMissing):
		return &Error{Kind: outcome.KindStructural, Err: err}
	default:
		return &Error{Kind: outcome.KindInternal, Err: err}
	}
}
