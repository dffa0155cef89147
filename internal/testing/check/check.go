// Package check implements the named checks of the battery.
//
// Every check follows the same shape: load its fixture, pull the live slice it needs, assert
// structural preconditions, then compare. Fatal conditions come back as an error from the
// check body and end that check with one reason; field mismatches are accumulated on the
// outcome. Nothing escapes Run, including panics.
package check

import (
	"fmt"

	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/sirupsen/logrus"
)

// Env carries the read-only collaborators a check runs against.
type Env struct {
	Fixtures fixture.Loader
	Snapshot snapshot.Accessor
	Log      logrus.FieldLogger
}

// Check is one named, independently runnable check.
type Check interface {
	Name() string
	Run(env Env) *outcome.Outcome
}

// Func is a check body. fx is the decoded fixture; the body records mismatches on o and
// returns an error only for conditions that end the check.
type Func[F any] func(acc snapshot.Accessor, fx *F, o *outcome.Outcome) error

type check[F any] struct {
	name string
	fn   Func[F]
}

// New creates a check whose fixture decodes into F.
func New[F any](name string, fn func(acc snapshot.Accessor, fx *F, o *outcome.Outcome) error) Check {
	return &check[F]{name: name, fn: fn}
}

func (c *check[F]) Name() string { return c.name }

func (c *check[F]) Run(env Env) (o *outcome.Outcome) {
	o = outcome.New(c.name)
	log := env.Log.WithField("check", c.name)

	defer func() {
		if r := recover(); r != nil {
			err := &Error{Kind: outcome.KindInternal, Err: fmt.Errorf("panic: %v", r)}
			log.WithError(err).Error("check raised an unexpected fault")
			o.MarkAsFailed(err.Error())
		}
	}()

	var fx F
	if err := env.Fixtures.Load(c.name, &fx); err != nil {
		fail(log, o, err)
		return o
	}

	if err := c.fn(env.Snapshot, &fx, o); err != nil {
		fail(log, o, err)
	}

	return o
}

func fail(log logrus.FieldLogger, o *outcome.Outcome, err error) {
	cerr := classify(err)

	if cerr.Kind == outcome.KindInternal {
		log.WithError(err).Error("check failed unexpectedly")
	} else {
		log.WithError(err).Debug("check ended early")
	}

	o.MarkAsFailed(cerr.Error())
}

// anySet reports whether at least one field will be asserted.
func anySet(fields ...interface{ IsSet() bool }) bool {
	for _, f := range fields {
		if f.IsSet() {
			return true
		}
	}

	return false
}

// resolve finds the single live object matching key. Zero or several matches are recorded as
// one lookup cardinality reason and no comparison is attempted.
func resolve[T any](o *outcome.Outcome, key string, live []T, match func(T) bool) (T, bool) {
	var (
		found T
		count int
	)

	for _, v := range live {
		if match(v) {
			found = v
			count++
		}
	}

	if count != 1 {
		var zero T
		o.Record("", []outcome.Mismatch{outcome.LookupCardinality(key, count)})

		return zero, false
	}

	return found, true
}

// missingKey records a sub-record without a lookup key.
func missingKey(o *outcome.Outcome, list string, index int) {
	o.Record("", []outcome.Mismatch{{
		Kind:    outcome.KindFixtureParse,
		Field:   fmt.Sprintf("%s[%d]", list, index),
		Message: "metadata lookup key is required",
	}})
}
