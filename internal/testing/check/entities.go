package check

import (
	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/compare"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

type entitiesFixture struct {
	ExpectedAreaRawName fixture.Optional[string]    `json:"expected_area_raw_name"`
	EntitiesToTest      []fixture.EntityExpectation `json:"entities_to_test"`
}

func entities(acc snapshot.Accessor, fx *entitiesFixture, o *outcome.Outcome) error {
	if fx.ExpectedAreaRawName.IsSet() {
		cur, err := acc.CurrentArea()
		if err != nil {
			return err
		}

		var c compared
		c.add(compare.Scalar("area_raw_name", fx.ExpectedAreaRawName, func() string { return cur.RawName }))
		o.Record("", c)
	}

	if len(fx.EntitiesToTest) == 0 {
		return nil
	}

	for i, exp := range fx.EntitiesToTest {
		if !exp.Metadata.IsSet() {
			missingKey(o, "entities_to_test", i)
			continue
		}

		key := exp.Key()

		live, err := acc.Entities(key)
		if err != nil {
			return err
		}

		e, ok := resolve(o, key, live, func(e *snapshot.Entity) bool {
			return e != nil && e.Metadata == key
		})
		if !ok {
			continue
		}

		o.Record(key, compare.Entity(e, exp))
	}

	return nil
}

type groundLabelsFixture struct {
	EntitiesToTest []fixture.EntityExpectation `json:"entities_to_test"`
}

func groundLabels(acc snapshot.Accessor, fx *groundLabelsFixture, o *outcome.Outcome) error {
	if len(fx.EntitiesToTest) == 0 {
		return nil
	}

	labels, err := acc.GroundLabels()
	if err != nil {
		return err
	}

	for i, exp := range fx.EntitiesToTest {
		if !exp.Metadata.IsSet() {
			missingKey(o, "entities_to_test", i)
			continue
		}

		key := exp.Key()

		label, ok := resolve(o, key, labels, func(l *snapshot.GroundLabel) bool {
			return l != nil && l.ItemOnGround != nil && l.ItemOnGround.Metadata == key
		})
		if !ok {
			continue
		}

		o.Record(key, compare.Entity(label.ItemOnGround, exp))
	}

	return nil
}
