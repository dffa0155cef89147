package check

import (
	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/compare"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

type gameWindowFixture struct {
	ExpectedSizeX fixture.Optional[int] `json:"expected_size_x"`
	ExpectedSizeY fixture.Optional[int] `json:"expected_size_y"`
}

func gameWindow(acc snapshot.Accessor, fx *gameWindowFixture, o *outcome.Outcome) error {
	if !anySet(fx.ExpectedSizeX, fx.ExpectedSizeY) {
		return nil
	}

	rect, err := acc.WindowRect()
	if err != nil {
		return err
	}

	var c compared
	c.add(compare.Scalar("size_x", fx.ExpectedSizeX, rect.Width))
	c.add(compare.Scalar("size_y", fx.ExpectedSizeY, rect.Height))
	o.Record("", c)

	return nil
}

type gameStatesFixture struct {
	ExpectedLoadingStatus fixture.Optional[bool] `json:"expected_loading_status"`
	ExpectedGameState     fixture.Optional[int]  `json:"expected_game_state"`
}

func gameStates(acc snapshot.Accessor, fx *gameStatesFixture, o *outcome.Outcome) error {
	if !anySet(fx.ExpectedLoadingStatus, fx.ExpectedGameState) {
		return nil
	}

	flags, err := acc.GameState()
	if err != nil {
		return err
	}

	var c compared
	c.add(compare.Scalar("loading_status", fx.ExpectedLoadingStatus, func() bool { return flags.IsLoading }))
	c.add(compare.Scalar("game_state", fx.ExpectedGameState, flags.Code))
	o.Record("", c)

	return nil
}

type areaFixture struct {
	ExpectedAreaName    fixture.Optional[string] `json:"expected_area_name"`
	ExpectedAreaRawName fixture.Optional[string] `json:"expected_area_raw_name"`
}

func area(acc snapshot.Accessor, fx *areaFixture, o *outcome.Outcome) error {
	if !anySet(fx.ExpectedAreaName, fx.ExpectedAreaRawName) {
		return nil
	}

	cur, err := acc.CurrentArea()
	if err != nil {
		return err
	}

	var c compared
	c.add(compare.Scalar("area_name", fx.ExpectedAreaName, func() string { return cur.Name }))
	c.add(compare.Scalar("area_raw_name", fx.ExpectedAreaRawName, func() string { return cur.RawName }))
	o.Record("", c)

	return nil
}

// compared collects scalar comparison results inside a check body.
type compared []outcome.Mismatch

func (c *compared) add(m outcome.Mismatch, failed bool) {
	if failed {
		*c = append(*c, m)
	}
}
