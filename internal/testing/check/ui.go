package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/compare"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

// Map device UI layout.
var (
	missionCounterPath = []int{1}
	missionCounterTabs = []int{1, 2, 3}
	craftOptionsPath   = []int{2, 0, 0, 1}
	missionHeaderPath  = []int{0, 0}
)

type mapDeviceFixture struct {
	ExpectedMissionCounts fixture.Optional[[]int] `json:"expected_kirak_maps_variety"`
	ExpectedItemsCount    fixture.Optional[int]   `json:"expected_items_count"`
}

func mapDevice(acc snapshot.Accessor, fx *mapDeviceFixture, o *outcome.Outcome) error {
	device, err := acc.MapDevice()
	if err != nil {
		return err
	}

	if !device.Visible {
		return structural("map device window is not visible")
	}

	var c compared

	if want, ok := fx.ExpectedMissionCounts.Get(); ok {
		counters, err := device.MastersMods.Child(missionCounterPath...)
		if err != nil {
			return err
		}

		counts := make([]int, 0, len(missionCounterTabs))
		for _, tab := range missionCounterTabs {
			n, err := counterAt(counters, tab)
			if err != nil {
				return err
			}

			counts = append(counts, n)
		}

		c.add(compare.Sequence("kirak_maps_variety", counts, want))
	}

	options, err := device.Root.Child(craftOptionsPath...)
	if err != nil {
		return err
	}

	var merged strings.Builder
	for i := range options.Children {
		label, err := options.Child(i, 0)
		if err != nil {
			return err
		}

		merged.WriteString(label.Text)
	}

	if len(options.Children) == 0 || merged.Len() == 0 {
		c = append(c, outcome.Mismatch{
			Kind:    outcome.KindValueMismatch,
			Field:   "craft_options",
			Message: fmt.Sprintf("craft_options count %d with empty labels, expected non-empty", len(options.Children)),
		})
	}

	c.add(compare.Scalar("items_count", fx.ExpectedItemsCount, func() int { return countItems(device.Slots) }))
	o.Record("", c)

	return nil
}

type missionChoiceFixture struct {
	ExpectedMissionCounts fixture.Optional[[]int] `json:"expected_kirak_maps_variety"`
}

func missionChoice(acc snapshot.Accessor, fx *missionChoiceFixture, o *outcome.Outcome) error {
	want, ok := fx.ExpectedMissionCounts.Get()
	if !ok {
		return nil
	}

	window, err := acc.MissionChoice()
	if err != nil {
		return err
	}

	if !window.Visible {
		return structural("mission choice window is not visible")
	}

	header, err := window.Root.Child(missionHeaderPath...)
	if err != nil {
		return err
	}

	counts := make([]int, 0, len(header.Children))
	for i := range header.Children {
		n, err := counterAt(header, i)
		if err != nil {
			return err
		}

		counts = append(counts, n)
	}

	var c compared
	c.add(compare.Sequence("kirak_maps_variety", counts, want))
	o.Record("", c)

	return nil
}

type purchaseWindowFixture struct {
	ExpectedItemsCount fixture.Optional[int] `json:"expected_items_count"`
}

func purchaseWindow(acc snapshot.Accessor, fx *purchaseWindowFixture, o *outcome.Outcome) error {
	if !fx.ExpectedItemsCount.IsSet() {
		return nil
	}

	window, err := acc.PurchaseWindow()
	if err != nil {
		return err
	}

	if !window.Visible {
		return structural("purchase window is not visible")
	}

	if window.TabContainer == nil || window.TabContainer.VisibleStash == nil {
		return structural("purchase window has no visible stash")
	}

	var c compared
	c.add(compare.Scalar("visible_items_count", fx.ExpectedItemsCount, func() int {
		return countItems(window.TabContainer.VisibleStash.Items)
	}))
	o.Record("", c)

	return nil
}

// counterAt parses the text of parent.Children[index].Children[0] as an integer.
func counterAt(parent *snapshot.Element, index int) (int, error) {
	label, err := parent.Child(index, 0)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(label.Text))
	if err != nil {
		return 0, structural("counter %d text %q is not a number", index, label.Text)
	}

	return n, nil
}

func countItems(slots []*snapshot.SlotItem) int {
	n := 0
	for _, s := range slots {
		if s != nil && s.Item != nil {
			n++
		}
	}

	return n
}
