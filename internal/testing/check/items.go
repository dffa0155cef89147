package check

import (
	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/compare"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

type inventoryFixture struct {
	ItemsToTest []fixture.ItemExpectation `json:"items_to_test"`
}

func inventory(acc snapshot.Accessor, fx *inventoryFixture, o *outcome.Outcome) error {
	if len(fx.ItemsToTest) == 0 {
		return nil
	}

	inventories, err := acc.PlayerInventories(snapshot.InventoryMain)
	if err != nil {
		return err
	}

	if len(inventories) == 0 {
		return structural("no %s inventory", snapshot.InventoryMain)
	}

	compareItems(o, inventories[0].Items, fx.ItemsToTest)

	return nil
}

type stashFixture struct {
	ExpectedStashTabIndex fixture.Optional[int]     `json:"expected_stash_tab_index"`
	ItemsToTest           []fixture.ItemExpectation `json:"items_to_test"`
}

func stash(acc snapshot.Accessor, fx *stashFixture, o *outcome.Outcome) error {
	if !fx.ExpectedStashTabIndex.IsSet() && len(fx.ItemsToTest) == 0 {
		return nil
	}

	panel, err := acc.Stash()
	if err != nil {
		return err
	}

	if !panel.Visible {
		return structural("stash panel is not visible")
	}

	var c compared
	c.add(compare.Scalar("stash_tab_index", fx.ExpectedStashTabIndex, func() int { return panel.VisibleIndex }))
	o.Record("", c)

	if len(fx.ItemsToTest) == 0 {
		return nil
	}

	tab, ok := panel.Tab(panel.VisibleIndex)
	if !ok {
		return structural("visible stash tab %d does not exist (%d tabs)", panel.VisibleIndex, len(panel.Tabs))
	}

	compareItems(o, tab.Items, fx.ItemsToTest)

	return nil
}

// compareItems resolves each expected item by metadata against the live slots and compares it.
func compareItems(o *outcome.Outcome, slots []*snapshot.SlotItem, expected []fixture.ItemExpectation) {
	for i, exp := range expected {
		if !exp.Metadata.IsSet() {
			missingKey(o, "items_to_test", i)
			continue
		}

		key := exp.Key()

		slot, ok := resolve(o, key, slots, func(s *snapshot.SlotItem) bool {
			return s != nil && s.Item != nil && s.Metadata() == key
		})
		if !ok {
			continue
		}

		o.Record(key, compare.Item(slot, exp))
	}
}
