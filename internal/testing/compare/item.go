package compare

import (
	"fmt"

	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

// Item compares an item held in an inventory slot against an item expectation. Grid
// position and size come from the slot, the rest from the item entity's components.
func Item(slot *snapshot.SlotItem, exp fixture.ItemExpectation) (mismatches []outcome.Mismatch) {
	c := &collector{}

	defer func() { mismatches = c.mismatches() }()
	defer c.recover()

	item := slot.Item

	if want, ok := exp.Name.Get(); ok {
		if base, has := item.Base(); !has {
			c.absent("name", "base component")
		} else if base.Name != want {
			c.add(outcome.ValueMismatch("name", base.Name, want), true)
		}
	}

	if want, ok := exp.RenderPath.Get(); ok {
		if render, has := item.RenderItem(); !has {
			c.absent("render_path", "render item component")
		} else if render.ResourcePath != want {
			c.add(outcome.ValueMismatch("render_path", render.ResourcePath, want), true)
		}
	}

	if want, ok := exp.StackSize.Get(); ok {
		if stack, has := item.Stack(); !has {
			c.absent("stack_size", "stack component")
		} else if stack.Size != want {
			c.add(outcome.ValueMismatch("stack_size", stack.Size, want), true)
		}
	}

	if want, ok := exp.SocketGroup.Get(); ok {
		if sockets, has := item.Sockets(); !has {
			c.absent("socket_group", "sockets component")
		} else {
			c.add(Sequence("socket_group", sockets.SocketGroup, want))
		}
	}

	if want, ok := exp.GridPosition.Get(); ok {
		c.add(pair("grid_position", [2]int{slot.PosX, slot.PosY}, want))
	}

	if want, ok := exp.GridPositionSize.Get(); ok {
		c.add(pair("grid_position_size", [2]int{slot.SizeX, slot.SizeY}, want))
	}

	return c.mismatches()
}

// pair compares a 2-tuple. A fixture tuple of the wrong length is reported once.
func pair(field string, got [2]int, want []int) (outcome.Mismatch, bool) {
	if len(want) != 2 {
		return outcome.Mismatch{
			Kind:    outcome.KindFixtureParse,
			Field:   field,
			Message: fmt.Sprintf("expected 2 values, fixture has %d", len(want)),
		}, true
	}

	if got[0] != want[0] || got[1] != want[1] {
		return outcome.ValueMismatch(field, got[:], want), true
	}

	return outcome.Mismatch{}, false
}
