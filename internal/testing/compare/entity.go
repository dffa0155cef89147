package compare

import (
	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
)

// Entity compares a live entity against an entity expectation. Metadata is the lookup key
// and is not compared here.
func Entity(e *snapshot.Entity, exp fixture.EntityExpectation) (mismatches []outcome.Mismatch) {
	c := &collector{}

	defer func() { mismatches = c.mismatches() }()
	defer c.recover()

	c.add(Scalar("id", exp.ID, func() uint32 { return e.ID }))
	c.add(Scalar("grid_pos_x", exp.GridPosX, func() int { return int(e.GridPos.X) }))
	c.add(Scalar("grid_pos_y", exp.GridPosY, func() int { return int(e.GridPos.Y) }))
	c.add(Scalar("render_name", exp.RenderName, func() string { return e.RenderName }))
	c.add(Scalar("targetable", exp.Targetable, func() bool { return e.Targetable }))
	c.add(Scalar("type_str", exp.TypeStr, func() string { return e.Type }))

	if want, ok := exp.ResourcePath.Get(); ok {
		entityResourcePath(c, e, want)
	}

	return c.mismatches()
}

// entityResourcePath follows the world-item component to the wrapped item entity and reads
// its render-item resource path.
func entityResourcePath(c *collector, e *snapshot.Entity, want string) {
	const field = "resource_path"

	world, ok := e.WorldItem()
	if !ok || world.ItemEntity == nil {
		c.absent(field, "world item component")
		return
	}

	render, ok := world.ItemEntity.RenderItem()
	if !ok {
		c.absent(field, "render item component")
		return
	}

	if render.ResourcePath != want {
		c.add(outcome.ValueMismatch(field, render.ResourcePath, want), true)
	}
}
