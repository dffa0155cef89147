package compare

import (
	"strings"
	"testing"

	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(ms []outcome.Mismatch) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.String())
	}

	return out
}

func wand() *snapshot.SlotItem {
	return &snapshot.SlotItem{
		PosX: 4, PosY: 1, SizeX: 1, SizeY: 3,
		Item: &snapshot.Entity{
			Metadata: "Metadata/Items/Wands/Wand1",
			Components: snapshot.Components{
				Base:       &snapshot.BaseComponent{Name: "Driftwood Wand"},
				RenderItem: &snapshot.RenderItemComponent{ResourcePath: "Art/2DItems/Weapons/Wand1.dds"},
				Sockets:    &snapshot.SocketsComponent{SocketGroup: []string{"B", "R"}},
			},
		},
	}
}

func TestScalar_UnsetNeverReads(t *testing.T) {
	t.Parallel()

	read := func() int {
		t.Fatal("read called for unset field")
		return 0
	}

	_, failed := Scalar("expected_size_x", fixture.Optional[int]{}, read)
	assert.False(t, failed)

	_, failed = Scalar("expected_size_x", fixture.Null[int](), read)
	assert.False(t, failed)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		got     []string
		want    []string
		failed  bool
		message string
	}{
		{name: "equal", got: []string{"B", "B"}, want: []string{"B", "B"}},
		{name: "both empty", got: nil, want: []string{}},
		{
			name: "element mismatch names index", got: []string{"B", "R"}, want: []string{"B", "B"},
			failed: true, message: "socket_group[1] R, expected B",
		},
		{
			name: "first element only", got: []string{"R", "G"}, want: []string{"B", "B"},
			failed: true, message: "socket_group[0] R, expected B",
		},
		{
			name: "length", got: []string{"B"}, want: []string{"B", "B"},
			failed: true, message: "socket_group count 1, expected 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, failed := Sequence("socket_group", tt.got, tt.want)
			require.Equal(t, tt.failed, failed)
			if failed {
				assert.Equal(t, tt.message, m.String())
			}
		})
	}
}

func TestItem_SocketGroupIndex(t *testing.T) {
	t.Parallel()

	exp := fixture.ItemExpectation{
		Metadata:    fixture.Some("Metadata/Items/Wands/Wand1"),
		SocketGroup: fixture.Some([]string{"B", "B"}),
	}

	got := Item(wand(), exp)
	require.Len(t, got, 1)
	assert.Equal(t, outcome.KindValueMismatch, got[0].Kind)
	assert.Contains(t, got[0].String(), "[1]")
	assert.NotContains(t, got[0].String(), "count")
}

func TestItem_StackCapabilityAbsent(t *testing.T) {
	t.Parallel()

	slot := &snapshot.SlotItem{Item: &snapshot.Entity{Metadata: "wisdom_scroll"}}
	exp := fixture.ItemExpectation{
		Metadata:  fixture.Some("wisdom_scroll"),
		StackSize: fixture.Some(3),
	}

	got := Item(slot, exp)
	require.Len(t, got, 1)
	assert.Equal(t, outcome.KindCapabilityAbsent, got[0].Kind)
	assert.Equal(t, "stack_size", got[0].Field)
}

func TestItem_AllFields(t *testing.T) {
	t.Parallel()

	exp := fixture.ItemExpectation{
		Name:             fixture.Some("Imbued Wand"),
		RenderPath:       fixture.Some("Art/2DItems/Weapons/Wand1.dds"),
		StackSize:        fixture.Some(1),
		GridPosition:     fixture.Some([]int{4, 2}),
		GridPositionSize: fixture.Some([]int{1, 3}),
		SocketGroup:      fixture.Some([]string{"B", "R"}),
	}

	want := []string{
		"name Driftwood Wand, expected Imbued Wand",
		"stack_size: capability absent: stack component",
		"grid_position [4 1], expected [4 2]",
	}

	if diff := cmp.Diff(want, strs(Item(wand(), exp))); diff != "" {
		t.Errorf("mismatches (-want +got):\n%s", diff)
	}
}

func TestItem_BadTupleLength(t *testing.T) {
	t.Parallel()

	exp := fixture.ItemExpectation{GridPosition: fixture.Some([]int{4})}

	got := Item(wand(), exp)
	require.Len(t, got, 1)
	assert.Equal(t, "grid_position: expected 2 values, fixture has 1", got[0].String())
}

func TestItem_Partiality(t *testing.T) {
	t.Parallel()

	// An empty live item lacks every component; nothing is asserted, nothing fails.
	slot := &snapshot.SlotItem{Item: &snapshot.Entity{}}
	exp := fixture.ItemExpectation{
		Metadata: fixture.Some("x"),
		Name:     fixture.Null[string](),
		ItemMods: fixture.Some([]string{"IncreasedLife"}),
	}

	assert.Empty(t, Item(slot, exp))
}

func TestItem_HostFault(t *testing.T) {
	t.Parallel()

	slot := &snapshot.SlotItem{}
	exp := fixture.ItemExpectation{StackSize: fixture.Some(3)}

	got := Item(slot, exp)
	require.Len(t, got, 1)
	assert.Equal(t, outcome.KindInternal, got[0].Kind)
	assert.True(t, strings.HasPrefix(got[0].String(), "host access failure: "))
}

func TestEntity_HostFault(t *testing.T) {
	t.Parallel()

	var gone *snapshot.Entity
	exp := fixture.EntityExpectation{RenderName: fixture.Some("Chest"), TypeStr: fixture.Some("Chest")}

	got := Entity(gone, exp)
	require.Len(t, got, 1)
	assert.Equal(t, outcome.KindInternal, got[0].Kind)
	assert.True(t, strings.HasPrefix(got[0].String(), "host access failure: "))
}

func TestEntity(t *testing.T) {
	t.Parallel()

	chest := &snapshot.Entity{
		ID:         42,
		Metadata:   "Metadata/Chests/Chest1",
		RenderName: "Chest",
		Type:       "Chest",
		Targetable: true,
		GridPos:    snapshot.Vector2{X: 10.7, Y: 20.2},
	}

	tests := []struct {
		name string
		exp  fixture.EntityExpectation
		want []string
	}{
		{
			name: "match truncates grid position",
			exp: fixture.EntityExpectation{
				ID: fixture.Some(uint32(42)), GridPosX: fixture.Some(10), GridPosY: fixture.Some(20),
				RenderName: fixture.Some("Chest"), Targetable: fixture.Some(true), TypeStr: fixture.Some("Chest"),
			},
			want: []string{},
		},
		{
			name: "mismatches continue past the first",
			exp: fixture.EntityExpectation{
				ID: fixture.Some(uint32(7)), Targetable: fixture.Some(false),
			},
			want: []string{"id 42, expected 7", "targetable true, expected false"},
		},
		{
			name: "resource path without world item",
			exp:  fixture.EntityExpectation{ResourcePath: fixture.Some("Art/Chest.dds")},
			want: []string{"resource_path: capability absent: world item component"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, strs(Entity(chest, tt.exp))); diff != "" {
				t.Errorf("mismatches (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntity_ResourcePath(t *testing.T) {
	t.Parallel()

	inner := &snapshot.Entity{}
	label := &snapshot.Entity{
		Components: snapshot.Components{
			WorldItem: &snapshot.WorldItemComponent{ItemEntity: inner},
		},
	}
	exp := fixture.EntityExpectation{ResourcePath: fixture.Some("Art/Currency/Wisdom.dds")}

	assert.Equal(t, []string{"resource_path: capability absent: render item component"}, strs(Entity(label, exp)))

	inner.Components.RenderItem = &snapshot.RenderItemComponent{ResourcePath: "Art/Currency/Portal.dds"}
	assert.Equal(t, []string{"resource_path Art/Currency/Portal.dds, expected Art/Currency/Wisdom.dds"}, strs(Entity(label, exp)))

	inner.Components.RenderItem.ResourcePath = "Art/Currency/Wisdom.dds"
	assert.Empty(t, Entity(label, exp))
}
