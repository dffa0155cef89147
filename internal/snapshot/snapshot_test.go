package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDump = `
window: {left: 0, top: 0, right: 1024, bottom: 768}
game: {is_loading: false, is_in_game: true}
area: {name: "Lioneye's Watch", raw_name: "1_1_town"}
inventories:
  - kind: Flask
    items:
      - {pos_x: 0, pos_y: 0, size_x: 1, size_y: 2, item: {metadata: flask_life}}
  - kind: MainInventory
    items:
      - pos_x: 0
        pos_y: 0
        size_x: 1
        size_y: 1
        item:
          metadata: wisdom_scroll
          components:
            base: {name: Scroll of Wisdom}
            stack: {size: 3}
entities:
  - {id: 7, metadata: npc_nessa, render_name: Nessa, targetable: true}
  - {id: 8, metadata: stash}
`

func TestDecode_YAML(t *testing.T) {
	t.Parallel()

	state, err := Decode([]byte(yamlDump))
	require.NoError(t, err)

	rect, err := state.WindowRect()
	require.NoError(t, err)
	assert.Equal(t, 1024, rect.Width())
	assert.Equal(t, 768, rect.Height())

	flags, err := state.GameState()
	require.NoError(t, err)
	assert.True(t, flags.IsInGame)

	main, err := state.PlayerInventories(InventoryMain)
	require.NoError(t, err)
	require.Len(t, main, 1)
	require.Len(t, main[0].Items, 1)

	item := main[0].Items[0].Item
	stack, ok := item.Stack()
	require.True(t, ok)
	assert.Equal(t, 3, stack.Size)

	_, ok = item.Sockets()
	assert.False(t, ok)
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	state, err := Decode([]byte(`{"area": {"name": "Town", "raw_name": "1_1_town"}, "skills": []}`))
	require.NoError(t, err)

	area, err := state.CurrentArea()
	require.NoError(t, err)
	assert.Equal(t, "1_1_town", area.RawName)

	skills, err := state.SkillBar()
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("  \n"))
	require.ErrorIs(t, err, errEmptySnapshot)

	_, err = Decode([]byte("window: [unterminated"))
	require.Error(t, err)
}

func TestState_CapabilityAbsent(t *testing.T) {
	t.Parallel()

	state := &State{}

	_, err := state.WindowRect()
	assert.ErrorIs(t, err, ErrCapabilityAbsent)

	_, err = state.Stash()
	assert.ErrorIs(t, err, ErrCapabilityAbsent)

	_, err = state.Entities("")
	assert.ErrorIs(t, err, ErrCapabilityAbsent)

	_, err = state.PurchaseWindow()
	assert.ErrorIs(t, err, ErrCapabilityAbsent)
}

func TestState_EntitiesFilter(t *testing.T) {
	t.Parallel()

	state, err := Decode([]byte(yamlDump))
	require.NoError(t, err)

	blank, err := state.Entities("")
	require.NoError(t, err)
	assert.Empty(t, blank)

	nessa, err := state.Entities("npc_nessa")
	require.NoError(t, err)
	require.Len(t, nessa, 1)
	assert.Equal(t, uint32(7), nessa[0].ID)

	none, err := state.Entities("missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestElement_Child(t *testing.T) {
	t.Parallel()

	root := &Element{Children: []*Element{
		{Children: []*Element{{Text: "leaf"}}},
	}}

	leaf, err := root.Child(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "leaf", leaf.Text)

	self, err := root.Child()
	require.NoError(t, err)
	assert.Same(t, root, self)

	_, err = root.Child(0, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrElementMissing))

	var nilRoot *Element
	_, err = nilRoot.Child(1)
	assert.ErrorIs(t, err, ErrElementMissing)
}

func TestStashPanel_Tab(t *testing.T) {
	t.Parallel()

	panel := &StashPanel{Tabs: []*Inventory{{}, nil}}

	_, ok := panel.Tab(0)
	assert.True(t, ok)
	_, ok = panel.Tab(1)
	assert.False(t, ok)
	_, ok = panel.Tab(5)
	assert.False(t, ok)
	_, ok = panel.Tab(-1)
	assert.False(t, ok)
}

func TestFileSource_RereadsOnOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("area: {raw_name: first}\n"), 0o600))

	src := NewFileSource(logrus.New(), path)

	acc, err := src.Open()
	require.NoError(t, err)
	area, err := acc.CurrentArea()
	require.NoError(t, err)
	assert.Equal(t, "first", area.RawName)

	require.NoError(t, os.WriteFile(path, []byte("area: {raw_name: second}\n"), 0o600))

	acc, err = src.Open()
	require.NoError(t, err)
	area, err = acc.CurrentArea()
	require.NoError(t, err)
	assert.Equal(t, "second", area.RawName)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGameFlags_Code(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags GameFlags
		want  int
	}{
		{name: "none", flags: GameFlags{}, want: StateNone},
		{name: "loading only", flags: GameFlags{IsLoading: true}, want: StateNone},
		{name: "in game", flags: GameFlags{IsInGame: true}, want: StateInGame},
		{name: "login", flags: GameFlags{IsLogin: true}, want: StateLogin},
		{name: "select character", flags: GameFlags{IsSelectCharacter: true}, want: StateSelectCharacter},
		{name: "in game beats login", flags: GameFlags{IsInGame: true, IsLogin: true}, want: StateInGame},
		{name: "login beats select", flags: GameFlags{IsLogin: true, IsSelectCharacter: true}, want: StateLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Code())
		})
	}
}
