// Package snapshot models the read-only view of the host application's live object graph.
//
// The harness never mutates anything reachable from here. Components an object may or may
// not expose are queried through capability methods returning (value, ok).
package snapshot

// InventoryKind identifies a player inventory.
type InventoryKind string

const (
	// InventoryMain is the main backpack grid.
	InventoryMain InventoryKind = "MainInventory"
	// InventoryFlask is the flask belt.
	InventoryFlask InventoryKind = "Flask"
)

// Rect is the window rectangle in screen coordinates.
type Rect struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Width truncates both edges before subtracting, matching how the host reports sizes.
func (r Rect) Width() int {
	return int(r.Right) - int(r.Left)
}

// Height truncates both edges before subtracting.
func (r Rect) Height() int {
	return int(r.Bottom) - int(r.Top)
}

// GameFlags are the host's loading flag and its three mutually exclusive state flags.
type GameFlags struct {
	IsLoading         bool `yaml:"is_loading"`
	IsInGame          bool `yaml:"is_in_game"`
	IsLogin           bool `yaml:"is_login"`
	IsSelectCharacter bool `yaml:"is_select_character"`
}

// Game state codes derived from GameFlags.
const (
	StateNone            = 0
	StateLogin           = 1
	StateSelectCharacter = 10
	StateInGame          = 20
)

// Code classifies the flags into one state code. In-game wins over login, login over
// character select; anything else is StateNone.
func (g GameFlags) Code() int {
	switch {
	case g.IsInGame:
		return StateInGame
	case g.IsLogin:
		return StateLogin
	case g.IsSelectCharacter:
		return StateSelectCharacter
	default:
		return StateNone
	}
}

// Area is the zone the player currently stands in.
type Area struct {
	Name    string `yaml:"name"`
	RawName string `yaml:"raw_name"`
}

// Vector2 is a grid position.
type Vector2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Skill is one skill-bar entry.
type Skill struct {
	InternalName                 string         `yaml:"internal_name"`
	CanBeUsed                    bool           `yaml:"can_be_used"`
	HundredTimesAttacksPerSecond int            `yaml:"hundred_times_attacks_per_second"`
	Stats                        map[string]int `yaml:"stats"`
}

// Stat looks up a keyed skill stat.
func (s Skill) Stat(key string) (int, bool) {
	v, ok := s.Stats[key]
	return v, ok
}

// SlotItem is an item occupying a cell range of an inventory grid.
type SlotItem struct {
	PosX  int     `yaml:"pos_x"`
	PosY  int     `yaml:"pos_y"`
	SizeX int     `yaml:"size_x"`
	SizeY int     `yaml:"size_y"`
	Item  *Entity `yaml:"item"`
}

// Metadata returns the wrapped item's metadata path, or "" when the slot is empty.
func (s *SlotItem) Metadata() string {
	if s == nil || s.Item == nil {
		return ""
	}
	return s.Item.Metadata
}

// Inventory is a typed grid of slot items.
type Inventory struct {
	Kind  InventoryKind `yaml:"kind"`
	Items []*SlotItem   `yaml:"items"`
}

// GroundLabel is a visible label for an item lying on the ground.
type GroundLabel struct {
	ItemOnGround *Entity `yaml:"item_on_ground"`
}

// StashPanel is the stash UI with its tabs.
type StashPanel struct {
	Visible      bool         `yaml:"visible"`
	VisibleIndex int          `yaml:"visible_index"`
	Tabs         []*Inventory `yaml:"tabs"`
}

// Tab returns the tab at index, or false when it does not exist.
func (s *StashPanel) Tab(index int) (*Inventory, bool) {
	if index < 0 || index >= len(s.Tabs) || s.Tabs[index] == nil {
		return nil, false
	}
	return s.Tabs[index], true
}

// MapDeviceWindow is the crafting device UI.
type MapDeviceWindow struct {
	Visible     bool        `yaml:"visible"`
	Root        *Element    `yaml:"root"`
	MastersMods *Element    `yaml:"masters_mods"`
	Slots       []*SlotItem `yaml:"slots"`
}

// MissionChoiceWindow is the mission-choice UI.
type MissionChoiceWindow struct {
	Visible bool     `yaml:"visible"`
	Root    *Element `yaml:"root"`
}

// PurchaseWindow is a vendor purchase window.
type PurchaseWindow struct {
	Visible      bool          `yaml:"visible"`
	TabContainer *TabContainer `yaml:"tab_container"`
}

// TabContainer holds the currently visible vendor tab.
type TabContainer struct {
	VisibleStash *Inventory `yaml:"visible_stash"`
}
