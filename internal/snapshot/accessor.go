package snapshot

import (
	"errors"
	"fmt"
)

// ErrCapabilityAbsent is returned when the host does not expose the requested slice of state.
var ErrCapabilityAbsent = errors.New("capability absent")

// Accessor is the read-only query surface over the host's live state.
type Accessor interface {
	WindowRect() (Rect, error)
	GameState() (GameFlags, error)
	LocalPlayer() (*Entity, error)
	CurrentArea() (Area, error)
	SkillBar() ([]Skill, error)
	PlayerInventories(kind InventoryKind) ([]*Inventory, error)
	Entities(metadata string) ([]*Entity, error)
	GroundLabels() ([]*GroundLabel, error)
	Stash() (*StashPanel, error)
	MapDevice() (*MapDeviceWindow, error)
	MissionChoice() (*MissionChoiceWindow, error)
	PurchaseWindow() (*PurchaseWindow, error)
}

// State is a captured host state. The zero value exposes nothing.
type State struct {
	Window      *Rect                `yaml:"window"`
	Game        *GameFlags           `yaml:"game"`
	Player      *Entity              `yaml:"player"`
	Area        *Area                `yaml:"area"`
	Skills      []Skill              `yaml:"skills"`
	Inventories []*Inventory         `yaml:"inventories"`
	EntityList  []*Entity            `yaml:"entities"`
	Labels      []*GroundLabel       `yaml:"ground_labels"`
	StashPanel  *StashPanel          `yaml:"stash"`
	Device      *MapDeviceWindow     `yaml:"map_device"`
	Missions    *MissionChoiceWindow `yaml:"mission_choice"`
	Purchase    *PurchaseWindow      `yaml:"purchase_window"`
}

func absent(what string) error {
	return fmt.Errorf("%w: %s", ErrCapabilityAbsent, what)
}

// WindowRect returns the game window rectangle.
func (s *State) WindowRect() (Rect, error) {
	if s.Window == nil {
		return Rect{}, absent("window")
	}
	return *s.Window, nil
}

// GameState returns the loading and state flags.
func (s *State) GameState() (GameFlags, error) {
	if s.Game == nil {
		return GameFlags{}, absent("game state")
	}
	return *s.Game, nil
}

// LocalPlayer returns the local player entity.
func (s *State) LocalPlayer() (*Entity, error) {
	if s.Player == nil {
		return nil, absent("local player")
	}
	return s.Player, nil
}

// CurrentArea returns the current area.
func (s *State) CurrentArea() (Area, error) {
	if s.Area == nil {
		return Area{}, absent("current area")
	}
	return *s.Area, nil
}

// SkillBar returns the skill-bar entries in bar order.
func (s *State) SkillBar() ([]Skill, error) {
	if s.Skills == nil {
		return nil, absent("skill bar")
	}
	return s.Skills, nil
}

// PlayerInventories returns the player inventories of the given kind, in server order.
func (s *State) PlayerInventories(kind InventoryKind) ([]*Inventory, error) {
	if s.Inventories == nil {
		return nil, absent("player inventories")
	}

	out := make([]*Inventory, 0, 1)
	for _, inv := range s.Inventories {
		if inv != nil && inv.Kind == kind {
			out = append(out, inv)
		}
	}

	return out, nil
}

// Entities returns every entity whose metadata equals metadata exactly.
func (s *State) Entities(metadata string) ([]*Entity, error) {
	if s.EntityList == nil {
		return nil, absent("entity list")
	}

	out := make([]*Entity, 0, len(s.EntityList))
	for _, e := range s.EntityList {
		if e == nil {
			continue
		}
		if e.Metadata == metadata {
			out = append(out, e)
		}
	}

	return out, nil
}

// GroundLabels returns the visible ground-item labels.
func (s *State) GroundLabels() ([]*GroundLabel, error) {
	if s.Labels == nil {
		return nil, absent("ground item labels")
	}
	return s.Labels, nil
}

// Stash returns the stash panel.
func (s *State) Stash() (*StashPanel, error) {
	if s.StashPanel == nil {
		return nil, absent("stash panel")
	}
	return s.StashPanel, nil
}

// MapDevice returns the crafting device window.
func (s *State) MapDevice() (*MapDeviceWindow, error) {
	if s.Device == nil {
		return nil, absent("map device window")
	}
	return s.Device, nil
}

// MissionChoice returns the mission-choice window.
func (s *State) MissionChoice() (*MissionChoiceWindow, error) {
	if s.Missions == nil {
		return nil, absent("mission choice window")
	}
	return s.Missions, nil
}

// PurchaseWindow returns the vendor purchase window.
func (s *State) PurchaseWindow() (*PurchaseWindow, error) {
	if s.Purchase == nil {
		return nil, absent("purchase window")
	}
	return s.Purchase, nil
}

// Compile-time interface compliance check
var _ Accessor = (*State)(nil)
