package check

import (
	"errors"
	"fmt"
)

// Check names, also the fixture and report file stems.
const (
	GameWindow     = "game_window"
	GameStates     = "game_states"
	PlayerInfo     = "player_info"
	Area           = "area"
	PlayerFlasks   = "player_flasks"
	PlayerSkills   = "player_skills"
	Entities       = "entities"
	GroundLabels   = "ground_labels"
	Inventory      = "inventory"
	Stash          = "stash"
	MapDevice      = "map_device"
	MissionChoice  = "mission_choice"
	PurchaseWindow = "purchase_window"
)

// ErrUnknownCheck is returned when a name is not in the battery.
var ErrUnknownCheck = errors.New("unknown check")

// Battery returns every check in run order.
func Battery() []Check {
	return []Check{
		New(GameWindow, gameWindow),
		New(GameStates, gameStates),
		New(PlayerInfo, playerInfo),
		New(Area, area),
		New(PlayerFlasks, playerFlasks),
		New(PlayerSkills, playerSkills),
		New(Entities, entities),
		New(GroundLabels, groundLabels),
		New(Inventory, inventory),
		New(Stash, stash),
		New(MapDevice, mapDevice),
		New(MissionChoice, missionChoice),
		New(PurchaseWindow, purchaseWindow),
	}
}

// Names returns the battery's check names in run order.
func Names() []string {
	checks := Battery()
	names := make([]string, 0, len(checks))

	for _, c := range checks {
		names = append(names, c.Name())
	}

	return names
}

// Select returns the named checks in the order given.
func Select(names []string) ([]Check, error) {
	byName := make(map[string]Check)
	for _, c := range Battery() {
		byName[c.Name()] = c
	}

	out := make([]Check, 0, len(names))

	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}

		out = append(out, c)
	}

	return out, nil
}
