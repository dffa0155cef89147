package snapshot

// Entity is a live host object. Only the identity fields are always present; everything
// else hangs off optional components.
type Entity struct {
	ID         uint32     `yaml:"id"`
	Metadata   string     `yaml:"metadata"`
	Path       string     `yaml:"path"`
	RenderName string     `yaml:"render_name"`
	Type       string     `yaml:"type"`
	Targetable bool       `yaml:"targetable"`
	GridPos    Vector2    `yaml:"grid_pos"`
	Components Components `yaml:"components"`
}

// Components lists every component the harness knows how to read.
type Components struct {
	Base       *BaseComponent       `yaml:"base,omitempty"`
	RenderItem *RenderItemComponent `yaml:"render_item,omitempty"`
	Stack      *StackComponent      `yaml:"stack,omitempty"`
	Sockets    *SocketsComponent    `yaml:"sockets,omitempty"`
	WorldItem  *WorldItemComponent  `yaml:"world_item,omitempty"`
	Player     *PlayerComponent     `yaml:"player,omitempty"`
}

// BaseComponent carries the item base name.
type BaseComponent struct {
	Name string `yaml:"name"`
}

// RenderItemComponent carries the item icon resource.
type RenderItemComponent struct {
	ResourcePath string `yaml:"resource_path"`
}

// StackComponent carries a stack count.
type StackComponent struct {
	Size int `yaml:"size"`
}

// SocketsComponent carries linked socket groups, e.g. ["BB", "R"].
type SocketsComponent struct {
	SocketGroup []string `yaml:"socket_group"`
}

// WorldItemComponent wraps the item entity of something lying on the ground.
type WorldItemComponent struct {
	ItemEntity *Entity `yaml:"item_entity"`
}

// PlayerComponent carries character data of a player entity.
type PlayerComponent struct {
	PlayerName   string `yaml:"player_name"`
	Level        int    `yaml:"level"`
	Strength     int    `yaml:"strength"`
	Dexterity    int    `yaml:"dexterity"`
	Intelligence int    `yaml:"intelligence"`
}

// Base returns the base component if the entity exposes one.
func (e *Entity) Base() (*BaseComponent, bool) {
	return e.Components.Base, e.Components.Base != nil
}

// RenderItem returns the render-item component if the entity exposes one.
func (e *Entity) RenderItem() (*RenderItemComponent, bool) {
	return e.Components.RenderItem, e.Components.RenderItem != nil
}

// Stack returns the stack component if the entity exposes one.
func (e *Entity) Stack() (*StackComponent, bool) {
	return e.Components.Stack, e.Components.Stack != nil
}

// Sockets returns the sockets component if the entity exposes one.
func (e *Entity) Sockets() (*SocketsComponent, bool) {
	return e.Components.Sockets, e.Components.Sockets != nil
}

// WorldItem returns the world-item component if the entity exposes one.
func (e *Entity) WorldItem() (*WorldItemComponent, bool) {
	return e.Components.WorldItem, e.Components.WorldItem != nil
}

// Player returns the player component if the entity exposes one.
func (e *Entity) Player() (*PlayerComponent, bool) {
	return e.Components.Player, e.Components.Player != nil
}
