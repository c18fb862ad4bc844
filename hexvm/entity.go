package hexvm

// EntityType describes a kind of entity the host can supply.
// Compared by reference.
type EntityType struct {
	Name  string
	Props map[string]any
}

func (t *EntityType) Truthy() bool { return true }

func (t *EntityType) Equals(other Iota) bool {
	o, ok := other.(*EntityType)
	return ok && o == t
}

func (t *EntityType) Type() *IotaType { return EntityTypeTag }

func (t *EntityType) Display() []any { return []any{t.Name} }

// Entity is a host object referenced from the stack. Compared by
// reference; the runtime never inspects Props.
type Entity struct {
	Kind  *EntityType
	Name  string
	Props map[string]any
}

func (e *Entity) Truthy() bool { return true }

func (e *Entity) Equals(other Iota) bool {
	o, ok := other.(*Entity)
	return ok && o == e
}

func (e *Entity) Type() *IotaType { return EntityTag }

func (e *Entity) Display() []any { return []any{e.Name} }

// Player is the entity type of casters supplied by interactive hosts.
var Player = &EntityType{Name: "Player"}

// NewPlayer returns a fresh player entity.
func NewPlayer(name string) *Entity {
	return &Entity{Kind: Player, Name: name}
}
