package hexvm

import "github.com/astavie/hexcast/hexes"

// Action is the behaviour a pattern performs when executed.
type Action func(vm *VM, env Env) CastResult

// Pattern is an iota binding a hex walk to an action.
//
// MustEscape marks the patterns that manipulate the quotation state
// themselves; they stay active inside a quotation while every other
// pattern is collected.
type Pattern struct {
	Shape      hexes.Pattern
	Name       string
	Action     Action
	MustEscape bool
}

func (p *Pattern) Truthy() bool { return true }

func (p *Pattern) Equals(other Iota) bool {
	o, ok := other.(*Pattern)
	return ok && p.Shape.Equal(o.Shape)
}

func (p *Pattern) Type() *IotaType { return PatternTag }

func (p *Pattern) Display() []any { return []any{p.Shape} }

// Continuation snapshots the frame stack; executing it jumps there.
// Compared by pairwise frame identity.
type Continuation struct {
	Frames []Frame
}

func (c *Continuation) Truthy() bool { return true }

func (c *Continuation) Equals(other Iota) bool {
	o, ok := other.(*Continuation)
	if !ok || len(o.Frames) != len(c.Frames) {
		return false
	}
	for i, f := range c.Frames {
		if o.Frames[i] != f {
			return false
		}
	}
	return true
}

func (c *Continuation) Type() *IotaType { return ContinuationTag }

func (c *Continuation) Display() []any { return []any{"Jump"} }
