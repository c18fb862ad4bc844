package hexvm

import "slices"

// VM holds the casting state: the value stack, the continuation
// frames, and the quotation machinery. Top of either stack is the
// last element.
type VM struct {
	Stack         []Iota
	Frames        []Frame
	ParenCount    int
	Parenthesized []ParenIota
	EscapeNext    bool
}

func NewVM() *VM {
	return &VM{}
}

// Clone copies the VM shallowly; iotas and frames are immutable
// records, so sharing them is safe.
func (v *VM) Clone() *VM {
	return &VM{
		Stack:         slices.Clone(v.Stack),
		Frames:        slices.Clone(v.Frames),
		ParenCount:    v.ParenCount,
		Parenthesized: slices.Clone(v.Parenthesized),
		EscapeNext:    v.EscapeNext,
	}
}

// Apply runs a change against the VM, op by op.
func (v *VM) Apply(change Change) {
	for _, op := range change {
		op.apply(v)
	}
}

// Take checks the top of the stack against the wanted type tags
// without popping. A nil tag accepts any iota. The leftmost tag binds
// to the deepest of the taken slots.
func (v *VM) Take(tags ...*IotaType) ([]Iota, *Mishap) {
	n := len(tags)
	if len(v.Stack) < n {
		return nil, &Mishap{Kind: MishapTooFewArgs, Wanted: n}
	}
	args := v.Stack[len(v.Stack)-n:]
	for i, tag := range tags {
		if tag != nil && args[i].Type() != tag {
			return nil, &Mishap{
				Kind:     MishapWrongType,
				Expected: tag,
				Got:      args[i],
				Slot:     i,
			}
		}
	}
	return slices.Clone(args), nil
}
