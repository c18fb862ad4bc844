package hexvm

import "slices"

// ThothFrame folds a body over a list of data, collecting every
// iteration's stack into an accumulator that is published as a list
// when the data runs out.
//
// BaseStack is nil until the first iteration snapshots the stack.
type ThothFrame struct {
	Data      []Iota
	Code      []Iota
	BaseStack []Iota
	Acc       []Iota
}

func (f *ThothFrame) Evaluate(vm *VM, env Env) CastResult {
	base := f.BaseStack
	acc := f.Acc
	if base == nil {
		base = slices.Clone(vm.Stack)
	} else {
		acc = append(slices.Clone(acc), slices.Clone(vm.Stack)...)
	}

	if len(f.Data) > 0 {
		head, rest := f.Data[0], f.Data[1:]
		return CastResult{
			Diff: Change{
				FramePop{N: 1},
				StackSet{Stack: base},
				StackPush{Iotas: []Iota{head}},
				FramePush{Frames: []Frame{
					&ThothFrame{Data: rest, Code: f.Code, BaseStack: base, Acc: acc},
					&HermesFrame{Patterns: f.Code},
				}},
			},
			Resolution: ResolutionEvaluated,
			Sound:      SoundThoth,
		}
	}

	return CastResult{
		Diff: Change{
			FramePop{N: 1},
			StackSet{Stack: base},
			StackPush{Iotas: []Iota{List(acc)}},
		},
		Resolution: ResolutionEvaluated,
		Sound:      SoundThoth,
	}
}

func (f *ThothFrame) CapturesBreak() bool { return true }

// RestoreStack publishes the partial accumulator when a break
// unwinds the fold.
func (f *ThothFrame) RestoreStack(stack []Iota) Change {
	acc := append(slices.Clone(f.Acc), slices.Clone(stack)...)
	base := f.BaseStack
	if base == nil {
		base = []Iota{}
	}
	return Change{
		StackSet{Stack: base},
		StackPush{Iotas: []Iota{List(acc)}},
	}
}
