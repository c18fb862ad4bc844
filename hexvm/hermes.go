package hexvm

// HermesFrame executes a sequence of iotas one per step.
type HermesFrame struct {
	Patterns    []Iota
	CapturesBrk bool
}

func (f *HermesFrame) Evaluate(vm *VM, env Env) CastResult {
	trans := Change{FramePop{N: 1}}
	if len(f.Patterns) == 0 {
		return CastResult{
			Diff:       trans,
			Resolution: ResolutionEvaluated,
		}
	}

	head := f.Patterns[0]
	if rest := f.Patterns[1:]; len(rest) > 0 {
		trans = append(trans, FramePush{Frames: []Frame{
			&HermesFrame{Patterns: rest, CapturesBrk: f.CapturesBrk},
		}})
	}

	work := vm.Clone()
	work.Apply(trans)
	res := work.Execute(head, env)
	res.Diff = append(trans[:len(trans):len(trans)], res.Diff...)
	return res
}

func (f *HermesFrame) CapturesBreak() bool { return f.CapturesBrk }

func (f *HermesFrame) RestoreStack(stack []Iota) Change { return nil }
