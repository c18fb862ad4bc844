package hexvm

import (
	"iter"
	"slices"
)

// Execute dispatches a single iota against the current escape state.
// The returned diff is not yet applied.
func (v *VM) Execute(iota Iota, env Env) CastResult {
	action, mustEscape := actionOf(iota)

	if action != nil && !v.EscapeNext && (v.ParenCount == 0 || mustEscape) {
		res := action(v, env)
		res.Cast = iota
		return res
	}

	if v.EscapeNext || v.ParenCount > 0 {
		if v.ParenCount > 0 {
			return CastResult{
				Cast:       iota,
				Diff:       Change{EscapePush{Iota: iota}},
				Resolution: ResolutionEscaped,
				Sound:      SoundNormal,
			}
		}
		return CastResult{
			Cast: iota,
			Diff: Change{
				StackPush{Iotas: []Iota{iota}},
				Consider{Escape: false},
			},
			Resolution: ResolutionEscaped,
			Sound:      SoundNormal,
		}
	}

	mishap := &Mishap{Kind: MishapUnescapedValue, Got: iota}
	res := mishap.result()
	res.Cast = iota
	return res
}

func actionOf(iota Iota) (Action, bool) {
	switch x := iota.(type) {
	case *Pattern:
		return x.Action, x.MustEscape
	case *Continuation:
		return func(vm *VM, env Env) CastResult {
			return vm.ExecuteJump(x)
		}, false
	}
	return nil, false
}

// ExecuteJump replaces the frame stack with a captured continuation.
func (v *VM) ExecuteJump(c *Continuation) CastResult {
	return CastResult{
		Diff:       Change{FrameSet{Frames: c.Frames}},
		Resolution: ResolutionEvaluated,
		Sound:      SoundHermes,
	}
}

// Step evaluates the top frame and applies its change. Reports false
// when no frame is left.
func (v *VM) Step(env Env) (CastResult, bool) {
	if len(v.Frames) == 0 {
		return CastResult{}, false
	}
	top := v.Frames[len(v.Frames)-1]
	res := top.Evaluate(v, env)
	v.Apply(res.Diff)
	return res, true
}

// Run feeds external iotas to the VM, letting frame work quiesce
// before each one, and yields every cast result produced.
func (v *VM) Run(env Env, iotas ...Iota) iter.Seq[CastResult] {
	return func(yield func(CastResult) bool) {
		drain := func() bool {
			for {
				res, ok := v.Step(env)
				if !ok {
					return true
				}
				if !yield(res) {
					return false
				}
			}
		}
		for _, iota := range iotas {
			if !drain() {
				return
			}
			res := v.Execute(iota, env)
			v.Apply(res.Diff)
			if !yield(res) {
				return
			}
		}
		drain()
	}
}

// Break unwinds frames from the top, applying each frame's stack
// restoration, and stops after consuming the first frame that
// captures breaks.
func (v *VM) Break(env Env) CastResult {
	work := v.Clone()
	var diff Change
	for len(work.Frames) > 0 {
		top := work.Frames[len(work.Frames)-1]
		ops := append(Change{FramePop{N: 1}}, top.RestoreStack(slices.Clone(work.Stack))...)
		work.Apply(ops)
		diff = append(diff, ops...)
		if top.CapturesBreak() {
			break
		}
	}
	return CastResult{
		Diff:       diff,
		Resolution: ResolutionEvaluated,
		Sound:      SoundNormal,
	}
}
