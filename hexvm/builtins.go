package hexvm

import (
	"math"
	"slices"
)

func pushed(iotas ...Iota) CastResult {
	return CastResult{
		Diff:       Change{StackPush{Iotas: iotas}},
		Resolution: ResolutionEvaluated,
		Sound:      SoundNormal,
	}
}

func pushAction(f func(vm *VM, env Env) Iota) Action {
	return func(vm *VM, env Env) CastResult {
		return pushed(f(vm, env))
	}
}

func constAction(iota Iota) Action {
	return func(vm *VM, env Env) CastResult {
		return pushed(iota)
	}
}

// takeAction pops the typed arguments and pushes the results.
func takeAction(tags []*IotaType, f func(args []Iota) ([]Iota, *Mishap)) Action {
	return func(vm *VM, env Env) CastResult {
		args, m := vm.Take(tags...)
		if m != nil {
			return m.result()
		}
		out, m := f(args)
		if m != nil {
			return m.result()
		}
		return CastResult{
			Diff: Change{
				StackPop{N: len(tags)},
				StackPush{Iotas: out},
			},
			Resolution: ResolutionEvaluated,
			Sound:      SoundNormal,
		}
	}
}

var (
	Introspection *Pattern
	Retrospection *Pattern
	Consideration *Pattern
)

func init() {
	Introspection = defineEscape("west,qqq", "Introspection", introspect)
	Retrospection = defineEscape("east,eee", "Retrospection", retrospect)
	Consideration = defineEscape("west,qqqaw", "Consideration", consider)
}

var (
	VacantReflection = define("northeast,qqaeaae", "Vacant Reflection",
		constAction(List{}))
	SinglesPurification = define("east,adeeed", "Single's Purification",
		takeAction([]*IotaType{nil}, func(args []Iota) ([]Iota, *Mishap) {
			return []Iota{List{args[0]}}, nil
		}))
	MindsReflection = define("northeast,qaq", "Mind's Reflection",
		pushAction(func(vm *VM, env Env) Iota {
			if caster := env.Caster(); caster != nil {
				return caster
			}
			return Null{}
		}))

	TrueReflection = define("southeast,aqae", "True Reflection",
		constAction(Boolean(true)))
	FalseReflection = define("northeast,dedq", "False Reflection",
		constAction(Boolean(false)))
	NullaryReflection = define("east,d", "Nullary Reflection",
		constAction(Null{}))

	VectorReflectionZero = define("northwest,qqqqq", "Vector Reflection Zero",
		constAction(Vector3{}))
	VectorReflectionPosX = define("northwest,qqqqqea", "Vector Reflection +X",
		constAction(Vector3{X: 1}))
	VectorReflectionNegX = define("northeast,eeeeeqa", "Vector Reflection -X",
		constAction(Vector3{X: -1}))
	VectorReflectionPosY = define("northwest,qqqqqew", "Vector Reflection +Y",
		constAction(Vector3{Y: 1}))
	VectorReflectionNegY = define("northeast,eeeeeqw", "Vector Reflection -Y",
		constAction(Vector3{Y: -1}))
	VectorReflectionPosZ = define("northwest,qqqqqed", "Vector Reflection +Z",
		constAction(Vector3{Z: 1}))
	VectorReflectionNegZ = define("northeast,eeeeeqd", "Vector Reflection -Z",
		constAction(Vector3{Z: -1}))

	CirclesReflection = define("northwest,eawae", "Circle's Reflection",
		constAction(Double(2*math.Pi)))
	ArcsReflection = define("northeast,qdwdq", "Arc's Reflection",
		constAction(Double(math.Pi)))
	EulersReflection = define("east,aaq", "Euler's Reflection",
		constAction(Double(math.E)))

	VectorExaltation = define("east,eqqqqq", "Vector Exaltation",
		takeAction([]*IotaType{DoubleTag, DoubleTag, DoubleTag}, func(args []Iota) ([]Iota, *Mishap) {
			return []Iota{Vector3{
				X: float64(args[0].(Double)),
				Y: float64(args[1].(Double)),
				Z: float64(args[2].(Double)),
			}}, nil
		}))

	HermesGambit = define("southeast,deaqq", "Hermes' Gambit", hermes)
	ThothsGambit = define("northeast,dadad", "Thoth's Gambit", thoth)
	IrisGambit   = define("northwest,qwaqde", "Iris' Gambit", iris)

	AdditiveDistillation = define("northeast,waaw", "Additive Distillation",
		arithmetic(func(a, b float64) (float64, *Mishap) { return a + b, nil }))
	SubtractiveDistillation = define("northwest,wddw", "Subtractive Distillation",
		arithmetic(func(a, b float64) (float64, *Mishap) { return a - b, nil }))
	MultiplicativeDistillation = define("southeast,waqaw", "Multiplicative Distillation",
		arithmetic(func(a, b float64) (float64, *Mishap) { return a * b, nil }))
	DivisionDistillation = define("northeast,wdedw", "Division Distillation",
		arithmetic(func(a, b float64) (float64, *Mishap) {
			if b == 0 {
				return 0, &Mishap{Kind: MishapDivideByZero}
			}
			return a / b, nil
		}))

	GeminiDecomposition = define("east,aadaa", "Gemini Decomposition",
		func(vm *VM, env Env) CastResult {
			args, m := vm.Take(nil)
			if m != nil {
				return m.result()
			}
			return pushed(args[0])
		})
	JestersGambit = define("east,aawdd", "Jester's Gambit",
		func(vm *VM, env Env) CastResult {
			if _, m := vm.Take(nil, nil); m != nil {
				return m.result()
			}
			return CastResult{
				Diff:       Change{StackMove{From: len(vm.Stack) - 2, To: len(vm.Stack) - 1}},
				Resolution: ResolutionEvaluated,
				Sound:      SoundNormal,
			}
		})
	RotationGambit = define("northeast,aaeaa", "Rotation Gambit",
		func(vm *VM, env Env) CastResult {
			if _, m := vm.Take(nil, nil, nil); m != nil {
				return m.result()
			}
			return CastResult{
				Diff:       Change{StackMove{From: len(vm.Stack) - 3, To: len(vm.Stack) - 1}},
				Resolution: ResolutionEvaluated,
				Sound:      SoundNormal,
			}
		})

	RevealSpell = define("northwest,de", "Reveal",
		func(vm *VM, env Env) CastResult {
			args, m := vm.Take(nil)
			if m != nil {
				return m.result()
			}
			return CastResult{
				SideEffects: []SideEffect{Reveal{Iota: args[0]}},
				Resolution:  ResolutionEvaluated,
				Sound:       SoundSpell,
			}
		})

	CharonsGambit = define("southwest,qdqawqadaq", "Charon's Gambit",
		func(vm *VM, env Env) CastResult {
			return vm.Break(env)
		})
)

func introspect(vm *VM, env Env) CastResult {
	if vm.ParenCount == 0 {
		return CastResult{
			Diff:       Change{EscapeIntro{}},
			Resolution: ResolutionEvaluated,
			Sound:      SoundNormal,
		}
	}
	return CastResult{
		Diff:       Change{EscapeIntro{}, EscapePush{Iota: Introspection}},
		Resolution: ResolutionEscaped,
		Sound:      SoundNormal,
	}
}

func retrospect(vm *VM, env Env) CastResult {
	switch vm.ParenCount {
	case 0:
		m := &Mishap{Kind: MishapTooManyCloseParens}
		return m.result()
	case 1:
		iotas := make(List, len(vm.Parenthesized))
		for i, p := range vm.Parenthesized {
			iotas[i] = p.Iota
		}
		return CastResult{
			Diff:       Change{EscapeRetro{}, StackPush{Iotas: []Iota{iotas}}},
			Resolution: ResolutionEvaluated,
			Sound:      SoundNormal,
		}
	}
	return CastResult{
		Diff:       Change{EscapeRetro{}, EscapePush{Iota: Retrospection}},
		Resolution: ResolutionEscaped,
		Sound:      SoundNormal,
	}
}

func consider(vm *VM, env Env) CastResult {
	return CastResult{
		Diff:       Change{Consider{Escape: true}},
		Resolution: ResolutionEvaluated,
		Sound:      SoundNormal,
	}
}

func hermes(vm *VM, env Env) CastResult {
	args, m := vm.Take(nil)
	if m != nil {
		return m.result()
	}
	return CastResult{
		Diff: Change{
			StackPop{N: 1},
			FramePush{Frames: []Frame{
				&HermesFrame{Patterns: framePatterns(args[0])},
			}},
		},
		Resolution: ResolutionEvaluated,
		Sound:      SoundHermes,
	}
}

func thoth(vm *VM, env Env) CastResult {
	args, m := vm.Take(ListTag, ListTag)
	if m != nil {
		return m.result()
	}
	instrs := args[0].(List)
	datums := args[1].(List)
	return CastResult{
		Diff: Change{
			StackPop{N: 2},
			FramePush{Frames: []Frame{
				&ThothFrame{
					Data: slices.Clone([]Iota(datums)),
					Code: slices.Clone([]Iota(instrs)),
				},
			}},
		},
		Resolution: ResolutionEvaluated,
		Sound:      SoundThoth,
	}
}

func iris(vm *VM, env Env) CastResult {
	args, m := vm.Take(nil)
	if m != nil {
		return m.result()
	}
	cont := &Continuation{Frames: slices.Clone(vm.Frames)}
	return CastResult{
		Diff: Change{
			StackPop{N: 1},
			StackPush{Iotas: []Iota{cont}},
			FramePush{Frames: []Frame{
				&HermesFrame{Patterns: framePatterns(args[0])},
			}},
		},
		Resolution: ResolutionEvaluated,
		Sound:      SoundHermes,
	}
}

func framePatterns(x Iota) []Iota {
	if l, ok := x.(List); ok {
		return slices.Clone([]Iota(l))
	}
	return []Iota{x}
}

func arithmetic(f func(a, b float64) (float64, *Mishap)) Action {
	return takeAction([]*IotaType{DoubleTag, DoubleTag}, func(args []Iota) ([]Iota, *Mishap) {
		out, m := f(float64(args[0].(Double)), float64(args[1].(Double)))
		if m != nil {
			return nil, m
		}
		return []Iota{Double(out)}, nil
	})
}
