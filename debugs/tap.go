package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/astavie/hexcast/hexvm"
	"github.com/astavie/hexcast/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops into a starlark inspection REPL with the given globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// VMGlobals flattens casting state for a tap.
func VMGlobals(vm *hexvm.VM) map[string]any {
	frames := make([]string, len(vm.Frames))
	for i, frame := range vm.Frames {
		switch frame.(type) {
		case *hexvm.HermesFrame:
			frames[i] = "hermes"
		case *hexvm.ThothFrame:
			frames[i] = "thoth"
		default:
			frames[i] = "frame"
		}
	}
	return map[string]any{
		"stack":       vm.Stack,
		"frames":      frames,
		"paren_count": vm.ParenCount,
		"escape_next": vm.EscapeNext,
	}
}
