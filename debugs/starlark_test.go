package debugs

import (
	"testing"

	"github.com/astavie/hexcast/hexvm"
	"go.starlark.net/starlark"
)

func TestToStarlarkIotas(t *testing.T) {
	if toStarlarkValue(hexvm.Null{}) != starlark.None {
		t.Fatal()
	}
	if toStarlarkValue(hexvm.Boolean(true)) != starlark.Bool(true) {
		t.Fatal()
	}
	if toStarlarkValue(hexvm.Double(1.5)) != starlark.Float(1.5) {
		t.Fatal()
	}
	if toStarlarkValue(hexvm.String("x")) != starlark.String("x") {
		t.Fatal()
	}
	if toStarlarkValue(hexvm.Introspection) != starlark.String("west,qqq") {
		t.Fatal()
	}

	list := toStarlarkValue(hexvm.List{hexvm.Double(1), hexvm.String("a")})
	l, ok := list.(*starlark.List)
	if !ok || l.Len() != 2 {
		t.Fatalf("got %v", list)
	}
}

func TestVMGlobals(t *testing.T) {
	vm := hexvm.NewVM()
	vm.Stack = []hexvm.Iota{hexvm.Double(1)}
	vm.Frames = []hexvm.Frame{&hexvm.HermesFrame{}}

	globals := VMGlobals(vm)
	if globals["paren_count"] != 0 {
		t.Fatal()
	}
	frames := globals["frames"].([]string)
	if len(frames) != 1 || frames[0] != "hermes" {
		t.Fatalf("got %v", frames)
	}

	// everything must convert
	for name, value := range globals {
		if toStarlarkValue(value) == nil {
			t.Fatalf("%s did not convert", name)
		}
	}
}
