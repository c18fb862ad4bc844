package hexvm

import "testing"

func TestChangeOrder(t *testing.T) {
	vm := NewVM()
	vm.Apply(Change{
		StackPush{Iotas: []Iota{Double(1), Double(2), Double(3)}},
		StackPop{N: 1},
		StackPush{Iotas: []Iota{Double(4)}},
	})
	if !List(vm.Stack).Equals(List{Double(1), Double(2), Double(4)}) {
		t.Fatalf("got %s", Render(List(vm.Stack)))
	}
}

func TestEscapePushConsumesFlag(t *testing.T) {
	vm := NewVM()
	vm.Apply(Change{
		EscapeIntro{},
		Consider{Escape: true},
		EscapePush{Iota: Double(1)},
		EscapePush{Iota: Double(2)},
	})
	if len(vm.Parenthesized) != 2 {
		t.Fatalf("got %d", len(vm.Parenthesized))
	}
	if !vm.Parenthesized[0].Escaped || vm.Parenthesized[1].Escaped {
		t.Fatal("escape flag must apply to the first push only")
	}
	if vm.EscapeNext {
		t.Fatal("flag must be consumed")
	}
}

func TestRetroClearsParenthesized(t *testing.T) {
	vm := NewVM()
	vm.Apply(Change{
		EscapeIntro{},
		EscapePush{Iota: Double(1)},
		EscapeRetro{},
	})
	if vm.ParenCount != 0 || vm.Parenthesized != nil {
		t.Fatal("closing the last level must clear the buffer")
	}
}

func TestStackMove(t *testing.T) {
	vm := NewVM()
	vm.Stack = []Iota{Double(1), Double(2), Double(3)}
	vm.Apply(Change{StackMove{From: 0, To: 2}})
	if !List(vm.Stack).Equals(List{Double(2), Double(3), Double(1)}) {
		t.Fatalf("got %s", Render(List(vm.Stack)))
	}
}

func TestOversizedPopPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	vm := NewVM()
	vm.Apply(Change{StackPop{N: 1}})
}

func TestStrayRetroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	vm := NewVM()
	vm.Apply(Change{EscapeRetro{}})
}
