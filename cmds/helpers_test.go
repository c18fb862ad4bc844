package cmds

import "testing"

func TestVar(t *testing.T) {
	value := Var[string]("-test-var")
	defaultExecutor.MustExecute([]string{"-test-var", "foo"})
	if *value != "foo" {
		t.Fatalf("got %q", *value)
	}
	defaultExecutor.MustExecute([]string{"-test-var."})
	if *value != "" {
		t.Fatalf("got %q", *value)
	}
}

func TestSwitch(t *testing.T) {
	value := Switch("-test-switch")
	defaultExecutor.MustExecute([]string{"-test-switch"})
	if !*value {
		t.Fatal()
	}
	defaultExecutor.MustExecute([]string{"!-test-switch"})
	if *value {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	values := Collect[int]("-test-collect")
	defaultExecutor.MustExecute([]string{"-test-collect", "1", "-test-collect", "2"})
	if len(*values) != 2 || (*values)[0] != 1 || (*values)[1] != 2 {
		t.Fatalf("got %v", *values)
	}
}
