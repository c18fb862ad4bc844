package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/astavie/hexcast/cmds"
	"github.com/astavie/hexcast/configs"
	"github.com/astavie/hexcast/debugs"
	"github.com/astavie/hexcast/hexes"
	"github.com/astavie/hexcast/hexvm"
	"github.com/astavie/hexcast/logs"
	"github.com/astavie/hexcast/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var evalArgs = cmds.Var[string]("-eval")

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		casterName configs.CasterName,
		historyFile configs.HistoryFile,
		tap debugs.Tap,
	) {

		ctx, _ := newSpan(ctx, "")

		env := &hexvm.StaticEnv{
			Player: hexvm.NewPlayer(string(casterName)),
		}
		vm := hexvm.NewVM()
		caster := &caster{
			ctx:    ctx,
			vm:     vm,
			env:    env,
			logger: logger,
			tap:    tap,
		}

		input := *evalArgs

		stdin := getStdinContent()
		if len(stdin) > 0 {
			input = input + "\n" + string(stdin)
		}

		if strings.TrimSpace(input) != "" {
			for line := range strings.Lines(input) {
				if err := caster.CastLine(line); err != nil {
					fmt.Fprintln(os.Stderr, "error:", logs.WrapSpan(ctx, err))
					os.Exit(-1)
				}
			}
			caster.PrintStack()
			return
		}

		runREPL(caster, string(historyFile))

	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}
	return
}

type caster struct {
	ctx    context.Context
	vm     *hexvm.VM
	env    hexvm.Env
	logger logs.Logger
	tap    debugs.Tap
}

// CastLine parses the whitespace-separated pattern strings of one
// line and feeds them to the VM.
func (c *caster) CastLine(line string) error {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return nil
	}

	iotas := make([]hexvm.Iota, 0, len(fields))
	for _, field := range fields {
		shape, err := hexes.Parse(field)
		if err != nil {
			return err
		}
		pattern, ok := hexvm.Default.Lookup(shape)
		if !ok {
			return fmt.Errorf("unknown pattern: %s", field)
		}
		iotas = append(iotas, pattern)
	}

	for res := range c.vm.Run(c.env, iotas...) {
		c.logResult(res)
		for _, effect := range res.SideEffects {
			switch e := effect.(type) {
			case hexvm.Reveal:
				fmt.Println(hexvm.Render(e.Iota))
			}
		}
	}
	return nil
}

func (c *caster) logResult(res hexvm.CastResult) {
	args := []any{
		"resolution", res.Resolution,
	}
	if res.Cast != nil {
		args = append(args, "cast", hexvm.Render(res.Cast))
	}
	if res.Mishap != nil {
		args = append(args, "mishap", res.Mishap)
	}
	if res.Resolution.Success() {
		c.logger.DebugContext(c.ctx, "cast", args...)
	} else {
		c.logger.WarnContext(c.ctx, "cast", args...)
	}
}

func (c *caster) PrintStack() {
	for _, iota := range c.vm.Stack {
		fmt.Println(hexvm.Render(iota))
	}
}
