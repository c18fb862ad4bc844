package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/astavie/hexcast/debugs"
	"github.com/chzyer/readline"
)

func runREPL(c *caster, historyFile string) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case ":stack":
			c.PrintStack()
			continue
		case ":tap":
			c.tap(c.ctx, "vm", debugs.VMGlobals(c.vm))
			continue
		}

		if err := c.CastLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		c.PrintStack()
	}
}
