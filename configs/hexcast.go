package configs

import (
	"os"
	"path/filepath"

	"github.com/astavie/hexcast/cmds"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

var configPaths = cmds.Collect[string]("-config")

const hexcastSchema = `
caster?: string
history?: string
greet?: bool
`

// HexcastLoader reads the CLI config files plus the user-level one,
// validated against the hexcast schema.
type HexcastLoader = Loader

func (Module) HexcastLoader() HexcastLoader {
	paths := *configPaths
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".config", "hexcast", "hexcast.cue")
		if _, err := os.Stat(userPath); err == nil {
			paths = append(paths, userPath)
		}
	}
	return NewLoader(paths, hexcastSchema)
}

// CasterName is the name of the entity casting from this process.
type CasterName string

func (Module) CasterName(
	loader HexcastLoader,
) CasterName {
	name := First[string](loader, "caster")
	if name == "" {
		name = "Caster"
	}
	return CasterName(name)
}

// HistoryFile is where the REPL keeps its line history.
type HistoryFile string

func (Module) HistoryFile(
	loader HexcastLoader,
) HistoryFile {
	if path := First[string](loader, "history"); path != "" {
		return HistoryFile(path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(home, ".hexcast_history"))
	}
	return ""
}
