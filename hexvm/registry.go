package hexvm

import (
	"fmt"
	"strings"

	"github.com/astavie/hexcast/hexes"
)

// Registry resolves parsed hex walks to their actions, keyed by the
// orientation-free angle signature.
type Registry struct {
	byAngles map[string]*Pattern
}

func NewRegistry() *Registry {
	return &Registry{
		byAngles: make(map[string]*Pattern),
	}
}

func (r *Registry) Register(p *Pattern) {
	sig := p.Shape.Signature()
	if _, ok := r.byAngles[sig]; ok {
		panic(fmt.Errorf("duplicated pattern %s", sig))
	}
	r.byAngles[sig] = p
}

// Lookup resolves a walk to a pattern iota. Walks outside the fixed
// set are tried as numerical reflections.
func (r *Registry) Lookup(shape hexes.Pattern) (*Pattern, bool) {
	sig := shape.Signature()
	if p, ok := r.byAngles[sig]; ok {
		return p, true
	}

	if suffix, ok := strings.CutPrefix(sig, numberPositivePrefix); ok {
		if value, ok := decodeNumberSuffix(suffix); ok {
			return newNumberPattern(value), true
		}
	}
	if suffix, ok := strings.CutPrefix(sig, numberNegativePrefix); ok {
		if value, ok := decodeNumberSuffix(suffix); ok {
			return newNumberPattern(-value), true
		}
	}

	return nil, false
}

// Default is the registry holding the runtime's builtin set.
var Default = NewRegistry()

func define(shape, name string, action Action) *Pattern {
	p := &Pattern{
		Shape:  hexes.MustParse(shape),
		Name:   name,
		Action: action,
	}
	Default.Register(p)
	return p
}

func defineEscape(shape, name string, action Action) *Pattern {
	p := define(shape, name, action)
	p.MustEscape = true
	return p
}
