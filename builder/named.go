package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qmap/topology"
)

// Fidelities of the heavy-hex preset: most links at 0.99, two weaker ones
// to exercise fidelity-aware routing.
const (
	heavyHexBaseFidelity = 0.99
	heavyHexWeak45       = 0.92
	heavyHexWeak911      = 0.95
)

// presets are the fixed names understood by Named.
var presets = map[string]func() ([]Constructor, []BuilderOption){
	"linear3": func() ([]Constructor, []BuilderOption) { return []Constructor{Path(3)}, nil },
	"linear4": func() ([]Constructor, []BuilderOption) { return []Constructor{Path(4)}, nil },
	"grid2x2": func() ([]Constructor, []BuilderOption) { return []Constructor{Grid(2, 2)}, nil },
	"heavyhex": func() ([]Constructor, []BuilderOption) {
		return []Constructor{HeavyHex()}, []BuilderOption{
			WithConstantFidelity(heavyHexBaseFidelity),
			WithEdgeFidelity(4, 5, heavyHexWeak45),
			WithEdgeFidelity(9, 11, heavyHexWeak911),
		}
	},
}

// Names lists the fixed preset names and the parametric forms, for help text.
func Names() []string {
	return []string{
		"linear3", "linear4", "grid2x2", "heavyhex",
		"path:<n>", "ring:<n>", "grid:<rows>x<cols>", "star:<n>", "complete:<n>",
	}
}

// Named resolves a preset name into constructors and the options that
// belong to it (fidelity tables). Parametric names take the form
// "kind:args", e.g. "ring:6" or "grid:3x4".
func Named(name string) ([]Constructor, []BuilderOption, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := presets[key]; ok {
		cons, opts := p()
		return cons, opts, nil
	}

	kind, arg, found := strings.Cut(key, ":")
	if !found {
		return nil, nil, fmt.Errorf("Named(%q): %w", name, ErrUnknownTopology)
	}
	if kind == "grid" {
		rs, cs, ok := strings.Cut(arg, "x")
		if !ok {
			return nil, nil, fmt.Errorf("Named(%q): want grid:<rows>x<cols>: %w", name, ErrUnknownTopology)
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return nil, nil, fmt.Errorf("Named(%q): bad grid size: %w", name, ErrUnknownTopology)
		}
		return []Constructor{Grid(rows, cols)}, nil, nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, nil, fmt.Errorf("Named(%q): bad size %q: %w", name, arg, ErrUnknownTopology)
	}
	switch kind {
	case "path", "linear":
		return []Constructor{Path(n)}, nil, nil
	case "ring", "cycle":
		return []Constructor{Cycle(n)}, nil, nil
	case "star":
		return []Constructor{Star(n)}, nil, nil
	case "complete":
		return []Constructor{Complete(n)}, nil, nil
	}
	return nil, nil, fmt.Errorf("Named(%q): %w", name, ErrUnknownTopology)
}

// BuildNamed builds the preset called name. Extra options are applied after
// the preset's own, so they can override its fidelity table; the name is
// recorded on the graph unless extra sets one.
func BuildNamed(name string, extra ...BuilderOption) (*topology.Graph, error) {
	cons, opts, err := Named(name)
	if err != nil {
		return nil, err
	}
	all := make([]BuilderOption, 0, len(opts)+len(extra)+1)
	all = append(all, WithName(strings.ToLower(strings.TrimSpace(name))))
	all = append(all, opts...)
	all = append(all, extra...)
	return BuildTopology(all, cons...)
}
