package main

import (
	"errors"
	"fmt"
	"strings"
)

// layerScenario describes a graph of watches stacked in layers. Each node
// sums Fanin nodes of the layer below and writes its own key.
type layerScenario struct {
	Name   string
	Width  int
	Layers int // including the source layer
	Fanin  int
	// Conditional is the fraction of nodes that skip one input depending on
	// the parity of the first.
	Conditional float64
	// Read is the fraction of leaves summed after every digest.
	Read    float64
	Digests int
	ByValue bool
}

var errScenario = errors.New("invalid scenario")

func (sc *layerScenario) validate() error {
	switch {
	case sc.Width < 1:
		return fmt.Errorf("%w %q: width must be at least 1", errScenario, sc.Name)
	case sc.Layers < 2:
		return fmt.Errorf("%w %q: need a source layer and at least one watch layer", errScenario, sc.Name)
	case sc.Fanin < 1:
		return fmt.Errorf("%w %q: fan-in must be at least 1", errScenario, sc.Name)
	case sc.Conditional < 0 || sc.Conditional > 1:
		return fmt.Errorf("%w %q: conditional fraction %v outside [0, 1]", errScenario, sc.Name, sc.Conditional)
	case sc.Read < 0 || sc.Read > 1:
		return fmt.Errorf("%w %q: read fraction %v outside [0, 1]", errScenario, sc.Name, sc.Read)
	case sc.Digests < 1:
		return fmt.Errorf("%w %q: digests must be at least 1", errScenario, sc.Name)
	}
	return nil
}

func (sc *layerScenario) size() string {
	return fmt.Sprintf("%d wide, %d deep", sc.Width, sc.Layers)
}

func (sc *layerScenario) traits() string {
	var traits []string
	if sc.Conditional > 0 {
		traits = append(traits, fmt.Sprintf("%.0f%% conditional", 100*sc.Conditional))
	}
	if sc.Read < 1 {
		traits = append(traits, fmt.Sprintf("reads %.0f%% of leaves", 100*sc.Read))
	}
	if sc.ByValue {
		traits = append(traits, "by value")
	}
	if len(traits) == 0 {
		return "-"
	}
	return strings.Join(traits, ", ")
}

func defaultScenarios() []layerScenario {
	return []layerScenario{
		{Name: "form", Width: 10, Layers: 5, Fanin: 2, Read: 0.2, Digests: 20_000},
		{Name: "form with conditionals", Width: 10, Layers: 10, Fanin: 6, Conditional: 0.25, Read: 0.2, Digests: 5_000},
		{Name: "dashboard", Width: 1_000, Layers: 12, Fanin: 4, Conditional: 0.05, Read: 1, Digests: 100},
		{Name: "dashboard by value", Width: 1_000, Layers: 12, Fanin: 4, Conditional: 0.05, Read: 1, Digests: 50, ByValue: true},
		{Name: "wide fan-in", Width: 1_000, Layers: 5, Fanin: 25, Read: 1, Digests: 100},
		{Name: "long chain", Width: 5, Layers: 500, Fanin: 3, Read: 1, Digests: 200},
		{Name: "mostly conditional", Width: 100, Layers: 15, Fanin: 6, Conditional: 0.5, Read: 1, Digests: 500},
	}
}
