// Package testutil provides test utilities for confman store testing.
package testutil

import (
	"fmt"
	"math/rand"
)

// DocumentGenerator creates random nested configuration documents for
// round-trip and traversal tests. Values are limited to strings, booleans,
// and non-integral floats so a document survives both JSON and YAML
// decoding with the same Go types.
type DocumentGenerator struct {
	rng *rand.Rand
}

// NewDocumentGenerator creates a generator with a fixed seed so failures
// reproduce.
func NewDocumentGenerator(seed int64) *DocumentGenerator {
	return &DocumentGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a mapping with the given nesting depth and breadth.
// Each level has 'breadth' keys; values at inner levels are nested
// mappings, values at the deepest level are scalars or sequences.
func (g *DocumentGenerator) Generate(depth, breadth int) map[string]any {
	doc := make(map[string]any, breadth)
	for i := 0; i < breadth; i++ {
		key := fmt.Sprintf("key%d", i)
		if depth > 1 {
			doc[key] = g.Generate(depth-1, breadth)
			continue
		}
		doc[key] = g.scalarOrSequence()
	}
	return doc
}

// LeafPath returns a key path from the root of a document generated with
// the given depth down to one of its leaves.
func (g *DocumentGenerator) LeafPath(depth, breadth int) []string {
	path := make([]string, depth)
	for i := range path {
		path[i] = fmt.Sprintf("key%d", g.rng.Intn(breadth))
	}
	return path
}

func (g *DocumentGenerator) scalarOrSequence() any {
	switch g.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("value-%d", g.rng.Intn(1000))
	case 1:
		return g.rng.Intn(2) == 0
	case 2:
		// Half-integral floats decode as float64 in both JSON and YAML.
		return float64(g.rng.Intn(100)) + 0.5
	default:
		n := 1 + g.rng.Intn(3)
		seq := make([]any, n)
		for i := range seq {
			seq[i] = fmt.Sprintf("item-%d", g.rng.Intn(100))
		}
		return seq
	}
}
