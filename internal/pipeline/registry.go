package pipeline

import (
	"fmt"

	"veil/internal/ast"
)

// Transformer is one registered rewriting unit. Apply must accept a
// well-formed program and return a well-formed program; it may rewrite the
// input in place and return it, or return a replacement tree. Failures are
// fatal to the run.
type Transformer interface {
	// Name identifies the unit in logs and errors.
	Name() string
	// Stages declares the stages the unit participates in.
	Stages() StageSet
	// Apply rewrites the tree.
	Apply(prog *ast.Program) (*ast.Program, error)
}

// Registry is a fixed, ordered collection of transformers. Registration
// order is the tie-break order when several transformers participate in the
// same stage. A registry is immutable after construction and safe for
// concurrent runs.
type Registry struct {
	units []Transformer
}

// NewRegistry validates and freezes a transformer list.
func NewRegistry(units ...Transformer) (*Registry, error) {
	seen := make(map[string]struct{}, len(units))
	for i, u := range units {
		if u == nil {
			return nil, fmt.Errorf("registry: nil transformer at index %d", i)
		}
		name := u.Name()
		if name == "" {
			return nil, fmt.Errorf("registry: transformer at index %d has empty name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("registry: duplicate transformer name %q", name)
		}
		if u.Stages() == 0 {
			return nil, fmt.Errorf("registry: transformer %q participates in no stage", name)
		}
		seen[name] = struct{}{}
	}
	frozen := make([]Transformer, len(units))
	copy(frozen, units)
	return &Registry{units: frozen}, nil
}

// ForStage returns the transformers participating in stage, in registration
// order.
func (r *Registry) ForStage(stage Stage) []Transformer {
	var out []Transformer
	for _, u := range r.units {
		if u.Stages().Has(stage) {
			out = append(out, u)
		}
	}
	return out
}

// Names lists registered transformer names in order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.units))
	for i, u := range r.units {
		out[i] = u.Name()
	}
	return out
}

// Len returns the number of registered transformers.
func (r *Registry) Len() int {
	return len(r.units)
}
