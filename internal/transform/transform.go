// Package transform implements the rewriting units registered with the
// pipeline. Every unit is deterministic given the run's value generator
// seed, accepts a well-formed program and returns a well-formed program.
package transform

import (
	"veil/internal/config"
	"veil/internal/pipeline"
	"veil/internal/rng"
)

// State is shared scratch space between units of one registry. The scope
// collector fills it during the preparing stage; later units consult it to
// avoid colliding with names that already exist in the program.
type State struct {
	// Declared holds every name bound by the program's own declarations.
	Declared map[string]struct{}
}

// NewState returns empty shared state.
func NewState() *State {
	return &State{Declared: make(map[string]struct{})}
}

// Taken reports whether name is already bound in the program.
func (s *State) Taken(name string) bool {
	_, ok := s.Declared[name]
	return ok
}

// Claim records a synthesized name so later units avoid it too.
func (s *State) Claim(name string) {
	s.Declared[name] = struct{}{}
}

// freshName draws hex names until one avoids every known binding.
func (s *State) freshName(gen *rng.Generator) string {
	for {
		name := gen.HexName(6)
		if !s.Taken(name) {
			s.Claim(name)
			return name
		}
	}
}

// NewRegistry builds the default transformer registry for one run. The
// registration order is fixed and doubles as the tie-break order within a
// stage; configuration toggles make individual units inert rather than
// changing the order.
func NewRegistry(cfg config.Options, gen *rng.Generator) (*pipeline.Registry, error) {
	state := NewState()
	return pipeline.NewRegistry(
		&DirectivePlacer{},
		&ScopeCollector{state: state},
		&DeadCodeInjector{threshold: cfg.DeadCodeInjectionThreshold, gen: gen, state: state},
		&ControlFlowFlattener{threshold: cfg.ControlFlowFlatteningThreshold, gen: gen, state: state},
		&MemberIndexer{},
		&StringEncoder{flavor: cfg.StringEncoding},
		&NumberHexer{enabled: cfg.NumbersToHex},
		&IdentifierRenamer{enabled: cfg.RenameIdentifiers, gen: gen, state: state, preserve: cfg.Preserve},
		&CommentStripper{},
	)
}
