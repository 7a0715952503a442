package pipeline

// Stage identifies one phase of the transformation pipeline. The declaration
// order below is the only valid execution order; stages are never reordered
// at runtime.
type Stage uint8

const (
	// StagePreparing normalizes the tree before any rewriting.
	StagePreparing Stage = iota
	// StageDeadCodeInjection inserts unreachable code; gated by configuration.
	StageDeadCodeInjection
	// StageControlFlowFlattening obscures control flow; gated by configuration.
	StageControlFlowFlattening
	// StageConverting lowers syntax into obfuscation-friendly forms.
	StageConverting
	// StageObfuscating performs the main literal and identifier rewrites.
	StageObfuscating
	// StageFinalizing cleans the tree up before generation.
	StageFinalizing

	stageCount
)

var stageNames = [...]string{
	StagePreparing:             "preparing",
	StageDeadCodeInjection:     "dead-code-injection",
	StageControlFlowFlattening: "control-flow-flattening",
	StageConverting:            "converting",
	StageObfuscating:           "obfuscating",
	StageFinalizing:            "finalizing",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Stages returns every stage in execution order.
func Stages() []Stage {
	out := make([]Stage, 0, stageCount)
	for s := StagePreparing; s < stageCount; s++ {
		out = append(out, s)
	}
	return out
}

// StageSet is a bitmask of stages a transformer participates in.
type StageSet uint8

// NewStageSet builds a set from the given stages.
func NewStageSet(stages ...Stage) StageSet {
	var set StageSet
	for _, s := range stages {
		set |= 1 << s
	}
	return set
}

// Has reports whether the set contains s.
func (set StageSet) Has(s Stage) bool {
	return set&(1<<s) != 0
}
