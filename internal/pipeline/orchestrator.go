// Package pipeline drives one obfuscation run end-to-end: parse, staged
// transformation, code generation and mapping reconciliation.
//
// The orchestrator is pure sequencing logic. Stages execute in the fixed
// Stage order; two of them (dead-code injection and control-flow
// flattening) are gated by configuration and skipped as whole units when
// disabled. Each stage's output tree is the sole input of the next stage.
// Any run-to-run variability comes from the deterministic value generator
// consulted by individual transformers, never from the orchestrator itself.
package pipeline

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"veil/internal/ast"
	"veil/internal/codegen"
	"veil/internal/config"
	"veil/internal/parser"
	"veil/internal/rng"
	"veil/internal/source"
	"veil/internal/sourcemap"
)

// Result is the terminal artifact of one run. SourceMap is the serialized
// mapping, or "" when none was requested or inline mode embedded it; it is
// never absent in any other sense.
type Result struct {
	Code      string
	SourceMap string
	Seed      string
	Timings   Timings
}

// Obfuscator runs the staged transformation pipeline. One Run call owns its
// tree exclusively; concurrent Run calls over distinct inputs are safe
// because the registry and configuration are shared read-only state.
type Obfuscator struct {
	cfg      config.Options
	registry *Registry
	rand     *rng.Generator
	logger   *log.Logger
	sink     ProgressSink
	fileName string
}

// Option customizes an Obfuscator at construction.
type Option func(*Obfuscator)

// WithLogger routes the orchestrator's informational events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Obfuscator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress attaches a sink for stage progress events.
func WithProgress(sink ProgressSink) Option {
	return func(o *Obfuscator) { o.sink = sink }
}

// WithFileName sets the source path recorded in events and mappings.
func WithFileName(name string) Option {
	return func(o *Obfuscator) {
		if name != "" {
			o.fileName = name
		}
	}
}

// New constructs an Obfuscator over a frozen registry and configuration.
func New(cfg config.Options, registry *Registry, rand *rng.Generator, opts ...Option) *Obfuscator {
	o := &Obfuscator{
		cfg:      cfg,
		registry: registry,
		rand:     rand,
		logger:   log.New(io.Discard),
		fileName: "input.js",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run obfuscates sourceText and returns the final result. The input may be
// empty; a canonically empty program short-circuits every transformation
// stage and flows straight to generation. Failures abort the run: a parse
// failure surfaces unmodified, a transformer failure surfaces as a
// *TransformError naming the stage, and a generation failure surfaces as a
// *codegen.Error.
func (o *Obfuscator) Run(sourceText string) (Result, error) {
	start := time.Now()
	o.logger.Info("obfuscation started", "file", o.fileName)

	seed := o.rand.Seed()
	o.logger.Info("using seed", "seed", seed)

	file := source.New(o.fileName, []byte(sourceText), source.FileVirtual)
	prog, err := parser.Parse(file, parser.Options{
		AttachComments: true,
		TrackLocations: o.cfg.SourceMap,
	})
	if err != nil {
		return Result{}, err
	}

	var timings Timings
	if prog.Empty() {
		o.logger.Warn("source is an empty program, transformation stages skipped")
	} else {
		prog, err = o.transform(prog, &timings)
		if err != nil {
			return Result{}, err
		}
	}

	genOpts := codegen.Options{
		Compact:   o.cfg.Compact,
		SourceMap: o.cfg.SourceMap,
	}
	if o.cfg.SourceMap {
		genOpts.OriginalText = sourceText
	}
	genOut, err := codegen.Generate(prog, file, genOpts)
	if err != nil {
		return Result{}, err
	}

	rawMap := ""
	if genOut.Map != nil {
		rawMap, err = genOut.Map.JSON()
		if err != nil {
			return Result{}, &codegen.Error{Msg: "serialize source map: " + err.Error()}
		}
	}

	mode, err := sourcemap.ParseMode(o.cfg.SourceMapMode)
	if err != nil {
		return Result{}, err
	}
	final := sourcemap.Correct(genOut.Code, rawMap, sourcemap.Options{
		Mode: mode,
		URL:  o.cfg.SourceMapURL,
	})

	elapsed := time.Since(start)
	timings.SetTotal(elapsed)
	o.logger.Info("obfuscation completed", "elapsed_seconds", elapsed.Seconds())

	return Result{
		Code:      final.Code,
		SourceMap: final.Map,
		Seed:      seed,
		Timings:   timings,
	}, nil
}

// transform drives every stage in enumeration order, honoring the two
// configuration gates.
func (o *Obfuscator) transform(prog *ast.Program, timings *Timings) (*ast.Program, error) {
	for _, stage := range Stages() {
		if stage == StageDeadCodeInjection && !o.cfg.DeadCodeInjection {
			continue
		}
		if stage == StageControlFlowFlattening && !o.cfg.ControlFlowFlattening {
			continue
		}

		stageStart := time.Now()
		o.emit(Event{File: o.fileName, Stage: stage, Status: StatusWorking})

		next, err := o.runStage(stage, prog)
		if err != nil {
			o.emit(Event{File: o.fileName, Stage: stage, Status: StatusError, Err: err})
			return nil, err
		}
		prog = next

		dur := time.Since(stageStart)
		timings.Set(stage, dur)
		o.emit(Event{File: o.fileName, Stage: stage, Status: StatusDone, Elapsed: dur})
		o.logger.Info("stage completed", "stage", stage.String())
	}
	return prog, nil
}

// runStage applies every transformer registered for stage, in registry
// order. The first failure aborts the stage with no partial recovery:
// rewriting passes have ordering dependencies and a partially applied stage
// would violate downstream assumptions.
func (o *Obfuscator) runStage(stage Stage, prog *ast.Program) (*ast.Program, error) {
	for _, unit := range o.registry.ForStage(stage) {
		next, err := unit.Apply(prog)
		if err != nil {
			return nil, &TransformError{Stage: stage, Transformer: unit.Name(), Err: err}
		}
		if next == nil {
			return nil, &TransformError{
				Stage:       stage,
				Transformer: unit.Name(),
				Err:         errors.New("transformer returned a nil tree"),
			}
		}
		prog = next
	}
	return prog, nil
}

func (o *Obfuscator) emit(evt Event) {
	if o.sink == nil {
		return
	}
	o.sink.OnEvent(evt)
}
