// Package orchestrate wires relations through detection, induction and
// renumbering into a fully renumbered mesh. It is the only caller that
// mutates the three renumberings and region lists. A fixed-seed *rand.Rand
// is either built here (WithRandomSeed) or handed in by the caller
// (WithRand).
//
// Grounded on original_source/structure-detection/
// detect_and_append_structure.py's main() for the exact pipeline wiring
// and log-message shape; builder/config.go's BuilderOption/builderConfig
// pattern for the functional-options surface; sarchlab-zeonica/core/emu.go
// for the log/slog usage idiom.
package orchestrate

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/meshtopo/mesh"
)

// Default bounds applied when no Option overrides them. The CLI surface
// exposes only --random_seed and --start_node, so these are deliberately
// not flag-driven; they exist as Options purely so tests and non-CLI
// callers can exercise smaller/larger bounds.
const (
	DefaultMaxRows    = 64
	DefaultMaxCols    = 64
	DefaultMaxRegions = 1 << 20
	DefaultMaxFail    = 8
)

// config holds Run's resolved parameters after every Option has applied.
type config struct {
	startNode  mesh.NodeID
	rng        *rand.Rand
	maxRows    int
	maxCols    int
	maxRegions int
	maxFail    int
	logger     *slog.Logger
}

// Option customizes one Run call.
type Option func(*config)

func newConfig(opts ...Option) *config {
	cfg := &config{
		startNode:  0,
		rng:        nil,
		maxRows:    DefaultMaxRows,
		maxCols:    DefaultMaxCols,
		maxRegions: DefaultMaxRegions,
		maxFail:    DefaultMaxFail,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithStartNode sets the first seed DetectRegions grows from.
func WithStartNode(n mesh.NodeID) Option {
	return func(cfg *config) { cfg.startNode = n }
}

// WithRandomSeed seeds the orchestrator's RNG deterministically, so a
// given seed always reproduces the same seed-candidate sequence and
// therefore the same regions and renumbering.
func WithRandomSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rngFromSeed(seed) }
}

// WithRand injects an explicit RNG. A nil rng is a no-op and leaves
// whichever RNG (or lack of one) was already configured.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithMaxRows overrides the per-region row bound.
func WithMaxRows(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxRows = n
		}
	}
}

// WithMaxCols overrides the per-region column bound.
func WithMaxCols(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxCols = n
		}
	}
}

// WithMaxRegions overrides the total region count bound.
func WithMaxRegions(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxRegions = n
		}
	}
}

// WithMaxFail overrides the consecutive-seed-failure bound.
func WithMaxFail(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxFail = n
		}
	}
}

// WithLogger injects a structured logger. A nil logger is a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
