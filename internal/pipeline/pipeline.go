package pipeline

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/MeKo-Tech/langid/internal/aggregate"
	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/textnorm"
)

// Config holds configuration for the detection pipeline and its components.
type Config struct {
	Weights      aggregate.Weights // method voting weights
	WeightsFile  string            // optional YAML weight table overlay
	Cleaning     textnorm.Options  // default cleaning options per call
	Model        detector.ONNXConfig
	ModelEnabled bool     // probe and register the ONNX back-end at build time
	Methods      []string // restrict the default adapter set (empty = all)
	Workers      int      // batch worker count (0 = runtime.NumCPU())
}

// DefaultConfig returns a default pipeline config with component defaults.
func DefaultConfig() Config {
	return Config{
		Weights:      aggregate.DefaultWeights(),
		Cleaning:     textnorm.DefaultOptions(),
		ModelEnabled: false,
		Workers:      runtime.NumCPU(),
	}
}

// Builder constructs a Pipeline with fluent configuration.
type Builder struct {
	cfg      Config
	logger   *slog.Logger
	adapters []detector.Adapter
}

// NewBuilder creates a new pipeline builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithWeights overlays method weights onto the defaults.
func (b *Builder) WithWeights(w aggregate.Weights) *Builder {
	if len(w) > 0 {
		b.cfg.Weights = b.cfg.Weights.Merge(w)
	}
	return b
}

// WithWeightsFile sets a YAML weight table to overlay at build time.
func (b *Builder) WithWeightsFile(path string) *Builder {
	if path != "" {
		b.cfg.WeightsFile = path
	}
	return b
}

// WithCleaning sets the default cleaning options.
func (b *Builder) WithCleaning(opts textnorm.Options) *Builder {
	b.cfg.Cleaning = opts
	return b
}

// WithAdvancedCleaning toggles the advanced cleaning pipeline.
func (b *Builder) WithAdvancedCleaning(enabled bool) *Builder {
	b.cfg.Cleaning.Advanced = enabled
	return b
}

// WithModel configures the optional ONNX classifier back-end.
func (b *Builder) WithModel(cfg detector.ONNXConfig) *Builder {
	b.cfg.Model = cfg
	b.cfg.ModelEnabled = cfg.ModelPath != ""
	return b
}

// WithModelEnabled toggles the ONNX back-end without changing its paths.
func (b *Builder) WithModelEnabled(enabled bool) *Builder {
	b.cfg.ModelEnabled = enabled
	return b
}

// WithMethods restricts the default adapter set to the named methods.
// Unknown names are ignored; an empty list keeps every method.
func (b *Builder) WithMethods(methods ...string) *Builder {
	if len(methods) > 0 {
		b.cfg.Methods = methods
	}
	return b
}

// WithWorkers sets the number of parallel workers for batch detection.
func (b *Builder) WithWorkers(workers int) *Builder {
	if workers > 0 {
		b.cfg.Workers = workers
	}
	return b
}

// WithLogger injects the logging collaborator. Defaults to slog.Default().
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithAdapters replaces the default adapter set with an explicit ordered
// list. Intended for embedding callers and tests; when set, the ONNX
// capability probe is skipped.
func (b *Builder) WithAdapters(adapters ...detector.Adapter) *Builder {
	b.adapters = adapters
	return b
}

// Config returns a copy of the current config.
func (b *Builder) Config() Config { return b.cfg }

// Pipeline orchestrates cleaning, the adapter fan-out, aggregation, and
// metadata resolution. It is immutable after Build and safe for concurrent
// use.
type Pipeline struct {
	cfg      Config
	registry *detector.Registry
	logger   *slog.Logger
	model    *detector.ONNXAdapter // kept for Close; nil when not registered
}

// Build initializes the pipeline. The ONNX availability probe happens here,
// once: a back-end that fails to load is logged and left unregistered, it is
// never re-probed per call.
func (b *Builder) Build() (*Pipeline, error) {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	weights := b.cfg.Weights
	if weights == nil {
		weights = aggregate.DefaultWeights()
	}
	if b.cfg.WeightsFile != "" {
		fileWeights, err := aggregate.LoadWeights(b.cfg.WeightsFile)
		if err != nil {
			return nil, fmt.Errorf("load weights: %w", err)
		}
		weights = weights.Merge(fileWeights)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	b.cfg.Weights = weights

	p := &Pipeline{cfg: b.cfg, logger: logger}

	if b.adapters != nil {
		p.registry = detector.NewRegistry(b.adapters...)
	} else {
		adapters := []detector.Adapter{
			detector.NewLinguaAdapter(),
			detector.NewWhatlangAdapter(),
			detector.NewHeuristicAdapter(),
		}
		if b.cfg.ModelEnabled {
			model, err := detector.NewONNXAdapter(b.cfg.Model)
			if err != nil {
				logger.Warn("onnx back-end unavailable, continuing without it", "error", err)
			} else {
				adapters = append(adapters, model)
				p.model = model
			}
		}
		adapters = filterAdapters(adapters, b.cfg.Methods)
		if p.model != nil && !containsAdapter(adapters, p.model) {
			_ = p.model.Close()
			p.model = nil
		}
		p.registry = detector.NewRegistry(adapters...)
	}

	if p.registry.Len() == 0 {
		return nil, fmt.Errorf("no detection methods registered")
	}

	logger.Info("detection pipeline initialized", "methods", p.registry.Names())
	return p, nil
}

func filterAdapters(adapters []detector.Adapter, methods []string) []detector.Adapter {
	if len(methods) == 0 {
		return adapters
	}
	wanted := make(map[string]bool, len(methods))
	for _, m := range methods {
		wanted[m] = true
	}
	kept := adapters[:0]
	for _, a := range adapters {
		if wanted[a.Name()] {
			kept = append(kept, a)
		}
	}
	return kept
}

func containsAdapter(adapters []detector.Adapter, target detector.Adapter) bool {
	for _, a := range adapters {
		if a == target {
			return true
		}
	}
	return false
}

// Close releases adapter resources.
func (p *Pipeline) Close() error {
	if p.model != nil {
		err := p.model.Close()
		p.model = nil
		return err
	}
	return nil
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Methods returns the registered method names in registration order.
func (p *Pipeline) Methods() []string { return p.registry.Names() }

// Info returns a map with key pipeline properties.
func (p *Pipeline) Info() map[string]interface{} {
	return map[string]interface{}{
		"methods":       p.registry.Names(),
		"weights":       p.cfg.Weights,
		"model_enabled": p.model != nil,
		"workers":       p.cfg.Workers,
		"cleaning": map[string]interface{}{
			"advanced":           p.cfg.Cleaning.Advanced,
			"remove_punctuation": p.cfg.Cleaning.RemovePunctuation,
			"remove_numbers":     p.cfg.Cleaning.RemoveNumbers,
			"remove_special":     p.cfg.Cleaning.RemoveSpecialChars,
		},
	}
}
