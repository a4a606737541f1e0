package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MeKo-Tech/langid/internal/aggregate"
	"github.com/MeKo-Tech/langid/internal/common"
	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/textnorm"
)

// DetectOptions customizes a single detection call.
type DetectOptions struct {
	// Method selects exactly one back-end by name; empty means the full
	// ensemble. An unregistered name is a caller error.
	Method string
	// Cleaning overrides the pipeline's default cleaning options.
	Cleaning *textnorm.Options
}

// Detect identifies the language of text using the pipeline defaults.
func (p *Pipeline) Detect(ctx context.Context, text string) (*Result, error) {
	return p.DetectWithOptions(ctx, text, DetectOptions{})
}

// DetectWithMethod identifies the language of text using a single named
// back-end instead of the ensemble.
func (p *Pipeline) DetectWithMethod(ctx context.Context, text, method string) (*Result, error) {
	return p.DetectWithOptions(ctx, text, DetectOptions{Method: method})
}

// DetectWithOptions identifies the language of text. Empty or
// whitespace-only input short-circuits to the fixed unknown result before
// any cleaning or adapter call. A requested method that is not registered
// returns detector.ErrUnknownMethod rather than silently falling back to the
// ensemble.
func (p *Pipeline) DetectWithOptions(ctx context.Context, text string, opts DetectOptions) (*Result, error) {
	timer := common.NewTimer()

	if strings.TrimSpace(text) == "" {
		res := emptyResult(text)
		res.Processing.TotalNs = timer.Stop().Nanoseconds()
		return res, nil
	}

	cleaning := p.cfg.Cleaning
	if opts.Cleaning != nil {
		cleaning = *opts.Cleaning
	}
	cleaned := textnorm.CleanWithOptions(text, cleaning)
	if cleaned == "" {
		// Cleaning stripped everything (e.g. the text was one URL).
		res := emptyResult(text)
		res.CleanedText = cleaned
		res.Processing.TotalNs = timer.Stop().Nanoseconds()
		return res, nil
	}

	var res *Result
	if opts.Method != "" {
		adapter, err := p.registry.Lookup(opts.Method)
		if err != nil {
			return nil, fmt.Errorf("method %q: %w", opts.Method, err)
		}
		res = p.detectSingle(ctx, adapter, cleaned)
	} else {
		res = p.detectEnsemble(ctx, cleaned)
	}

	res.Text = text
	res.CleanedText = cleaned
	res.resolve()
	res.Processing.TotalNs = timer.Stop().Nanoseconds()
	return res, nil
}

// detectSingle runs exactly one adapter and reports its raw signal,
// bypassing aggregation and weight normalization.
func (p *Pipeline) detectSingle(ctx context.Context, adapter detector.Adapter, cleaned string) *Result {
	sig := p.callAdapter(ctx, adapter, cleaned)
	return &Result{
		Code:       sig.Code,
		Confidence: sig.Confidence,
		Method:     adapter.Name(),
	}
}

// detectEnsemble fans out to every registered adapter, waits for all
// signals, and aggregates them into one verdict.
func (p *Pipeline) detectEnsemble(ctx context.Context, cleaned string) *Result {
	signals := p.gather(ctx, cleaned)
	verdict := aggregate.Aggregate(signals, p.cfg.Weights)

	byMethod := make(map[string]detector.Signal, len(signals))
	for _, sig := range signals {
		byMethod[sig.Method] = sig
	}
	return &Result{
		Code:       verdict.Code,
		Confidence: verdict.Confidence,
		Method:     verdict.Method,
		Signals:    byMethod,
	}
}

// gather invokes all adapters concurrently and collects one signal per
// adapter, in registration order. Aggregation must never run on a subset:
// every adapter either returns a signal or is converted to the failure
// sentinel before this function returns.
func (p *Pipeline) gather(ctx context.Context, cleaned string) []detector.Signal {
	adapters := p.registry.Adapters()
	signals := make([]detector.Signal, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func(i int, adapter detector.Adapter) {
			defer wg.Done()
			signals[i] = p.callAdapter(ctx, adapter, cleaned)
		}(i, adapter)
	}
	wg.Wait()

	for _, sig := range signals {
		if sig.Failed() {
			p.logger.Warn("detection method returned no result", "method", sig.Method)
		}
	}
	return signals
}

// callAdapter is the recovery boundary: a panicking back-end is converted to
// the failure sentinel for that method only and never escalates.
func (p *Pipeline) callAdapter(ctx context.Context, adapter detector.Adapter, cleaned string) (sig detector.Signal) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("detection method panicked", "method", adapter.Name(), "panic", r)
			sig = detector.Signal{Method: adapter.Name(), Code: detector.CodeUnknown, Confidence: 0}
		}
	}()
	sig = adapter.Detect(ctx, cleaned)
	if sig.Method == "" {
		sig.Method = adapter.Name()
	}
	if sig.Code == "" {
		sig.Code = detector.CodeUnknown
		sig.Confidence = 0
	}
	return sig
}
