package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// textJob represents a single batch item.
type textJob struct {
	index int
	text  string
}

// DetectBatch detects the language of each text independently. The returned
// slice has the same length and order as the input regardless of the
// parallelism used internally.
func (p *Pipeline) DetectBatch(ctx context.Context, texts []string) ([]*Result, error) {
	return p.DetectBatchWithOptions(ctx, texts, DetectOptions{})
}

// DetectBatchWithOptions detects the language of each text with shared
// options, using a bounded worker pool.
func (p *Pipeline) DetectBatchWithOptions(ctx context.Context, texts []string, opts DetectOptions) ([]*Result, error) {
	if len(texts) == 0 {
		return []*Result{}, nil
	}

	// Validate a requested method once up front instead of failing
	// per-element.
	if opts.Method != "" {
		if _, err := p.registry.Lookup(opts.Method); err != nil {
			return nil, err
		}
	}

	workers := p.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	// Single item or single worker: sequential.
	if workers == 1 {
		results := make([]*Result, len(texts))
		for i, text := range texts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := p.DetectWithOptions(ctx, text, opts)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	jobs := make(chan textJob, len(texts))
	results := make([]*Result, len(texts))

	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if ctx.Err() != nil {
					return
				}
				// The method was validated above and adapters never
				// error, so per-item errors cannot occur here.
				res, err := p.DetectWithOptions(ctx, job.text, opts)
				if err != nil {
					res = emptyResult(job.text)
				}
				results[job.index] = res
			}
		}()
	}

	for i, text := range texts {
		jobs <- textJob{index: i, text: text}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
