// Package detector defines the uniform adapter interface over the language
// identification back-ends and the ordered registry the ensemble queries.
// Adapters never return errors: any internal failure is converted to the
// sentinel signal at the adapter boundary so that one back-end can never
// block or distort the others.
package detector

import (
	"context"
	"errors"
)

// CodeUnknown is the language code reported by a failed or inconclusive
// detection.
const CodeUnknown = "unknown"

// ErrUnknownMethod is returned when a caller requests a detection method
// that is not registered.
var ErrUnknownMethod = errors.New("unknown detection method")

// Signal is one adapter's opinion for one input: a lowercase ISO-639-ish
// language code (optionally region-qualified) and a confidence in [0,1].
type Signal struct {
	Method     string  `json:"method"`
	Code       string  `json:"language_code"`
	Confidence float64 `json:"confidence"`
}

// Failed reports whether the signal is the failure sentinel.
func (s Signal) Failed() bool {
	return s.Code == CodeUnknown || s.Code == ""
}

// failure builds the sentinel signal for a method.
func failure(method string) Signal {
	return Signal{Method: method, Code: CodeUnknown, Confidence: 0}
}

// Adapter exposes one detection back-end. Implementations must always
// return a Signal, converting internal failures (library errors, timeouts,
// unsupported input) to the sentinel instead of propagating them.
type Adapter interface {
	// Name returns the stable method name used for weighting and selection.
	Name() string
	// Detect identifies the language of non-empty cleaned text.
	Detect(ctx context.Context, text string) Signal
}

// Registry holds the ordered, immutable set of registered adapters.
// Registration order is significant: it fixes the tie-break order for the
// contributing-method attribution in the aggregate step.
type Registry struct {
	adapters []Adapter
	byName   map[string]Adapter
}

// NewRegistry builds a registry from adapters in registration order.
// Later adapters with a duplicate name are dropped.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{byName: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		if a == nil {
			continue
		}
		if _, dup := r.byName[a.Name()]; dup {
			continue
		}
		r.adapters = append(r.adapters, a)
		r.byName[a.Name()] = a
	}
	return r
}

// Adapters returns the registered adapters in registration order.
func (r *Registry) Adapters() []Adapter {
	out := make([]Adapter, len(r.adapters))
	copy(out, r.adapters)
	return out
}

// Names returns the registered method names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.adapters))
	for i, a := range r.adapters {
		names[i] = a.Name()
	}
	return names
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int { return len(r.adapters) }

// Lookup returns the adapter registered under name. A miss is a caller
// error, reported as ErrUnknownMethod.
func (r *Registry) Lookup(name string) (Adapter, error) {
	a, ok := r.byName[name]
	if !ok {
		return nil, ErrUnknownMethod
	}
	return a, nil
}
