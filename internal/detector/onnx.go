package detector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/MeKo-Tech/langid/internal/mempool"
)

// MethodONNX is the registered name of the model-backed adapter.
const MethodONNX = "onnx"

// defaultFeatureDim is the hashed trigram vector width the bundled models
// are trained with.
const defaultFeatureDim = 4096

// ONNXConfig locates the optional ONNX classifier bundle.
type ONNXConfig struct {
	ModelPath   string // path to the .onnx model file
	LabelsPath  string // JSON array of language codes, index-aligned with the output
	LibraryPath string // optional onnxruntime shared library override
	FeatureDim  int    // input vector width (0 = defaultFeatureDim)
}

// ONNXAdapter runs a character-trigram language classifier through ONNX
// Runtime. It is an optional, heavyweight back-end: construction performs the
// one-time availability check (model files present, runtime loadable) and the
// caller registers the adapter only on success. The session reuses its
// input/output tensors, so Detect serializes runs with a mutex.
type ONNXAdapter struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	labels  []string
	dim     int

	mu sync.Mutex
}

// NewONNXAdapter loads the classifier bundle. Any missing file or runtime
// failure is returned as an error; callers treat that as "capability absent",
// not as a fatal condition.
func NewONNXAdapter(cfg ONNXConfig) (*ONNXAdapter, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("model path is empty")
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("model file missing at %s: %w", cfg.ModelPath, err)
	}

	labels, err := loadLabels(cfg.LabelsPath)
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}

	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	dim := cfg.FeatureDim
	if dim <= 0 {
		dim = defaultFeatureDim
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(dim)))
	if err != nil {
		return nil, fmt.Errorf("allocate input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(labels))))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		cfg.ModelPath,
		[]string{"features"},
		[]string{"probs"},
		[]ort.Value{input},
		[]ort.Value{output},
		nil,
	)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNXAdapter{
		session: session,
		input:   input,
		output:  output,
		labels:  labels,
		dim:     dim,
	}, nil
}

// Name implements Adapter.
func (o *ONNXAdapter) Name() string { return MethodONNX }

// Detect implements Adapter. Inference failures degrade to the sentinel.
func (o *ONNXAdapter) Detect(ctx context.Context, text string) Signal {
	if err := ctx.Err(); err != nil {
		return failure(MethodONNX)
	}

	// Hash outside the session lock; ensemble fan-out and batch workers
	// share this adapter.
	features := mempool.GetFloat32(o.dim)
	defer mempool.PutFloat32(features)
	hashTrigrams(text, features)

	o.mu.Lock()
	defer o.mu.Unlock()

	copy(o.input.GetData(), features)

	if err := o.session.Run(); err != nil {
		return failure(MethodONNX)
	}

	probs := o.output.GetData()
	bestIdx, bestProb := -1, float32(0)
	for i, p := range probs {
		if p > bestProb {
			bestIdx, bestProb = i, p
		}
	}
	if bestIdx < 0 || bestIdx >= len(o.labels) {
		return failure(MethodONNX)
	}
	conf := float64(bestProb)
	if conf > 1 {
		conf = 1
	}
	return Signal{Method: MethodONNX, Code: o.labels[bestIdx], Confidence: conf}
}

// Close releases the session and its tensors.
func (o *ONNXAdapter) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session != nil {
		o.session.Destroy()
		o.session = nil
	}
	if o.input != nil {
		o.input.Destroy()
		o.input = nil
	}
	if o.output != nil {
		o.output.Destroy()
		o.output = nil
	}
	return nil
}

// hashTrigrams fills dst with an L1-normalized hashed byte-trigram count
// vector of text.
func hashTrigrams(text string, dst []float32) {
	for i := range dst {
		dst[i] = 0
	}
	b := []byte(text)
	if len(b) < 3 {
		return
	}
	total := float32(0)
	for i := 0; i+3 <= len(b); i++ {
		// FNV-1a over the trigram
		h := uint32(2166136261)
		for _, c := range b[i : i+3] {
			h ^= uint32(c)
			h *= 16777619
		}
		dst[h%uint32(len(dst))]++
		total++
	}
	if total > 0 {
		for i := range dst {
			dst[i] /= total
		}
	}
}

// loadLabels reads the index-aligned language code list.
func loadLabels(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("labels path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	if len(labels) == 0 {
		return nil, errors.New("label list is empty")
	}
	return labels, nil
}
