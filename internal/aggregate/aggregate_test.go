package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/detector"
)

func sig(method, code string, conf float64) detector.Signal {
	return detector.Signal{Method: method, Code: code, Confidence: conf}
}

func TestAggregate_EmptySignals(t *testing.T) {
	v := Aggregate(nil, DefaultWeights())
	assert.Equal(t, detector.CodeUnknown, v.Code)
	assert.Equal(t, 0.0, v.Confidence)
	assert.Equal(t, MethodNone, v.Method)
}

func TestAggregate_AllUnknown(t *testing.T) {
	signals := []detector.Signal{
		sig("lingua", detector.CodeUnknown, 0),
		sig("whatlang", detector.CodeUnknown, 0),
		sig("heuristic", detector.CodeUnknown, 0),
	}
	v := Aggregate(signals, DefaultWeights())
	assert.Equal(t, detector.CodeUnknown, v.Code)
	assert.Equal(t, 0.0, v.Confidence)
	assert.Equal(t, MethodNone, v.Method)
}

func TestAggregate_UnanimousVote(t *testing.T) {
	// Every method agrees at 0.9: the normalized confidence is 0.9 again,
	// regardless of the individual weights.
	signals := []detector.Signal{
		sig("lingua", "fr", 0.9),
		sig("whatlang", "fr", 0.9),
		sig("heuristic", "fr", 0.9),
	}
	v := Aggregate(signals, DefaultWeights())
	assert.Equal(t, "fr", v.Code)
	assert.InDelta(t, 0.9, v.Confidence, 1e-9)
	assert.Equal(t, "lingua", v.Method)
}

func TestAggregate_ConsensusBeatsPeakConfidence(t *testing.T) {
	// Three weak votes for "en" beat one very confident vote for "es":
	// vote count is the primary ranking key.
	signals := []detector.Signal{
		sig("lingua", "en", 0.9),
		sig("whatlang", "en", 0.1),
		sig("heuristic", "en", 0.1),
		sig("onnx", "es", 0.99),
	}
	v := Aggregate(signals, DefaultWeights())
	assert.Equal(t, "en", v.Code)
	assert.Equal(t, "lingua", v.Method)
}

func TestAggregate_DisagreementSuppressesConfidence(t *testing.T) {
	w := Weights{"a": 0.5, "b": 0.5, "c": 0.5, "d": 0.5}
	agreed := Aggregate([]detector.Signal{
		sig("a", "de", 0.8),
		sig("b", "de", 0.8),
	}, w)
	contested := Aggregate([]detector.Signal{
		sig("a", "de", 0.8),
		sig("b", "de", 0.8),
		sig("c", "nl", 0.8),
		sig("d", "nl", 0.7),
	}, w)

	require.Equal(t, "de", agreed.Code)
	require.Equal(t, "de", contested.Code)
	assert.Less(t, contested.Confidence, agreed.Confidence)
}

func TestAggregate_FailedMethodDilutesConfidence(t *testing.T) {
	// A failed method still participates in the weight normalization.
	w := Weights{"a": 0.5, "b": 0.5}
	alone := Aggregate([]detector.Signal{sig("a", "it", 0.8)}, w)
	withFailure := Aggregate([]detector.Signal{
		sig("a", "it", 0.8),
		sig("b", detector.CodeUnknown, 0),
	}, w)

	require.Equal(t, "it", alone.Code)
	require.Equal(t, "it", withFailure.Code)
	assert.InDelta(t, 0.8, alone.Confidence, 1e-9)
	assert.InDelta(t, 0.4, withFailure.Confidence, 1e-9)
}

func TestAggregate_WeightedSumBreaksCountTies(t *testing.T) {
	w := Weights{"a": 0.5, "b": 0.5, "c": 0.5, "d": 0.5}
	v := Aggregate([]detector.Signal{
		sig("a", "en", 0.3),
		sig("b", "fr", 0.9),
		sig("c", "en", 0.3),
		sig("d", "fr", 0.9),
	}, w)
	assert.Equal(t, "fr", v.Code)
	assert.Equal(t, "b", v.Method)
}

func TestAggregate_ExactTieKeepsFirstRegistered(t *testing.T) {
	w := Weights{"a": 0.5, "b": 0.5}
	v := Aggregate([]detector.Signal{
		sig("a", "en", 0.7),
		sig("b", "fr", 0.7),
	}, w)
	assert.Equal(t, "en", v.Code)
	assert.Equal(t, "a", v.Method)
}

func TestAggregate_ContributingMethodIsFirstMatch(t *testing.T) {
	v := Aggregate([]detector.Signal{
		sig("lingua", "es", 0.2),
		sig("whatlang", "pt", 0.9),
		sig("heuristic", "pt", 0.8),
		sig("onnx", "pt", 0.7),
	}, DefaultWeights())
	assert.Equal(t, "pt", v.Code)
	assert.Equal(t, "whatlang", v.Method)
}

func TestAggregate_ConfidenceClamped(t *testing.T) {
	v := Aggregate([]detector.Signal{
		sig("a", "en", 1.5), // out-of-range input is clamped, not propagated
	}, Weights{"a": 1.0})
	assert.Equal(t, "en", v.Code)
	assert.LessOrEqual(t, v.Confidence, 1.0)
	assert.GreaterOrEqual(t, v.Confidence, 0.0)
}

func TestWeights_Of(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.4, w.Of(detector.MethodLingua))
	assert.Equal(t, DefaultWeight, w.Of("novel-method"))
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, Weights{"a": 0.5, "b": 1.0}.Validate())
	assert.Error(t, Weights{"a": 0}.Validate())
	assert.Error(t, Weights{"a": 1.5}.Validate())
	assert.Error(t, Weights{"a": -0.1}.Validate())
}

func TestWeights_Merge(t *testing.T) {
	base := Weights{"a": 0.2, "b": 0.3}
	merged := base.Merge(Weights{"b": 0.9, "c": 0.1})

	assert.Equal(t, 0.2, merged["a"])
	assert.Equal(t, 0.9, merged["b"])
	assert.Equal(t, 0.1, merged["c"])
	// The receiver is not mutated.
	assert.Equal(t, 0.3, base["b"])
}
