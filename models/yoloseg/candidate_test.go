package yoloseg

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRow builds one raw candidate row: normalized box, confidence, class,
// then up to CoeffCount mask coefficients (zero-padded).
func makeRow(x1, y1, x2, y2, conf float32, class int, coeffs ...float32) []float32 {
	row := make([]float32, RowStride)
	row[0], row[1], row[2], row[3] = x1, y1, x2, y2
	row[4] = conf
	row[5] = float32(class)
	copy(row[6:], coeffs)
	return row
}

// TestRowAtDecodesLayout validates the 38-float row layout against a buffer
// holding two candidates.
func TestRowAtDecodesLayout(t *testing.T) {
	buf := append(
		makeRow(0.1, 0.2, 0.3, 0.4, 0.9, 2, 1.5, -2.5),
		makeRow(0.5, 0.6, 0.7, 0.8, 0.4, 0)...,
	)
	require.Len(t, buf, 2*RowStride)

	first := RowAt(buf, 0)
	assert.Equal(t, float32(0.1), first.X1)
	assert.Equal(t, float32(0.2), first.Y1)
	assert.Equal(t, float32(0.3), first.X2)
	assert.Equal(t, float32(0.4), first.Y2)
	assert.Equal(t, float32(0.9), first.Confidence)
	assert.Equal(t, 2, first.Class)
	assert.Equal(t, float32(1.5), first.Coeffs[0])
	assert.Equal(t, float32(-2.5), first.Coeffs[1])
	assert.Equal(t, float32(0), first.Coeffs[31])

	second := RowAt(buf, 1)
	assert.Equal(t, float32(0.5), second.X1)
	assert.Equal(t, float32(0.4), second.Confidence)
	assert.Equal(t, 0, second.Class)
}

// TestRowAtCopiesCoefficients validates that a decoded row does not alias
// the tensor buffer it came from.
func TestRowAtCopiesCoefficients(t *testing.T) {
	buf := makeRow(0, 0, 1, 1, 0.9, 0, 7)
	row := RowAt(buf, 0)

	buf[6] = 99
	assert.Equal(t, float32(7), row.Coeffs[0], "row must own its coefficient storage")
}

// TestFilterConfidenceThreshold validates that with confidences
// 0.05, 0.15 and 0.9 at threshold 0.1 exactly two rows survive.
func TestFilterConfidenceThreshold(t *testing.T) {
	confidences := []float32{0.05, 0.15, 0.9}

	kept := 0
	for _, conf := range confidences {
		row := Row{Confidence: conf, Class: 0}
		if row.Filter(0.1, 1).Kept() {
			kept++
		}
	}
	assert.Equal(t, 2, kept, "exactly the 0.15 and 0.9 rows should survive")
}

// TestFilterVerdicts validates each drop reason, including the strict
// comparison at the threshold boundary.
func TestFilterVerdicts(t *testing.T) {
	tests := []struct {
		name       string
		confidence float32
		class      int
		labelCount int
		expected   Verdict
	}{
		{"High confidence, valid class", 0.9, 0, 2, VerdictKept},
		{"Last valid class index", 0.9, 1, 2, VerdictKept},
		{"Confidence exactly at threshold", 0.1, 0, 2, VerdictLowConfidence},
		{"Confidence below threshold", 0.05, 0, 2, VerdictLowConfidence},
		{"NaN confidence", math32.NaN(), 0, 2, VerdictLowConfidence},
		{"Negative class index", 0.9, -1, 2, VerdictInvalidClass},
		{"Class index at label count", 0.9, 2, 2, VerdictInvalidClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{Confidence: tt.confidence, Class: tt.class}
			verdict := row.Filter(0.1, tt.labelCount)
			assert.Equal(t, tt.expected, verdict)
			assert.Equal(t, tt.expected == VerdictKept, verdict.Kept())
		})
	}
}
