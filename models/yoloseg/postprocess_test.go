package yoloseg

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redact-ai/go-seg/labels"
)

func plateParams() Params {
	return DefaultParams(labels.NewTable([]string{"license_plate", "face"}))
}

// TestPostProcessEndToEnd runs the full pipeline over a synthetic output:
// prototype channel 0 is 1.0 everywhere, the only candidate carries
// coefficient vector [5, 0, ...] and a box covering the whole image, so
// every pre-activation value in the scaled region is 5 and
// sigmoid(5) ~ 0.993 turns the entire mask on.
func TestPostProcessEndToEnd(t *testing.T) {
	const origW, origH = 320, 240

	proto := protoWithChannel(t, 0, 1.0)
	candidates := makeRow(0, 0, 1, 1, 0.9, 0, 5)

	detections := PostProcess(candidates, proto, origW, origH, plateParams())
	require.Len(t, detections, 1)

	d := detections[0]
	assert.Equal(t, 0, d.ID)
	assert.Equal(t, "license_plate", d.Label)
	assert.InDelta(t, 0.9, float64(d.Confidence), 1e-6)
	assert.Equal(t, image.Rect(0, 0, origW, origH), d.Rect)

	require.NotNil(t, d.Mask)
	bounds := d.Mask.Bounds()
	assert.Equal(t, origW, bounds.Dx(), "mask raster must be at original resolution")
	assert.Equal(t, origH, bounds.Dy())

	// The box covers the full image, so the resized mask is opaque
	// everywhere.
	for _, pt := range []image.Point{{0, 0}, {160, 120}, {319, 239}} {
		_, _, _, a := d.Mask.At(pt.X, pt.Y).RGBA()
		assert.NotZero(t, a, "mask pixel %v should be on", pt)
	}
}

// TestPostProcessStableOrderAndIDs validates that output order matches the
// order of surviving input rows and that ids are zero-based and monotonic.
func TestPostProcessStableOrderAndIDs(t *testing.T) {
	proto := protoWithChannel(t, 0, 1.0)

	// Row 0 survives, row 1 is dropped on confidence, rows 2 and 3 survive.
	candidates := makeRow(0.0, 0.0, 0.2, 0.2, 0.3, 1, 5)
	candidates = append(candidates, makeRow(0.3, 0.3, 0.4, 0.4, 0.05, 0, 5)...)
	candidates = append(candidates, makeRow(0.5, 0.5, 0.7, 0.7, 0.8, 0, 5)...)
	candidates = append(candidates, makeRow(0.1, 0.6, 0.3, 0.9, 0.6, 1, 5)...)

	detections := PostProcess(candidates, proto, 640, 480, plateParams())
	require.Len(t, detections, 3)

	assert.Equal(t, []string{"face", "license_plate", "face"},
		[]string{detections[0].Label, detections[1].Label, detections[2].Label},
		"output order must follow surviving input-row order")
	for i, d := range detections {
		assert.Equal(t, i, d.ID, "ids are zero-based and monotonic per call")
	}
}

// TestPostProcessDegenerateBoxStillEmitted validates that a zero-area box
// produces a fully transparent mask but the detection itself is kept.
func TestPostProcessDegenerateBoxStillEmitted(t *testing.T) {
	proto := protoWithChannel(t, 0, 1.0)
	candidates := makeRow(0.5, 0.2, 0.5, 0.8, 0.7, 0, 5)

	detections := PostProcess(candidates, proto, 320, 320, plateParams())
	require.Len(t, detections, 1, "degenerate boxes still emit a detection")

	d := detections[0]
	assert.Equal(t, "license_plate", d.Label)
	assert.InDelta(t, 0.7, float64(d.Confidence), 1e-6)

	bounds := d.Mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 16 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 16 {
			_, _, _, a := d.Mask.At(x, y).RGBA()
			require.Zero(t, a, "degenerate mask pixel (%d,%d) must be transparent", x, y)
		}
	}
}

// TestPostProcessZeroSurvivors validates that an all-dropped frame is a
// valid empty result, not an error.
func TestPostProcessZeroSurvivors(t *testing.T) {
	proto := protoWithChannel(t, 0, 1.0)

	// One row below the threshold, one with an invalid class index.
	candidates := makeRow(0, 0, 1, 1, 0.01, 0, 5)
	candidates = append(candidates, makeRow(0, 0, 1, 1, 0.9, 7, 5)...)

	detections := PostProcess(candidates, proto, 320, 320, plateParams())
	assert.Empty(t, detections)
}

// TestPostProcessDisplayColors validates the palette lookup and the
// fallback for labels without an entry.
func TestPostProcessDisplayColors(t *testing.T) {
	proto := protoWithChannel(t, 0, 1.0)
	params := DefaultParams(labels.NewTable([]string{"license_plate", "mystery"}))

	candidates := makeRow(0, 0, 0.5, 0.5, 0.9, 0, 5)
	candidates = append(candidates, makeRow(0.5, 0.5, 1, 1, 0.9, 1, 5)...)

	detections := PostProcess(candidates, proto, 320, 320, params)
	require.Len(t, detections, 2)

	want := params.Colors.Color("license_plate")
	want.A = params.MaskAlpha
	assert.Equal(t, want, detections[0].Color)

	fallback := labels.FallbackColor
	fallback.A = params.MaskAlpha
	assert.Equal(t, fallback, detections[1].Color, "unmapped label uses the fallback color")
}

// TestPostProcessMaxDetections validates the detection cap.
func TestPostProcessMaxDetections(t *testing.T) {
	proto := protoWithChannel(t, 0, 1.0)

	var candidates []float32
	for i := 0; i < 5; i++ {
		candidates = append(candidates, makeRow(0, 0, 0.1, 0.1, 0.9, 0, 5)...)
	}

	params := plateParams()
	params.MaxDetections = 2

	detections := PostProcess(candidates, proto, 320, 320, params)
	assert.Len(t, detections, 2)
}

// TestPostProcessSuppression validates the opt-in overlap suppression: two
// near-identical boxes collapse to the earlier row.
func TestPostProcessSuppression(t *testing.T) {
	proto := protoWithChannel(t, 0, 1.0)

	candidates := makeRow(0.1, 0.1, 0.5, 0.5, 0.6, 0, 5)
	candidates = append(candidates, makeRow(0.1, 0.1, 0.5, 0.52, 0.9, 0, 5)...)

	params := plateParams()
	detections := PostProcess(candidates, proto, 640, 480, params)
	require.Len(t, detections, 2, "suppression is off by default")

	params.SuppressionThreshold = 0.7
	detections = PostProcess(candidates, proto, 640, 480, params)
	require.Len(t, detections, 1)
	assert.InDelta(t, 0.6, float64(detections[0].Confidence), 1e-6,
		"the earlier row wins, preserving input order semantics")
}
