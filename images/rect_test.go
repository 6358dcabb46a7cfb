package images

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalculateIoU validates the IoU implementation against known cases.
func TestCalculateIoU(t *testing.T) {
	tests := []struct {
		name     string
		r1       image.Rectangle
		r2       image.Rectangle
		expected float32
	}{
		{
			name:     "Identical rectangles",
			r1:       image.Rect(0, 0, 100, 100),
			r2:       image.Rect(0, 0, 100, 100),
			expected: 1.0,
		},
		{
			name:     "No overlap",
			r1:       image.Rect(0, 0, 100, 100),
			r2:       image.Rect(200, 200, 300, 300),
			expected: 0.0,
		},
		{
			name:     "Touching edges",
			r1:       image.Rect(0, 0, 100, 100),
			r2:       image.Rect(100, 0, 200, 100),
			expected: 0.0,
		},
		{
			name: "Half overlap",
			r1:   image.Rect(0, 0, 100, 100),
			r2:   image.Rect(50, 50, 150, 150),
			// intersection=2500, union=10000+10000-2500=17500, 2500/17500=1/7
			expected: 0.142857,
		},
		{
			name: "One inside other",
			r1:   image.Rect(0, 0, 100, 100),
			r2:   image.Rect(25, 25, 75, 75),
			// intersection=2500, union=10000
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateIoU(tt.r1, tt.r2), 0.001)

			// IoU is symmetric.
			assert.InDelta(t, CalculateIoU(tt.r1, tt.r2), CalculateIoU(tt.r2, tt.r1), 0.0001,
				"IoU(A,B) should equal IoU(B,A)")
		})
	}
}

// TestBoxToRect validates the float box to integral rectangle conversion.
func TestBoxToRect(t *testing.T) {
	b := Box{X1: 10.7, Y1: 20.2, X2: 110.9, Y2: 220.4}
	assert.Equal(t, image.Rect(10, 20, 110, 220), b.ToRect())

	// Inverted coordinates canonicalize.
	inv := Box{X1: 50, Y1: 60, X2: 10, Y2: 20}
	assert.Equal(t, image.Rect(10, 20, 50, 60), inv.ToRect())
}
