package yoloseg

import (
	"fmt"
	"image"
	"image/color"
)

// Detection is one recognized object instance, ready for the compositing
// layer. Detections are immutable once produced and own all their buffers:
// no field aliases the raw output tensors, so a Detection safely outlives
// the inference call that produced it.
type Detection struct {
	// ID is zero-based and monotonic within one post-processing call. It is
	// not globally unique.
	ID int
	// Label is the class label resolved from the label table.
	Label string
	// Confidence is the model's score for this instance, in [0,1].
	Confidence float32
	// Rect is the bounding box in original-image pixel coordinates.
	Rect image.Rectangle
	// Mask is the colored instance mask at original-image resolution,
	// transparent outside the instance.
	Mask image.Image
	// Color is the display color the mask was rendered with.
	Color color.NRGBA
}

// String formats the detection for logs.
func (d Detection) String() string {
	return fmt.Sprintf("#%d %s (confidence %.3f) at %v", d.ID, d.Label, d.Confidence, d.Rect)
}
