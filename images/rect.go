// Package images - geometry and raster utilities for detection output.
package images

import (
	"fmt"
	"image"
)

// Box is a floating-point bounding box in pixel coordinates of the original
// image. X2 and Y2 are exclusive, matching image.Rectangle.
type Box struct {
	X1, Y1, X2, Y2 float32
}

// String formats the box for logs and test failures.
func (b Box) String() string {
	return fmt.Sprintf("(%.2f, %.2f)-(%.2f, %.2f)", b.X1, b.Y1, b.X2, b.Y2)
}

// ToRect converts the box to an integral image.Rectangle. This loses the
// fractional pixels around the edges, which is acceptable because the box has
// already been scaled up to the original image's dimensions.
func (b Box) ToRect() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

// CalculateIoU computes the Intersection over Union of two rectangles: the
// overlap area divided by the combined area. 1.0 means identical rectangles,
// 0.0 means no overlap. Used by overlap suppression to decide whether two
// detections describe the same object.
func CalculateIoU(r, o image.Rectangle) float32 {
	inter := r.Intersect(o)
	if inter.Empty() {
		return 0.0
	}
	interArea := inter.Dx() * inter.Dy()

	// Inclusion-exclusion: Union(A, B) = Area(A) + Area(B) - Intersection(A, B).
	union := r.Dx()*r.Dy() + o.Dx()*o.Dy() - interArea
	if union <= 0 {
		return 0.0
	}
	return float32(interArea) / float32(union)
}
