package yoloseg

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/redact-ai/go-seg/images"
	"github.com/redact-ai/go-seg/matrix"
)

// BinaryMask is the product of mask synthesis before any rasterization: a
// ProtoWidth x ProtoHeight grid holding 1 for on-cells and 0 elsewhere, plus
// the scaled region that was actually computed. Keeping this as a typed
// intermediate lets the numeric core be tested without touching the
// colorize/resize step.
type BinaryMask struct {
	Grid   *matrix.DenseMatrix
	Region image.Rectangle
}

// Empty reports whether the mask covers no pixels at all.
func (m BinaryMask) Empty() bool {
	return m.Region.Empty()
}

// scaleToMaskSpace maps a pixel box in the original image into prototype
// coordinates: floor on the minimums, ceil on the maximums, clamped to the
// prototype grid. A zero- or negative-area result means the detection has no
// representable mask.
func scaleToMaskSpace(box images.Box, origW, origH int) image.Rectangle {
	x1 := int(math32.Floor(box.X1 / float32(origW) * ProtoWidth))
	y1 := int(math32.Floor(box.Y1 / float32(origH) * ProtoHeight))
	x2 := int(math32.Ceil(box.X2 / float32(origW) * ProtoWidth))
	y2 := int(math32.Ceil(box.Y2 / float32(origH) * ProtoHeight))

	r := image.Rect(
		clampInt(x1, 0, ProtoWidth),
		clampInt(y1, 0, ProtoHeight),
		clampInt(x2, 0, ProtoWidth),
		clampInt(y2, 0, ProtoHeight),
	)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// maskValue is the pre-activation mask value at one mask-space pixel: the
// 32-term dot product of the candidate's coefficients with the prototype's
// basis channels.
func maskValue(coeffs []float32, proto *Prototype, x, y int) float32 {
	var sum float32
	for c := 0; c < ProtoChannels; c++ {
		sum += coeffs[c] * proto.At(x, y, c)
	}
	return sum
}

// sigmoid is the logistic activation 1/(1+e^-x).
func sigmoid(x float32) float32 {
	return 1.0 / (1.0 + math32.Exp(-x))
}

// SynthesizeMask computes a candidate's binary mask inside region only.
// Restricting the dot products to the scaled bounding rectangle cuts the
// per-detection cost from O(160*160*32) to O(boxArea*32), which is what
// keeps many-detection frames viable on constrained hardware.
//
// A cell is on when sigmoid(dot) strictly exceeds MaskThreshold; exactly 0.5
// is off. Non-finite dot products are off, never propagated.
//
// Arguments:
//   - coeffs: The candidate's CoeffCount mask coefficients.
//   - proto: The call's shared prototype tensor.
//   - region: The scaled bounding rectangle from scaleToMaskSpace; an empty
//     region yields an all-off mask.
//
// Returns:
//   - The binary mask over the full prototype grid.
func SynthesizeMask(coeffs []float32, proto *Prototype, region image.Rectangle) BinaryMask {
	grid := matrix.New(ProtoWidth, ProtoHeight)

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			v := maskValue(coeffs, proto, x, y)
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				continue
			}
			if sigmoid(v) > MaskThreshold {
				grid.Set(x, y, 1)
			}
		}
	}

	return BinaryMask{Grid: grid, Region: region}
}
