package yoloseg

import (
	"image"
	"image/color"

	"github.com/redact-ai/go-seg/images"
	"github.com/redact-ai/go-seg/models/postprocess"
)

// PostProcess turns one call's raw candidate rows and prototype tensor into
// the final Detection list. The transform is synchronous and pure: all
// scratch buffers are call-scoped, params are only read, and the output
// order matches the order of surviving input rows.
//
// Arguments:
//   - candidates: The flattened [1, N, 38] candidate tensor.
//   - proto: The call's prototype tensor.
//   - origW, origH: The original image dimensions in pixels.
//   - p: The call configuration.
//
// Returns:
//   - Ordered detections; empty (never an error) when nothing survives.
func PostProcess(candidates []float32, proto *Prototype, origW, origH int, p Params) []Detection {
	n := len(candidates) / RowStride

	results := make([]postprocess.Result, 0, n)
	for i := 0; i < n; i++ {
		row := RowAt(candidates, i)
		if !row.Filter(p.ConfidenceThreshold, p.Labels.Count()).Kept() {
			continue
		}
		results = append(results, postprocess.Result{
			Box:   pixelBox(row, origW, origH),
			Score: row.Confidence,
			Class: row.Class,
			Index: i,
		})
	}

	if p.SuppressionThreshold > 0 {
		results = postprocess.SuppressOverlaps(results, p.SuppressionThreshold)
	}
	if p.MaxDetections > 0 && len(results) > p.MaxDetections {
		results = results[:p.MaxDetections]
	}

	frame := image.Rect(0, 0, origW, origH)
	detections := make([]Detection, 0, len(results))
	for id, res := range results {
		row := RowAt(candidates, res.Index)

		region := scaleToMaskSpace(res.Box, origW, origH)
		mask := SynthesizeMask(row.Coeffs[:], proto, region)

		label := p.Labels.Name(res.Class)
		c := p.Colors.Color(label)
		c.A = p.MaskAlpha

		detections = append(detections, Detection{
			ID:         id,
			Label:      label,
			Confidence: res.Score,
			Rect:       res.Box.ToRect().Intersect(frame),
			Mask:       rasterize(mask, c, origW, origH),
			Color:      c,
		})
	}

	return detections
}

// pixelBox converts a row's normalized box fractions into original-image
// pixel coordinates. The single place the [0,1]-fraction convention lives.
func pixelBox(row Row, origW, origH int) images.Box {
	return images.Box{
		X1: row.X1 * float32(origW),
		Y1: row.Y1 * float32(origH),
		X2: row.X2 * float32(origW),
		Y2: row.Y2 * float32(origH),
	}
}

// rasterize colorizes a binary mask and scales it up to the original image
// resolution, anchored at the origin for 1:1 compositing.
func rasterize(mask BinaryMask, c color.NRGBA, origW, origH int) image.Image {
	return images.ResizeRaster(images.ColorizeMask(mask.Grid, c), origW, origH)
}
