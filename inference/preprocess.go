// Package inference - the boundary to the ONNX inference backend.
//
// The backend consumes one normalized [1, S, S, 3] float32 tensor and
// produces two: candidate rows [1, N, 38] and the prototype tensor
// [1, 160, 160, 32]. N and S are properties of the loaded model; everything
// downstream treats them as opaque.
package inference

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// PrepareInput resizes img to size x size and writes it into dst as an NHWC
// tensor with each channel scaled to [0,1].
//
// Arguments:
//   - img: The decoded original image.
//   - dst: The session's input tensor, shaped [1, size, size, 3].
//   - size: The model's input resolution.
//
// Returns:
//   - error: An error if the destination tensor is too small.
func PrepareInput(img image.Image, dst *ort.Tensor[float32], size int) error {
	data := dst.GetData()
	if len(data) < size*size*3 {
		return errors.Errorf("destination tensor only holds %d floats, needs %d "+
			"(make sure it's the right shape)", len(data), size*size*3)
	}
	fillNHWC(data, img, size)
	return nil
}

// fillNHWC does the actual resize and normalization, split out so the tensor
// layout is testable without an onnxruntime environment.
func fillNHWC(data []float32, img image.Image, size int) {
	// Lanczos3 for the model input; quality matters more than speed here
	// because this runs once per frame, not once per detection.
	img = resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	i := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			data[i] = float32(r>>8) / 255.0
			data[i+1] = float32(g>>8) / 255.0
			data[i+2] = float32(b>>8) / 255.0
			i += 3
		}
	}
}
