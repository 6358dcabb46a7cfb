package images

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"

	"github.com/redact-ai/go-seg/matrix"
)

// ColorizeMask converts a binary mask grid into an NRGBA raster of the same
// dimensions. Cells with a non-zero value become c; every other pixel is
// fully transparent, so the raster composites directly over a frame.
//
// Arguments:
//   - grid: The binary mask, non-zero cells are "on".
//   - c: The fill color, including alpha.
//
// Returns:
//   - An NRGBA raster the size of the grid.
func ColorizeMask(grid *matrix.DenseMatrix, c color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, grid.Width(), grid.Height()))
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.At(x, y) != 0 {
				out.SetNRGBA(x, y, c)
			}
		}
	}
	return out
}

// ResizeRaster scales a mask raster to the given dimensions using
// nearest-neighbour resampling, which keeps mask pixels hard-edged instead of
// feathering the alpha channel. The result stays anchored at the origin so it
// aligns 1:1 with the original image for compositing.
func ResizeRaster(raster image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), raster, resize.NearestNeighbor)
}
