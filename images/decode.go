package images

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// DecodeImage decodes JPEG, PNG or BMP bytes into a Go-native image.Image
// using OpenCV, which handles all the container formats the capture side
// produces without registering stdlib decoders per format.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: An error if the bytes cannot be decoded.
func DecodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, errors.New("decoded image is empty")
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert decoded image")
	}
	return img, nil
}
