// Package yoloseg - post-processing for YOLOv8-style instance segmentation
// output: candidate rows [1, N, 38] plus a shared prototype tensor
// [1, 160, 160, 32] become an ordered list of Detections carrying
// pixel-accurate masks at the original image resolution.
package yoloseg

import (
	"github.com/redact-ai/go-seg/labels"
)

// Model output contract. These are fixed by the exported model architecture,
// not tunable parameters.
const (
	// RowStride is the number of floats per candidate row:
	// x1, y1, x2, y2, confidence, class, then 32 mask coefficients.
	RowStride = 38
	// CoeffCount is the number of mask coefficients per candidate.
	CoeffCount = 32
	// ProtoWidth and ProtoHeight are the spatial resolution of the
	// prototype tensor; ProtoChannels is its number of basis channels.
	ProtoWidth    = 160
	ProtoHeight   = 160
	ProtoChannels = 32
)

// MaskThreshold is the activation value a mask pixel must strictly exceed to
// be on. sigmoid(0) = 0.5 lands exactly on it, so all-zero coefficients
// produce an all-off mask.
const MaskThreshold float32 = 0.5

// DefaultConfidenceThreshold keeps the pipeline sensitive by default;
// low-confidence plates are worth a mask more than a missed one.
const DefaultConfidenceThreshold float32 = 0.1

// Params configures one post-processing call. A Params value is read-only
// during the call; the same value can back any number of concurrent calls.
type Params struct {
	// ConfidenceThreshold drops rows with confidence <= threshold.
	ConfidenceThreshold float32 `json:"confidence_threshold" yaml:"confidence_threshold"`
	// MaskAlpha is the opacity of on-pixels in the colored mask raster.
	MaskAlpha uint8 `json:"mask_alpha" yaml:"mask_alpha"`
	// MaxDetections caps the number of emitted detections; 0 means no cap.
	MaxDetections int `json:"max_detections" yaml:"max_detections"`
	// SuppressionThreshold, when > 0, enables order-preserving overlap
	// suppression at that IoU. Off by default so output order always
	// matches surviving input-row order.
	SuppressionThreshold float32 `json:"suppression_threshold" yaml:"suppression_threshold"`
	// Labels is the ordered class label table; a row's class index is a
	// direct index into it.
	Labels labels.Table `json:"-" yaml:"-"`
	// Colors resolves each label's display color.
	Colors labels.Palette `json:"-" yaml:"-"`
}

// DefaultParams returns Params with the default threshold, full-opacity
// masks and the standard palette.
func DefaultParams(table labels.Table) Params {
	return Params{
		ConfidenceThreshold: DefaultConfidenceThreshold,
		MaskAlpha:           0xff,
		Labels:              table,
		Colors:              labels.DefaultPalette(),
	}
}
