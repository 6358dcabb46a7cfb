// Package postprocess - shared plumbing between row filtering and mask
// synthesis.
package postprocess

import "github.com/redact-ai/go-seg/images"

// Result is a surviving candidate before mask synthesis.
type Result struct {
	// Box is the bounding box in original-image pixel coordinates.
	Box images.Box
	// Score is the confidence score of the candidate.
	Score float32
	// Class is the predicted class index of the candidate.
	Class int
	// Index is the position of the source row within the raw output tensor,
	// used to look the row's mask coefficients back up after suppression.
	Index int
}
