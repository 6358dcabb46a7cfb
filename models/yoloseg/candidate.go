package yoloseg

// Row is one decoded candidate from the [1, N, 38] output tensor. Box
// coordinates are normalized [0,1] fractions of the original image; the
// conversion to pixels happens in exactly one place (PixelBox) in case a
// future model export switches to absolute input-resolution pixels.
type Row struct {
	X1, Y1, X2, Y2 float32
	Confidence     float32
	Class          int
	Coeffs         [CoeffCount]float32
}

// RowAt decodes candidate i from the flattened output tensor. The
// coefficients are copied so the Row stays valid after the tensor buffer is
// reused.
func RowAt(candidates []float32, i int) Row {
	off := i * RowStride
	r := Row{
		X1:         candidates[off],
		Y1:         candidates[off+1],
		X2:         candidates[off+2],
		Y2:         candidates[off+3],
		Confidence: candidates[off+4],
		Class:      int(candidates[off+5]),
	}
	copy(r.Coeffs[:], candidates[off+6:off+6+CoeffCount])
	return r
}

// Verdict is the outcome of the row filter. The original pipeline dropped
// bad class indices by letting an out-of-bounds array access fail silently;
// here the predicate is explicit so each drop reason is testable.
type Verdict int

const (
	// VerdictKept means the row survives filtering.
	VerdictKept Verdict = iota
	// VerdictLowConfidence means confidence did not exceed the threshold.
	VerdictLowConfidence
	// VerdictInvalidClass means the class index is not in the label table.
	VerdictInvalidClass
)

// Kept reports whether the verdict keeps the row.
func (v Verdict) Kept() bool { return v == VerdictKept }

// Filter decides whether a row survives: confidence must be strictly above
// threshold and the class index must fall inside [0, labelCount).
func (r Row) Filter(threshold float32, labelCount int) Verdict {
	if !(r.Confidence > threshold) {
		return VerdictLowConfidence
	}
	if r.Class < 0 || r.Class >= labelCount {
		return VerdictInvalidClass
	}
	return VerdictKept
}
