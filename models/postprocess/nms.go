package postprocess

import "github.com/redact-ai/go-seg/images"

// SuppressOverlaps removes every result whose IoU with an earlier kept
// result exceeds iouThreshold. Unlike score-sorted NMS this pass never
// reorders: results arrive and leave in input-row order, and on a conflict
// the earlier row wins. Callers that need the stable-order guarantee of the
// pipeline simply skip this pass.
//
// Arguments:
//   - results: Candidates in input-row order.
//   - iouThreshold: Overlap above which a later result is dropped.
//
// Returns:
//   - The surviving results, still in input-row order.
func SuppressOverlaps(results []Result, iouThreshold float32) []Result {
	n := len(results)
	if n == 0 {
		return nil
	}

	kept := make([]Result, 0, n)
	for _, candidate := range results {
		overlaps := false
		for i := range kept {
			if images.CalculateIoU(candidate.Box.ToRect(), kept[i].Box.ToRect()) > iouThreshold {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, candidate)
		}
	}
	return kept
}
