package inference

// Outputs holds one inference call's raw output buffers, copied out of the
// session tensors. Both slices are ephemeral by convention: they live for
// one post-processing call and are never retained inside a Detection.
type Outputs struct {
	// Candidates is the flattened [1, N, 38] candidate tensor.
	Candidates []float32
	// CandidateCount is N.
	CandidateCount int
	// Prototypes is the flattened [1, 160, 160, 32] prototype tensor.
	Prototypes []float32
}
