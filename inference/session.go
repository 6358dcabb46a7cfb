package inference

import (
	"os"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/redact-ai/go-seg/models/yoloseg"
)

// Config describes the loaded segmentation model.
type Config struct {
	// ModelPath is the path to the ONNX model file.
	ModelPath string `json:"model_path" yaml:"model_path"`
	// InputSize is the model's square input resolution S.
	InputSize int `json:"input_size" yaml:"input_size"`
	// CandidateCount is the number of candidate rows N the model emits.
	CandidateCount int `json:"candidate_count" yaml:"candidate_count"`
	// InputName is the name of the model's input tensor.
	InputName string `json:"input_name" yaml:"input_name"`
	// OutputNames are the candidate and prototype tensor names, in that order.
	OutputNames []string `json:"output_names" yaml:"output_names"`
}

// DefaultConfig returns the configuration matching the exported
// YOLOv8-seg-style models this pipeline ships with.
func DefaultConfig(modelPath string) Config {
	return Config{
		ModelPath:      modelPath,
		InputSize:      640,
		CandidateCount: 300,
		InputName:      "images",
		OutputNames:    []string{"output0", "output1"},
	}
}

// InitRuntime initializes the shared onnxruntime environment. Call once at
// startup before creating sessions; libraryPath may be empty to use the
// default library lookup.
func InitRuntime(libraryPath string) error {
	if ort.IsInitialized() {
		return nil
	}
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	return errors.Wrap(ort.InitializeEnvironment(), "failed to initialize onnxruntime")
}

// DestroyRuntime tears down the shared onnxruntime environment.
func DestroyRuntime() error {
	return errors.Wrap(ort.DestroyEnvironment(), "failed to destroy onnxruntime environment")
}

// Session owns an ONNX session plus its input and output tensors. The
// tensors are reused across Run calls, so one Session must not be shared by
// concurrent callers; Outputs copies everything a post-processing call needs
// to stay independent of the next Run.
type Session struct {
	session    *ort.AdvancedSession
	input      *ort.Tensor[float32]
	candidates *ort.Tensor[float32]
	prototypes *ort.Tensor[float32]
	config     Config
}

// NewSession loads the model at cfg.ModelPath and allocates its tensors.
//
// Arguments:
//   - cfg: The model configuration.
//
// Returns:
//   - *Session: The ready-to-run session.
//   - error: An error if the model is missing or session creation fails.
func NewSession(cfg Config) (*Session, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, errors.Wrapf(err, "model file %s not found", cfg.ModelPath)
	}
	if cfg.InputSize <= 0 || cfg.CandidateCount <= 0 {
		return nil, errors.Errorf("invalid model dimensions: input size %d, candidate count %d",
			cfg.InputSize, cfg.CandidateCount)
	}
	if len(cfg.OutputNames) != 2 {
		return nil, errors.Errorf("expected 2 output names (candidates, prototypes), got %d",
			len(cfg.OutputNames))
	}

	s := &Session{config: cfg}
	var err error

	s.input, err = ort.NewEmptyTensor[float32](
		ort.NewShape(1, int64(cfg.InputSize), int64(cfg.InputSize), 3))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create input tensor")
	}

	s.candidates, err = ort.NewEmptyTensor[float32](
		ort.NewShape(1, int64(cfg.CandidateCount), int64(yoloseg.RowStride)))
	if err != nil {
		s.Close()
		return nil, errors.Wrap(err, "failed to create candidate tensor")
	}

	s.prototypes, err = ort.NewEmptyTensor[float32](
		ort.NewShape(1, int64(yoloseg.ProtoHeight), int64(yoloseg.ProtoWidth),
			int64(yoloseg.ProtoChannels)))
	if err != nil {
		s.Close()
		return nil, errors.Wrap(err, "failed to create prototype tensor")
	}

	s.session, err = ort.NewAdvancedSession(
		cfg.ModelPath,
		[]string{cfg.InputName},
		cfg.OutputNames,
		[]ort.ArbitraryTensor{s.input},
		[]ort.ArbitraryTensor{s.candidates, s.prototypes},
		nil,
	)
	if err != nil {
		s.Close()
		return nil, errors.Wrapf(err, "failed to create session for %s", cfg.ModelPath)
	}

	return s, nil
}

// Config returns the model configuration the session was created with.
func (s *Session) Config() Config { return s.config }

// Input returns the session's input tensor for PrepareInput to fill.
func (s *Session) Input() *ort.Tensor[float32] { return s.input }

// Run executes one inference call over the current input tensor contents.
func (s *Session) Run() error {
	return errors.Wrap(s.session.Run(), "inference run failed")
}

// Outputs copies the current output tensor contents. The returned value is
// owned by the caller and stays valid across later Run calls.
func (s *Session) Outputs() Outputs {
	return Outputs{
		Candidates:     append([]float32(nil), s.candidates.GetData()...),
		CandidateCount: s.config.CandidateCount,
		Prototypes:     append([]float32(nil), s.prototypes.GetData()...),
	}
}

// Close releases the session and its tensors. Safe to call on a partially
// constructed session.
func (s *Session) Close() {
	if s.input != nil {
		s.input.Destroy()
		s.input = nil
	}
	if s.candidates != nil {
		s.candidates.Destroy()
		s.candidates = nil
	}
	if s.prototypes != nil {
		s.prototypes.Destroy()
		s.prototypes = nil
	}
	if s.session != nil {
		s.session.Destroy()
		s.session = nil
	}
}
