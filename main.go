package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/redact-ai/go-seg/images"
	"github.com/redact-ai/go-seg/inference"
	"github.com/redact-ai/go-seg/labels"
	"github.com/redact-ai/go-seg/models/yoloseg"
	"github.com/redact-ai/go-seg/util"
)

const (
	// DefaultModelPath is the default segmentation model file.
	DefaultModelPath = "yolov8s-seg.onnx"
	// DefaultLabelsPath is the default label table file.
	DefaultLabelsPath = "labels.txt"
	// DefaultOutputDir is where per-detection masks are written.
	DefaultOutputDir = "masks"
)

func main() {
	var (
		modelPath  string
		labelsPath string
		inputDir   string
		outputDir  string
		ortLibPath string
		confidence float64
	)
	flag.StringVar(&modelPath, "model", DefaultModelPath, "Path to the segmentation ONNX model")
	flag.StringVar(&labelsPath, "labels", DefaultLabelsPath, "Path to the newline-separated label file")
	flag.StringVar(&inputDir, "input", "", "Directory of images to process (.jpg, .jpeg, .png, .bmp)")
	flag.StringVar(&outputDir, "output-dir", DefaultOutputDir, "Output directory for detection masks")
	flag.StringVar(&ortLibPath, "ort-lib", "", "Path to the onnxruntime shared library (optional)")
	flag.Float64Var(&confidence, "confidence", float64(yoloseg.DefaultConfidenceThreshold),
		"Detection confidence threshold")
	flag.Parse()

	if inputDir == "" {
		log.Fatal("-input is required")
	}

	// Missing assets are precondition failures; nothing downstream runs
	// without them.
	table, err := labels.Load(labelsPath)
	if err != nil {
		log.Fatalf("Failed to load labels: %v", err)
	}

	if err := inference.InitRuntime(ortLibPath); err != nil {
		log.Fatalf("Failed to initialize inference runtime: %v", err)
	}
	defer inference.DestroyRuntime()

	session, err := inference.NewSession(inference.DefaultConfig(modelPath))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	defer session.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	params := yoloseg.DefaultParams(table)
	params.ConfidenceThreshold = float32(confidence)

	files, err := util.LoadDirectoryImageFiles(inputDir)
	if err != nil {
		log.Fatalf("Failed to read input directory: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("No images found in %s", inputDir)
	}

	for _, file := range files {
		if err := processFile(file, session, params, outputDir); err != nil {
			log.Fatalf("Failed to process %s: %v", file.Path, err)
		}
	}
}

// processFile runs one image through decode, inference and post-processing,
// then writes each detection's mask raster next to a summary line.
func processFile(file util.ImageFile, session *inference.Session,
	params yoloseg.Params, outputDir string,
) error {
	img, err := images.DecodeImage(file.Data)
	if err != nil {
		return err
	}
	bounds := img.Bounds()

	if err := inference.PrepareInput(img, session.Input(), session.Config().InputSize); err != nil {
		return err
	}
	if err := session.Run(); err != nil {
		return err
	}

	out := session.Outputs()
	proto, err := yoloseg.NewPrototype(out.Prototypes)
	if err != nil {
		return err
	}

	detections := yoloseg.PostProcess(out.Candidates, proto, bounds.Dx(), bounds.Dy(), params)
	fmt.Printf("%s: %d detections\n", file.Path, len(detections))

	base := filepath.Base(file.Path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	for _, d := range detections {
		fmt.Printf("  %s\n", d)

		maskPath := filepath.Join(outputDir, fmt.Sprintf("%s_%d_%s.png", stem, d.ID, d.Label))
		f, err := os.Create(maskPath)
		if err != nil {
			return err
		}
		if err := png.Encode(f, d.Mask); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
