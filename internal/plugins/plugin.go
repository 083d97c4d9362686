package plugins

import "context"

// Extractor detects and aligns faces in a set of frames.
type Extractor interface {
	Extract(ctx context.Context, job *ExtractJob) error
}

// Converter composites swapped faces back into frames.
type Converter interface {
	Convert(ctx context.Context, job *ConvertJob) error
}

// Model describes a trainable face model.
type Model interface {
	Info() ModelInfo
}

// Trainer trains a model on two face sets.
type Trainer interface {
	Train(ctx context.Context, model Model, job *TrainJob) error
}

// ModelInfo is the static description of a model plugin.
type ModelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSize   int    `json:"input_size"`
	Path        string `json:"path,omitempty"`
}

// FrameRange is an inclusive range of frame numbers.
type FrameRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether frame n falls inside the range.
func (r FrameRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// ExtractJob is the work handed to an extractor.
type ExtractJob struct {
	ID         string         `json:"id"`
	InputDir   string         `json:"input_dir"`
	OutputDir  string         `json:"output_dir"`
	Frames     []string       `json:"frames"`
	Alignments string         `json:"alignments"`
	Serializer string         `json:"serializer"`
	Detector   string         `json:"detector"`
	Options    map[string]any `json:"options"`
}

// TrainJob is the work handed to a trainer.
type TrainJob struct {
	ID       string         `json:"id"`
	InputA   string         `json:"input_a"`
	InputB   string         `json:"input_b"`
	ModelDir string         `json:"model_dir"`
	Options  map[string]any `json:"options"`
}

// ConvertJob is the work handed to a converter.
type ConvertJob struct {
	ID          string         `json:"id"`
	InputDir    string         `json:"input_dir"`
	OutputDir   string         `json:"output_dir"`
	AlignedDir  string         `json:"aligned_dir,omitempty"`
	ModelDir    string         `json:"model_dir"`
	Model       ModelInfo      `json:"model"`
	Trainer     string         `json:"trainer"`
	Frames      []string       `json:"frames"`
	FrameRanges []FrameRange   `json:"frame_ranges,omitempty"`
	Alignments  string         `json:"alignments"`
	Serializer  string         `json:"serializer"`
	Options     map[string]any `json:"options"`
}
