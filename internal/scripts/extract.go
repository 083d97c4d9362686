package scripts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/faceswap-tools/faceswap/internal/alignments"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/plugins"
)

type extractScript struct {
	env *Env
}

func (s *extractScript) Process(ctx context.Context, args *dispatchers.ParsedArgs) error {
	inputDir := args.String("input_dir", "")
	if err := requireDir("-i/--input-dir", inputDir); err != nil {
		return err
	}
	outputDir := args.String("output_dir", "")

	frames, err := ListImages(inputDir)
	if err != nil {
		return err
	}

	serializer := args.String("serializer", alignments.JSON)
	alignPath, err := alignmentsPath(args, inputDir, serializer)
	if err != nil {
		return err
	}

	if args.Bool("skip_existing") {
		frames, err = s.skipExisting(frames, alignPath, serializer)
		if err != nil {
			return err
		}
	}

	if len(frames) == 0 {
		_, _ = fmt.Fprintf(s.env.Out, "No frames to process in %s\n", inputDir)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	detector := args.String("detector", "hog")
	extractor, err := s.env.Plugins.Extractor(detector)
	if err != nil {
		return err
	}

	job := &plugins.ExtractJob{
		ID:         s.env.NewID(),
		InputDir:   inputDir,
		OutputDir:  outputDir,
		Frames:     frames,
		Alignments: alignPath,
		Serializer: serializer,
		Detector:   detector,
		Options:    args.Map(),
	}

	_, _ = fmt.Fprintf(s.env.Out, "Extracting faces from %d frames with %s detector\n", len(frames), detector)
	if args.Bool("verbose") {
		_, _ = fmt.Fprintf(s.env.Out, "  job %s, alignments %s\n", job.ID, alignPath)
	}

	if err := extractor.Extract(ctx, job); err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	_, _ = fmt.Fprintf(s.env.Out, "Faces written to %s\n", outputDir)
	return nil
}

// skipExisting drops frames already present in the alignments file.
// A missing alignments file means nothing was extracted yet.
func (s *extractScript) skipExisting(frames []string, path, serializer string) ([]string, error) {
	done, err := alignments.Load(path, serializer)
	if errors.Is(err, fs.ErrNotExist) {
		s.env.Logger.Info("scripts: no alignments at %s, processing every frame", path)
		return frames, nil
	}
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(frames))
	for _, f := range frames {
		if _, ok := done[f]; !ok {
			remaining = append(remaining, f)
		}
	}

	if skipped := len(frames) - len(remaining); skipped > 0 {
		_, _ = fmt.Fprintf(s.env.Out, "Skipping %d frames already in %s\n", skipped, path)
	}
	return remaining, nil
}
