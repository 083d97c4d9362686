package scripts

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/alignments"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

const frameRangesFlag = "-fr/--frame-ranges"

type convertScript struct {
	env *Env
}

func (s *convertScript) Process(ctx context.Context, args *dispatchers.ParsedArgs) error {
	inputDir := args.String("input_dir", "")
	if err := requireDir("-i/--input-dir", inputDir); err != nil {
		return err
	}
	modelDir := args.String("model_dir", "")
	if err := requireDir("-m/--model-dir", modelDir); err != nil {
		return err
	}
	alignedDir := args.String("input_aligned_dir", "")
	if alignedDir != "" {
		if err := requireDir("-a/--input-aligned-dir", alignedDir); err != nil {
			return err
		}
	}

	ranges, err := ParseFrameRanges(args.Strings("frame_ranges"))
	if err != nil {
		return err
	}

	frames, err := ListImages(inputDir)
	if err != nil {
		return err
	}
	if len(ranges) > 0 && args.Bool("discard_frames") {
		frames = framesInRanges(frames, ranges)
	}
	if len(frames) == 0 {
		_, _ = fmt.Fprintf(s.env.Out, "No frames to convert in %s\n", inputDir)
		return nil
	}

	serializer := args.String("serializer", alignments.JSON)
	alignPath, err := alignmentsPath(args, inputDir, serializer)
	if err != nil {
		return err
	}
	if _, err := os.Stat(alignPath); err != nil {
		return usage.InvalidPath(alignPath, "alignments file not found, run extract first")
	}

	outputDir := args.String("output_dir", "")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	name, err := trainerName(s.env, args)
	if err != nil {
		return err
	}
	model, err := s.env.Plugins.Model(name)
	if err != nil {
		return err
	}
	// A model module without a trainer cannot have produced weights.
	if _, err := s.env.Plugins.Trainer(name); err != nil {
		return err
	}

	converterName := args.String("converter", "Masked")
	converter, err := s.env.Plugins.Converter(converterName)
	if err != nil {
		return err
	}

	job := &plugins.ConvertJob{
		ID:          s.env.NewID(),
		InputDir:    inputDir,
		OutputDir:   outputDir,
		AlignedDir:  alignedDir,
		ModelDir:    modelDir,
		Model:       model.Info(),
		Trainer:     name,
		Frames:      frames,
		FrameRanges: ranges,
		Alignments:  alignPath,
		Serializer:  serializer,
		Options:     args.Map(),
	}

	_, _ = fmt.Fprintf(s.env.Out, "Converting %d frames with %s model and %s converter\n", len(frames), name, converterName)
	if err := converter.Convert(ctx, job); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	_, _ = fmt.Fprintf(s.env.Out, "Converted frames written to %s\n", outputDir)
	return nil
}

// ParseFrameRanges parses "start-end" values such as "10-20".
func ParseFrameRanges(values []string) ([]plugins.FrameRange, error) {
	var ranges []plugins.FrameRange
	for _, v := range values {
		start, end, ok := strings.Cut(strings.TrimSpace(v), "-")
		if !ok {
			return nil, usage.InvalidValue(frameRangesFlag, "frame range", v)
		}
		a, errA := strconv.Atoi(start)
		b, errB := strconv.Atoi(end)
		if errA != nil || errB != nil || a < 0 || b < a {
			return nil, usage.InvalidValue(frameRangesFlag, "frame range", v)
		}
		ranges = append(ranges, plugins.FrameRange{Start: a, End: b})
	}
	return ranges, nil
}

// framesInRanges keeps frames whose number falls in any range. Frames
// without a number cannot be placed and are dropped.
func framesInRanges(frames []string, ranges []plugins.FrameRange) []string {
	var kept []string
	for _, f := range frames {
		n, ok := frameNumber(f)
		if !ok {
			continue
		}
		for _, r := range ranges {
			if r.Contains(n) {
				kept = append(kept, f)
				break
			}
		}
	}
	return kept
}
