package scripts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/config"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

type framesScript struct {
	env *Env
}

// Process splits a video into numbered images with ffmpeg. Images already
// in the output directory are removed first; other files are left alone.
func (s *framesScript) Process(ctx context.Context, args *dispatchers.ParsedArgs) error {
	input := args.String("input_file", "")
	if input == "" {
		return usage.RequiredFlag("-i/--input-file")
	}
	info, err := os.Stat(input)
	if err != nil {
		return usage.InvalidPath(input, "video file does not exist")
	}
	if info.IsDir() {
		return usage.InvalidPath(input, "is a directory, expected a video file")
	}

	outputDir, err := filepath.Abs(args.String("output_dir", ""))
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	if err := checkFramesDir(outputDir, input); err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := clearImages(outputDir); err != nil {
		return err
	}

	format := args.String("format", "png")
	ffmpeg := config.String(s.env.Config, "ffmpeg_path", "ffmpeg")
	ffmpegArgs := []string{"-i", input, filepath.Join(outputDir, "%d."+format)}

	_, _ = fmt.Fprintf(s.env.Out, "Writing frames of %s to %s\n", filepath.Base(input), outputDir)
	if err := s.env.Runner.Run(ctx, ffmpeg, ffmpegArgs, nil); err != nil {
		return fmt.Errorf("frames: %w", err)
	}

	frames, err := ListImages(outputDir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.env.Out, "Wrote %d frames\n", len(frames))
	return nil
}

// checkFramesDir refuses output directories that are, or enclose, the
// video's directory, the working directory or the home directory.
func checkFramesDir(outputDir, input string) error {
	protected := map[string]string{}
	if abs, err := filepath.Abs(input); err == nil {
		protected[filepath.Dir(abs)] = "contains the input video"
	}
	if wd, err := os.Getwd(); err == nil {
		protected[wd] = "contains the working directory"
	}
	if home, err := os.UserHomeDir(); err == nil {
		protected[home] = "contains the home directory"
	}

	out := resolvePath(outputDir)
	for dir, reason := range protected {
		if encloses(out, resolvePath(dir)) {
			return usage.InvalidPath(outputDir, "refusing to write frames here: it "+reason+" (-o/--output-dir)")
		}
	}
	return nil
}

// encloses reports whether path is dir or one of its ancestors.
func encloses(path, dir string) bool {
	rel, err := filepath.Rel(path, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolvePath follows symlinks of the longest existing prefix of path.
func resolvePath(path string) string {
	path = filepath.Clean(path)
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(resolvePath(parent), filepath.Base(path))
}

// clearImages deletes the image files directly inside dir.
func clearImages(dir string) error {
	images, err := ListImages(dir)
	if err != nil {
		return err
	}
	for _, name := range images {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("clear output directory: %w", err)
		}
	}
	return nil
}
