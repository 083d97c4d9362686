package scripts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/alignments"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ListImages returns the image file names directly inside dir, sorted.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, entry.Name())
		}
	}
	sort.Strings(images)
	return images, nil
}

// requireDir returns a usage error unless path is an existing directory.
func requireDir(flag, path string) error {
	if path == "" {
		return usage.RequiredFlag(flag)
	}
	info, err := os.Stat(path)
	if err != nil {
		return usage.InvalidPath(path, "directory does not exist ("+flag+")")
	}
	if !info.IsDir() {
		return usage.InvalidPath(path, "not a directory ("+flag+")")
	}
	return nil
}

// alignmentsPath returns --alignments or the serializer's default file
// inside inputDir.
func alignmentsPath(args *dispatchers.ParsedArgs, inputDir, serializer string) (string, error) {
	if p := args.String("alignments_path", ""); p != "" {
		return p, nil
	}
	return alignments.DefaultPath(inputDir, serializer)
}

// frameNumber extracts the trailing number of a frame file name, so
// "frame_0012.png" is frame 12.
func frameNumber(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	end := len(base)
	start := end
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.Atoi(base[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
