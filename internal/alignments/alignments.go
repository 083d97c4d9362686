// Package alignments reads the per-frame face alignment files written by
// the extract step.
//
// An alignments file maps a frame file name to the faces found in it.
// Only the set of frame names matters to the front-end; face payloads are
// kept opaque for the engine.
package alignments

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Serializer names accepted by --serializer.
const (
	JSON   = "json"
	Pickle = "pickle"
	YAML   = "yaml"
)

// ErrUnsupportedSerializer is returned for serializers that can be
// selected but not read by this front-end.
var ErrUnsupportedSerializer = errors.New("alignments: serializer not supported")

// Serializers lists every name accepted on the command line.
func Serializers() []string {
	return []string{JSON, Pickle, YAML}
}

var extensions = map[string]string{
	JSON:   "json",
	Pickle: "p",
	YAML:   "yml",
}

// Extension returns the file extension used by a serializer.
func Extension(serializer string) (string, error) {
	ext, ok := extensions[serializer]
	if !ok {
		return "", fmt.Errorf("alignments: unknown serializer %q", serializer)
	}
	return ext, nil
}

// DefaultPath returns <inputDir>/alignments.<ext>.
func DefaultPath(inputDir, serializer string) (string, error) {
	ext, err := Extension(serializer)
	if err != nil {
		return "", err
	}
	return filepath.Join(inputDir, "alignments."+ext), nil
}

// Face is one detected face. Fields beyond the bounding box are passed
// through untouched.
type Face struct {
	X      int            `json:"x" yaml:"x"`
	Y      int            `json:"y" yaml:"y"`
	W      int            `json:"w" yaml:"w"`
	H      int            `json:"h" yaml:"h"`
	Extras map[string]any `json:"-" yaml:",inline"`
}

// File is the decoded content of an alignments file.
type File map[string][]Face

// Frames returns the frame names present in the file, sorted.
func (f File) Frames() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode parses data with the named serializer.
func Decode(data []byte, serializer string) (File, error) {
	file := File{}
	var err error

	switch serializer {
	case JSON:
		err = json.Unmarshal(data, &file)
	case YAML:
		err = yaml.Unmarshal(data, &file)
	case Pickle:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSerializer, serializer)
	default:
		return nil, fmt.Errorf("alignments: unknown serializer %q", serializer)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s alignments: %w", serializer, err)
	}
	return file, nil
}

// Load reads path with the named serializer and returns the set of frame
// names it contains.
func Load(path, serializer string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alignments: %w", err)
	}

	file, err := Decode(data, serializer)
	if err != nil {
		return nil, err
	}

	frames := make(map[string]struct{}, len(file))
	for name := range file {
		frames[name] = struct{}{}
	}
	return frames, nil
}
