package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultModelName is preferred by DefaultModel when available.
const DefaultModelName = "Original"

const modelDirPrefix = "model_"

// AvailableModels returns the names of every registered model, sorted.
// An empty registry yields an empty slice.
func (r *Registry) AvailableModels() []string {
	return r.Names(CategoryModel)
}

// ScanModelDir lists the subdirectories of dir whose name starts with
// "model_" (any case) and returns them with the prefix removed, sorted.
func ScanModelDir(dir string) ([]string, error) {
	found, err := scanModelDir(dir)
	if err != nil {
		return nil, err
	}
	models := make([]string, 0, len(found))
	for name := range found {
		models = append(models, name)
	}
	sort.Strings(models)
	return models, nil
}

func scanModelDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan model directory: %w", err)
	}

	found := make(map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) <= len(modelDirPrefix) || !strings.EqualFold(name[:len(modelDirPrefix)], modelDirPrefix) {
			continue
		}
		found[name[len(modelDirPrefix):]] = filepath.Join(dir, name)
	}
	return found, nil
}

// RegisterModelDir registers an engine-backed model module for every
// model found in dir that is not registered yet. It returns the names
// it added, sorted.
func RegisterModelDir(r *Registry, eng *Engine, dir string) ([]string, error) {
	found, err := scanModelDir(dir)
	if err != nil {
		return nil, err
	}

	var added []string
	for name, path := range found {
		if r.Has(ModuleName(CategoryModel, name)) {
			continue
		}
		info := ModelInfo{
			Name:        name,
			Description: "External model from " + dir,
			Path:        path,
		}
		if err := r.Register(engineModelModule(eng, info)); err != nil {
			return nil, err
		}
		added = append(added, name)
	}
	sort.Strings(added)
	return added, nil
}

// DefaultModel picks "Original" when present, otherwise the
// lexicographically first model. It returns ErrNoModels for an empty list.
func DefaultModel(models []string) (string, error) {
	if len(models) == 0 {
		return "", ErrNoModels
	}
	for _, m := range models {
		if m == DefaultModelName {
			return m, nil
		}
	}
	sorted := append([]string(nil), models...)
	sort.Strings(sorted)
	return sorted[0], nil
}
