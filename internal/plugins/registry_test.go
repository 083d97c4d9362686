package plugins

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/engine"
)

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer, *engine.RecordingRunner) {
	t.Helper()
	var diag bytes.Buffer
	runner := &engine.RecordingRunner{}
	r := NewRegistry(WithDiagnostics(&diag))
	require.NoError(t, RegisterBuiltins(r, &Engine{Runner: runner, Path: "faceswap-engine"}))
	return r, &diag, runner
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		category Category
		name     string
		module   string
		symbol   string
	}{
		{CategoryExtractor, "hog", "Extract_hog", "Extract"},
		{CategoryConverter, "Masked", "Convert_Masked", "Convert"},
		{CategoryModel, "Original", "Model_Original", "Model"},
		{CategoryTrainer, "Original", "Model_Original", "Trainer"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			require.Equal(t, tt.module, ModuleName(tt.category, tt.name))
			require.Equal(t, tt.symbol, Symbol(tt.category))
		})
	}
}

func TestResolve_Builtins(t *testing.T) {
	r, diag, _ := newTestRegistry(t)

	e, err := r.Extractor("hog")
	require.NoError(t, err)
	require.NotNil(t, e)

	c, err := r.Converter("Masked")
	require.NoError(t, err)
	require.NotNil(t, c)

	m, err := r.Model("Original")
	require.NoError(t, err)
	require.Equal(t, "Original", m.Info().Name)

	tr, err := r.Trainer("Original")
	require.NoError(t, err)
	require.NotNil(t, tr)

	require.Equal(t,
		"Loading Extract from Extract_hog plugin...\n"+
			"Loading Convert from Convert_Masked plugin...\n"+
			"Loading Model from Model_Original plugin...\n"+
			"Loading Trainer from Model_Original plugin...\n",
		diag.String())
}

func TestResolve_NotFound(t *testing.T) {
	r, diag, _ := newTestRegistry(t)

	_, err := r.Extractor("mtcnn")
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, CategoryExtractor, nf.Category)
	require.Equal(t, "mtcnn", nf.Name)
	require.Equal(t, "Extract_mtcnn", nf.Module)
	require.Equal(t, ResolutionExitCode, nf.GetExitCode())
	require.Empty(t, diag.String())
}

func TestResolve_MissingSymbol(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{
		Name:    "Model_Broken",
		Exports: map[string]Factory{"Model": func() any { return &engineModel{} }},
	}))
	before := r.AvailableModels()

	_, err := r.Trainer("Broken")
	var le *LoadError
	require.True(t, errors.As(err, &le))
	require.Equal(t, "Model_Broken", le.Module)
	require.Equal(t, "Trainer", le.Symbol)
	require.Equal(t, ResolutionExitCode, le.GetExitCode())

	require.Equal(t, before, r.AvailableModels())
}

func TestResolve_WrongType(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Module{
		Name:    "Extract_fake",
		Exports: map[string]Factory{"Extract": func() any { return "not an extractor" }},
	}))

	_, err := r.Extractor("fake")
	var le *LoadError
	require.True(t, errors.As(err, &le))
	require.Contains(t, le.Error(), "unexpected type")
}

func TestResolve_UnknownCategory(t *testing.T) {
	_, err := NewRegistry().Resolve(Category("detector"), "hog")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown category")
}

func TestRegister_Duplicate(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	err := r.Register(Module{Name: "Extract_hog"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")

	require.Error(t, r.Register(Module{}))
}

func TestNames(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	require.Equal(t, []string{"all", "cnn", "hog"}, r.Names(CategoryExtractor))
	require.Equal(t, []string{"Adjust", "Masked"}, r.Names(CategoryConverter))
	require.Equal(t, []string{"GAN", "IAE", "LowMem", "Original"}, r.AvailableModels())
	require.Equal(t, r.AvailableModels(), r.Names(CategoryTrainer))
	require.Nil(t, r.Names(Category("bogus")))
}

func TestAvailableModels_Empty(t *testing.T) {
	require.NotPanics(t, func() {
		require.Empty(t, NewRegistry().AvailableModels())
	})
}

func TestDefaultModel(t *testing.T) {
	tests := []struct {
		name    string
		models  []string
		want    string
		wantErr error
	}{
		{"prefers Original", []string{"GAN", "Original", "IAE"}, "Original", nil},
		{"falls back to sorted first", []string{"LowMem", "GAN"}, "GAN", nil},
		{"single", []string{"IAE"}, "IAE", nil},
		{"empty", nil, "", ErrNoModels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultModel(tt.models)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScanModelDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"model_Original", "Model_GAN", "MODEL_IAE", "model_", "other", "modelx"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model_file"), nil, 0644))

	got, err := ScanModelDir(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"GAN", "IAE", "Original"}, got)

	empty, err := ScanModelDir(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = ScanModelDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestRegisterModelDir(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	dir := t.TempDir()
	for _, name := range []string{"model_Original", "model_Villain"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}

	added, err := RegisterModelDir(r, &Engine{}, dir)
	require.NoError(t, err)
	require.Equal(t, []string{"Villain"}, added)
	require.Contains(t, r.AvailableModels(), "Villain")

	m, err := r.Model("Villain")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "model_Villain"), m.Info().Path)

	original, err := r.Model("Original")
	require.NoError(t, err)
	require.Empty(t, original.Info().Path)
}

func TestEnginePlugins_SubmitJobs(t *testing.T) {
	r, _, runner := newTestRegistry(t)
	ctx := context.Background()

	e, err := r.Extractor("cnn")
	require.NoError(t, err)
	require.NoError(t, e.Extract(ctx, &ExtractJob{ID: "job-1", InputDir: "/in", Frames: []string{"1.png"}}))

	call, ok := runner.Last()
	require.True(t, ok)
	require.Equal(t, "faceswap-engine", call.Tool)
	require.Equal(t, []string{"extract", "cnn"}, call.Args)

	var req struct {
		Verb   string     `json:"verb"`
		Plugin string     `json:"plugin"`
		Job    ExtractJob `json:"job"`
	}
	require.NoError(t, json.Unmarshal(call.Stdin, &req))
	require.Equal(t, "extract", req.Verb)
	require.Equal(t, "job-1", req.Job.ID)
	require.Equal(t, []string{"1.png"}, req.Job.Frames)

	model, err := r.Model("GAN")
	require.NoError(t, err)
	trainer, err := r.Trainer("GAN")
	require.NoError(t, err)
	require.NoError(t, trainer.Train(ctx, model, &TrainJob{ID: "job-2"}))

	call, _ = runner.Last()
	require.Equal(t, []string{"train", "GAN"}, call.Args)
	require.Contains(t, string(call.Stdin), `"name":"GAN"`)

	conv, err := r.Converter("Adjust")
	require.NoError(t, err)
	require.NoError(t, conv.Convert(ctx, &ConvertJob{ID: "job-3", FrameRanges: []FrameRange{{Start: 1, End: 5}}}))
	call, _ = runner.Last()
	require.Equal(t, []string{"convert", "Adjust"}, call.Args)
	require.Contains(t, string(call.Stdin), `"frame_ranges":[{"start":1,"end":5}]`)
}

func TestEnginePlugins_NoRunner(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterBuiltins(r, nil))

	e, err := r.Extractor("hog")
	require.NoError(t, err)
	err = e.Extract(context.Background(), &ExtractJob{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no engine configured")
}

func TestFrameRange_Contains(t *testing.T) {
	fr := FrameRange{Start: 10, End: 20}
	require.True(t, fr.Contains(10))
	require.True(t, fr.Contains(20))
	require.False(t, fr.Contains(9))
	require.False(t, fr.Contains(21))
}
