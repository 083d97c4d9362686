package plugins

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/faceswap-tools/faceswap/internal/engine"
)

// Engine submits plugin jobs to the external engine executable. Each job
// is written as JSON to the engine's stdin and the engine is invoked as
// `<path> <verb> <plugin>`.
type Engine struct {
	Runner engine.Runner
	Path   string
}

type request struct {
	Verb   string     `json:"verb"`
	Plugin string     `json:"plugin"`
	Model  *ModelInfo `json:"model,omitempty"`
	Job    any        `json:"job"`
}

func (e *Engine) submit(ctx context.Context, req request) error {
	if e == nil || e.Runner == nil {
		return fmt.Errorf("plugins: no engine configured for %s %s", req.Verb, req.Plugin)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode %s job: %w", req.Verb, err)
	}
	return e.Runner.Run(ctx, e.Path, []string{req.Verb, req.Plugin}, bytes.NewReader(payload))
}

type engineExtractor struct {
	eng  *Engine
	name string
}

func (p *engineExtractor) Extract(ctx context.Context, job *ExtractJob) error {
	return p.eng.submit(ctx, request{Verb: "extract", Plugin: p.name, Job: job})
}

type engineConverter struct {
	eng  *Engine
	name string
}

func (p *engineConverter) Convert(ctx context.Context, job *ConvertJob) error {
	return p.eng.submit(ctx, request{Verb: "convert", Plugin: p.name, Job: job})
}

type engineModel struct {
	info ModelInfo
}

func (m *engineModel) Info() ModelInfo { return m.info }

type engineTrainer struct {
	eng  *Engine
	name string
}

func (t *engineTrainer) Train(ctx context.Context, model Model, job *TrainJob) error {
	info := model.Info()
	return t.eng.submit(ctx, request{Verb: "train", Plugin: t.name, Model: &info, Job: job})
}

// BuiltinExtractors are the face detectors shipped with faceswap.
var BuiltinExtractors = []string{"hog", "cnn", "all"}

// BuiltinConverters are the compositing strategies shipped with faceswap.
var BuiltinConverters = []string{"Masked", "Adjust"}

// BuiltinModels describes the models shipped with faceswap.
var BuiltinModels = []ModelInfo{
	{Name: "Original", Description: "Shared encoder with one decoder per face", InputSize: 64},
	{Name: "LowMem", Description: "Original with a smaller encoder for low-memory GPUs", InputSize: 64},
	{Name: "IAE", Description: "Intermediate autoencoder with shared and split layers", InputSize: 64},
	{Name: "GAN", Description: "Adversarial model with a discriminator per face", InputSize: 64},
}

func engineModelModule(eng *Engine, info ModelInfo) Module {
	name := info.Name
	return Module{
		Name: ModuleName(CategoryModel, name),
		Exports: map[string]Factory{
			Symbol(CategoryModel):   func() any { return &engineModel{info: info} },
			Symbol(CategoryTrainer): func() any { return &engineTrainer{eng: eng, name: name} },
		},
	}
}

// RegisterBuiltins registers every built-in plugin backed by eng.
func RegisterBuiltins(r *Registry, eng *Engine) error {
	var modules []Module

	for _, name := range BuiltinExtractors {
		modules = append(modules, Module{
			Name: ModuleName(CategoryExtractor, name),
			Exports: map[string]Factory{
				Symbol(CategoryExtractor): func() any { return &engineExtractor{eng: eng, name: name} },
			},
		})
	}
	for _, name := range BuiltinConverters {
		modules = append(modules, Module{
			Name: ModuleName(CategoryConverter, name),
			Exports: map[string]Factory{
				Symbol(CategoryConverter): func() any { return &engineConverter{eng: eng, name: name} },
			},
		})
	}
	for _, info := range BuiltinModels {
		modules = append(modules, engineModelModule(eng, info))
	}

	for _, m := range modules {
		if err := r.Register(m); err != nil {
			return err
		}
	}
	return nil
}
