package scripts

import (
	"context"
	"fmt"
	"os"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

type trainScript struct {
	env *Env
}

func (s *trainScript) Process(ctx context.Context, args *dispatchers.ParsedArgs) error {
	inputA := args.String("input_A", "")
	inputB := args.String("input_B", "")

	for _, in := range []struct{ flag, dir string }{
		{"-A/--input-A", inputA},
		{"-B/--input-B", inputB},
	} {
		if err := requireDir(in.flag, in.dir); err != nil {
			return err
		}
		images, err := ListImages(in.dir)
		if err != nil {
			return err
		}
		if len(images) == 0 {
			return usage.InvalidPath(in.dir, "contains no face images ("+in.flag+")")
		}
	}

	modelDir := args.String("model_dir", "")
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}

	name, err := trainerName(s.env, args)
	if err != nil {
		return err
	}

	model, err := s.env.Plugins.Model(name)
	if err != nil {
		return err
	}
	trainer, err := s.env.Plugins.Trainer(name)
	if err != nil {
		return err
	}

	job := &plugins.TrainJob{
		ID:       s.env.NewID(),
		InputA:   inputA,
		InputB:   inputB,
		ModelDir: modelDir,
		Options:  args.Map(),
	}

	_, _ = fmt.Fprintf(s.env.Out, "Training %s model in %s\n", name, modelDir)
	if err := trainer.Train(ctx, model, job); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	_, _ = fmt.Fprintln(s.env.Out, "Training finished")
	return nil
}

// trainerName returns --trainer, falling back to the default model.
func trainerName(env *Env, args *dispatchers.ParsedArgs) (string, error) {
	if name := args.String("trainer", ""); name != "" {
		return name, nil
	}
	return plugins.DefaultModel(env.Plugins.AvailableModels())
}
