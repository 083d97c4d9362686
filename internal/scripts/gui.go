package scripts

import (
	"context"
	"fmt"

	"github.com/faceswap-tools/faceswap/internal/config"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
)

type guiScript struct {
	env *Env
}

// Process checks for a display, then hands over to the engine's GUI.
func (s *guiScript) Process(ctx context.Context, args *dispatchers.ParsedArgs) error {
	if err := s.env.Display(); err != nil {
		return err
	}

	enginePath := config.String(s.env.Config, "engine_path", "faceswap-engine")
	engineArgs := []string{"gui"}
	if args.Bool("debug") {
		engineArgs = append(engineArgs, "--debug")
	}

	s.env.Logger.Info("scripts: launching GUI via %s", enginePath)
	if err := s.env.Runner.Run(ctx, enginePath, engineArgs, nil); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
