package actions

import (
	goruntime "runtime"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
)

func ShowVersion(args []string, flags *dispatchers.ParsedArgs) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedArgs, deps actionDependencies) error {
	_, _ = deps.Printf("faceswap version %s (%s/%s)\n", deps.Version(), goruntime.GOOS, goruntime.GOARCH)
	return nil
}
