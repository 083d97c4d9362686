package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/faceswap-tools/faceswap/internal/completions"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/ui"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

type Deps struct {
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Out     io.Writer
	Shell   func() completions.Shell
	Binary  func() string
	Home    func() (string, error)
}

func DefaultDeps() Deps {
	return Deps{
		Printf:  ui.Printf,
		Println: ui.Println,
		Out:     os.Stdout,
		Shell:   completions.RunningShell,
		Binary:  completions.BinaryName,
		Home:    os.UserHomeDir,
	}
}

// Action prints installation instructions, or the script itself with
// --script, for the tree rooted at root.
func Action(root *dispatchers.DispatchNode) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedArgs) error {
		return run(root, args, flags, DefaultDeps())
	}
}

func run(root *dispatchers.DispatchNode, args []string, flags *dispatchers.ParsedArgs, deps Deps) error {
	var shell completions.Shell
	if len(args) > 0 {
		shell = completions.Shell(args[0])
	} else {
		shell = deps.Shell()
		if shell == "" {
			return usage.MissingArgument("shell")
		}
	}

	switch shell {
	case completions.ShellBash, completions.ShellZsh, completions.ShellFish:
	default:
		suggestions := dispatchers.FindSimilar(string(shell), completions.Shells(), 1)
		return usage.InvalidChoice("shell", string(shell), completions.Shells(), suggestions...)
	}

	bin := deps.Binary()
	if flags.Bool("script") {
		script, err := completions.Generate(shell, bin, completions.ExtractCommands(root))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(deps.Out, script)
		return err
	}

	printInstructions(shell, bin, deps)
	return nil
}

func printInstructions(shell completions.Shell, bin string, deps Deps) {
	home, _ := deps.Home()
	autoPath := completions.AutoInstallPath(shell, bin, home)

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	option := 1
	if autoPath != "" {
		_, _ = deps.Printf("%d. Write to auto-load directory:\n", option)
		_, _ = deps.Printf("   %s completions %s --script > %s\n", bin, shell, autoPath)
		_, _ = deps.Println()
		option++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", option, completions.RcFile(shell))
	_, _ = deps.Printf("   %s\n", completions.SourceInstructions(shell, bin))
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
