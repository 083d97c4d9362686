package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/faceswap-tools/faceswap/internal/actions"
	"github.com/faceswap-tools/faceswap/internal/actions/help"
	"github.com/faceswap-tools/faceswap/internal/app"
	"github.com/faceswap-tools/faceswap/internal/cli"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/scripts"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], app.DefaultOptions(), os.Stderr))
}

func run(argv []string, opts app.Options, stderr io.Writer) int {
	rt, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(stderr, "faceswap: error: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(rt) }()

	actions.Configure(rt)
	scripts.Configure(nil, rt.ScriptEnv())

	root := cli.BuildTree(rt.Plugins.AvailableModels())
	dispatchers.SetInteractiveBrowserFunc(help.Browser(root))

	res, err := dispatchers.Dispatch(root, argv)
	rt.ConfigureOutput(outputOptions(opts, res.Flags))
	if err != nil {
		return report(stderr, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(stderr, err)
	}

	// Non-zero when no command was given
	return res.ExitCode
}

// outputOptions applies the global output flags on top of opts. Styling
// needs a terminal on stdout.
func outputOptions(opts app.Options, flags *dispatchers.ParsedArgs) app.Options {
	opts.StyleEnabled = opts.StyleEnabled && term.IsTerminal(int(os.Stdout.Fd())) && !flags.Bool("no_color")
	if flags.Bool("no_pager") {
		opts.PagerDisabled = true
	}
	if pager := flags.String("pager", ""); pager != "" {
		opts.PagerOverride = pager
	}
	return opts
}

// report prints err the way argparse does for usage errors: the full help
// of the offending command, then "prog: error: message".
func report(stderr io.Writer, err error) int {
	if ue, ok := usage.AsError(err); ok {
		if ue.Help != "" {
			fmt.Fprint(stderr, ue.Help)
		}
		fmt.Fprintln(stderr, ue.Error())
		return usage.ExitCode(err)
	}
	fmt.Fprintf(stderr, "faceswap: error: %v\n", err)
	var hint interface{ Remediation() string }
	if errors.As(err, &hint) {
		fmt.Fprintln(stderr, hint.Remediation())
	}
	return usage.ExitCode(err)
}
