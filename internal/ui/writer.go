package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/faceswap-tools/faceswap/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	isTerminal    func(io.Writer) bool
	runPager      func(name string, args []string, content string, out io.Writer) error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager (--no-pager).
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets the pager for this invocation (--pager).
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets where the `pager` config key is read from.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment lookup used for $PAGER.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter returns a Writer on stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo returns a Writer on out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: isTerminal,
		runPager:   execPager,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// PagerCommand returns the pager to run, or nil when content should be
// printed directly.
//
// Precedence:
//  1. --no-pager → direct output
//  2. output not a TTY → direct output
//  3. --pager=<cmd>
//  4. `pager` config key
//  5. $PAGER
//  6. less -FRSX
//
// A pager of "cat" (or an empty command) always means direct output.
func (w *Writer) PagerCommand() []string {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		return nil
	}

	candidate := "less -FRSX"
	switch {
	case w.pagerOverride != "":
		candidate = w.pagerOverride
	case w.configValue("pager") != "":
		candidate = w.configValue("pager")
	case w.envGetter != nil && w.envGetter("PAGER") != "":
		candidate = w.envGetter("PAGER")
	}

	parts := strings.Fields(candidate)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

func (w *Writer) configValue(key string) string {
	if w.configGetter == nil {
		return ""
	}
	v, _ := w.configGetter(key)
	return v
}

// Pager displays content through the selected pager, falling back to
// direct output if the pager cannot run.
func (w *Writer) Pager(content string) {
	cmd := w.PagerCommand()
	if cmd == nil {
		_, _ = fmt.Fprint(w.out, content)
		return
	}
	if err := w.runPager(cmd[0], cmd[1:], content, w.out); err != nil {
		_, _ = fmt.Fprint(w.out, content)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func execPager(name string, args []string, content string, out io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.OutputWriter = (*Writer)(nil)
