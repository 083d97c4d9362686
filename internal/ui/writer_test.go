package ui

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type pagerCall struct {
	name    string
	args    []string
	content string
}

func newTTYWriter(buf *bytes.Buffer, calls *[]pagerCall, pagerErr error, opts ...WriterOption) *Writer {
	w := NewWriterTo(buf, opts...)
	w.isTerminal = func(io.Writer) bool { return true }
	w.runPager = func(name string, args []string, content string, _ io.Writer) error {
		*calls = append(*calls, pagerCall{name: name, args: args, content: content})
		return pagerErr
	}
	return w
}

func TestWriter_PagerCommand(t *testing.T) {
	env := func(pager string) func(string) string {
		return func(key string) string {
			if key == "PAGER" {
				return pager
			}
			return ""
		}
	}
	cfg := func(pager string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			if key == "pager" {
				return pager, true
			}
			return "", false
		}
	}

	tests := []struct {
		name string
		opts []WriterOption
		want []string
	}{
		{"default", []WriterOption{WithEnvGetter(env(""))}, []string{"less", "-FRSX"}},
		{"env", []WriterOption{WithEnvGetter(env("more"))}, []string{"more"}},
		{"config beats env", []WriterOption{WithEnvGetter(env("more")), WithConfigGetter(cfg("most -s"))}, []string{"most", "-s"}},
		{"flag beats config", []WriterOption{WithConfigGetter(cfg("most")), WithPagerOverride("less -R")}, []string{"less", "-R"}},
		{"cat bypasses", []WriterOption{WithPagerOverride("cat")}, nil},
		{"blank config falls through", []WriterOption{WithConfigGetter(cfg("")), WithEnvGetter(env("more"))}, []string{"more"}},
		{"disabled", []WriterOption{WithPagerDisabled(), WithPagerOverride("less")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []pagerCall
			w := newTTYWriter(&bytes.Buffer{}, &calls, nil, tt.opts...)
			require.Equal(t, tt.want, w.PagerCommand())
		})
	}
}

func TestWriter_PagerNotTTY(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerOverride("less"))
	require.Nil(t, w.PagerCommand())

	w.Pager("help text\n")
	require.Equal(t, "help text\n", buf.String())
}

func TestWriter_PagerRuns(t *testing.T) {
	var (
		buf   bytes.Buffer
		calls []pagerCall
	)
	w := newTTYWriter(&buf, &calls, nil, WithPagerOverride("less -R"))

	w.Pager("content")
	require.Len(t, calls, 1)
	require.Equal(t, pagerCall{name: "less", args: []string{"-R"}, content: "content"}, calls[0])
	require.Empty(t, buf.String())
}

func TestWriter_PagerFallsBack(t *testing.T) {
	var (
		buf   bytes.Buffer
		calls []pagerCall
	)
	w := newTTYWriter(&buf, &calls, errors.New("not found"), WithPagerOverride("nope"))

	w.Pager("content")
	require.Len(t, calls, 1)
	require.Equal(t, "content", buf.String())
}

func TestWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "epochs", 10)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)
	require.Equal(t, "epochs=10\ndone\n", buf.String())
}

func TestDefaultWriter(t *testing.T) {
	t.Cleanup(func() { Configure(nil) })

	require.NotNil(t, Default())

	var buf bytes.Buffer
	Configure(NewWriterTo(&buf))
	Pager("paged\n")
	_, _ = Printf("%d", 1)
	_, _ = Println()
	require.Equal(t, "paged\n1\n", buf.String())
}
