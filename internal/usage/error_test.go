package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type codedError struct{ code int }

func (e codedError) Error() string    { return "coded" }
func (e codedError) GetExitCode() int { return e.code }

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "invalid flag", err: InvalidFlag("--nope"), want: 2},
		{name: "missing value", err: MissingValue("-i", "<dir>"), want: 2},
		{name: "invalid value", err: InvalidValue("-g", "int", "two"), want: 2},
		{name: "invalid choice", err: InvalidChoice("-D", "dlib", []string{"hog", "cnn"}), want: 2},
		{name: "unexpected argument", err: UnexpectedArgument("now"), want: 2},
		{name: "missing argument", err: MissingArgument("key"), want: 2},
		{name: "required flag", err: RequiredFlag("-i/--input-file"), want: 2},
		{name: "unknown command", err: UnknownCommand("extrct"), want: 2},
		{name: "invalid path", err: InvalidPath("/nope", "does not exist"), want: 2},
		{name: "invalid config key", err: InvalidConfigKey("colour"), want: 1},
		{name: "explicit override", err: &Error{Kind: ErrInvalidFlag, ExitCode: 5}, want: 5},
		{name: "wrapped usage error", err: fmt.Errorf("extract: %w", InvalidPath("/x", "bad")), want: 2},
		{name: "exit coder", err: codedError{code: 3}, want: 3},
		{name: "plain error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	err := InvalidChoice("-t", "Orignal", []string{"IAE", "Original"}, "Original")
	require.Equal(t, "faceswap: error: flag '-t': invalid choice 'Orignal' (choose from 'IAE', 'Original'); did you mean 'Original'?", err.Error())

	err = err.WithHelp("faceswap convert", "USAGE\n")
	require.Equal(t, "faceswap convert", err.Prog)
	require.Equal(t, "USAGE\n", err.Help)
	require.Contains(t, err.Error(), "faceswap convert: error: ")
}

func TestMissingValue_Hint(t *testing.T) {
	require.Equal(t, "flag '-i' expects a value", MissingValue("-i", "").Message)
	require.Equal(t, "flag '-i' expects <dir>", MissingValue("-i", "<dir>").Message)
}

func TestUnknownCommand_Suggestions(t *testing.T) {
	err := UnknownCommand("extrct", "extract")
	require.Contains(t, err.Message, "'extrct' is not a faceswap command")
	require.Contains(t, err.Message, "\n\textract")

	require.NotContains(t, UnknownCommand("zzz").Message, "most similar")
}

func TestAsError(t *testing.T) {
	ue, ok := AsError(fmt.Errorf("wrap: %w", InvalidFlag("--x")))
	require.True(t, ok)
	require.Equal(t, ErrInvalidFlag, ue.Kind)

	_, ok = AsError(errors.New("plain"))
	require.False(t, ok)
}
