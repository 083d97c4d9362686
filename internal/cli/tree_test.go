package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

var testModels = []string{"GAN", "IAE", "LowMem", "Original"}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := BuildTree(testModels)

	require.NotNil(t, root)
	require.Equal(t, "faceswap", root.Name)
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	root := BuildTree(testModels)

	for _, cmd := range []string{"extract", "train", "convert", "gui", "frames", "plugins", "history", "version", "logs", "config", "completions", "help"} {
		_, found := root.Children[cmd]
		require.True(t, found, "expected top-level command '%s' not found", cmd)
	}
}

func TestBuildTree_ConfigHasSubcommands(t *testing.T) {
	root := BuildTree(testModels)

	config, found := root.Children["config"]
	require.True(t, found, "config group not found")

	for _, sub := range []string{"get", "set", "unset", "list"} {
		_, found := config.Children[sub]
		require.True(t, found, "expected config subcommand '%s' not found", sub)
	}
}

func TestBuildTree_CommandsHaveActions(t *testing.T) {
	root := BuildTree(testModels)

	for _, leaf := range dispatchers.CollectLeafCommands(root) {
		require.NotNil(t, leaf.Action, "command %v has no action", leaf.Path)
		require.NotEqual(t, dispatchers.CategoryUncategorized, leaf.Category, "command %v has no category", leaf.Path)
	}
}

func TestBuildTree_LeafOrder(t *testing.T) {
	root := BuildTree(testModels)

	var names []string
	for _, leaf := range dispatchers.CollectLeafCommands(root) {
		names = append(names, leaf.Name)
	}
	require.Equal(t, []string{
		"extract", "train", "convert",
		"frames", "gui",
		"plugins", "history", "version", "view", "tail", "clear",
		"get", "set", "unset", "list", "completions",
	}, names)
}

func TestBuildCommandSpec_Deterministic(t *testing.T) {
	for _, name := range PipelineCommands() {
		t.Run(name, func(t *testing.T) {
			first := BuildCommandSpec(name, testModels)
			second := BuildCommandSpec(name, testModels)
			require.Equal(t, first.Flags, second.Flags)
		})
	}
}

func TestBuildCommandSpec_UniqueDestinationsAndSpellings(t *testing.T) {
	for _, name := range PipelineCommands() {
		t.Run(name, func(t *testing.T) {
			spec := BuildCommandSpec(name, testModels)
			require.NotEmpty(t, spec.Flags)

			dests := map[string]bool{}
			spellings := map[string]bool{}
			for _, f := range spec.Flags {
				require.False(t, dests[f.Key()], "duplicate destination %q", f.Key())
				dests[f.Key()] = true
				for _, n := range f.Names {
					require.False(t, spellings[n], "duplicate spelling %q", n)
					spellings[n] = true
				}
			}
		})
	}
}

func TestBuildCommandSpec_GroupsIncluded(t *testing.T) {
	tests := []struct {
		command string
		flags   []string
		absent  []string
	}{
		{command: "extract", flags: []string{"--verbose", "--input-dir", "--detector", "--skip-existing"}, absent: []string{"--trainer"}},
		{command: "convert", flags: []string{"--verbose", "--input-dir", "--trainer", "--frame-ranges", "--swap-model"}, absent: []string{"--skip-existing"}},
		{command: "train", flags: []string{"--verbose", "--input-A", "--input-B", "--trainer", "--gui"}, absent: []string{"--input-dir"}},
		{command: "gui", flags: []string{"--verbose", "--debug"}, absent: []string{"--input-dir"}},
		{command: "frames", flags: []string{"--verbose", "--input-file", "--output-dir", "--format"}, absent: []string{"--detector"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			spec := BuildCommandSpec(tt.command, testModels)
			for _, name := range tt.flags {
				_, ok := dispatchers.LookupFlag(spec.Flags, name)
				require.True(t, ok, "expected %s on %s", name, tt.command)
			}
			for _, name := range tt.absent {
				_, ok := dispatchers.LookupFlag(spec.Flags, name)
				require.False(t, ok, "unexpected %s on %s", name, tt.command)
			}
		})
	}
}

func TestTrainerFlag_DefaultsToOriginal(t *testing.T) {
	f := trainerFlag(testModels)
	require.Equal(t, "Original", f.Default)
	require.Equal(t, testModels, f.Choices)

	f = trainerFlag([]string{"Zeta", "Alpha"})
	require.Equal(t, "Alpha", f.Default)

	f = trainerFlag(nil)
	require.Nil(t, f.Default)
	require.Empty(t, f.Choices)
}

func TestDispatch_ExtractParsesFlags(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PWD", dir)

	root := BuildTree(testModels)
	res, err := dispatchers.Dispatch(root, []string{"extract", "-i", "input", "-o", "output", "-D", "cnn", "-s"})
	require.NoError(t, err)
	require.Equal(t, "extract", res.Node.Name)

	require.Equal(t, filepath.Join(dir, "input"), res.Flags.String("input_dir", ""))
	require.Equal(t, filepath.Join(dir, "output"), res.Flags.String("output_dir", ""))
	require.Equal(t, "cnn", res.Flags.String("detector", ""))
	require.True(t, res.Flags.Bool("skip_existing"))
	require.Equal(t, "json", res.Flags.String("serializer", ""))
	require.InDelta(t, 0.6, res.Flags.Float("ref_threshold", 0), 1e-9)
	require.Equal(t, 1, res.Flags.Int("processes", 0))
}

func TestDispatch_ConvertFrameRanges(t *testing.T) {
	root := BuildTree(testModels)
	res, err := dispatchers.Dispatch(root, []string{"convert", "-fr", "10-20", "90-100", "-t", "IAE"})
	require.NoError(t, err)

	require.Equal(t, []string{"10-20", "90-100"}, res.Flags.Strings("frame_ranges"))
	require.Equal(t, "IAE", res.Flags.String("trainer", ""))
	require.Equal(t, "Masked", res.Flags.String("converter", ""))
}

func TestDispatch_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		prog string
	}{
		{name: "bad trainer choice", argv: []string{"convert", "-t", "bad"}, prog: "faceswap convert"},
		{name: "bad detector", argv: []string{"extract", "--detector=dlib"}, prog: "faceswap extract"},
		{name: "non-integer", argv: []string{"train", "-bs", "lots"}, prog: "faceswap train"},
		{name: "unknown flag", argv: []string{"frames", "--fps", "30"}, prog: "faceswap frames"},
		{name: "missing value", argv: []string{"extract", "-i"}, prog: "faceswap extract"},
		{name: "stray argument", argv: []string{"gui", "now"}, prog: "faceswap gui"},
		{name: "unknown command", argv: []string{"extrct"}, prog: "faceswap"},
	}

	root := BuildTree(testModels)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dispatchers.Dispatch(root, tt.argv)
			require.Error(t, err)
			require.Equal(t, 2, usage.ExitCode(err))

			ue, ok := usage.AsError(err)
			require.True(t, ok)
			require.Equal(t, tt.prog, ue.Prog)
			require.NotEmpty(t, ue.Help)
		})
	}
}

func TestDispatch_GlobalFlagsReachCommands(t *testing.T) {
	root := BuildTree(testModels)

	res, err := dispatchers.Dispatch(root, []string{"--no-color", "history", "--pager", "cat", "-n", "5"})
	require.NoError(t, err)
	require.Equal(t, "history", res.Node.Name)
	require.True(t, res.Flags.Bool("no_color"))
	require.Equal(t, "cat", res.Flags.String("pager", ""))
	require.Equal(t, 5, res.Flags.Int("limit", 0))
}

func TestDispatch_VersionFlag(t *testing.T) {
	root := BuildTree(testModels)

	res, err := dispatchers.Dispatch(root, []string{"-V"})
	require.NoError(t, err)
	require.Equal(t, "version", res.Node.Name)
}

func TestDispatch_NoCommandShowsHelp(t *testing.T) {
	root := BuildTree(testModels)

	res, err := dispatchers.Dispatch(root, nil)
	require.NoError(t, err)
	require.Equal(t, root, res.Node)
	require.Equal(t, 1, res.ExitCode)
}
