package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatUsage_CommandOnly(t *testing.T) {
	require.Equal(t, "faceswap version", formatUsage("faceswap version"))
}

func TestFormatUsage_CommandWithBrackets(t *testing.T) {
	require.Equal(t, "faceswap extract [flags]", formatUsage("faceswap extract [flags]"))
}

func TestFormatUsage_EmptyUsage(t *testing.T) {
	require.Equal(t, "", formatUsage(""))
}

func TestCollectLeafCommands_SkipsHiddenAndGroups(t *testing.T) {
	root := createTestTree()
	Command(CommandSpec{Name: "secret", Parent: root, Action: mockAction, Hidden: true})

	var names []string
	for _, n := range CollectLeafCommands(root) {
		names = append(names, strings.Join(n.Path[1:], " "))
	}

	require.Contains(t, names, "extract")
	require.Contains(t, names, "config set")
	require.NotContains(t, names, "config")
	require.NotContains(t, names, "help")
	require.NotContains(t, names, "secret")
}

func TestHelpText_Root(t *testing.T) {
	root := createTestTree()
	root.Children["extract"].Category = CategoryPipeline

	out := HelpText(root, root)

	require.Contains(t, out, "faceswap - Test CLI")
	require.Contains(t, out, "USAGE")
	require.Contains(t, out, "face-swap pipeline")
	require.Contains(t, out, "config set")
	require.Contains(t, out, "GLOBAL FLAGS")
	require.Contains(t, out, "--version, -V")
	require.Less(t, strings.Index(out, "face-swap pipeline"), strings.Index(out, "other commands"))
}

func TestHelpText_Command(t *testing.T) {
	root := createTestTree()
	extract := root.Children["extract"]
	extract.Description = "Detects faces and writes aligned crops."
	extract.Flags = append(extract.Flags,
		FlagDescriptor{
			Names:       []string{"--alignments"},
			Type:        TypeString,
			Path:        PathFile,
			Description: "Alignments file",
			Filters:     []FileFilter{NewFileFilter("Alignments", "json", "yaml")},
		},
		FlagDescriptor{Names: []string{"--gui"}, Type: TypeBool, Hidden: true},
	)

	out := HelpText(extract, root)

	require.True(t, strings.HasPrefix(out, "faceswap extract - Extract faces"))
	require.Contains(t, out, "Detects faces and writes aligned crops.")
	require.Contains(t, out, "-i, --input-dir <dir>")
	require.Contains(t, out, "(default: input)")
	require.Contains(t, out, "-D, --detector {hog,cnn,all}")
	require.Contains(t, out, "--alignments <file>")
	require.Contains(t, out, "files: Alignments (*.json *.yaml)")
	require.NotContains(t, out, "--gui")
	require.Contains(t, out, "GLOBAL FLAGS")
	require.Contains(t, out, "--no-color")
	require.NotContains(t, out, "--version", "root-local flags are not listed for commands")
}

func TestHelpText_GroupListsChildren(t *testing.T) {
	root := createTestTree()
	out := HelpText(root.Children["config"], root)

	require.Contains(t, out, "COMMANDS")
	require.Contains(t, out, "set")
}

func TestHelpText_Arguments(t *testing.T) {
	root := createTestTree()
	out := HelpText(root.Children["config"].Children["set"], root)

	require.Contains(t, out, "ARGUMENTS")
	require.Contains(t, out, "<key>")
	require.Contains(t, out, "<value>")
}

func TestHelpText_Deterministic(t *testing.T) {
	root := createTestTree()
	require.Equal(t, HelpText(root, root), HelpText(root, root))
}

func TestFlagDescriptor_Hint(t *testing.T) {
	tests := []struct {
		name string
		flag FlagDescriptor
		want string
	}{
		{"bool", FlagDescriptor{Names: []string{"--x"}, Type: TypeBool}, ""},
		{"explicit", FlagDescriptor{Names: []string{"--x"}, Type: TypeString, ValueHint: "<cmd>"}, "<cmd>"},
		{"choices", FlagDescriptor{Names: []string{"--x"}, Type: TypeString, Choices: []string{"a", "b"}}, "{a,b}"},
		{"int", FlagDescriptor{Names: []string{"--x"}, Type: TypeInt}, "<int>"},
		{"float", FlagDescriptor{Names: []string{"--x"}, Type: TypeFloat}, "<float>"},
		{"list", FlagDescriptor{Names: []string{"--frame-ranges"}, Type: TypeStrings}, "<frame_ranges...>"},
		{"dir", FlagDescriptor{Names: []string{"--x"}, Type: TypeString, Path: PathDir}, "<dir>"},
		{"file", FlagDescriptor{Names: []string{"--x"}, Type: TypeString, Path: PathFile}, "<file>"},
		{"plain", FlagDescriptor{Names: []string{"--name"}, Type: TypeString}, "<name>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.flag.Hint())
		})
	}
}

func TestFormatDefault(t *testing.T) {
	require.Equal(t, "", FormatDefault(nil))
	require.Equal(t, "", FormatDefault(false))
	require.Equal(t, "true", FormatDefault(true))
	require.Equal(t, "0.6", FormatDefault(0.6))
	require.Equal(t, "8", FormatDefault(8))
	require.Equal(t, "a b", FormatDefault([]string{"a", "b"}))
}
