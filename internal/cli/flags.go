package cli

import (
	"github.com/faceswap-tools/faceswap/internal/actions/logs"
	"github.com/faceswap-tools/faceswap/internal/alignments"
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/plugins"
	"github.com/faceswap-tools/faceswap/internal/store"
)

// RootFlags are accepted before and after any command.
func RootFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-V"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			Type:        dispatchers.TypeString,
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}
}

var imageFilter = dispatchers.NewFileFilter("Images", "png", "jpg", "jpeg", "bmp", "tif", "tiff")

// UniversalFlags are shared by every pipeline command.
func UniversalFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-v", "--verbose"},
			Description: "Show verbose output",
		},
	}
}

// ExtractConvertFlags are shared by extract and convert.
func ExtractConvertFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-i", "--input-dir"},
			Type:        dispatchers.TypeString,
			Default:     "input",
			Path:        dispatchers.PathDir,
			Description: "Input directory. A directory containing the files you wish to process",
		},
		{
			Names:       []string{"-o", "--output-dir"},
			Type:        dispatchers.TypeString,
			Default:     "output",
			Path:        dispatchers.PathDir,
			Description: "Output directory. This is where the converted files will be stored",
		},
		{
			Names:       []string{"--alignments"},
			Dest:        "alignments_path",
			Type:        dispatchers.TypeString,
			Path:        dispatchers.PathFile,
			Filters:     []dispatchers.FileFilter{dispatchers.NewFileFilter("Alignments", "json", "p", "yml", "yaml")},
			Description: "Optional path to an alignments file (defaults to <input-dir>/alignments.<ext>)",
		},
		{
			Names:       []string{"--serializer"},
			Type:        dispatchers.TypeString,
			Default:     alignments.JSON,
			Choices:     alignments.Serializers(),
			Description: "Serializer for the alignments file",
		},
		{
			Names:       []string{"-D", "--detector"},
			Type:        dispatchers.TypeString,
			Default:     "hog",
			Choices:     append([]string(nil), plugins.BuiltinExtractors...),
			Description: "Detector to use. 'cnn' detects many more angles but is slower",
		},
		{
			Names:       []string{"-f", "--filter"},
			Type:        dispatchers.TypeString,
			Path:        dispatchers.PathFile,
			Filters:     []dispatchers.FileFilter{imageFilter},
			Description: "Reference image for the person you want to process",
		},
		{
			Names:       []string{"-n", "--nfilter"},
			Type:        dispatchers.TypeStrings,
			Description: "Reference images for people you do not want to process",
		},
		{
			Names:       []string{"-l", "--ref_threshold"},
			Dest:        "ref_threshold",
			Type:        dispatchers.TypeFloat,
			Default:     0.6,
			Description: "Threshold for positive face recognition",
		},
	}
}

// ExtractFlags are the options only extract takes.
func ExtractFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-r", "--rotate-images"},
			Description: "Rotate frames to find faces at other angles",
		},
		{
			Names:       []string{"-bt", "--blur-threshold"},
			Type:        dispatchers.TypeInt,
			Default:     0,
			Description: "Discard faces blurrier than this threshold (0 keeps all)",
		},
		{
			Names:       []string{"-j", "--processes"},
			Type:        dispatchers.TypeInt,
			Default:     1,
			Description: "Number of processes to use",
		},
		{
			Names:       []string{"-s", "--skip-existing"},
			Description: "Skip frames already present in the alignments file",
		},
		{
			Names:       []string{"-dl", "--debug-landmarks"},
			Description: "Draw landmarks for debug",
		},
		{
			Names:       []string{"-ae", "--align-eyes"},
			Description: "Further align faces on the eyes",
		},
	}
}

// ConvertFlags are the options only convert takes. models fills the
// --trainer choices.
func ConvertFlags(models []string) []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-m", "--model-dir"},
			Type:        dispatchers.TypeString,
			Default:     "models",
			Path:        dispatchers.PathDir,
			Description: "Model directory. A directory containing the trained model you wish to process",
		},
		{
			Names:       []string{"-a", "--input-aligned-dir"},
			Type:        dispatchers.TypeString,
			Path:        dispatchers.PathDir,
			Description: "Input aligned directory. Only faces in this directory are converted",
		},
		trainerFlag(models),
		{
			Names:       []string{"-c", "--converter"},
			Type:        dispatchers.TypeString,
			Default:     "Masked",
			Choices:     append([]string(nil), plugins.BuiltinConverters...),
			Description: "Converter to use",
		},
		{
			Names:       []string{"-b", "--blur-size"},
			Type:        dispatchers.TypeInt,
			Default:     2,
			Description: "Blur size (Masked converter only)",
		},
		{
			Names:       []string{"-e", "--erosion-kernel-size"},
			Type:        dispatchers.TypeInt,
			Description: "Erosion kernel size; positive erodes, negative dilates (Masked converter only)",
		},
		{
			Names:       []string{"-M", "--mask-type"},
			Type:        dispatchers.TypeString,
			Default:     "facehullandrect",
			Choices:     []string{"rect", "facehull", "facehullandrect"},
			Description: "Mask to use to replace faces (Masked converter only)",
		},
		{
			Names:       []string{"-sh", "--sharpen"},
			Type:        dispatchers.TypeString,
			Choices:     []string{"bsharpen", "gsharpen"},
			Description: "Sharpen the masked face (Masked converter only)",
		},
		{
			Names:       []string{"-g", "--gpus"},
			Type:        dispatchers.TypeInt,
			Default:     1,
			Description: "Number of GPUs to use for conversion",
		},
		{
			Names:       []string{"-fr", "--frame-ranges"},
			Type:        dispatchers.TypeStrings,
			ValueHint:   "<start-end...>",
			Description: "Frame ranges to convert, e.g. 10-20 90-100. Frames outside are copied unchanged",
		},
		{
			Names:       []string{"-d", "--discard-frames"},
			Description: "Drop frames outside --frame-ranges instead of copying them",
		},
		{
			Names:       []string{"-s", "--swap-model"},
			Description: "Swap the model: convert B to A instead of A to B",
		},
		{
			Names:       []string{"-S", "--seamless"},
			Description: "Use seamless cloning (Masked converter only)",
		},
		{
			Names:       []string{"-mh", "--match-histogram"},
			Description: "Match the histogram of each color channel (Masked converter only)",
		},
		{
			Names:       []string{"-sm", "--smooth-mask"},
			Description: "Smooth the mask (Adjust converter only)",
		},
		{
			Names:       []string{"-aca", "--avg-color-adjust"},
			Description: "Average color adjust (Adjust converter only)",
		},
	}
}

// TrainFlags are the options train takes. models fills the --trainer
// choices.
func TrainFlags(models []string) []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-A", "--input-A"},
			Type:        dispatchers.TypeString,
			Default:     "input_A",
			Path:        dispatchers.PathDir,
			Description: "Input directory of face A images",
		},
		{
			Names:       []string{"-B", "--input-B"},
			Type:        dispatchers.TypeString,
			Default:     "input_B",
			Path:        dispatchers.PathDir,
			Description: "Input directory of face B images",
		},
		{
			Names:       []string{"-m", "--model-dir"},
			Type:        dispatchers.TypeString,
			Default:     "models",
			Path:        dispatchers.PathDir,
			Description: "Model directory. Trained models are saved and loaded here",
		},
		{
			Names:       []string{"-s", "--save-interval"},
			Type:        dispatchers.TypeInt,
			Default:     100,
			Description: "Save the model every n iterations",
		},
		trainerFlag(models),
		{
			Names:       []string{"-bs", "--batch-size"},
			Type:        dispatchers.TypeInt,
			Default:     64,
			Description: "Batch size, as a power of 2 (64, 128, 256...)",
		},
		{
			Names:       []string{"-ep", "--epochs"},
			Type:        dispatchers.TypeInt,
			Default:     1000000,
			Description: "Length of training in epochs",
		},
		{
			Names:       []string{"-g", "--gpus"},
			Type:        dispatchers.TypeInt,
			Default:     1,
			Description: "Number of GPUs to use for training",
		},
		{
			Names:       []string{"-p", "--preview"},
			Description: "Show preview output",
		},
		{
			Names:       []string{"-w", "--write-image"},
			Description: "Write the preview image to the model directory",
		},
		{
			Names:       []string{"-pl", "--use-perceptual-loss"},
			Description: "Use perceptual loss while training",
		},
		{
			Names:       []string{"-ag", "--allow-growth"},
			Description: "Let the engine allocate GPU memory as needed",
		},
		{
			Names:       []string{"--gui"},
			Hidden:      true,
			Description: "Set when launched from the GUI",
		},
	}
}

// trainerFlag lists the available models. With none registered the flag
// takes any value and resolution fails at run time.
func trainerFlag(models []string) dispatchers.FlagDescriptor {
	f := dispatchers.FlagDescriptor{
		Names:       []string{"-t", "--trainer"},
		Type:        dispatchers.TypeString,
		Choices:     append([]string(nil), models...),
		Description: "Model to train or convert with",
	}
	if def, err := plugins.DefaultModel(models); err == nil {
		f.Default = def
	}
	return f
}

// GUIFlags are the options gui takes.
func GUIFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-d", "--debug"},
			Description: "Launch the GUI in debug mode",
		},
	}
}

// FramesFlags are the options frames takes.
func FramesFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-i", "--input-file"},
			Type:        dispatchers.TypeString,
			Path:        dispatchers.PathFile,
			Filters:     []dispatchers.FileFilter{dispatchers.NewFileFilter("Video", "mp4", "mkv", "mov", "avi", "webm")},
			Description: "Video file to split into frames",
		},
		{
			Names:       []string{"-o", "--output-dir"},
			Type:        dispatchers.TypeString,
			Default:     "frames",
			Path:        dispatchers.PathDir,
			Description: "Directory for the frames. It is emptied first",
		},
		{
			Names:       []string{"--format"},
			Type:        dispatchers.TypeString,
			Default:     "png",
			Choices:     []string{"png", "jpg"},
			Description: "Image format of the frames",
		},
	}
}

// HistoryFlags are the options history takes.
func HistoryFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-n", "--limit"},
			Type:        dispatchers.TypeInt,
			Default:     store.DefaultLimit,
			Description: "Number of runs to show",
		},
		{
			Names:       []string{"-c", "--command"},
			Type:        dispatchers.TypeString,
			Choices:     PipelineCommands(),
			Description: "Only show runs of this command",
		},
		{
			Names:       []string{"-s", "--status"},
			Type:        dispatchers.TypeString,
			Choices:     []string{string(domain.RunRunning), string(domain.RunSuccess), string(domain.RunFailed)},
			Description: "Only show runs with this status",
		},
		{
			Names:       []string{"--since"},
			Type:        dispatchers.TypeString,
			ValueHint:   "<duration>",
			Description: "Only show runs started within this duration, e.g. 24h",
		},
	}
}

// LogsViewFlags are the options logs view takes.
func LogsViewFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"-n", "--limit"},
			Type:        dispatchers.TypeInt,
			Default:     logs.DefaultLimit,
			Description: "Number of lines to show",
		},
		{
			Names:       []string{"--json"},
			Description: "Output entries as JSON",
		},
	}
}

// CompletionsFlags are the options completions takes.
func CompletionsFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of instructions",
		},
	}
}

// ConfigUnsetFlags are the options config unset takes.
func ConfigUnsetFlags() []dispatchers.FlagDescriptor {
	return []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Remove every key from the config file",
		},
	}
}

// BuildCommandSpec composes the flag groups of a pipeline command in
// precedence order: universal, then extract/convert shared, then the
// command's own. Later groups win on a shared destination or spelling.
func BuildCommandSpec(command string, models []string) dispatchers.CommandSpec {
	var groups [][]dispatchers.FlagDescriptor
	groups = append(groups, UniversalFlags())

	switch command {
	case "extract":
		groups = append(groups, ExtractConvertFlags(), ExtractFlags())
	case "convert":
		groups = append(groups, ExtractConvertFlags(), ConvertFlags(models))
	case "train":
		groups = append(groups, TrainFlags(models))
	case "gui":
		groups = append(groups, GUIFlags())
	case "frames":
		groups = append(groups, FramesFlags())
	}

	info := pipelineCommands[command]
	return dispatchers.CommandSpec{
		Name:        command,
		Summary:     info.summary,
		Usage:       "faceswap " + command + " [flags]",
		Description: info.description,
		Flags:       dispatchers.MergeFlags(groups...),
		Category:    info.category,
	}
}

type commandInfo struct {
	summary     string
	description string
	category    dispatchers.CommandCategory
}

var pipelineCommands = map[string]commandInfo{
	"extract": {
		summary:     "Extract faces from frames",
		description: "Detects and aligns the faces in every image of the input directory and writes them to the output directory. Alignments are stored next to the input frames.",
		category:    dispatchers.CategoryPipeline,
	},
	"train": {
		summary:     "Train a model on two sets of faces",
		description: "Trains the selected model to swap face A with face B. The model is saved to the model directory at every save interval.",
		category:    dispatchers.CategoryPipeline,
	},
	"convert": {
		summary:     "Swap faces in frames with a trained model",
		description: "Replaces the faces found during extract with the ones generated by the trained model.",
		category:    dispatchers.CategoryPipeline,
	},
	"gui": {
		summary:     "Launch the graphical interface",
		description: "Hands over to the engine's GUI. Requires a display.",
		category:    dispatchers.CategoryTools,
	},
	"frames": {
		summary:     "Split a video into frames with ffmpeg",
		description: "Empties the output directory, then writes every frame of the video to it as a numbered image.",
		category:    dispatchers.CategoryTools,
	},
}

// PipelineCommands returns the names of the script-backed commands.
func PipelineCommands() []string {
	return []string{"extract", "train", "convert", "gui", "frames"}
}
