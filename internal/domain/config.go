package domain

// ConfigKey describes one configuration key.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
	Hidden      bool
	HideIfEmpty bool
}

// ConfigKeys is the table of every configuration key.
// Order determines display order in `faceswap config list`.
var ConfigKeys = []ConfigKey{
	// Engine
	{
		Name:        "engine_path",
		Default:     "faceswap-engine",
		Description: "Engine executable that performs detection, training and conversion",
		Section:     "Engine",
	},
	{
		Name:        "ffmpeg_path",
		Default:     "ffmpeg",
		Description: "ffmpeg executable used by `faceswap frames`",
		Section:     "Engine",
	},
	{
		Name:        "plugins_dir",
		Description: "Directory scanned for additional model_* plugins",
		Section:     "Engine",
		HideIfEmpty: true,
	},
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h or 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// History
	{
		Name:        "enable_history",
		Default:     "true",
		Description: "Record extract/train/convert runs (true/false)",
		Section:     "History",
	},
	// Color overrides (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header color (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey reports whether name is a known key.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// ConfigKeyNames returns every non-hidden key name in table order.
func ConfigKeyNames() []string {
	names := make([]string, 0, len(ConfigKeys))
	for _, key := range ConfigKeys {
		if !key.Hidden {
			names = append(names, key.Name)
		}
	}
	return names
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Engine", "Display", "Logging", "History", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
