package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Palette holds one ANSI 256 colour (or "bold") per semantic role.
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// DarkPalette is used on dark terminal backgrounds.
var DarkPalette = Palette{
	Success: "42",
	Warning: "214",
	Error:   "203",
	Info:    "75",
	Muted:   "245",
	Header:  "bold",
}

// LightPalette is used on light terminal backgrounds.
var LightPalette = Palette{
	Success: "28",
	Warning: "130",
	Error:   "160",
	Info:    "25",
	Muted:   "242",
	Header:  "bold",
}

// IsDarkBackground asks the terminal for its background colour.
// termenv reports dark when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// LoadPalette picks the base palette for the background and applies
// color_* overrides. FACESWAP_COLOR_* environment variables beat the
// config map.
func LoadPalette(cfg map[string]string, dark bool) Palette {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	fields := map[string]*string{
		"color_success": &p.Success,
		"color_warning": &p.Warning,
		"color_error":   &p.Error,
		"color_info":    &p.Info,
		"color_muted":   &p.Muted,
		"color_header":  &p.Header,
	}

	for key, field := range fields {
		if v := os.Getenv("FACESWAP_" + strings.ToUpper(key)); v != "" {
			*field = v
			continue
		}
		if v := cfg[key]; v != "" {
			*field = v
		}
	}
	return p
}
