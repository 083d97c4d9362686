// Package format renders timestamps and durations for listings such as
// `faceswap history`, following the display_date and display_time keys.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/faceswap-tools/faceswap/internal/domain"
)

// Formatter formats times according to a config provider. A nil Config
// uses the built-in defaults.
type Formatter struct {
	Config domain.ConfigProvider
}

// DateTime formats a time with both date and time.
// Example output: "Jan 23 15:04" or "01/23/2024 3:04 PM"
func (f Formatter) DateTime(t time.Time) string {
	return f.Date(t) + " " + f.Time(t)
}

// DateTimeShort formats a time with short date (no year) and time.
func (f Formatter) DateTimeShort(t time.Time) string {
	return f.DateShort(t) + " " + f.Time(t)
}

// Date formats only the date portion.
func (f Formatter) Date(t time.Time) string {
	return t.Format(dateLayout(f.get("display_date")))
}

// DateShort formats the date without the year.
func (f Formatter) DateShort(t time.Time) string {
	return t.Format(dateLayoutShort(f.get("display_date")))
}

// Time formats only the time portion.
func (f Formatter) Time(t time.Time) string {
	return t.Format(timeLayout(f.get("display_time"), false))
}

// Full formats date and time with seconds.
func (f Formatter) Full(t time.Time) string {
	return f.Date(t) + " " + t.Format(timeLayout(f.get("display_time"), true))
}

func (f Formatter) get(key string) string {
	if f.Config != nil {
		if v, ok := f.Config.Get(key); ok && v != "" {
			return v
		}
	}
	v, _ := domain.GetDefaultValue(key)
	return v
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "", "Jan 02":
		return "Jan 02"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// custom Go layout
		return displayDate
	}
}

func dateLayoutShort(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02"
	case "yyyy-mm-dd":
		return "01-02"
	case "dd/mm/yyyy":
		return "02/01"
	}

	short := dateLayout(displayDate)
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

func timeLayout(displayTime string, seconds bool) string {
	if displayTime == "12h" {
		if seconds {
			return "3:04:05 PM"
		}
		return "3:04 PM"
	}
	if seconds {
		return "15:04:05"
	}
	return "15:04"
}

// Duration renders a run duration compactly: "850ms", "42s", "3m05s",
// "2h10m".
func Duration(d time.Duration) string {
	switch {
	case d < 0:
		return "-"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
