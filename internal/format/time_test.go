package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

type mapConfig map[string]string

func (m mapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
func (m mapConfig) GetAll() (map[string]string, error) { return m, nil }
func (m mapConfig) Set(string, string) error           { return nil }
func (m mapConfig) Unset(string) error                 { return nil }

func TestFormatter_Defaults(t *testing.T) {
	f := Formatter{}
	require.Equal(t, "Jan 23 15:04", f.DateTime(testTime))
	require.Equal(t, "Jan 23 15:04:05", f.Full(testTime))
}

func TestFormatter_DateFormats(t *testing.T) {
	tests := []struct {
		displayDate string
		date        string
		short       string
	}{
		{"dd/mm/yyyy", "23/01/2024", "23/01"},
		{"mm/dd/yyyy", "01/23/2024", "01/23"},
		{"yyyy-mm-dd", "2024-01-23", "01-23"},
		{"02 Jan 2006", "23 Jan 2024", "23 Jan"},
	}

	for _, tt := range tests {
		t.Run(tt.displayDate, func(t *testing.T) {
			f := Formatter{Config: mapConfig{"display_date": tt.displayDate}}
			require.Equal(t, tt.date, f.Date(testTime))
			require.Equal(t, tt.short, f.DateShort(testTime))
		})
	}
}

func TestFormatter_TimeFormats(t *testing.T) {
	f := Formatter{Config: mapConfig{"display_time": "12h"}}
	require.Equal(t, "3:04 PM", f.Time(testTime))
	require.Equal(t, "Jan 23 3:04:05 PM", f.Full(testTime))

	f = Formatter{Config: mapConfig{"display_time": "24h"}}
	require.Equal(t, "15:04", f.Time(testTime))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "-"},
		{850 * time.Millisecond, "850ms"},
		{42 * time.Second, "42s"},
		{3*time.Minute + 5*time.Second, "3m05s"},
		{2*time.Hour + 10*time.Minute, "2h10m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Duration(tt.in))
		})
	}
}
