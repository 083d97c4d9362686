package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEnv_Overrides(t *testing.T) {
	t.Setenv("FACESWAP_ENGINE_PATH", "/env/engine")
	t.Setenv("FACESWAP_LOG_LEVEL", "warn")
	t.Setenv("FACESWAP_PAGER", "")

	e, err := ReadEnv()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"engine_path": "/env/engine",
		"log_level":   "warn",
	}, e.Overrides())
}

func TestProvider_EnvTakesPrecedence(t *testing.T) {
	p := newTestProvider(t, "engine_path=/opt/engine\nffmpeg_path=/usr/bin/ffmpeg\n")
	t.Setenv("FACESWAP_ENGINE_PATH", "/env/engine")

	tests := []struct {
		key  string
		want string
	}{
		{"engine_path", "/env/engine"},
		{"ffmpeg_path", "/usr/bin/ffmpeg"},
		{"log_level", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := p.Get(tt.key)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	all, err := p.GetAll()
	require.NoError(t, err)
	require.Equal(t, "/env/engine", all["engine_path"])
	require.True(t, p.IsSet("engine_path"))
	require.False(t, p.IsSet("log_level"))
}
