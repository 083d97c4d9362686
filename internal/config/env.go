package config

import "github.com/ilyakaznacheev/cleanenv"

// Env holds the environment variables that override the rc file.
// Empty means not set.
type Env struct {
	EnginePath    string `env:"FACESWAP_ENGINE_PATH"`
	FFmpegPath    string `env:"FACESWAP_FFMPEG_PATH"`
	PluginsDir    string `env:"FACESWAP_PLUGINS_DIR"`
	EnableLog     string `env:"FACESWAP_ENABLE_LOG"`
	LogLevel      string `env:"FACESWAP_LOG_LEVEL"`
	EnableHistory string `env:"FACESWAP_ENABLE_HISTORY"`
	Pager         string `env:"FACESWAP_PAGER"`
}

// ReadEnv reads the overrides from the environment.
func ReadEnv() (Env, error) {
	var e Env
	err := cleanenv.ReadEnv(&e)
	return e, err
}

// Overrides maps the set variables to config keys.
func (e Env) Overrides() map[string]string {
	out := make(map[string]string)
	for key, value := range map[string]string{
		"engine_path":    e.EnginePath,
		"ffmpeg_path":    e.FFmpegPath,
		"plugins_dir":    e.PluginsDir,
		"enable_log":     e.EnableLog,
		"log_level":      e.LogLevel,
		"enable_history": e.EnableHistory,
		"pager":          e.Pager,
	} {
		if value != "" {
			out[key] = value
		}
	}
	return out
}

func envOverrides() map[string]string {
	e, err := ReadEnv()
	if err != nil {
		return nil
	}
	return e.Overrides()
}
