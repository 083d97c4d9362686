package config

import (
	"strconv"

	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/paths"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

// Provider is the rc-file backed domain.ConfigProvider. FACESWAP_*
// environment variables take precedence over the file; values missing from
// both fall back to the defaults in domain.ConfigKeys.
type Provider struct {
	path string
}

var _ domain.ConfigProvider = (*Provider)(nil)

// NewProvider returns a provider for the user's rc file.
func NewProvider() (*Provider, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return &Provider{path: path}, nil
}

// NewProviderAt returns a provider for an explicit file.
func NewProviderAt(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the rc file location.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) load() map[string]string {
	lines, err := ReadLines(p.path)
	if err != nil {
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}

// Get returns the configured value, else the default. ok is false only
// for keys that are neither set nor known.
func (p *Provider) Get(key string) (string, bool) {
	if value, ok := envOverrides()[key]; ok {
		return value, true
	}
	if value, ok := p.load()[key]; ok {
		return value, true
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns defaults overlaid with the file, then the environment.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	lines, err := ReadLines(p.path)
	if err != nil {
		return result, err
	}
	cfg, err := Parse(lines)
	if err != nil {
		return result, err
	}
	for k, v := range cfg {
		result[k] = v
	}
	for k, v := range envOverrides() {
		result[k] = v
	}
	return result, nil
}

// IsSet reports whether key is explicitly set in the file.
func (p *Provider) IsSet(key string) bool {
	_, ok := p.load()[key]
	return ok
}

// Set writes key=value, creating the file from Template when missing.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		if lines == nil {
			lines = Template()
		}
		lines, _ = SetLine(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes key from the file so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil || lines == nil {
			return err
		}
		lines, removed := UnsetLine(lines, key)
		if !removed {
			return nil
		}
		return WriteLines(p.path, lines)
	})
}

// Bool reads a boolean key, returning def for empty or malformed values.
func Bool(cfg domain.ConfigProvider, key string, def bool) bool {
	value, ok := cfg.Get(key)
	if !ok || value == "" {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}

// String reads a key, returning def when it is empty.
func String(cfg domain.ConfigProvider, key, def string) string {
	if value, ok := cfg.Get(key); ok && value != "" {
		return value
	}
	return def
}
