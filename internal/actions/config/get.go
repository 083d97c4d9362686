package config

import (
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedArgs) error {
	return get(args, flags, DefaultDeps())
}

// get prints the raw value so it can be used in scripts: the set value,
// else the key's default.
func get(args []string, _ *dispatchers.ParsedArgs, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	value, found := deps.Get(key)
	if !found {
		return unknownKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}

// unknownKey suggests the closest known key.
func unknownKey(key string) error {
	return usage.InvalidConfigKey(key, dispatchers.FindSimilar(key, domain.ConfigKeyNames(), 1)...)
}
