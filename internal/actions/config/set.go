package config

import (
	"strconv"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func Set(args []string, flags *dispatchers.ParsedArgs) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedArgs, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if err := validateValue(key, value); err != nil {
		return err
	}

	existed := deps.IsSet(key)
	if err := deps.Set(key, value); err != nil {
		return err
	}

	action := "added"
	if existed {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

// validateValue rejects values the key's consumer could not use.
func validateValue(key, value string) error {
	switch {
	case strings.HasPrefix(key, "enable_"):
		if _, err := strconv.ParseBool(value); err != nil {
			return usage.InvalidValue(key, "boolean", value)
		}
	case key == "log_level":
		for _, level := range logLevels {
			if value == level {
				return nil
			}
		}
		return usage.InvalidChoice(key, value, logLevels, dispatchers.FindSimilar(value, logLevels, 1)...)
	case key == "display_time":
		if value != "12h" && value != "24h" {
			return usage.InvalidChoice(key, value, []string{"12h", "24h"})
		}
	}
	return nil
}
