package config

import (
	"github.com/faceswap-tools/faceswap/internal/dispatchers"
	"github.com/faceswap-tools/faceswap/internal/domain"
	"github.com/faceswap-tools/faceswap/internal/usage"
)

func Unset(args []string, flags *dispatchers.ParsedArgs) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, flags *dispatchers.ParsedArgs, deps Deps) error {
	if flags.Bool("all") {
		if len(args) > 0 {
			return usage.UnexpectedArgument(args[0])
		}

		for _, key := range domain.ConfigKeys {
			if !deps.IsSet(key.Name) {
				continue
			}
			if err := deps.Unset(key.Name); err != nil {
				return err
			}
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return unknownKey(key)
	}

	if !deps.IsSet(key) {
		_, _ = deps.Printf("%s is not set\n", key)
		return nil
	}

	if err := deps.Unset(key); err != nil {
		return err
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
