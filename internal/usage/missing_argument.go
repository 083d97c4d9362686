package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("missing required argument '%s'", arg),
	}
}

// UnexpectedArgument is returned for positional tokens a command does not take.
func UnexpectedArgument(arg string) *Error {
	return &Error{
		Kind:    ErrUnexpectedArgument,
		Message: fmt.Sprintf("unrecognized argument '%s'", arg),
	}
}

// InvalidPath is returned when a path argument does not point at what the command needs.
func InvalidPath(path, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidPath,
		Message: fmt.Sprintf("%s: %s", path, reason),
	}
}

// InvalidConfigKey is returned for config keys that are neither set nor known.
func InvalidConfigKey(key string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a valid config key", key)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", quoteAll(suggestions))
	}
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: msg,
	}
}

// RequiredFlag is returned when a flag the command cannot run without is absent.
func RequiredFlag(flag string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("the following flag is required: %s", flag),
	}
}
