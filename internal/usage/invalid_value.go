package usage

import (
	"fmt"
	"strings"
)

// MissingValue is returned when a flag that takes a value is given none.
func MissingValue(flag, hint string) *Error {
	msg := fmt.Sprintf("flag '%s' expects a value", flag)
	if hint != "" {
		msg = fmt.Sprintf("flag '%s' expects %s", flag, hint)
	}
	return &Error{
		Kind:    ErrMissingValue,
		Message: msg,
	}
}

// InvalidValue is returned when a flag value cannot be converted to its type.
func InvalidValue(flag, typeName, value string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("flag '%s': invalid %s value '%s'", flag, typeName, value),
	}
}

// InvalidChoice is returned when a value is outside the declared choices.
func InvalidChoice(flag, value string, choices []string, suggestions ...string) *Error {
	msg := fmt.Sprintf("flag '%s': invalid choice '%s' (choose from %s)",
		flag, value, quoteAll(choices))
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", quoteAll(suggestions))
	}
	return &Error{
		Kind:    ErrInvalidChoice,
		Message: msg,
	}
}

func quoteAll(values []string) string {
	if len(values) == 0 {
		return "nothing"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
