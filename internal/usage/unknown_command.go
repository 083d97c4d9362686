package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the command token matches no command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a faceswap command. See 'faceswap --help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
