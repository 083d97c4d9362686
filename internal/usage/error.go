package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingValue
	ErrInvalidValue
	ErrInvalidChoice
	ErrUnexpectedArgument
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidPath
	ErrInvalidConfigKey
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Invalid flag, missing or malformed value
//	  - Value outside the allowed choices
//	  - Unexpected or missing positional argument
//	  - Unknown command
//	  - Invalid path
var exitCodes = map[ErrorKind]int{
	ErrUnknown:            1,
	ErrInvalidFlag:        2,
	ErrMissingValue:       2,
	ErrInvalidValue:       2,
	ErrInvalidChoice:      2,
	ErrUnexpectedArgument: 2,
	ErrMissingArgument:    2,
	ErrUnknownCommand:     2,
	ErrInvalidPath:        2,
	ErrInvalidConfigKey:   1,
}

// Error represents a user-facing usage error with semantic type information.
// Help carries the full help text of the command that rejected the input; the
// entry point prints it before the message.
type Error struct {
	Kind     ErrorKind
	Message  string
	Prog     string
	Help     string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	prog := e.Prog
	if prog == "" {
		prog = "faceswap"
	}
	return prog + ": error: " + e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// WithHelp attaches the program name and help text of the command being parsed.
func (e *Error) WithHelp(prog, help string) *Error {
	e.Prog = prog
	e.Help = help
	return e
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)

// ExitCoder is implemented by errors that choose their own process exit status.
type ExitCoder interface {
	GetExitCode() int
}

// ExitCode maps an error returned anywhere below main to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.GetExitCode()
	}
	return 1
}

// AsError returns the usage error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
