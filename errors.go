package consolekit

import "fmt"

// SchemaConflictError reports a duplicate name or short alias at schema
// construction time. It indicates a bug in the command declaration, not bad
// user input, so it should surface during development and tests.
type SchemaConflictError struct {
	msg string
}

func (e *SchemaConflictError) Error() string {
	return e.msg
}

// InputExhaustedError reports token consumption past the end of the stream.
// Matching translates it into MissingArgumentError or MissingOptionValueError
// before it reaches a user.
type InputExhaustedError struct{}

func (e *InputExhaustedError) Error() string {
	return "no more input tokens"
}

// MissingOptionValueError reports an option token with no following value token.
type MissingOptionValueError struct {
	Option string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("option --%s requires a value", e.Option)
}

// UnknownOptionError reports a dash-prefixed token that matched no declared
// option or flag.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Token)
}

// MissingArgumentError reports fewer positional tokens than required
// arguments. Argument names the first unfilled required argument.
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument <%s>", e.Argument)
}

// UnexpectedArgumentError reports a surplus positional token beyond the
// declared arguments. Token is the first surplus token.
type UnexpectedArgumentError struct {
	Token string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument %q", e.Token)
}
