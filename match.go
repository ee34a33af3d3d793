package consolekit

import (
	"errors"
	"strings"
)

// Values is the typed result of matching an Input against a Signature.
type Values struct {
	arguments map[string]string
	options   map[string]string
	flags     map[string]bool
}

func newValues() *Values {
	return &Values{
		arguments: make(map[string]string),
		options:   make(map[string]string),
		flags:     make(map[string]bool),
	}
}

// Argument returns the matched value for the named argument. The second
// return is false when an optional argument was not supplied.
func (v *Values) Argument(name string) (string, bool) {
	val, ok := v.arguments[name]
	return val, ok
}

// Option returns the matched value for the named option, if present.
func (v *Values) Option(name string) (string, bool) {
	val, ok := v.options[name]
	return val, ok
}

// Flag reports whether the named flag was present in the input.
func (v *Values) Flag(name string) bool {
	return v.flags[name]
}

// Match consumes in against sig and returns the populated Values, or a
// structured parse error (see errors.go). Matching is case-sensitive and
// exact: full names or single-character shorts only, no prefix matching.
//
// Option and flag tokens may appear anywhere relative to positional tokens;
// only the order among positional tokens is significant.
func Match(sig *Signature, in *Input) (*Values, error) {
	vals := newValues()

	// First pass: pull out option and flag tokens, wherever they appear.
	toks := in.Remaining()
	skipNext := false
	for i, tok := range toks {
		if skipNext {
			skipNext = false
			continue
		}
		name, ok := dashName(tok)
		if !ok {
			continue // positional candidate, handled below
		}
		if opt := sig.LookupOption(name); opt != nil {
			// An option always takes the very next token as its value, even
			// when that token looks like another option or flag. There is no
			// escaping mechanism, so anything smarter would only trade one
			// ambiguity for another.
			if i+1 >= len(toks) {
				return nil, &MissingOptionValueError{Option: opt.Name}
			}
			value := toks[i+1]
			vals.options[opt.Name] = value
			in.Remove(tok)
			in.Remove(value)
			skipNext = true
			continue
		}
		if fl := sig.LookupFlag(name); fl != nil {
			vals.flags[fl.Name] = true
			in.Remove(tok)
			continue
		}
		return nil, &UnknownOptionError{Token: tok}
	}

	// Second pass: whatever remains is positional and maps 1:1, in order,
	// onto the declared arguments.
	for _, arg := range sig.Arguments() {
		tok, err := in.Next()
		if err != nil {
			var exhausted *InputExhaustedError
			if errors.As(err, &exhausted) {
				if arg.Optional {
					continue
				}
				return nil, &MissingArgumentError{Argument: arg.Name}
			}
			return nil, err
		}
		vals.arguments[arg.Name] = tok
	}
	if tok, ok := in.Peek(); ok {
		return nil, &UnexpectedArgumentError{Token: tok}
	}

	return vals, nil
}

// dashName classifies a token: "--name" yields the long name, "-c" with
// exactly one trailing character yields the short alias. Everything else,
// including multi-character single-dash tokens, is a positional candidate.
func dashName(tok string) (string, bool) {
	if strings.HasPrefix(tok, "--") {
		return tok[2:], true
	}
	if len(tok) == 2 && tok[0] == '-' && tok[1] != '-' {
		return tok[1:], true
	}
	return "", false
}
