package consolekit

// Input wraps the raw invocation tokens and supports ordered, destructive
// consumption. The first token is reserved as the executable name and is
// never matched against a signature. Because matching removes tokens as it
// consumes them, no token can be matched twice.
type Input struct {
	executable string
	tokens     []string
}

// NewInput creates an Input from raw tokens, conventionally os.Args.
func NewInput(tokens []string) *Input {
	in := &Input{}
	if len(tokens) > 0 {
		in.executable = tokens[0]
		in.tokens = append(in.tokens, tokens[1:]...)
	}
	return in
}

// Executable returns the reserved first token.
func (in *Input) Executable() string {
	return in.executable
}

// Peek returns the next unconsumed token without consuming it.
func (in *Input) Peek() (string, bool) {
	if len(in.tokens) == 0 {
		return "", false
	}
	return in.tokens[0], true
}

// Next consumes and returns the next token.
func (in *Input) Next() (string, error) {
	if len(in.tokens) == 0 {
		return "", &InputExhaustedError{}
	}
	tok := in.tokens[0]
	in.tokens = in.tokens[1:]
	return tok, nil
}

// Remove deletes the first occurrence of token from the unconsumed tokens.
// Removing a token that is not present is a no-op.
func (in *Input) Remove(token string) {
	for i, tok := range in.tokens {
		if tok == token {
			in.tokens = append(in.tokens[:i], in.tokens[i+1:]...)
			return
		}
	}
}

// Remaining returns a copy of the unconsumed tokens.
func (in *Input) Remaining() []string {
	out := make([]string, len(in.tokens))
	copy(out, in.tokens)
	return out
}

// Len returns the number of unconsumed tokens.
func (in *Input) Len() int {
	return len(in.tokens)
}
