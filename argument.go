package consolekit

// Argument is a positional argument descriptor. Registration order on a
// Signature determines the positional order expected in the input.
type Argument struct {
	Name     string // Primary identifier, unique across the signature
	Help     string // Description shown in help output
	Optional bool   // Whether the argument may be omitted (default: required)
}

func NewArgument(name string) *Argument {
	return &Argument{Name: name}
}

func (a *Argument) SetHelp(h string) *Argument {
	a.Help = h
	return a
}

func (a *Argument) SetOptional(b bool) *Argument {
	a.Optional = b
	return a
}

// Register adds the argument to sig. Fails with *SchemaConflictError if the
// name collides with any previously registered argument, option, or flag.
func (a *Argument) Register(sig *Signature) error {
	if err := sig.claimName(a.Name); err != nil {
		return err
	}

	arg := *a
	sig.arguments = append(sig.arguments, &arg)
	return nil
}
