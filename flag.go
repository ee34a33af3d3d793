package consolekit

import "fmt"

// Flag is a boolean flag descriptor. Flags carry no value; only their
// presence in the input is recorded.
type Flag struct {
	Name  string // Primary identifier, matched as --name
	Short string // Single character alias, matched as -x (e.g. "v" for -v)
	Help  string // Description shown in help output
}

func NewFlag(name string) *Flag {
	return &Flag{Name: name}
}

func (f *Flag) SetShort(s string) *Flag {
	f.Short = s
	return f
}

func (f *Flag) SetHelp(h string) *Flag {
	f.Help = h
	return f
}

// Register adds the flag to sig. Fails with *SchemaConflictError if the
// name collides with any registered item or the short collides with another
// flag's short.
func (f *Flag) Register(sig *Signature) error {
	if err := validateShort(f.Short, f.Name); err != nil {
		return err
	}
	if f.Short != "" {
		if existing, exists := sig.flagShorts[f.Short]; exists {
			return &SchemaConflictError{msg: fmt.Sprintf("short %q already defined by flag %q", f.Short, existing)}
		}
	}
	if err := sig.claimName(f.Name); err != nil {
		return err
	}

	if f.Short != "" {
		sig.flagShorts[f.Short] = f.Name
	}
	fl := *f
	sig.flags = append(sig.flags, &fl)
	return nil
}
