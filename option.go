package consolekit

import "fmt"

// Option is a named option descriptor. Options always take exactly one
// value: the token immediately following the option token in the input.
type Option struct {
	Name  string // Primary identifier, matched as --name
	Short string // Single character alias, matched as -x (e.g. "e" for -e)
	Help  string // Description shown in help output
}

func NewOption(name string) *Option {
	return &Option{Name: name}
}

func (o *Option) SetShort(s string) *Option {
	o.Short = s
	return o
}

func (o *Option) SetHelp(h string) *Option {
	o.Help = h
	return o
}

// Register adds the option to sig. Fails with *SchemaConflictError if the
// name collides with any registered item or the short collides with another
// option's short.
func (o *Option) Register(sig *Signature) error {
	if err := validateShort(o.Short, o.Name); err != nil {
		return err
	}
	if o.Short != "" {
		if existing, exists := sig.optionShorts[o.Short]; exists {
			return &SchemaConflictError{msg: fmt.Sprintf("short %q already defined by option %q", o.Short, existing)}
		}
	}
	if err := sig.claimName(o.Name); err != nil {
		return err
	}

	if o.Short != "" {
		sig.optionShorts[o.Short] = o.Name
	}
	opt := *o
	sig.options = append(sig.options, &opt)
	return nil
}
