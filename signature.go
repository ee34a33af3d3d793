package consolekit

import "fmt"

// Signature is the declarative schema of a command invocation: ordered
// positional arguments, value-carrying options, and presence-only flags.
// It is the single source of truth for parsing, help text, and completion.
//
// Build a Signature once at command registration time by calling Register on
// Argument/Option/Flag descriptors. It is read-only afterwards and safe to
// share across concurrent matches.
type Signature struct {
	arguments []*Argument
	options   []*Option
	flags     []*Flag

	names        map[string]bool
	optionShorts map[string]string // short -> option name
	flagShorts   map[string]string // short -> flag name
}

func NewSignature() *Signature {
	return &Signature{
		names:        make(map[string]bool),
		optionShorts: make(map[string]string),
		flagShorts:   make(map[string]string),
	}
}

// Arguments returns the positional arguments in registration order.
func (s *Signature) Arguments() []*Argument {
	return s.arguments
}

// Options returns the options in registration order.
func (s *Signature) Options() []*Option {
	return s.options
}

// Flags returns the flags in registration order.
func (s *Signature) Flags() []*Flag {
	return s.flags
}

// LookupOption resolves an option by exact full name or exact
// single-character short alias. Returns nil if nothing matches.
func (s *Signature) LookupOption(nameOrShort string) *Option {
	for _, opt := range s.options {
		if opt.Name == nameOrShort {
			return opt
		}
	}
	if name, exists := s.optionShorts[nameOrShort]; exists {
		for _, opt := range s.options {
			if opt.Name == name {
				return opt
			}
		}
	}
	return nil
}

// LookupFlag resolves a flag by exact full name or exact single-character
// short alias. Returns nil if nothing matches.
func (s *Signature) LookupFlag(nameOrShort string) *Flag {
	for _, fl := range s.flags {
		if fl.Name == nameOrShort {
			return fl
		}
	}
	if name, exists := s.flagShorts[nameOrShort]; exists {
		for _, fl := range s.flags {
			if fl.Name == name {
				return fl
			}
		}
	}
	return nil
}

// claimName reserves a name across all three categories.
func (s *Signature) claimName(name string) error {
	if name == "" {
		return &SchemaConflictError{msg: "name cannot be empty"}
	}
	if s.names[name] {
		return &SchemaConflictError{msg: fmt.Sprintf("%q already defined", name)}
	}
	s.names[name] = true
	return nil
}

func validateShort(short, name string) error {
	if short != "" && len(short) != 1 {
		return &SchemaConflictError{msg: fmt.Sprintf("short %q for %q must be a single character", short, name)}
	}
	return nil
}
