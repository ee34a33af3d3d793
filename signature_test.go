package consolekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureOrdering(t *testing.T) {
	sig := NewSignature()
	assert.Nil(t, NewArgument("first").Register(sig))
	assert.Nil(t, NewArgument("second").Register(sig))
	assert.Nil(t, NewOption("eyes").SetShort("e").Register(sig))
	assert.Nil(t, NewFlag("loud").SetShort("l").Register(sig))

	assert.Equal(t, "first", sig.Arguments()[0].Name)
	assert.Equal(t, "second", sig.Arguments()[1].Name)
	assert.Equal(t, "eyes", sig.Options()[0].Name)
	assert.Equal(t, "loud", sig.Flags()[0].Name)
}

func TestSignatureNameConflictAcrossCategories(t *testing.T) {
	sig := NewSignature()
	assert.Nil(t, NewArgument("eyes").Register(sig))

	err := NewOption("eyes").Register(sig)
	var conflict *SchemaConflictError
	assert.True(t, errors.As(err, &conflict))

	err = NewFlag("eyes").Register(sig)
	assert.True(t, errors.As(err, &conflict))
}

func TestSignatureOptionShortConflict(t *testing.T) {
	sig := NewSignature()
	assert.Nil(t, NewOption("eyes").SetShort("e").Register(sig))

	err := NewOption("ears").SetShort("e").Register(sig)
	var conflict *SchemaConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestSignatureFlagShortConflict(t *testing.T) {
	sig := NewSignature()
	assert.Nil(t, NewFlag("loud").SetShort("l").Register(sig))

	err := NewFlag("long").SetShort("l").Register(sig)
	var conflict *SchemaConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestSignatureShortReusableAcrossCategories(t *testing.T) {
	// Shorts are only unique within options and within flags, not across.
	sig := NewSignature()
	assert.Nil(t, NewOption("eyes").SetShort("e").Register(sig))
	assert.Nil(t, NewFlag("echo").SetShort("e").Register(sig))
}

func TestSignatureRejectsMultiCharacterShort(t *testing.T) {
	sig := NewSignature()

	err := NewOption("eyes").SetShort("ey").Register(sig)
	var conflict *SchemaConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestSignatureRejectsEmptyName(t *testing.T) {
	sig := NewSignature()

	err := NewArgument("").Register(sig)
	var conflict *SchemaConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestSignatureLookupOption(t *testing.T) {
	sig := NewSignature()
	assert.Nil(t, NewOption("eyes").SetShort("e").Register(sig))
	assert.Nil(t, NewOption("tongue").Register(sig))

	assert.Equal(t, "eyes", sig.LookupOption("eyes").Name)
	assert.Equal(t, "eyes", sig.LookupOption("e").Name)
	assert.Equal(t, "tongue", sig.LookupOption("tongue").Name)
	assert.Nil(t, sig.LookupOption("t"))
	assert.Nil(t, sig.LookupOption("bogus"))
}

func TestSignatureLookupFlag(t *testing.T) {
	sig := NewSignature()
	assert.Nil(t, NewOption("eyes").SetShort("e").Register(sig))
	assert.Nil(t, NewFlag("loud").SetShort("l").Register(sig))

	assert.Equal(t, "loud", sig.LookupFlag("loud").Name)
	assert.Equal(t, "loud", sig.LookupFlag("l").Name)
	assert.Nil(t, sig.LookupFlag("eyes"), "options must not resolve as flags")
	assert.Nil(t, sig.LookupOption("loud"), "flags must not resolve as options")
}

func TestSignatureRegisterCopiesDescriptor(t *testing.T) {
	sig := NewSignature()
	desc := NewArgument("message").SetHelp("original")
	assert.Nil(t, desc.Register(sig))

	desc.Help = "mutated after registration"
	assert.Equal(t, "original", sig.Arguments()[0].Help)
}
