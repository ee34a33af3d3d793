package consolekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputReservesExecutableName(t *testing.T) {
	in := NewInput([]string{"cowsay", "Hello"})

	assert.Equal(t, "cowsay", in.Executable())
	assert.Equal(t, []string{"Hello"}, in.Remaining())
	assert.Equal(t, 1, in.Len())
}

func TestInputEmpty(t *testing.T) {
	in := NewInput(nil)

	assert.Equal(t, "", in.Executable())
	assert.Equal(t, 0, in.Len())
	_, ok := in.Peek()
	assert.False(t, ok)
}

func TestInputPeekDoesNotConsume(t *testing.T) {
	in := NewInput([]string{"exe", "a", "b"})

	tok, ok := in.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", tok)
	assert.Equal(t, 2, in.Len())
}

func TestInputNextConsumesInOrder(t *testing.T) {
	in := NewInput([]string{"exe", "a", "b"})

	tok, err := in.Next()
	assert.Nil(t, err)
	assert.Equal(t, "a", tok)

	tok, err = in.Next()
	assert.Nil(t, err)
	assert.Equal(t, "b", tok)

	_, err = in.Next()
	var exhausted *InputExhaustedError
	assert.True(t, errors.As(err, &exhausted))
}

func TestInputRemoveFirstOccurrence(t *testing.T) {
	in := NewInput([]string{"exe", "a", "b", "a"})

	in.Remove("a")
	assert.Equal(t, []string{"b", "a"}, in.Remaining())
}

func TestInputRemoveMissingIsNoOp(t *testing.T) {
	in := NewInput([]string{"exe", "a"})

	in.Remove("zzz")
	assert.Equal(t, []string{"a"}, in.Remaining())
}

func TestInputRemainingIsACopy(t *testing.T) {
	in := NewInput([]string{"exe", "a", "b"})

	remaining := in.Remaining()
	remaining[0] = "mutated"
	tok, _ := in.Peek()
	assert.Equal(t, "a", tok)
}
