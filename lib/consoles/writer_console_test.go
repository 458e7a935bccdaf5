package consoles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixes(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	c := NewWriterConsole(out)

	c.Printf("a\n")
	c.PushPrefix("%v: ", "Fridge")
	c.Printf("b %v\n", 1)
	c.PushPrefix("  ")
	c.Printf("c\n")
	c.PopPrefix()
	c.PopPrefix()
	c.PopPrefix()
	c.Printf("d\n")

	assert.Equal(t, "a\nFridge: b 1\nFridge:   c\nd\n", out.String())
}
