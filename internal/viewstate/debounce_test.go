package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchBox(t *testing.T) {
	s := NewSearchBox(0)
	assert.Equal(t, DefaultDebounce, s.Delay)

	first := s.Type("тр")
	second := s.Type("труба")

	_, ok := s.Fire(first)
	assert.False(t, ok, "superseded keystroke must not fire")

	text, ok := s.Fire(second)
	assert.True(t, ok)
	assert.Equal(t, "труба", text)

	_, ok = s.Fire(second)
	assert.False(t, ok, "same text is not searched twice")
}
