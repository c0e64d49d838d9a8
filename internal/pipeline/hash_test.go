package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	assert.Equal(t, h1, h2)
	// SHA-256 of "hello world" is well-known.
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", h1)
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	assert.NotEqual(t, ContentHashHex([]byte("aaa")), ContentHashHex([]byte("bbb")))
}

func TestContentHashHex_EmptyInput(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHashHex([]byte{}))
}
