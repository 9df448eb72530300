package sourcehash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparrowlang/sparrow/internal/sourcehash"
)

func TestDigestIsStableAndContentSensitive(t *testing.T) {
	a := sourcehash.Digest("print 1;")
	b := sourcehash.Digest("print 1;")
	c := sourcehash.Digest("print 2;")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded BLAKE2b-256: 32 bytes -> 64 hex chars
}
