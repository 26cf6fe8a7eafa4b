package marshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/funcbridge/internal/cstr"
)

func TestDuplicateANSI_ASCII(t *testing.T) {
	p := DuplicateANSI("plain ascii")
	require.NotNil(t, p)
	defer Free(p)

	assert.Equal(t, "plain ascii", cstr.GoString(p))
}

func TestDuplicateANSI_ExtendedRepertoire(t *testing.T) {
	// é is two bytes in UTF-8 but a single 0xE9 in Windows-1252.
	p := DuplicateANSI("café")
	require.NotNil(t, p)
	defer Free(p)

	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, 0}, cstr.GoBytes(p, 5))
}

func TestDuplicateANSI_UnsupportedRune(t *testing.T) {
	p := DuplicateANSI("π")
	require.NotNil(t, p)
	defer Free(p)

	// Out-of-repertoire runes become the ASCII substitute byte.
	assert.Equal(t, []byte{0x1A, 0}, cstr.GoBytes(p, 2))
}

func TestDuplicateANSI_Empty(t *testing.T) {
	p := DuplicateANSI("")
	require.NotNil(t, p)
	defer Free(p)

	assert.Equal(t, []byte{0}, cstr.GoBytes(p, 1))
}
