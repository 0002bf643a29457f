package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieRoundTrip(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	id := NewSessionID()
	decoded, err := codec.Decode(codec.Encode(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestDecodeRejectsTamperedValue(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	value := codec.Encode("abc123")
	tampered := "zzz999" + value[len("abc123"):]

	_, err := codec.Decode(tampered)
	assert.Error(t, err)
}

func TestDecodeRejectsForeignSignature(t *testing.T) {
	ours := NewCookieCodec("test-secret")
	theirs := NewCookieCodec("other-secret")

	_, err := ours.Decode(theirs.Encode("abc123"))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedValue(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	for _, value := range []string{"", "no-dot", ".sig-without-id"} {
		_, err := codec.Decode(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, ".")
}
