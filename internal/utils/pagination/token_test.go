package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeSeqToken(t *testing.T) {
	token := EncodeSeqToken(42)
	assert.NotEmpty(t, token, "Token should not be empty")

	seq, err := DecodeSeqToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, int64(42), seq, "Sequence should match after decode")

	// Zero and large values round-trip too
	for _, want := range []int64{0, 1, 9223372036854775807} {
		got, err := DecodeSeqToken(EncodeSeqToken(want))
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecodeSeqToken_Invalid(t *testing.T) {
	_, err := DecodeSeqToken("not-base64-!!!")
	assert.Error(t, err, "Invalid base64 should return an error")

	// Valid base64 but not a number
	_, err = DecodeSeqToken("aGVsbG8=")
	assert.Error(t, err, "Non-numeric payload should return an error")
}
