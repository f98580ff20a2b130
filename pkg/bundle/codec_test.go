package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		raw := []byte{0x00, 0x5d, 0xff, 0x10, 0x42}
		text := Encode(raw)
		back, err := Decode(text)
		require.NoError(t, err)
		assert.Equal(t, raw, back)
	})

	t.Run("empty input", func(t *testing.T) {
		back, err := Decode(Encode(nil))
		require.NoError(t, err)
		assert.Empty(t, back)
	})

	t.Run("undecodable text", func(t *testing.T) {
		_, err := Decode("not base64!!!")
		require.Error(t, err)
		assert.True(t, IsInvalidFormat(err))

		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, StageBase64, fe.Stage)
	})
}

func TestCompressDecompress(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		doc := []byte(`{"text":{"main.blocks":"<xml/>"},"header":{"name":"Lights"}}`)
		raw, err := Compress(doc)
		require.NoError(t, err)

		back, err := Decompress(raw)
		require.NoError(t, err)
		assert.Equal(t, doc, back)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decompress([]byte{0x5d, 0x00, 0x00, 0x00, 0x01})
		require.Error(t, err)
		assert.True(t, IsInvalidFormat(err))
	})

	t.Run("truncated stream", func(t *testing.T) {
		raw, err := Compress([]byte(`{"text":{},"header":{}}`))
		require.NoError(t, err)

		_, err = Decompress(raw[:len(raw)-4])
		require.Error(t, err)
		assert.True(t, IsInvalidFormat(err))
	})

	t.Run("empty stream", func(t *testing.T) {
		_, err := Decompress(nil)
		require.Error(t, err)
		assert.True(t, IsInvalidFormat(err))
	})
}

func TestDecodeAndDecompress(t *testing.T) {
	doc := []byte(`{"source":"{\"project.json\":\"{}\"}","meta":{"name":"Rover"}}`)

	text, err := CompressAndEncode(doc)
	require.NoError(t, err)

	back, err := DecodeAndDecompress(text)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestDecodeAndDecompressRejectsPlainBase64(t *testing.T) {
	// Valid Base64 wrapping bytes that were never compressed.
	_, err := DecodeAndDecompress(Encode([]byte("plain bytes")))
	require.Error(t, err)
	assert.True(t, IsInvalidFormat(err))
}
