package encryption

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{name: "empty", plaintext: []byte{}},
		{name: "short text", plaintext: []byte("hello")},
		{name: "binary", plaintext: []byte{0, 1, 2, 255, 254}},
		{name: "large", plaintext: bytes.Repeat([]byte("note "), 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Encrypt(key, tt.plaintext)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(blob), MinBlobSize)

			got, err := Decrypt(key, blob)
			require.NoError(t, err)
			assert.Equal(t, len(tt.plaintext), len(got))
			assert.True(t, bytes.Equal(tt.plaintext, got))
		})
	}
}

func TestEncrypt_FreshNonce(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	a, err := Encrypt(key, []byte("same"))
	require.NoError(t, err)
	b, err := Encrypt(key, []byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a[:NonceSize], b[:NonceSize])
	assert.NotEqual(t, a, b)
}

func TestDecrypt_TamperDetection(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	blob, err := Encrypt(key, []byte("secret note body"))
	require.NoError(t, err)

	for i := 0; i < len(blob); i++ {
		for bit := 0; bit < 8; bit++ {
			tampered := make(Blob, len(blob))
			copy(tampered, blob)
			tampered[i] ^= 1 << bit

			_, err := Decrypt(key, tampered)
			require.ErrorIs(t, err, ErrInvalidCiphertext, "byte %d bit %d", i, bit)
		}
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	k1, err := GenerateKey()
	require.NoError(t, err)
	k2, err := GenerateKey()
	require.NoError(t, err)

	blob, err := Encrypt(k1, []byte("payload"))
	require.NoError(t, err)

	_, err = Decrypt(k2, blob)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestDecrypt_TooShort(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	_, err = Decrypt(key, make(Blob, NonceSize))
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = Decrypt(key, nil)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestParseBlob(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	blob, err := Encrypt(key, []byte("x"))
	require.NoError(t, err)

	parsed, err := ParseBlob(blob.String())
	require.NoError(t, err)
	assert.Equal(t, blob, parsed)

	_, err = ParseBlob("not base64!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = ParseBlob(Blob([]byte("short")).String())
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestNewKey_InvalidSize(t *testing.T) {
	_, err := NewKey(make([]byte, 16))
	assert.Error(t, err)
}

func TestWrapUnwrap(t *testing.T) {
	kek, err := GenerateKey()
	require.NoError(t, err)
	dek, err := GenerateKey()
	require.NoError(t, err)

	wrapped, err := WrapKey(kek, dek)
	require.NoError(t, err)
	assert.NotContains(t, string(wrapped), string(dek.raw))

	got, err := UnwrapKey(kek, wrapped)
	require.NoError(t, err)
	assert.True(t, dek.Equal(got))

	other, err := GenerateKey()
	require.NoError(t, err)
	_, err = UnwrapKey(other, wrapped)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
