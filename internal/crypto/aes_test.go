package crypto

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestEncryptAES_DecryptAESInto_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"simple", []byte("hello world")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomBytes(t, AESKeySize)
			nonce := randomBytes(t, AESNonceSize)

			sealed, err := EncryptAES(key, tt.plaintext, nonce)
			require.NoError(t, err)
			assert.Len(t, sealed, AESNonceSize+len(tt.plaintext)+AESTagSize)
			assert.Equal(t, nonce, sealed[:AESNonceSize])

			opened, err := DecryptAESInto(nil, key, sealed)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, opened)
		})
	}
}

func TestDecryptAESInto_UsesDestinationCapacity(t *testing.T) {
	key := randomBytes(t, AESKeySize)
	sealed, err := EncryptAES(key, []byte("abc"), randomBytes(t, AESNonceSize))
	require.NoError(t, err)

	dst := make([]byte, 0, 3)
	opened, err := DecryptAESInto(dst, key, sealed)
	require.NoError(t, err)
	assert.Same(t, &dst[:1][0], &opened[0])
}

func TestEncryptAES_InvalidSizes(t *testing.T) {
	_, err := EncryptAES(make([]byte, 16), []byte("x"), make([]byte, AESNonceSize))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	_, err = EncryptAES(make([]byte, AESKeySize), []byte("x"), make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidNonceSize)
}

func TestDecryptAESInto_Failures(t *testing.T) {
	key := randomBytes(t, AESKeySize)
	sealed, err := EncryptAES(key, []byte("payload"), randomBytes(t, AESNonceSize))
	require.NoError(t, err)

	_, err = DecryptAESInto(nil, key, sealed[:AESNonceSize])
	assert.Error(t, err)

	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0xff
	_, err = DecryptAESInto(nil, key, tampered)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = DecryptAESInto(nil, randomBytes(t, AESKeySize), sealed)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDeriveKey(t *testing.T) {
	secret := []byte("seed")
	info := []byte(HKDFContext)

	a, err := DeriveKey(secret, nil, info, AESKeySize)
	require.NoError(t, err)
	b, err := DeriveKey(secret, nil, info, AESKeySize)
	require.NoError(t, err)
	assert.Len(t, a, AESKeySize)
	assert.Equal(t, a, b)

	c, err := DeriveKey(secret, nil, []byte("other"), AESKeySize)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// HKDF-SHA-512 output is capped at 255 * 64 bytes.
	_, err = DeriveKey(secret, nil, info, 255*64+1)
	assert.Error(t, err)
}
