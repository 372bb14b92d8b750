package crypto

import "errors"

var (
	// ErrSecretDestroyed is returned when a destroyed Secret is exposed.
	ErrSecretDestroyed = errors.New("secret has been destroyed")

	// ErrEmptySecret is returned when sealing an empty value.
	ErrEmptySecret = errors.New("secret is empty")

	// ErrDecryptionFailed is returned when the sealed value cannot be opened.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
)
