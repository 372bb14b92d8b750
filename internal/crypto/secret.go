package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
	"sync"
)

// Secret holds a credential sealed in memory. The zero value is not usable;
// create Secrets with [NewSecret] or [NewSecretString]. A Secret must not be
// copied after first use.
type Secret struct {
	mu     sync.Mutex
	key    []byte
	sealed []byte
	size   int
}

// NewSecret seals plaintext and zeroes it before returning.
func NewSecret(plaintext []byte) (*Secret, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptySecret
	}
	defer clear(plaintext)

	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	key, err := DeriveKey(seed, nil, []byte(HKDFContext), AESKeySize)
	clear(seed)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, AESNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		clear(key)
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed, err := EncryptAES(key, plaintext, nonce)
	if err != nil {
		clear(key)
		return nil, err
	}

	s := &Secret{key: key, sealed: sealed, size: len(plaintext)}
	runtime.AddCleanup(s, zeroBuffers, [][]byte{key, sealed})
	return s, nil
}

// NewSecretString seals a string value. The string itself is immutable and
// cannot be scrubbed, so callers holding long-lived copies should prefer
// [NewSecret] with a byte slice they own.
func NewSecretString(value string) (*Secret, error) {
	return NewSecret([]byte(value))
}

func zeroBuffers(bufs [][]byte) {
	for _, b := range bufs {
		clear(b)
	}
}

// Expose opens the secret into a scratch buffer for the duration of fn.
// The buffer is zeroed when fn returns; fn must not retain it.
func (s *Secret) Expose(fn func(plaintext []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return ErrSecretDestroyed
	}

	plaintext, err := DecryptAESInto(make([]byte, 0, s.size), s.key, s.sealed)
	if err != nil {
		return err
	}
	defer clear(plaintext)

	return fn(plaintext)
}

// Destroy zeroes the key and ciphertext. It is safe to call more than once.
func (s *Secret) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.key)
	clear(s.sealed)
	s.key = nil
	s.sealed = nil
}

// Destroyed reports whether Destroy has been called.
func (s *Secret) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key == nil
}

func (s *Secret) String() string { return Redacted }

// GoString keeps %#v from dumping the sealed buffers.
func (s *Secret) GoString() string { return Redacted }

// Format implements fmt.Formatter so that every verb renders as Redacted.
func (s *Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, Redacted)
}

// MarshalText implements encoding.TextMarshaler.
func (s *Secret) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// MarshalJSON implements json.Marshaler.
func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}
