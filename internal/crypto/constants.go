package crypto

const (
	// HKDFContext is the info string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "mailroutes:credential:v1"

	// SeedSize is the size of the random seed a Secret's key is derived from.
	SeedSize = 32

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// Redacted is what a Secret renders as.
	Redacted = "[REDACTED]"
)
