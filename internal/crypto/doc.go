// Package crypto keeps API credentials sealed in process memory.
//
// A [Secret] never holds its plaintext at rest. On construction the token is
// encrypted with AES-256-GCM under a key derived by HKDF-SHA-512 from a fresh
// random seed, and the caller's copy is zeroed. The plaintext only exists
// inside the callback passed to [Secret.Expose], in a scratch buffer that is
// cleared as soon as the callback returns.
//
// # Rendering
//
// Every rendering path of a Secret (String, GoString, fmt verbs, JSON and
// text marshalling) yields [Redacted], so a Secret that ends up in a log line
// or an error message does not leak the token.
//
// # Lifetime
//
// [Secret.Destroy] zeroes the derived key and the ciphertext. A runtime
// cleanup performs the same zeroing when an undestroyed Secret is collected.
package crypto
