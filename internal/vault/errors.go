package vault

import "errors"

var (
	// ErrKeyInit means the encryption key could not be loaded or created.
	// The vault refuses to operate without a key; values are never written
	// in plaintext as a fallback.
	ErrKeyInit = errors.New("encryption key initialization failed")

	// ErrDecrypt means a value could not be decrypted: malformed envelope,
	// unavailable key version or tampered ciphertext.
	ErrDecrypt = errors.New("decryption failed")
)
