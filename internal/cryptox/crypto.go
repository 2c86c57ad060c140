// Package cryptox wraps the crypto primitives used by larkstore: AES-256-GCM
// sealing for values at rest, argon2id key derivation for password-protected
// exports, and SHA-256 checksums for backup integrity.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"

	"github.com/larkstore/larkstore/internal/common"
)

// NonceSize is the GCM nonce length in bytes. Every Seal call draws a fresh
// random nonce; nonces are stored alongside the ciphertext, never reused.
const NonceSize = 12

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// NewAEAD returns an AES-GCM AEAD for the given key. The key must be a
// valid AES length; larkstore always uses KeySize (AES-256).
func NewAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-256-GCM under key.
//
// A new random nonce is generated per call, so encrypting the same
// plaintext twice yields different ciphertexts. The nonce and ciphertext
// are returned separately; both are required to Open.
func Seal(plaintext, key []byte) (nonce, ciphertext []byte, err error) {
	aead, err := NewAEAD(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = common.GenerateRandByteArray(NonceSize)
	ciphertext = aead.Seal(nil, nonce, plaintext, nil)
	return nonce, ciphertext, nil
}

// Open decrypts ciphertext produced by Seal. It fails if the key or nonce do
// not match or the ciphertext was modified; GCM authentication rejects
// tampered data rather than returning garbage.
func Open(nonce, ciphertext, key []byte) ([]byte, error) {
	aead, err := NewAEAD(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}

// DeriveKey stretches a password into a KeySize key with argon2id.
// Parameters: time=1, memory=64MiB, threads=4.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// Checksum returns the hex SHA-256 digest of data.
func Checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
