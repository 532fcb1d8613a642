// Package dem is the data encapsulation half of the hybrid scheme:
// XChaCha20-Poly1305 under a key derived from the KEM shared secret.
package dem

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the size of the derived symmetric key.
const KeySize = chacha20poly1305.KeySize

// kdfContext is the key derivation label. Changing it changes every
// derived key, so it is part of the wire protocol.
const kdfContext = "umbral-go DEM key v1"

// ErrAuthenticationFailed is returned when a ciphertext fails tag
// verification, either because it was tampered with or because it is
// bound to different associated data.
var ErrAuthenticationFailed = errors.New("dem: ciphertext authentication failed")

// Cipher encrypts and decrypts payloads under a key derived from
// KEM output. It is safe for concurrent use.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives a symmetric key from the given key material and
// instantiates the AEAD with it.
func NewCipher(keyMaterial []byte) (*Cipher, error) {
	key := make([]byte, KeySize)
	blake3.DeriveKey(kdfContext, keyMaterial, key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("dem.NewCipher: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random nonce, binding
// associatedData to the ciphertext. The nonce is prepended to the output.
func (c *Cipher) Encrypt(rand io.Reader, plaintext, associatedData []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(rand, nonce); err != nil {
		return nil, fmt.Errorf("dem.Encrypt: nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, associatedData), nil
}

// Decrypt opens a ciphertext produced by Encrypt. It returns
// ErrAuthenticationFailed on any tampering or associated data mismatch,
// and never returns partial plaintext.
func (c *Cipher) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < c.aead.NonceSize()+c.aead.Overhead() {
		return nil, ErrAuthenticationFailed
	}
	nonce, sealed := ciphertext[:c.aead.NonceSize()], ciphertext[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, sealed, associatedData)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
