package umbral

import (
	"fmt"
	"io"

	"github.com/rodrigodg1/umbral-go/pkg/dem"
	"github.com/rodrigodg1/umbral-go/pkg/keys"
)

// demCipher derives the DEM cipher for a shared secret, wiping the secret's
// serialized form afterwards.
func demCipher(ss *SharedSecret) (*dem.Cipher, error) {
	material := ss.Bytes()
	defer func() {
		for i := range material {
			material[i] = 0
		}
	}()
	return dem.NewCipher(material)
}

// Encrypt encrypts plaintext under the delegating public key, returning the
// capsule and the DEM ciphertext. The capsule's canonical encoding is bound
// to the ciphertext as associated data, so neither can be swapped out.
func Encrypt(rand io.Reader, delegating *keys.PublicKey, plaintext []byte) (*Capsule, []byte, error) {
	capsule, ss, err := Encapsulate(rand, delegating)
	if err != nil {
		return nil, nil, err
	}
	defer ss.Zero()

	cipher, err := demCipher(ss)
	if err != nil {
		return nil, nil, fmt.Errorf("umbral.Encrypt: %w", err)
	}
	capsuleBytes, err := capsule.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("umbral.Encrypt: %w", err)
	}
	ciphertext, err := cipher.Encrypt(rand, plaintext, capsuleBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("umbral.Encrypt: %w", err)
	}
	return capsule, ciphertext, nil
}

// DecryptOriginal decrypts a ciphertext with the delegating secret key
// itself, with no proxies involved.
func DecryptOriginal(delegating *keys.SecretKey, capsule *Capsule, ciphertext []byte) ([]byte, error) {
	ss, err := capsule.OpenOriginal(delegating)
	if err != nil {
		return nil, err
	}
	defer ss.Zero()
	return decryptWithSecret(ss, capsule, ciphertext)
}

// DecryptReencrypted decrypts a re-encrypted ciphertext on the receiving
// side, given at least threshold verified capsule fragments.
func DecryptReencrypted(receiving *keys.SecretKey, delegating *keys.PublicKey, capsule *Capsule,
	threshold int, cfrags []*VerifiedCapsuleFrag, ciphertext []byte) ([]byte, error) {
	ss, err := capsule.OpenReencrypted(receiving, delegating, threshold, cfrags)
	if err != nil {
		return nil, err
	}
	defer ss.Zero()
	return decryptWithSecret(ss, capsule, ciphertext)
}

func decryptWithSecret(ss *SharedSecret, capsule *Capsule, ciphertext []byte) ([]byte, error) {
	cipher, err := demCipher(ss)
	if err != nil {
		return nil, fmt.Errorf("umbral.Decrypt: %w", err)
	}
	capsuleBytes, err := capsule.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("umbral.Decrypt: %w", err)
	}
	return cipher.Decrypt(ciphertext, capsuleBytes)
}
