package dem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCipherForTest(t *testing.T, material string) *Cipher {
	t.Helper()
	c, err := NewCipher([]byte(material))
	require.NoError(t, err)
	return c
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c := newCipherForTest(t, "shared secret material")
	aad := []byte("capsule bytes")

	ct, err := c.Encrypt(rand.Reader, []byte("peace at dawn"), aad)
	require.NoError(t, err)

	pt, err := c.Decrypt(ct, aad)
	require.NoError(t, err)
	assert.Equal(t, []byte("peace at dawn"), pt)
}

func TestEncryptEmptyPlaintext(t *testing.T) {
	c := newCipherForTest(t, "material")
	ct, err := c.Encrypt(rand.Reader, nil, []byte("aad"))
	require.NoError(t, err)
	pt, err := c.Decrypt(ct, []byte("aad"))
	require.NoError(t, err)
	assert.Empty(t, pt)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	c := newCipherForTest(t, "material")
	aad := []byte("aad")
	ct, err := c.Encrypt(rand.Reader, []byte("payload"), aad)
	require.NoError(t, err)

	for i := 0; i < len(ct); i += 7 {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 1
		_, err := c.Decrypt(tampered, aad)
		assert.ErrorIs(t, err, ErrAuthenticationFailed, "bit flip at byte %d must be detected", i)
	}
}

func TestDecryptWrongAssociatedData(t *testing.T) {
	c := newCipherForTest(t, "material")
	ct, err := c.Encrypt(rand.Reader, []byte("payload"), []byte("capsule A"))
	require.NoError(t, err)

	_, err = c.Decrypt(ct, []byte("capsule B"))
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestDecryptWrongKey(t *testing.T) {
	c1 := newCipherForTest(t, "material one")
	c2 := newCipherForTest(t, "material two")
	ct, err := c1.Encrypt(rand.Reader, []byte("payload"), nil)
	require.NoError(t, err)

	_, err = c2.Decrypt(ct, nil)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestDecryptTruncated(t *testing.T) {
	c := newCipherForTest(t, "material")
	_, err := c.Decrypt([]byte("short"), nil)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNoncesAreFresh(t *testing.T) {
	c := newCipherForTest(t, "material")
	ct1, err := c.Encrypt(rand.Reader, []byte("payload"), nil)
	require.NoError(t, err)
	ct2, err := c.Encrypt(rand.Reader, []byte("payload"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, ct1, ct2, "two encryptions of the same payload must differ")
}
