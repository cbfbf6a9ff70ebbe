package helpers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

const nonceSize = 12

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// SecretCipher encrypts stored passwords with AES-256-GCM. The key is derived
// once from a process-lifetime secret; ciphertexts are only recoverable with
// the same secret and salt.
type SecretCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher derives a 32-byte key from secret/salt via argon2id and
// builds the AEAD. The returned value is safe for concurrent use.
func NewSecretCipher(secret, salt string) (*SecretCipher, error) {
	key := argon2.IDKey([]byte(secret), []byte(salt), 1, 64*1024, 4, 32)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &SecretCipher{aead: aead}, nil
}

// Encrypt seals the plaintext with a fresh random nonce and returns
// base64(nonce || ciphertext).
func (c *SecretCipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Nothing in the HTTP surface reads passwords back;
// this exists because the stored value is ciphertext, not a one-way hash.
func (c *SecretCipher) Decrypt(encoded string) (string, error) {
	sealed, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if len(sealed) < nonceSize {
		return "", ErrCiphertextTooShort
	}
	plain, err := c.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
