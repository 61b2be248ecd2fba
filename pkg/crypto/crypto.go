// Package crypto implements the Chrome-family cookie encryption scheme:
// a PBKDF2-HMAC-SHA1 key derived from the OS safe-storage password and
// AES-128-CBC decryption of v10/v11-prefixed values.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyLength is the derived AES key size in bytes.
	KeyLength = 16
	// VersionPrefixLength is the size of the v10/v11 tag on encrypted values.
	VersionPrefixLength = 3

	salt = "saltysalt"
	iv   = "                "
)

var (
	// ErrDecryption reports an AES/CBC-layer failure: wrong key length,
	// truncated ciphertext, or an impossible padding length.
	ErrDecryption = errors.New("could not decrypt value")
	// ErrDecode reports that decrypted bytes are not valid UTF-8, which
	// usually means the value was decrypted with the wrong key.
	ErrDecode = errors.New("decrypted value is not valid utf-8")
)

// DeriveKey derives the 16-byte AES key from the safe-storage secret.
// The iteration count depends on where the secret came from: 1003 for the
// macOS keychain, 1 for the Linux default password.
func DeriveKey(secret []byte, iterations int) []byte {
	return pbkdf2.Key(secret, []byte(salt), iterations, KeyLength, sha1.New)
}

// HasVersionPrefix reports whether value carries a recognized encryption
// version tag (the ASCII bytes "v10" or "v11").
func HasVersionPrefix(value []byte) bool {
	if len(value) < VersionPrefixLength {
		return false
	}
	tag := value[:VersionPrefixLength]
	return bytes.Equal(tag, []byte("v10")) || bytes.Equal(tag, []byte("v11"))
}

// DecryptValue decrypts a v10/v11-prefixed cookie value with the derived
// key and strips the trailing padding. The fixed all-space IV is a
// property of the Chromium format. The padding length is taken from the
// last plaintext byte without checking the padding bytes themselves,
// matching the browser's own scheme.
func DecryptValue(encrypted, key []byte) (string, error) {
	if len(encrypted) < VersionPrefixLength+aes.BlockSize {
		return "", fmt.Errorf("%w: ciphertext too short (%d bytes)", ErrDecryption, len(encrypted))
	}
	ciphertext := encrypted[VersionPrefixLength:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrDecryption, len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, []byte(iv)).CryptBlocks(plaintext, ciphertext)

	padding := int(plaintext[len(plaintext)-1])
	if padding > aes.BlockSize {
		return "", fmt.Errorf("%w: invalid padding length %d", ErrDecryption, padding)
	}
	plaintext = plaintext[:len(plaintext)-padding]

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w (wrong key or profile?)", ErrDecode)
	}
	return string(plaintext), nil
}
