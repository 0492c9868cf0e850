package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters for wallet-file encryption.
	argon2Time        = 3
	argon2Memory      = 64 * 1024 // 64 MB
	argon2Parallelism = 4
	argon2KeyLen      = 32

	// Encryption format sizes.
	saltLen     = 16
	nonceLen    = 12
	checksumLen = 4
)

// encryptPayload encrypts a wallet document with Argon2id + AES-256-GCM.
//
// Output format: salt(16B) || nonce(12B) || AES-GCM(argon2id(passphrase,salt), nonce, payload||checksum)
//
// The checksum is SHA256(payload)[:4] for verifying correct decryption.
func encryptPayload(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("wallet: failed to generate salt: %w", err)
	}

	derivedKey := argon2.IDKey(
		[]byte(passphrase),
		salt,
		argon2Time,
		argon2Memory,
		argon2Parallelism,
		argon2KeyLen,
	)

	sum := sha256.Sum256(payload)
	plaintext := make([]byte, 0, len(payload)+checksumLen)
	plaintext = append(plaintext, payload...)
	plaintext = append(plaintext, sum[:checksumLen]...)

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, fmt.Errorf("wallet: AES cipher creation failed: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("wallet: GCM creation failed: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("wallet: failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	result := make([]byte, 0, saltLen+nonceLen+len(ciphertext))
	result = append(result, salt...)
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	return result, nil
}

// decryptPayload reverses encryptPayload and verifies the embedded checksum.
func decryptPayload(encrypted []byte, passphrase string) ([]byte, error) {
	if len(encrypted) < saltLen+nonceLen+checksumLen {
		return nil, ErrDecryptionFailed
	}

	salt := encrypted[:saltLen]
	nonce := encrypted[saltLen : saltLen+nonceLen]
	ciphertext := encrypted[saltLen+nonceLen:]

	derivedKey := argon2.IDKey(
		[]byte(passphrase),
		salt,
		argon2Time,
		argon2Memory,
		argon2Parallelism,
		argon2KeyLen,
	)

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if len(plaintext) < checksumLen {
		return nil, ErrDecryptionFailed
	}

	payload := plaintext[:len(plaintext)-checksumLen]
	stored := plaintext[len(plaintext)-checksumLen:]

	sum := sha256.Sum256(payload)
	for i := 0; i < checksumLen; i++ {
		if stored[i] != sum[i] {
			return nil, ErrChecksumMismatch
		}
	}

	return payload, nil
}
