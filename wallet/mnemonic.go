package wallet

import (
	"fmt"

	"github.com/bsv-blockchain/go-sdk/compat/bip39"
)

// Accepted mnemonic entropy sizes in bits.
const (
	Mnemonic12Words = 128
	Mnemonic24Words = 256
)

// GenerateMnemonic draws fresh entropy and encodes it as a BIP39 phrase.
// Only the 12-word (128-bit) and 24-word (256-bit) sizes are accepted.
func GenerateMnemonic(entropyBits int) (string, error) {
	if entropyBits != Mnemonic12Words && entropyBits != Mnemonic24Words {
		return "", ErrInvalidEntropy
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("wallet: generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("wallet: encode mnemonic: %w", err)
	}

	return mnemonic, nil
}

// ValidateMnemonic reports whether the phrase is well-formed BIP39 with a
// valid checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SeedFromMnemonic stretches a mnemonic and optional passphrase into the
// 64-byte seed that master keys are built from. An empty passphrase is
// valid and still participates in the stretch.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("wallet: derive seed: %w", err)
	}

	return seed, nil
}
