package sr25519

import (
	"crypto/sha512"
	"fmt"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// DevPhrase is the well-known development mnemonic. Accounts derived
// from it hold no real secrets; it exists so tooling and tests agree on
// a deterministic root.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

const (
	mnemonicSaltPrefix = "mnemonic"
	mnemonicRounds     = 2048
)

// GenerateMnemonic returns a fresh bip39 phrase with the given entropy
// strength in bits (128 for 12 words, 256 for 24).
func GenerateMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic computes the 32-byte mini secret seed named by a
// phrase and password. The KDF runs over the raw entropy rather than
// the phrase text, which is the substrate convention and deliberately
// differs from plain bip39 seed derivation.
func SeedFromMnemonic(phrase, password string) ([]byte, error) {
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}
	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	seed := pbkdf2.Key(entropy, []byte(mnemonicSaltPrefix+password), mnemonicRounds, 64, sha512.New)
	return seed[:MiniSecretKeyLength], nil
}

// KeypairFromMnemonic expands the keypair a phrase and password name.
func KeypairFromMnemonic(phrase, password string) (*Keypair, error) {
	seed, err := SeedFromMnemonic(phrase, password)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed)
}
