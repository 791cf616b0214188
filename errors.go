package sr25519

import "errors"

var (
	// ErrInvalidLength indicates key material of the wrong byte width.
	ErrInvalidLength = errors.New("sr25519: invalid length")

	// ErrInvalidEncoding indicates bytes that do not decode to a valid
	// group element or canonical scalar.
	ErrInvalidEncoding = errors.New("sr25519: invalid encoding")

	// ErrInconsistentPair indicates a keypair whose embedded public key
	// does not match its secret scalar.
	ErrInconsistentPair = errors.New("sr25519: public key does not match secret scalar")

	// ErrInvalidMnemonic indicates a phrase that fails bip39 validation.
	ErrInvalidMnemonic = errors.New("sr25519: invalid mnemonic")
)
