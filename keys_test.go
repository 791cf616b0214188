package sr25519

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Vectors shared with the rust schnorrkel implementation.
var (
	knownSeedHex   = "fac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e"
	knownPublicHex = "46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a"
)

func knownKeypair(t *testing.T) *Keypair {
	t.Helper()
	seed, err := hex.DecodeString(knownSeedHex)
	require.NoError(t, err)
	kp, err := NewKeypairFromSeed(seed)
	require.NoError(t, err)
	return kp
}

func TestExpandKnownSeed(t *testing.T) {
	kp := knownKeypair(t)
	require.Equal(t, knownPublicHex, hex.EncodeToString(kp.Public().Bytes()))
	require.Len(t, kp.Bytes(), KeypairLength)
}

func TestExpandDeterministic(t *testing.T) {
	seed, err := hex.DecodeString(knownSeedHex)
	require.NoError(t, err)

	a, err := NewKeypairFromSeed(seed)
	require.NoError(t, err)
	b, err := NewKeypairFromSeed(seed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(a.Bytes(), b.Bytes()))
}

func TestKeypairRoundTrip(t *testing.T) {
	mini, err := GenerateMiniSecretKey(nil)
	require.NoError(t, err)
	kp := mini.ExpandKeypair()

	decoded, err := NewKeypair(kp.Bytes())
	require.NoError(t, err)
	require.True(t, bytes.Equal(kp.Bytes(), decoded.Bytes()))

	sk, err := NewSecretKey(kp.Secret().Bytes())
	require.NoError(t, err)
	require.True(t, kp.Public().Equal(sk.Public()))
}

func TestDecodeLengths(t *testing.T) {
	for _, n := range []int{0, 31, 33, 63, 65, 95, 97, 128} {
		buf := make([]byte, n)

		if n != MiniSecretKeyLength {
			_, err := NewMiniSecretKey(buf)
			require.ErrorIs(t, err, ErrInvalidLength, "seed length %d", n)
		}
		if n != SecretKeyLength {
			_, err := NewSecretKey(buf)
			require.ErrorIs(t, err, ErrInvalidLength, "secret length %d", n)
		}
		if n != PublicKeyLength {
			_, err := NewPublicKey(buf)
			require.ErrorIs(t, err, ErrInvalidLength, "public length %d", n)
		}
		if n != KeypairLength {
			_, err := NewKeypair(buf)
			require.ErrorIs(t, err, ErrInvalidLength, "keypair length %d", n)
		}
		if n != ChainCodeLength {
			_, err := NewChainCode(buf)
			require.ErrorIs(t, err, ErrInvalidLength, "chain code length %d", n)
		}
		if n != SignatureLength {
			_, err := NewSignature(buf)
			require.ErrorIs(t, err, ErrInvalidLength, "signature length %d", n)
		}
	}
}

func TestDecodeInvalidPoint(t *testing.T) {
	bad := bytes.Repeat([]byte{0xff}, PublicKeyLength)
	_, err := NewPublicKey(bad)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	pair := make([]byte, KeypairLength)
	copy(pair[SecretKeyLength:], bad)
	_, err = NewKeypair(pair)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestKeypairStrict(t *testing.T) {
	kp := knownKeypair(t)
	_, err := NewKeypairStrict(kp.Bytes())
	require.NoError(t, err)

	other, err := GenerateMiniSecretKey(nil)
	require.NoError(t, err)

	mixed := append(kp.Secret().Bytes(), other.ExpandKeypair().Public().Bytes()...)
	// The permissive decoder accepts externally paired material.
	_, err = NewKeypair(mixed)
	require.NoError(t, err)
	_, err = NewKeypairStrict(mixed)
	require.ErrorIs(t, err, ErrInconsistentPair)
}
