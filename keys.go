// Package sr25519 implements Schnorr signatures over the ristretto255
// group with hierarchical key derivation driven by 32-byte chain codes,
// interoperable with the substrate "sr25519" scheme.
package sr25519

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	r255 "github.com/gtank/ristretto255"
)

// Byte widths of the fixed-size encodings.
const (
	MiniSecretKeyLength = 32
	SecretKeyLength     = 64
	PublicKeyLength     = 32
	KeypairLength       = 96
	ChainCodeLength     = 32
	SignatureLength     = 64
)

// MiniSecretKey is the 32-byte seed a keypair expands from.
type MiniSecretKey struct {
	key [MiniSecretKeyLength]byte
}

// NewMiniSecretKey parses a 32-byte seed. Any 32-byte value is valid.
func NewMiniSecretKey(b []byte) (*MiniSecretKey, error) {
	if len(b) != MiniSecretKeyLength {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidLength, MiniSecretKeyLength, len(b))
	}
	m := &MiniSecretKey{}
	copy(m.key[:], b)
	return m, nil
}

// GenerateMiniSecretKey creates a seed from rng. If rng is nil, a safe
// CSPRNG is used.
func GenerateMiniSecretKey(rng io.Reader) (*MiniSecretKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	m := &MiniSecretKey{}
	if _, err := io.ReadFull(rng, m.key[:]); err != nil {
		return nil, err
	}
	return m, nil
}

// ExpandKeypair expands the seed into a full keypair. The seed is
// hashed with SHA-512; the low half becomes the secret scalar after
// ed25519-style clamping and division by the cofactor, the high half
// becomes the signing nonce seed.
func (m *MiniSecretKey) ExpandKeypair() *Keypair {
	h := sha512.Sum512(m.key[:])
	sk := &SecretKey{}
	copy(sk.key[:], h[:32])
	sk.key[0] &= 248
	sk.key[31] &= 63
	sk.key[31] |= 64
	divideScalarByCofactor(sk.key[:])
	copy(sk.nonce[:], h[32:])
	return &Keypair{secret: sk, public: sk.Public()}
}

// Bytes returns the 32-byte seed.
func (m *MiniSecretKey) Bytes() []byte {
	b := make([]byte, MiniSecretKeyLength)
	copy(b, m.key[:])
	return b
}

// divideScalarByCofactor shifts the little-endian scalar right by three
// bits, undoing the multiply-by-eight the clamped ed25519 expansion
// implies.
func divideScalarByCofactor(s []byte) {
	l := len(s) - 1
	low := byte(0)
	for i := range s {
		r := s[l-i] & 0x07
		s[l-i] >>= 3
		s[l-i] += low
		low = r << 5
	}
}

// SecretKey is an expanded secret key: the signing scalar and the
// 32-byte nonce seed feeding synthetic nonce generation.
type SecretKey struct {
	key   [32]byte
	nonce [32]byte
}

// NewSecretKey parses a 64-byte expanded secret key. Any 64-byte value
// is syntactically valid; the scalar half is reduced before use.
func NewSecretKey(b []byte) (*SecretKey, error) {
	if len(b) != SecretKeyLength {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrInvalidLength, SecretKeyLength, len(b))
	}
	sk := &SecretKey{}
	copy(sk.key[:], b[:32])
	copy(sk.nonce[:], b[32:])
	return sk, nil
}

// scalar returns the signing scalar reduced mod the group order.
func (sk *SecretKey) scalar() *r255.Scalar {
	return scalarFromBytes(sk.key)
}

// Public computes the public key scalar·B.
func (sk *SecretKey) Public() *PublicKey {
	return &PublicKey{key: r255.NewElement().ScalarBaseMult(sk.scalar())}
}

// Keypair pairs the secret with its computed public key.
func (sk *SecretKey) Keypair() *Keypair {
	return &Keypair{secret: sk, public: sk.Public()}
}

// Bytes returns the 64-byte encoding, scalar then nonce seed.
func (sk *SecretKey) Bytes() []byte {
	b := make([]byte, 0, SecretKeyLength)
	b = append(b, sk.key[:]...)
	return append(b, sk.nonce[:]...)
}

// scalarFromBytes reduces 32 little-endian bytes mod the group order.
// Canonical inputs decode to themselves.
func scalarFromBytes(b [32]byte) *r255.Scalar {
	var wide [64]byte
	copy(wide[:], b[:])
	return r255.NewScalar().FromUniformBytes(wide[:])
}

// PublicKey is a point on the ristretto255 curve.
type PublicKey struct {
	key *r255.Element
}

// NewPublicKey parses a 32-byte compressed ristretto point.
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLength {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidLength, PublicKeyLength, len(b))
	}
	e := r255.NewElement()
	if err := e.Decode(b); err != nil {
		return nil, fmt.Errorf("%w: public key is not a valid group element", ErrInvalidEncoding)
	}
	return &PublicKey{key: e}, nil
}

// Bytes returns the 32-byte compressed point.
func (pk *PublicKey) Bytes() []byte {
	return pk.key.Encode(nil)
}

// Equal reports whether two public keys are the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.key.Equal(other.key) == 1
}

// Keypair is a secret key together with its public key, encoded as the
// 64 secret bytes followed by the 32 public bytes.
type Keypair struct {
	secret *SecretKey
	public *PublicKey
}

// NewKeypair parses a 96-byte keypair. The embedded public key must be
// a valid group element but is not checked against the secret scalar;
// callers that need that guarantee use NewKeypairStrict.
func NewKeypair(b []byte) (*Keypair, error) {
	if len(b) != KeypairLength {
		return nil, fmt.Errorf("%w: keypair must be %d bytes, got %d", ErrInvalidLength, KeypairLength, len(b))
	}
	sk, err := NewSecretKey(b[:SecretKeyLength])
	if err != nil {
		return nil, err
	}
	pk, err := NewPublicKey(b[SecretKeyLength:])
	if err != nil {
		return nil, err
	}
	return &Keypair{secret: sk, public: pk}, nil
}

// NewKeypairStrict parses a 96-byte keypair and additionally rejects
// pairs whose public key does not match the secret scalar.
func NewKeypairStrict(b []byte) (*Keypair, error) {
	kp, err := NewKeypair(b)
	if err != nil {
		return nil, err
	}
	if !kp.public.Equal(kp.secret.Public()) {
		return nil, ErrInconsistentPair
	}
	return kp, nil
}

// NewKeypairFromSeed expands a 32-byte seed into a keypair.
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	m, err := NewMiniSecretKey(seed)
	if err != nil {
		return nil, err
	}
	return m.ExpandKeypair(), nil
}

// Secret returns the secret half.
func (kp *Keypair) Secret() *SecretKey {
	return kp.secret
}

// Public returns the public half.
func (kp *Keypair) Public() *PublicKey {
	return kp.public
}

// Bytes returns the 96-byte encoding.
func (kp *Keypair) Bytes() []byte {
	b := make([]byte, 0, KeypairLength)
	b = append(b, kp.secret.Bytes()...)
	return append(b, kp.public.Bytes()...)
}

// ChainCode steers a derivation step. The core treats it as opaque
// bytes; the suri package builds chain codes from path labels.
type ChainCode [ChainCodeLength]byte

// NewChainCode parses a 32-byte chain code. Any 32-byte value is valid.
func NewChainCode(b []byte) (ChainCode, error) {
	var cc ChainCode
	if len(b) != ChainCodeLength {
		return cc, fmt.Errorf("%w: chain code must be %d bytes, got %d", ErrInvalidLength, ChainCodeLength, len(b))
	}
	copy(cc[:], b)
	return cc, nil
}
