package sr25519

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/gtank/merlin"
	r255 "github.com/gtank/ristretto255"
)

// SigningContext is the domain-separation label compiled into every
// signature this package produces and verifies by default. Independent
// implementations must agree on it to interoperate.
var SigningContext = []byte("substrate")

// Signature is a Schnorr signature: the nonce commitment R followed by
// the response scalar s.
type Signature struct {
	r *r255.Element
	s *r255.Scalar
}

// NewSignature parses a 64-byte signature. Some encoders set the top
// bit of the final byte as a format marker; it is accepted and cleared
// before the scalar is decoded.
func NewSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes, got %d", ErrInvalidLength, SignatureLength, len(b))
	}
	e := r255.NewElement()
	if err := e.Decode(b[:32]); err != nil {
		return nil, fmt.Errorf("%w: signature R is not a valid group element", ErrInvalidEncoding)
	}
	sb := make([]byte, 32)
	copy(sb, b[32:])
	sb[31] &= 0x7f
	s := r255.NewScalar()
	if err := s.Decode(sb); err != nil {
		return nil, fmt.Errorf("%w: signature s is not a canonical scalar", ErrInvalidEncoding)
	}
	return &Signature{r: e, s: s}, nil
}

// Bytes returns the 64-byte encoding, R then s.
func (sig *Signature) Bytes() []byte {
	b := make([]byte, 0, SignatureLength)
	b = sig.r.Encode(b)
	return sig.s.Encode(b)
}

// newSigningTranscript binds the context and message the way every
// sr25519 implementation does, so challenges agree across them.
func newSigningTranscript(ctx, msg []byte) *merlin.Transcript {
	t := merlin.NewTranscript("SigningContext")
	t.AppendMessage([]byte(""), ctx)
	t.AppendMessage([]byte("sign-bytes"), msg)
	return t
}

// challengeScalar extracts a wide challenge from the transcript and
// reduces it mod the group order.
func challengeScalar(t *merlin.Transcript, label []byte) *r255.Scalar {
	return r255.NewScalar().FromUniformBytes(t.ExtractBytes(label, 64))
}

// witnessScalar builds the synthetic signing nonce: deterministic in
// the nonce seed and the signed inputs, with fresh entropy mixed in so
// no two signers ever share one. Nonces never cross the wire, so this
// construction is private to the signer.
func witnessScalar(rng io.Reader, nonce *[32]byte, pub, ctx, msg []byte) (*r255.Scalar, error) {
	var entropy [32]byte
	if _, err := io.ReadFull(rng, entropy[:]); err != nil {
		return nil, err
	}
	t := merlin.NewTranscript("SigningNonce")
	t.AppendMessage([]byte("nonce-seed"), nonce[:])
	t.AppendMessage([]byte("sign:pk"), pub)
	t.AppendMessage([]byte("ctx"), ctx)
	t.AppendMessage([]byte("sign-bytes"), msg)
	t.AppendMessage([]byte("entropy"), entropy[:])
	return r255.NewScalar().FromUniformBytes(t.ExtractBytes([]byte("signing"), 64)), nil
}

// Sign produces a signature over msg, bound to pub under ctx. If rng is
// nil, a safe CSPRNG seeds the nonce entropy.
func (sk *SecretKey) Sign(rng io.Reader, pub *PublicKey, ctx, msg []byte) (*Signature, error) {
	if rng == nil {
		rng = rand.Reader
	}
	pubBytes := pub.Bytes()

	t := newSigningTranscript(ctx, msg)
	t.AppendMessage([]byte("proto-name"), []byte("Schnorr-sig"))
	t.AppendMessage([]byte("sign:pk"), pubBytes)

	r, err := witnessScalar(rng, &sk.nonce, pubBytes, ctx, msg)
	if err != nil {
		return nil, err
	}
	R := r255.NewElement().ScalarBaseMult(r)
	t.AppendMessage([]byte("sign:R"), R.Encode(nil))

	k := challengeScalar(t, []byte("sign:c"))
	s := r255.NewScalar().Multiply(k, sk.scalar())
	s = s.Add(s, r)

	return &Signature{r: R, s: s}, nil
}

// Sign signs msg under the fixed signing context.
func (kp *Keypair) Sign(rng io.Reader, msg []byte) (*Signature, error) {
	return kp.secret.Sign(rng, kp.public, SigningContext, msg)
}

// Verify reports whether sig is a valid signature over msg by this key
// under ctx. It returns false, never an error, for any mismatch.
func (pk *PublicKey) Verify(sig *Signature, ctx, msg []byte) bool {
	if sig == nil || sig.r == nil || sig.s == nil {
		return false
	}
	t := newSigningTranscript(ctx, msg)
	t.AppendMessage([]byte("proto-name"), []byte("Schnorr-sig"))
	t.AppendMessage([]byte("sign:pk"), pk.Bytes())
	t.AppendMessage([]byte("sign:R"), sig.r.Encode(nil))

	k := challengeScalar(t, []byte("sign:c"))

	// s = r + k·key, so R must equal s·B - k·P.
	sB := r255.NewElement().ScalarBaseMult(sig.s)
	kP := r255.NewElement().ScalarMult(k, pk.key)
	rp := r255.NewElement().Subtract(sB, kP)
	return rp.Equal(sig.r) == 1
}

// Verify checks sig over msg under the fixed signing context.
func (kp *Keypair) Verify(sig *Signature, msg []byte) bool {
	return kp.public.Verify(sig, SigningContext, msg)
}

// VerifyBytes decodes and verifies in one step under the fixed signing
// context, treating malformed input as a failed verification.
func VerifyBytes(sigBytes, msg, pubBytes []byte) bool {
	sig, err := NewSignature(sigBytes)
	if err != nil {
		return false
	}
	pk, err := NewPublicKey(pubBytes)
	if err != nil {
		return false
	}
	return pk.Verify(sig, SigningContext, msg)
}
