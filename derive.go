package sr25519

import (
	"github.com/gtank/merlin"
	r255 "github.com/gtank/ristretto255"
)

// newDerivationTranscript starts the chain-code derivation transcript
// shared by the hard and soft modes.
func newDerivationTranscript(cc ChainCode) *merlin.Transcript {
	t := merlin.NewTranscript("SchnorrRistrettoHDKD")
	t.AppendMessage([]byte("sign-bytes"), nil)
	t.AppendMessage([]byte("chain-code"), cc[:])
	return t
}

// HardDerive derives a child mini secret from the secret scalar and cc,
// along with the child chain code. The child bears no algebraic
// relation to the parent public key: without the secret there is no way
// to compute it.
func (sk *SecretKey) HardDerive(cc ChainCode) (*MiniSecretKey, ChainCode) {
	t := newDerivationTranscript(cc)
	t.AppendMessage([]byte("secret-key"), sk.scalar().Encode(nil))

	child := &MiniSecretKey{}
	copy(child.key[:], t.ExtractBytes([]byte("HDKD-hard"), MiniSecretKeyLength))
	var childCC ChainCode
	copy(childCC[:], t.ExtractBytes([]byte("HDKD-chaincode"), ChainCodeLength))
	return child, childCC
}

// HardDerive derives a child keypair by expanding the hard-derived mini
// secret.
func (kp *Keypair) HardDerive(cc ChainCode) (*Keypair, ChainCode) {
	mini, childCC := kp.secret.HardDerive(cc)
	return mini.ExpandKeypair(), childCC
}

// deriveScalarAndChainCode computes the soft-derivation offset. Both
// soft entry points go through here, so the child public keys they
// produce agree by construction.
func (pk *PublicKey) deriveScalarAndChainCode(cc ChainCode) (*r255.Scalar, ChainCode) {
	t := newDerivationTranscript(cc)
	t.AppendMessage([]byte("public-key"), pk.Bytes())

	sc := challengeScalar(t, []byte("HDKD-scalar"))
	var childCC ChainCode
	copy(childCC[:], t.ExtractBytes([]byte("HDKD-chaincode"), ChainCodeLength))
	return sc, childCC
}

// SoftDerive computes the child public key P + H(P, cc)·B. No secret is
// required.
func (pk *PublicKey) SoftDerive(cc ChainCode) (*PublicKey, ChainCode) {
	sc, childCC := pk.deriveScalarAndChainCode(cc)
	child := r255.NewElement().ScalarBaseMult(sc)
	child = child.Add(child, pk.key)
	return &PublicKey{key: child}, childCC
}

// SoftDerive offsets the secret scalar by the shared soft-derivation
// scalar and refreshes the nonce seed from the parent nonce and cc. The
// child public key always equals the one SoftDerive on the parent
// public key alone yields.
func (kp *Keypair) SoftDerive(cc ChainCode) (*Keypair, ChainCode) {
	sc, childCC := kp.public.deriveScalarAndChainCode(cc)

	key := r255.NewScalar().Add(kp.secret.scalar(), sc)
	child := &SecretKey{}
	copy(child.key[:], key.Encode(nil))

	// The nonce is not part of the public algebraic relationship, so it
	// is refreshed independently.
	nt := merlin.NewTranscript("HDKD-nonce")
	nt.AppendMessage([]byte("nonce"), kp.secret.nonce[:])
	nt.AppendMessage([]byte("chain-code"), cc[:])
	copy(child.nonce[:], nt.ExtractBytes([]byte("nonce"), 32))

	pub := r255.NewElement().ScalarBaseMult(sc)
	pub = pub.Add(pub, kp.public.key)
	return &Keypair{secret: child, public: &PublicKey{key: pub}}, childCC
}
