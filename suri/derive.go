package suri

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dotsig/sr25519"
)

// DeriveKeypair walks path from kp: hard junctions re-expand through
// the derived mini secret, soft junctions offset in place.
func DeriveKeypair(kp *sr25519.Keypair, path []Junction) *sr25519.Keypair {
	for _, j := range path {
		if j.Hard {
			kp, _ = kp.HardDerive(j.ChainCode())
		} else {
			kp, _ = kp.SoftDerive(j.ChainCode())
		}
	}
	return kp
}

// DerivePublic walks a soft-only path from pub. A hard junction fails
// with ErrHardPath, since it requires the secret.
func DerivePublic(pub *sr25519.PublicKey, path []Junction) (*sr25519.PublicKey, error) {
	for _, j := range path {
		if j.Hard {
			return nil, ErrHardPath
		}
		pub, _ = pub.SoftDerive(j.ChainCode())
	}
	return pub, nil
}

// Keypair resolves a full secret URI to a keypair.
func Keypair(s string) (*sr25519.Keypair, error) {
	u, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return u.Keypair()
}

// Keypair resolves the URI: the phrase — a mnemonic or a 0x-prefixed
// 32-byte hex seed, defaulting to the development phrase when absent —
// is expanded and the derivation path walked from it.
func (u *SURI) Keypair() (*sr25519.Keypair, error) {
	phrase := u.Phrase
	if phrase == "" {
		phrase = sr25519.DevPhrase
	}

	var kp *sr25519.Keypair
	if strings.HasPrefix(phrase, "0x") {
		seed, err := hex.DecodeString(strings.TrimPrefix(phrase, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid hex seed: %v", ErrParse, err)
		}
		kp, err = sr25519.NewKeypairFromSeed(seed)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		kp, err = sr25519.KeypairFromMnemonic(phrase, u.Password)
		if err != nil {
			return nil, err
		}
	}
	return DeriveKeypair(kp, u.Path), nil
}
