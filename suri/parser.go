// Package suri parses substrate secret URIs — an optional seed phrase
// followed by `/soft` and `//hard` junctions and an optional
// `///password` — and turns junction labels into the chain codes the
// sr25519 derivation engine consumes.
package suri

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/dotsig/sr25519"
)

var (
	ErrEmptyURI = errors.New("suri: empty secret URI")
	ErrParse    = errors.New("suri: malformed secret URI")
	ErrHardPath = errors.New("suri: public derivation cannot cross a hard junction")
)

// Junction is one derivation step of a path.
type Junction struct {
	Label string
	Hard  bool
}

// SURI is a parsed secret URI.
type SURI struct {
	Phrase   string
	Path     []Junction
	Password string
}

// Parse splits a secret URI into phrase, derivation path and password.
func Parse(s string) (*SURI, error) {
	if s == "" {
		return nil, ErrEmptyURI
	}
	raw := &rawSURI{}
	if err := suriParser.ParseString("suri", s, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	u := &SURI{Phrase: raw.Phrase}
	for _, j := range raw.Junctions {
		if j.Hard != "" {
			u.Path = append(u.Path, Junction{Label: j.Hard, Hard: true})
		} else {
			u.Path = append(u.Path, Junction{Label: j.Soft})
		}
	}
	if raw.Password != nil {
		u.Password = strings.TrimPrefix(*raw.Password, "///")
	}
	return u, nil
}

// ParsePath parses a bare derivation path such as "//Alice/stash",
// rejecting anything carrying a phrase or password.
func ParsePath(s string) ([]Junction, error) {
	u, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Phrase != "" || u.Password != "" {
		return nil, fmt.Errorf("%w: expected a bare derivation path", ErrParse)
	}
	return u.Path, nil
}

// ChainCode encodes the junction label into a 32-byte chain code: a
// decimal label as a little-endian u64, anything else as its
// compact-length-prefixed bytes; the encoding is blake2b-hashed when it
// exceeds 32 bytes and zero-padded otherwise.
func (j Junction) ChainCode() sr25519.ChainCode {
	enc := encodeLabel(j.Label)
	if len(enc) > sr25519.ChainCodeLength {
		return sr25519.ChainCode(blake2b.Sum256(enc))
	}
	var cc sr25519.ChainCode
	copy(cc[:], enc)
	return cc
}

func encodeLabel(label string) []byte {
	if n, err := strconv.ParseUint(label, 10, 64); err == nil {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, n)
		return b
	}
	return append(compactLen(len(label)), label...)
}

// compactLen is the SCALE compact encoding of a byte length.
func compactLen(n int) []byte {
	switch {
	case n < 1<<6:
		return []byte{byte(n) << 2}
	case n < 1<<14:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(n)<<2|0b01)
		return b
	default:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(n)<<2|0b10)
		return b
	}
}
