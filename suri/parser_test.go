package suri

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotsig/sr25519"
)

func TestParseFullURI(t *testing.T) {
	u, err := Parse("bottom drive obey lake curtain smoke basket hold race lonely fit walk//Alice/stash///secret")
	require.NoError(t, err)
	require.Equal(t, sr25519.DevPhrase, u.Phrase)
	require.Equal(t, []Junction{
		{Label: "Alice", Hard: true},
		{Label: "stash"},
	}, u.Path)
	require.Equal(t, "secret", u.Password)
}

func TestParsePathOnly(t *testing.T) {
	u, err := Parse("//Alice")
	require.NoError(t, err)
	require.Empty(t, u.Phrase)
	require.Empty(t, u.Password)
	require.Equal(t, []Junction{{Label: "Alice", Hard: true}}, u.Path)
}

func TestParseHexSeedPhrase(t *testing.T) {
	u, err := Parse("0xfac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e/foo")
	require.NoError(t, err)
	require.Equal(t, "0xfac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e", u.Phrase)
	require.Equal(t, []Junction{{Label: "foo"}}, u.Path)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrEmptyURI)
}

func TestParsePathRejectsPhrase(t *testing.T) {
	_, err := ParsePath("phrase//Alice")
	require.ErrorIs(t, err, ErrParse)

	_, err = ParsePath("//Alice///pw")
	require.ErrorIs(t, err, ErrParse)

	path, err := ParsePath("/one//two")
	require.NoError(t, err)
	require.Equal(t, []Junction{{Label: "one"}, {Label: "two", Hard: true}}, path)
}

func TestJunctionChainCode(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		// Compact length prefix, then the label, zero padded.
		{"foo", "0c666f6f00000000000000000000000000000000000000000000000000000000"},
		{"Alice", "14416c6963650000000000000000000000000000000000000000000000000000"},
		// Decimal labels encode as a little-endian u64.
		{"42", "2a00000000000000000000000000000000000000000000000000000000000000"},
		{"0", "0000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, c := range cases {
		cc := Junction{Label: c.label}.ChainCode()
		require.Equal(t, c.want, hex.EncodeToString(cc[:]), "label %q", c.label)
	}
}

func TestJunctionChainCodeLongLabel(t *testing.T) {
	long := Junction{Label: "a junction label long enough that its encoding cannot be padded"}
	cc := long.ChainCode()

	require.Equal(t, cc, Junction{Label: long.Label}.ChainCode())

	other := Junction{Label: long.Label + " indeed"}.ChainCode()
	require.NotEqual(t, cc, other)
}
