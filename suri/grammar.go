package suri

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SURILexerRules tokenizes a secret URI. Order matters: the password
// marker must win over a hard junction, and a hard junction over a soft
// one.
var SURILexerRules = []lexer.Rule{
	{Name: "Password", Pattern: `///[^/]*`, Action: nil},
	{Name: "Hard", Pattern: `//`, Action: nil},
	{Name: "Soft", Pattern: `/`, Action: nil},
	{Name: "Component", Pattern: `[^/]+`, Action: nil},
}

var DefaultParserOptions = []participle.Option{
	participle.Lexer(lexer.MustSimple(SURILexerRules)),
	participle.UseLookahead(1),
}

type rawSURI struct {
	Phrase    string        `parser:"@Component?"`
	Junctions []rawJunction `parser:"@@*"`
	Password  *string       `parser:"@Password?"`
}

type rawJunction struct {
	Hard string `parser:"  \"//\" @Component"`
	Soft string `parser:"| \"/\" @Component"`
}

var suriParser = participle.MustBuild(&rawSURI{}, DefaultParserOptions...)
