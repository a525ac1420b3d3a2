package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes combat parameter lines. A comma, whitespace or a comma padded
// by whitespace is one separator; values must be separated, so "5-2" is an error.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "DiceMacro", Pattern: `\d*[dD]\d+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Sep", Pattern: `\s*,\s*|\s+`},
})

var (
	quickParser = build[QuickInput]()
	diceParser  = build[DiceInput]()
	fieldParser = build[FieldInput]()
)

func build[G any]() *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(Lexer),
	)
}
