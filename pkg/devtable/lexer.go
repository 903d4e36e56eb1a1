package devtable

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DatLexer defines the lexical structure of devices.dat files.
// The file is a run of C initializer entries, so only strings, integers,
// braces, commas and C comments appear.
var DatLexer = lexer.MustSimple([]lexer.SimpleRule{
	// C and C++ style comments
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},

	{Name: "Whitespace", Pattern: `\s+`},

	// Device name
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Hex signature or decimal size
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|[0-9]+`},

	{Name: "Punct", Pattern: `[{},]`},
})
