package devtable

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser reads devices.dat files.
type Parser struct {
	parser *participle.Parser[DatFile]
}

// NewParser builds the devices.dat grammar.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[DatFile](
		participle.Lexer(DatLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse reads a table from r. name is only used for positions in errors,
// which read "name:line:col: ...".
func (p *Parser) Parse(name string, r io.Reader) (*DatFile, error) {
	file, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("invalid device table: %w", err)
	}
	return file, nil
}

// ParseString reads a table held in memory.
func (p *Parser) ParseString(input string) (*DatFile, error) {
	return p.Parse("<string>", strings.NewReader(input))
}

// ParseFile reads the table at filename.
func (p *Parser) ParseFile(filename string) (*DatFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open device table: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

// ReadFile parses filename and converts all of its entries. An empty table
// is an error, since the firmware needs at least one device.
func ReadFile(filename string) ([]Device, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	devices, err := file.Devices()
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyTable)
	}
	return devices, nil
}
