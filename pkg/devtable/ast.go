package devtable

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrEmptyTable is returned by ReadFile for a table without entries.
var ErrEmptyTable = errors.New("device table has no entries")

// DatFile represents a parsed devices.dat file.
type DatFile struct {
	Entries []*Entry `parser:"@@*"`
}

// Entry represents one initializer block.
// Example: { "xmega128a3u", 0x1e9742, 512, ... },
type Entry struct {
	Pos lexer.Position

	Name   string   `parser:"\"{\" @String \",\""`
	Fields []string `parser:"( @Number \",\" )* \"}\" \",\"?"`
}

// Device converts the entry into a Device.
func (e *Entry) Device() (Device, error) {
	if len(e.Fields) != FieldCount {
		return Device{}, fmt.Errorf("%s: entry %q: expected %d fields, got %d",
			e.Pos, e.Name, FieldCount, len(e.Fields))
	}

	var f [FieldCount]uint32
	for i, s := range e.Fields {
		v, err := ParseLiteral32(s)
		if err != nil {
			return Device{}, fmt.Errorf("%s: entry %q field %d: %w", e.Pos, e.Name, i+1, err)
		}
		f[i] = v
	}
	return deviceFromFields(e.Name, f), nil
}

// Devices converts every entry, in file order.
func (f *DatFile) Devices() ([]Device, error) {
	devices := make([]Device, 0, len(f.Entries))
	for _, e := range f.Entries {
		d, err := e.Device()
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}
