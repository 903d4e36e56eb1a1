package devtable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	second := tiny412
	second.Name = "xmega32a4u"
	second.Signature = 0x1e9541

	var input string
	input += tiny412.String()
	input += second.String()

	parser, err := NewParser()
	require.NoError(t, err)

	file, err := parser.ParseString(input)
	require.NoError(t, err)
	require.Len(t, file.Entries, 2)

	devices, err := file.Devices()
	require.NoError(t, err)
	assert.Equal(t, []Device{tiny412, second}, devices)
}

func TestParseComments(t *testing.T) {
	input := `// generated
  { "a1", 0x1e9600, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, }, /* last */
  { "a2", 0x1e9601, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, }
`
	parser, err := NewParser()
	require.NoError(t, err)

	file, err := parser.ParseString(input)
	require.NoError(t, err)

	devices, err := file.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "a2", devices[1].Name)
	assert.Equal(t, uint32(0x1e9601), devices[1].Signature)
	assert.Equal(t, uint32(10), devices[1].ProdSigSize)
}

func TestParseEmpty(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	file, err := parser.ParseString("\n")
	require.NoError(t, err)

	devices, err := file.Devices()
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestParseWrongFieldCount(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	file, err := parser.ParseString(`{ "short", 0x1e9600, 1, 2, },`)
	require.NoError(t, err)

	_, err = file.Devices()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<string>:1:1: entry \"short\": expected 11 fields, got 3")
}

func TestParseSyntaxError(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	_, err = parser.ParseString(`{ 0x1e9600, "name", }`)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.dat")
	require.NoError(t, os.WriteFile(path, []byte(tiny412.String()), 0o644))

	devices, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Device{tiny412}, devices)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

func TestReadFileErrorsNameTheFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.dat")
	require.NoError(t, os.WriteFile(bad, []byte("  {\n    0x1e9742,\n  },\n"), 0o644))
	_, err := ReadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad+":2:5")

	short := filepath.Join(dir, "short.dat")
	require.NoError(t, os.WriteFile(short, []byte("// header\n{ \"a1\", 0x1e9600, 1, },\n"), 0o644))
	_, err = ReadFile(short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), short+":2:1")

	empty := filepath.Join(dir, "empty.dat")
	require.NoError(t, os.WriteFile(empty, []byte("// nothing yet\n"), 0o644))
	_, err = ReadFile(empty)
	assert.ErrorIs(t, err, ErrEmptyTable)
}
