package devtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"256", 256},
		{"0x100", 256},
		{"0X100", 256},
		{"0o400", 256},
		{"0b100000000", 256},
		{"0", 0},
		{"00", 0},
		{" 0x20 ", 32},
		{"1_000", 1000},
		{"0x1E", 0x1e},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLiteral(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLiteralDecimalAndHexAgree(t *testing.T) {
	dec, err := ParseLiteral("256")
	require.NoError(t, err)
	hex, err := ParseLiteral("0x100")
	require.NoError(t, err)
	assert.Equal(t, dec, hex)
}

func TestParseLiteralErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "0x", "010", "-1", "12k", "0xZZ"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseLiteral(input)
			assert.Error(t, err)
		})
	}
}

func TestParseLiteral32Range(t *testing.T) {
	v, err := ParseLiteral32("0xffffffff")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffffff), v)

	_, err = ParseLiteral32("0x100000000")
	assert.Error(t, err)
}
