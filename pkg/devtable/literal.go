package devtable

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLiteral parses an unsigned integer literal as written in descriptor
// attributes: 0x, 0o and 0b prefixes select the base, anything else is
// decimal. Surrounding whitespace and '_' digit separators are accepted.
// Decimal literals with a leading zero ("010") are rejected rather than read
// as octal.
func ParseLiteral(s string) (uint64, error) {
	return parseLiteral(s, 64)
}

// ParseLiteral32 is ParseLiteral limited to 32 bits.
func ParseLiteral32(s string) (uint32, error) {
	v, err := parseLiteral(s, 32)
	return uint32(v), err
}

func parseLiteral(s string, bits int) (uint64, error) {
	t := strings.TrimSpace(s)

	if len(t) > 1 && t[0] == '0' && (isDigit(t[1]) || t[1] == '_') {
		if strings.Trim(t, "0_") != "" {
			return 0, fmt.Errorf("invalid numeric literal %q: leading zero in decimal literal", s)
		}
		t = "0"
	}

	v, err := strconv.ParseUint(t, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric literal %q: %w", s, err)
	}
	return v, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
