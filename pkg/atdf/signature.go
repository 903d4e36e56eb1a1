package atdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/atdf2dat/pkg/devtable"
)

// SignaturePrefix starts the names of the signature byte properties.
const SignaturePrefix = "SIGNATURE"

// SignatureBytes is the number of signature bytes packed into a Device.
const SignatureBytes = 3

// Signature packs the SIGNATURE0..2 properties into a 24-bit value with
// SIGNATURE0 as the most significant byte.
func (d *Document) Signature() (uint32, error) {
	var (
		sig  uint64
		seen [SignatureBytes]bool
	)

	for _, prop := range d.root.FindElements(".//property") {
		name, err := attr(prop, "name")
		if err != nil {
			return 0, err
		}
		if !strings.HasPrefix(name, SignaturePrefix) {
			continue
		}

		idx, err := strconv.Atoi(name[len(SignaturePrefix):])
		if err != nil || idx < 0 || idx >= SignatureBytes {
			return 0, fmt.Errorf("%w: %s", ErrBadSignatureIndex, name)
		}

		raw, err := attr(prop, "value")
		if err != nil {
			return 0, fmt.Errorf("property %s: %w", name, err)
		}
		value, err := devtable.ParseLiteral(raw)
		if err != nil {
			return 0, fmt.Errorf("property %s: %w", name, err)
		}
		if value > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %s=%s", ErrSignatureRange, name, raw)
		}

		sig += value << (8 * (SignatureBytes - 1 - idx))
		seen[idx] = true
	}

	for i, ok := range seen {
		if !ok {
			return 0, fmt.Errorf("%w: %s%d", ErrMissingSignature, SignaturePrefix, i)
		}
	}
	if sig > math.MaxUint32 {
		return 0, fmt.Errorf("%w: 0x%x", ErrSignatureRange, sig)
	}
	return uint32(sig), nil
}
