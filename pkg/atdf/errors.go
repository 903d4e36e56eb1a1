package atdf

import "errors"

var (
	// ErrNoRoot is returned for documents without a root element.
	ErrNoRoot = errors.New("document has no root element")

	// ErrMissingDevice is returned when ./devices/device is absent.
	ErrMissingDevice = errors.New("no device element")

	// ErrMissingAttribute is returned when a required attribute is absent.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrMissingSegment is returned when a recognized memory segment is absent.
	ErrMissingSegment = errors.New("missing memory segment")

	// ErrMissingSignature is returned when a signature byte property is absent.
	ErrMissingSignature = errors.New("missing signature property")

	// ErrBadSignatureIndex is returned for SIGNATURE properties whose suffix is
	// not an index in 0..2.
	ErrBadSignatureIndex = errors.New("bad signature index")

	// ErrSignatureRange is returned when the packed signature does not fit
	// in 32 bits.
	ErrSignatureRange = errors.New("signature out of range")
)
