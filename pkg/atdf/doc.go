// Package atdf extracts PDI device table entries from Atmel/Microchip device
// description files (ATDF).
//
// An ATDF file describes one part: its programming interfaces, the memory
// segments of each address space and a set of named properties. For every
// interface of type "pdi" the extractor produces one devtable.Device built
// from a fixed set of memory segments and the SIGNATURE0..2 properties.
//
// Extraction does not validate the descriptor and never substitutes defaults.
// A missing segment, attribute or signature byte is an error.
package atdf
