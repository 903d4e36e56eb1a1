// Package devtable holds the PDI device table: one Device record per
// programmable XMEGA part, as compiled into the programmer firmware from the
// generated devices.dat file.
//
// # Overview
//
// The package provides:
//   - Device: name, packed 24-bit signature and memory layout of one part
//   - Encode/EncodeAll: the C aggregate-initializer form written to devices.dat
//   - Parser: reads a devices.dat file back into Device records
//   - Table: name and signature lookups over a set of devices
//   - Describe: a human-readable summary of one device
//
// # Usage
//
//	parser, err := devtable.NewParser()
//	file, err := parser.ParseFile("devices.dat")
//	devices, err := file.Devices()
//
//	table := devtable.NewTable(devices)
//	if dev, ok := table.FindBySignature(0x1e9742); ok {
//		devtable.Describe(os.Stdout, dev)
//	}
package devtable
