package devtable

import (
	"fmt"
	"io"
	"strings"
)

// FieldCount is the number of numeric fields following the name in an
// encoded entry.
const FieldCount = 11

// Device describes the memory layout and signature of one PDI device.
// Field order matches the encoded entry and the firmware's device_t.
type Device struct {
	Name           string // "xmega128a3u"
	Signature      uint32 // 0x1e9742
	PageSize       uint32 // flash page size in bytes
	SRAMSize       uint32
	EEPROMSize     uint32
	EEPROMPageSize uint32
	AppSize        uint32 // application section
	BootSize       uint32 // boot section
	FuseSize       uint32
	LockSize       uint32
	UserSigSize    uint32 // user signature row
	ProdSigSize    uint32 // production signature row
}

// fields returns the numeric fields in encoding order.
func (d Device) fields() [FieldCount]uint32 {
	return [FieldCount]uint32{
		d.Signature,
		d.PageSize,
		d.SRAMSize,
		d.EEPROMSize,
		d.EEPROMPageSize,
		d.AppSize,
		d.BootSize,
		d.FuseSize,
		d.LockSize,
		d.UserSigSize,
		d.ProdSigSize,
	}
}

// deviceFromFields is the inverse of fields.
func deviceFromFields(name string, f [FieldCount]uint32) Device {
	return Device{
		Name:           name,
		Signature:      f[0],
		PageSize:       f[1],
		SRAMSize:       f[2],
		EEPROMSize:     f[3],
		EEPROMPageSize: f[4],
		AppSize:        f[5],
		BootSize:       f[6],
		FuseSize:       f[7],
		LockSize:       f[8],
		UserSigSize:    f[9],
		ProdSigSize:    f[10],
	}
}

// Encode writes d as one devices.dat entry.
//
// The signature is written as 0x plus six lowercase hex digits, every other
// field as plain decimal, each line ending in a comma:
//
//	{
//	  "xmega128a3u",
//	  0x1e9742,
//	  512,
//	  ...
//	},
//
// Each entry is indented by two spaces in the output.
func Encode(w io.Writer, d Device) error {
	var b strings.Builder

	b.WriteString("  {\n")
	fmt.Fprintf(&b, "    \"%s\",\n", d.Name)
	for i, v := range d.fields() {
		if i == 0 {
			fmt.Fprintf(&b, "    0x%06x,\n", v)
		} else {
			fmt.Fprintf(&b, "    %d,\n", v)
		}
	}
	b.WriteString("  },\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write entry %q: %w", d.Name, err)
	}
	return nil
}

// EncodeAll writes each device in order.
func EncodeAll(w io.Writer, devices []Device) error {
	for _, d := range devices {
		if err := Encode(w, d); err != nil {
			return err
		}
	}
	return nil
}

// String returns the encoded entry.
func (d Device) String() string {
	var b strings.Builder
	_ = Encode(&b, d)
	return b.String()
}
