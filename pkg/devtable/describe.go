package devtable

import (
	"fmt"
	"io"
)

// Describe writes a human-readable summary of d. Section sizes of the
// application, boot, SRAM and EEPROM areas are shown in KiB.
func Describe(w io.Writer, d Device) error {
	_, err := fmt.Fprintf(w,
		"Device:      %12s\n"+
			"Chip ID:         0x%06x\n"+
			"Page size:      %9d\n"+
			"Application:    %8dK\n"+
			"Boot:           %8dK\n"+
			"SRAM:           %8dK\n"+
			"EEPROM:         %8dK\n"+
			"EEPROM page:    %9d\n"+
			"Fuses:          %9d\n"+
			"Lock bytes:     %9d\n"+
			"User row:       %9d\n"+
			"Production row: %9d\n",
		d.Name, d.Signature, d.PageSize, d.AppSize>>10,
		d.BootSize>>10, d.SRAMSize>>10, d.EEPROMSize>>10,
		d.EEPROMPageSize, d.FuseSize, d.LockSize,
		d.UserSigSize, d.ProdSigSize)
	return err
}
