package atdf

import (
	"fmt"

	"github.com/OpenTraceLab/atdf2dat/pkg/devtable"
)

// segmentFields names the Device fields filled from one memory segment.
type segmentFields struct {
	size func(*devtable.Device) *uint32
	page func(*devtable.Device) *uint32 // nil if pagesize is not read
}

// segmentTable maps recognized memory-segment names to Device fields.
var segmentTable = map[string]segmentFields{
	"FUSES": {
		size: func(d *devtable.Device) *uint32 { return &d.FuseSize },
	},
	"APP_SECTION": {
		size: func(d *devtable.Device) *uint32 { return &d.AppSize },
		page: func(d *devtable.Device) *uint32 { return &d.PageSize },
	},
	"EEPROM": {
		size: func(d *devtable.Device) *uint32 { return &d.EEPROMSize },
		page: func(d *devtable.Device) *uint32 { return &d.EEPROMPageSize },
	},
	"BOOT_SECTION": {
		size: func(d *devtable.Device) *uint32 { return &d.BootSize },
	},
	"INTERNAL_SRAM": {
		size: func(d *devtable.Device) *uint32 { return &d.SRAMSize },
	},
	"LOCKBITS": {
		size: func(d *devtable.Device) *uint32 { return &d.LockSize },
	},
	"PROD_SIGNATURES": {
		size: func(d *devtable.Device) *uint32 { return &d.ProdSigSize },
	},
	"USER_SIGNATURES": {
		size: func(d *devtable.Device) *uint32 { return &d.UserSigSize },
	},
}

// SegmentNames lists the recognized memory segments in report order.
var SegmentNames = []string{
	"FUSES",
	"APP_SECTION",
	"EEPROM",
	"BOOT_SECTION",
	"INTERNAL_SRAM",
	"LOCKBITS",
	"PROD_SIGNATURES",
	"USER_SIGNATURES",
}

// readSegments fills dev from every memory-segment element. A segment that
// appears more than once overwrites the earlier values.
func (d *Document) readSegments(dev *devtable.Device) error {
	seen := make(map[string]bool, len(segmentTable))

	for _, seg := range d.root.FindElements(".//memory-segment") {
		name, err := attr(seg, "name")
		if err != nil {
			return err
		}

		fields, ok := segmentTable[name]
		if !ok {
			continue
		}

		size, err := numAttr(seg, "size")
		if err != nil {
			return fmt.Errorf("segment %s: %w", name, err)
		}
		*fields.size(dev) = size

		if fields.page != nil {
			page, err := numAttr(seg, "pagesize")
			if err != nil {
				return fmt.Errorf("segment %s: %w", name, err)
			}
			*fields.page(dev) = page
		}

		seen[name] = true
	}

	for _, name := range SegmentNames {
		if !seen[name] {
			return fmt.Errorf("%w: %s", ErrMissingSegment, name)
		}
	}
	return nil
}
