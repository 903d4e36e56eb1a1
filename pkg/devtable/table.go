package devtable

import "strings"

// Table is an ordered, read-only set of devices.
type Table struct {
	devices []Device
}

// NewTable returns a table over a copy of devices.
func NewTable(devices []Device) *Table {
	t := &Table{devices: make([]Device, len(devices))}
	copy(t.devices, devices)
	return t
}

// Find returns the first device whose name matches, ignoring case.
func (t *Table) Find(name string) (Device, bool) {
	for _, d := range t.devices {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Device{}, false
}

// FindBySignature returns the first device with the given signature.
func (t *Table) FindBySignature(sig uint32) (Device, bool) {
	for _, d := range t.devices {
		if d.Signature == sig {
			return d, true
		}
	}
	return Device{}, false
}

// Devices returns the devices in table order.
func (t *Table) Devices() []Device {
	out := make([]Device, len(t.devices))
	copy(out, t.devices)
	return out
}

// Len returns the number of devices.
func (t *Table) Len() int {
	return len(t.devices)
}
