package devtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLookups(t *testing.T) {
	a := Device{Name: "xmega128a3u", Signature: 0x1e9742}
	b := Device{Name: "xmega32a4u", Signature: 0x1e9541}
	dup := Device{Name: "XMEGA32A4U", Signature: 0x1e9742}

	table := NewTable([]Device{a, b, dup})
	assert.Equal(t, 3, table.Len())

	got, ok := table.Find("XMega32A4U")
	assert.True(t, ok)
	assert.Equal(t, b, got)

	got, ok = table.FindBySignature(0x1e9742)
	assert.True(t, ok)
	assert.Equal(t, a, got, "first match wins")

	_, ok = table.Find("mega328p")
	assert.False(t, ok)

	_, ok = table.FindBySignature(0x1e950f)
	assert.False(t, ok)
}

func TestTableCopiesInput(t *testing.T) {
	devices := []Device{{Name: "xmega16a4"}}
	table := NewTable(devices)

	devices[0].Name = "changed"
	assert.Equal(t, "xmega16a4", table.Devices()[0].Name)

	out := table.Devices()
	out[0].Name = "changed"
	assert.Equal(t, "xmega16a4", table.Devices()[0].Name)
}
