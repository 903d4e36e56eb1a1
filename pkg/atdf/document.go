package atdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/atdf2dat/pkg/devtable"
	"github.com/beevik/etree"
)

// PDIInterface is the interface type that makes a device eligible for the
// table.
const PDIInterface = "pdi"

// Document is a parsed ATDF file.
type Document struct {
	root *etree.Element
}

// Load parses an ATDF document from a reader
func Load(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return newDocument(doc)
}

// LoadString parses an ATDF document from a string
func LoadString(input string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(input); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return newDocument(doc)
}

// LoadFile parses an ATDF document from a file path
func LoadFile(filename string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filename); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return newDocument(doc)
}

func newDocument(doc *etree.Document) (*Document, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{root: root}, nil
}

// PDIInterfaces returns the number of interface elements of type "pdi".
func (d *Document) PDIInterfaces() (int, error) {
	n := 0
	for _, iface := range d.root.FindElements(".//interface") {
		typ, err := attr(iface, "type")
		if err != nil {
			return 0, err
		}
		if typ == PDIInterface {
			n++
		}
	}
	return n, nil
}

// DeviceName returns the table name of the first device in the document.
func (d *Document) DeviceName() (string, error) {
	dev := d.root.FindElement("./devices/device")
	if dev == nil {
		return "", ErrMissingDevice
	}
	name, err := attr(dev, "name")
	if err != nil {
		return "", err
	}
	return DeriveName(name), nil
}

// DeriveName turns an ATDF device name into a table name: lower case without
// the two-letter vendor prefix ("ATxmega128A3U" becomes "xmega128a3u").
// Names of two characters or fewer yield "".
func DeriveName(raw string) string {
	r := []rune(strings.ToLower(raw))
	if len(r) <= 2 {
		return ""
	}
	return string(r[2:])
}

// Extract returns one device per pdi interface in the document, or nil if
// there is none. All returned records are identical.
//
// Interfaces are visited in document order. If a later interface is
// malformed, the records of the pdi interfaces before it are returned along
// with the error.
func (d *Document) Extract() ([]devtable.Device, error) {
	var (
		devices []devtable.Device
		dev     *devtable.Device
	)

	for _, iface := range d.root.FindElements(".//interface") {
		typ, err := attr(iface, "type")
		if err != nil {
			return devices, err
		}
		if typ != PDIInterface {
			continue
		}

		if dev == nil {
			built, err := d.Device()
			if err != nil {
				return devices, err
			}
			dev = &built
		}
		devices = append(devices, *dev)
	}
	return devices, nil
}

// Device builds the table record from the document's name, memory segments
// and signature properties.
func (d *Document) Device() (devtable.Device, error) {
	var dev devtable.Device

	name, err := d.DeviceName()
	if err != nil {
		return dev, err
	}
	dev.Name = name

	if err := d.readSegments(&dev); err != nil {
		return dev, err
	}

	sig, err := d.Signature()
	if err != nil {
		return dev, err
	}
	dev.Signature = sig

	return dev, nil
}

func attr(e *etree.Element, key string) (string, error) {
	a := e.SelectAttr(key)
	if a == nil {
		return "", fmt.Errorf("%w: <%s> has no %q", ErrMissingAttribute, e.Tag, key)
	}
	return a.Value, nil
}

func numAttr(e *etree.Element, key string) (uint32, error) {
	s, err := attr(e, key)
	if err != nil {
		return 0, err
	}
	v, err := devtable.ParseLiteral32(s)
	if err != nil {
		return 0, fmt.Errorf("<%s> %s: %w", e.Tag, key, err)
	}
	return v, nil
}
