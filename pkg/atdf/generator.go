package atdf

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/atdf2dat/pkg/devtable"
	"go.uber.org/zap"
)

// Generator writes devices.dat entries for a sequence of ATDF files.
type Generator struct {
	out    io.Writer
	logger *zap.Logger
}

// NewGenerator creates a generator writing to out. A nil logger disables
// logging.
func NewGenerator(out io.Writer, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{out: out, logger: logger}
}

// Process extracts the devices of one file and writes their entries. It
// returns the number of entries written. Entries extracted before an error
// in the same file are written before the error is returned.
func (g *Generator) Process(path string) (int, error) {
	log := g.logger.With(zap.String("path", path))

	doc, err := LoadFile(path)
	if err != nil {
		return 0, err
	}

	devices, extractErr := doc.Extract()
	if err := devtable.EncodeAll(g.out, devices); err != nil {
		return 0, err
	}
	if extractErr != nil {
		return len(devices), fmt.Errorf("%s: %w", path, extractErr)
	}
	if len(devices) == 0 {
		log.Debug("no pdi interface, skipping")
		return 0, nil
	}

	log.Debug("wrote device entry",
		zap.String("device", devices[0].Name),
		zap.String("signature", fmt.Sprintf("0x%06x", devices[0].Signature)),
		zap.Int("entries", len(devices)))
	return len(devices), nil
}

// ProcessAll processes paths in order and stops at the first error. Entries
// of files processed before the failure remain written.
func (g *Generator) ProcessAll(paths []string) (int, error) {
	total := 0
	for _, path := range paths {
		n, err := g.Process(path)
		total += n
		if err != nil {
			return total, err
		}
	}

	g.logger.Debug("generation complete",
		zap.Int("files", len(paths)),
		zap.Int("entries", total))
	return total, nil
}
