package labelgen

import (
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/hack-pad/hackpadfs"

	"github.com/kittclouds/unitlabel/pkg/label"
)

// OutputPath is where the generated recognizer lives, relative to the
// project root.
const OutputPath = "pkg/recognizer/find_generated.go"

// Config holds generator settings
type Config struct {
	Root    string      `json:"root"`    // project root on the filesystem
	Verbose bool        `json:"verbose"` // extra diagnostics; never changes output
	Table   label.Table `json:"-"`
	Options Options     `json:"-"`
}

// DefaultConfig returns a config for the built-in table in the current
// directory.
func DefaultConfig() Config {
	return Config{
		Root:    ".",
		Table:   label.Default(),
		Options: DefaultOptions(),
	}
}

// Target returns the path of the generated file on the filesystem.
func (c Config) Target() string {
	return path.Join(c.Root, OutputPath)
}

// Run orders the table, renders the recognizer and writes it under
// cfg.Root. Table errors stop the run before anything is written.
func Run(fsys hackpadfs.FS, cfg Config, logger *log.Logger) error {
	ordered, err := label.Order(cfg.Table)
	if err != nil {
		return fmt.Errorf("invalid label table: %w", err)
	}

	src, err := Generate(ordered, cfg.Options)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		describe(logger, ordered)
	}

	w := &Writer{FS: fsys, Path: cfg.Target()}
	if err := w.Write(src); err != nil {
		return err
	}

	if cfg.Verbose {
		logger.Printf("wrote %d bytes to %s", len(src), w.Path)
	}
	return nil
}

func describe(logger *log.Logger, o label.Ordered) {
	logger.Printf("%d labels, longest %d bytes", o.Len(), o.MaxLen())
	for i := 0; i < o.Len(); i++ {
		e := o.At(i)
		logger.Printf("  %2d  %-14q %-12s %d bytes", i, e.Label, e.Unit, e.Len())
	}
	for _, ov := range label.Overlaps(o) {
		logger.Printf("  %q is tried after %s", ov.Entry.Label, strings.Join(quoteAll(ov.Labels(o)), ", "))
	}
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
