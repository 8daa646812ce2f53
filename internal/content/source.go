package content

import (
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the catalog file looked up inside a content directory.
const FileName = "catalog.yaml"

//go:embed catalog.yaml
var embeddedFS embed.FS

// EmbeddedFS exposes the catalog compiled into the binary as a read-only afero.Fs.
func EmbeddedFS() afero.Fs {
	return afero.FromIOFS{FS: embeddedFS}
}

// Load reads and validates dir/catalog.yaml from fs.
func Load(fs afero.Fs, dir string) (*Catalog, error) {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// Source serves the current catalog and can reload it from its directory.
// Readers always see a complete catalog; a failed reload keeps the previous one.
type Source struct {
	fs      afero.Fs
	dir     string
	current atomic.Pointer[Catalog]
}

// NewSource loads the catalog from dir on fs.
func NewSource(fs afero.Fs, dir string) (*Source, error) {
	s := &Source{fs: fs, dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmbeddedSource loads the catalog compiled into the binary.
func NewEmbeddedSource() (*Source, error) {
	return NewSource(EmbeddedFS(), ".")
}

// Catalog returns the current catalog.
func (s *Source) Catalog() *Catalog {
	return s.current.Load()
}

// Dir returns the directory the catalog is read from.
func (s *Source) Dir() string {
	return s.dir
}

// Reload re-reads the catalog file.
func (s *Source) Reload() error {
	c, err := Load(s.fs, s.dir)
	if err != nil {
		return err
	}
	s.current.Store(c)
	slog.Debug("Content catalog loaded", "dir", s.dir, "sections", len(c.Sections))
	return nil
}
