package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader converts a file into a Table.
type Reader interface {
	Read(path, sheet string) (*Table, error)
	Format() string
}

// Registry holds readers keyed by file extension.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Open reads the table at path, selecting a reader by file extension.
func (r *Registry) Open(path, sheet string) (*Table, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	rd, ok := r.readers[ext]
	if !ok {
		return nil, fmt.Errorf("no reader for %q files: %s", ext, path)
	}
	return rd.Read(path, sheet)
}

// DefaultRegistry returns a registry with the built-in CSV and XLSX
// readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(CSVReader{})
	r.Register(XLSXReader{})
	return r
}

// Open reads a table using the default registry.
func Open(path, sheet string) (*Table, error) {
	return DefaultRegistry().Open(path, sheet)
}
