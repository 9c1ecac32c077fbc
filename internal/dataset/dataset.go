// Package dataset loads data-driven test parameters from CSV and XLSX sheets.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Record is one data row keyed by normalized column name.
type Record struct {
	Line   int // 1-based line (CSV) or row (XLSX) in the source
	Fields map[string]string
}

// Get returns the trimmed value of col, or "" when the column is absent.
func (r Record) Get(col string) string {
	return strings.TrimSpace(r.Fields[NormalizeColumn(col)])
}

// Table is a loaded sheet.
type Table struct {
	Name   string
	Header []string
	Rows   []Record
}

// Has reports whether the table has column col.
func (t *Table) Has(col string) bool {
	col = NormalizeColumn(col)
	for _, h := range t.Header {
		if h == col {
			return true
		}
	}
	return false
}

// NormalizeColumn lower-cases a header cell and joins its words with "_".
// "Case ID" -> "case_id"
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}

// Loader converts a data file into a Table.
type Loader interface {
	Load(r io.Reader) (*Table, error)
	Format() string
}

// Registry holds loaders by format.
type Registry struct {
	loaders map[string]Loader
}

// FileInfo describes a data file in the data directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds a loader. Panics on duplicate format.
func (r *Registry) Register(l Loader) {
	key := strings.ToLower(l.Format())
	if _, ok := r.loaders[key]; ok {
		panic("duplicate loader format: " + key)
	}
	r.loaders[key] = l
}

// Get returns the loader for format, or nil.
func (r *Registry) Get(format string) Loader {
	return r.loaders[strings.ToLower(format)]
}

// Supports reports whether a loader exists for path's extension.
func (r *Registry) Supports(path string) bool {
	return r.Get(formatOf(path)) != nil
}

// LoadFile loads path with the loader registered for its extension.
func (r *Registry) LoadFile(path string) (*Table, error) {
	l := r.Get(formatOf(path))
	if l == nil {
		return nil, fmt.Errorf("no loader for %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Base(path), err)
	}
	t.Name = filepath.Base(path)
	return t, nil
}

// DefaultRegistry returns a registry with all built-in loaders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVLoader{})
	r.Register(&XLSXLoader{})
	return r
}

// Scan returns the data files in dir that the default registry can load.
// Office lock files ("~$name.xlsx") are skipped.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data dir: %w", err)
	}

	reg := DefaultRegistry()
	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), "~$") {
			continue
		}
		if !reg.Supports(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func formatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// newTable builds a Table from a header row and data rows. lines holds the
// source line of each row.
func newTable(header []string, rows [][]string, lines []int) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	cols := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		c := NormalizeColumn(h)
		if c == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		seen[c] = true
		cols[i] = c
	}

	t := &Table{Header: cols}
	for i, row := range rows {
		if len(row) > len(cols) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", lines[i], len(row), len(cols))
		}
		if blank(row) {
			continue
		}
		fields := make(map[string]string, len(cols))
		for j, c := range cols {
			if j < len(row) {
				fields[c] = row[j]
			} else {
				fields[c] = ""
			}
		}
		t.Rows = append(t.Rows, Record{Line: lines[i], Fields: fields})
	}
	return t, nil
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
