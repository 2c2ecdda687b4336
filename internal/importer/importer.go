// Package importer reads bank export CSVs into raw rows ready for
// transformation.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/revcsv-dev/revcsv/internal/model"
)

// Result is a parsed export: its raw rows plus any schema diagnostics.
// Missing columns are a warning, never a failure; transformation proceeds
// on whatever columns are present.
type Result struct {
	Rows           []model.RawRow
	MissingColumns []string
}

// Parser converts a bank CSV export into raw rows.
type Parser interface {
	Parse(r io.Reader) (*Result, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&RevolutParser{})
	return r
}

// processedDir is the subdirectory converted inputs are moved into.
const processedDir = "processed"

// outputSuffix marks files written by a previous conversion.
const outputSuffix = "_out.csv"

// OutputName returns the conversion output name for an input file, e.g.
// "export.csv" becomes "export_out.csv". Scan skips files carrying this
// suffix so outputs written into the scanned directory are never re-read
// as inputs.
func OutputName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return base + outputSuffix
}

// Scan returns the CSV files directly inside dir, skipping outputs of
// earlier conversions.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, outputSuffix) {
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

// MarkProcessed moves a converted input from dir to dir/processed/.
func MarkProcessed(dir, fileName string) error {
	src := filepath.Join(dir, fileName)
	dstDir := filepath.Join(dir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
