// Package loans resolves loan identifiers against a directory of JSON
// loan files. The catalog is read-only and stateless; every lookup hits
// the filesystem so newly dropped files are visible immediately.
package loans

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seantiz/loanops/internal/model"
)

// ErrNotFound is returned when no loan file exists for an ID.
var ErrNotFound = errors.New("loan file not found")

// Catalog locates and parses loan files under a single directory.
type Catalog struct {
	dir string
}

// NewCatalog creates a catalog over the given directory.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Get loads the loan file for the given ID. IDs are accepted with or
// without the .json suffix.
func (c *Catalog) Get(id string) (*model.LoanFile, error) {
	path := filepath.Join(c.dir, id+".json")
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(c.dir, id)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
	}
	return c.load(path)
}

// List returns summaries of every parseable loan file, sorted by loan ID.
// Files that fail to parse are skipped.
func (c *Catalog) List() []model.LoanSummary {
	paths, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return nil
	}

	summaries := make([]model.LoanSummary, 0, len(paths))
	for _, p := range paths {
		loan, err := c.load(p)
		if err != nil {
			continue
		}
		summaries = append(summaries, loan.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LoanID < summaries[j].LoanID
	})
	return summaries
}

// Count returns the number of valid, parseable loan files.
func (c *Catalog) Count() int {
	return len(c.List())
}

func (c *Catalog) load(path string) (*model.LoanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read loan file: %w", err)
	}

	var loan model.LoanFile
	if err := json.Unmarshal(data, &loan); err != nil {
		return nil, fmt.Errorf("parse loan file %s: %w", filepath.Base(path), err)
	}
	if loan.LoanID == "" {
		loan.LoanID = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return &loan, nil
}
