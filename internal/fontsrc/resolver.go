// internal/fontsrc/resolver.go
package fontsrc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/sysfont"
	"go.uber.org/zap"
)

// ErrNotFound is the sentinel wrapped by every *NotFoundError.
var ErrNotFound = errors.New("font not found")

// NotFoundError names a requested family that no catalog entry matches.
type NotFoundError struct {
	Family string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("font %q not found", e.Family) }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Entry is one installed font file.
type Entry struct {
	Family string
	Name   string // full face name, e.g. "DejaVu Sans Bold"
	Path   string
}

// Catalog lists installed fonts.
type Catalog interface {
	Fonts() []Entry
}

// SystemCatalog scans the platform font directories once, on first use.
type SystemCatalog struct {
	once    sync.Once
	entries []Entry
}

func (c *SystemCatalog) Fonts() []Entry {
	c.once.Do(func() {
		finder := sysfont.NewFinder(&sysfont.FinderOpts{
			Extensions: []string{".ttf", ".otf", ".ttc", ".otc"},
		})
		for _, f := range finder.List() {
			c.entries = append(c.entries, Entry{Family: f.Family, Name: f.Name, Path: f.Filename})
		}
		Logger().Debug("scanned system fonts", zap.Int("count", len(c.entries)))
	})
	return c.entries
}

// Resolver turns a requested font (family name or file path) into font
// program bytes.
type Resolver struct {
	Catalog  Catalog
	ReadFile func(path string) ([]byte, error)
}

// NewResolver returns a resolver backed by the system font catalog.
func NewResolver() *Resolver {
	return &Resolver{Catalog: &SystemCatalog{}, ReadFile: os.ReadFile}
}

// Resolve returns the bytes of the font named by name. A name that is an
// existing regular file is read directly; anything else is looked up as a
// family in the catalog (case-insensitive, exact).
func (r *Resolver) Resolve(name string) ([]byte, error) {
	read := r.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	if looksLikePath(name) {
		if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
			Logger().Debug("font from file", zap.String("path", name))
			return read(name)
		}
	}
	if r.Catalog == nil {
		return nil, &NotFoundError{Family: name}
	}
	e, ok := pick(r.Catalog.Fonts(), name)
	if !ok {
		return nil, &NotFoundError{Family: name}
	}
	Logger().Debug("font from catalog",
		zap.String("family", name),
		zap.String("face", e.Name),
		zap.String("path", e.Path))
	data, err := read(e.Path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", name, err)
	}
	return data, nil
}

func looksLikePath(name string) bool {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// pick returns the best entry for family: a face whose name marks it as
// the regular style if there is one, else the shortest face name.
func pick(entries []Entry, family string) (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, e := range entries {
		if !strings.EqualFold(strings.TrimSpace(e.Family), family) {
			continue
		}
		if !found || rank(e, family) < rank(best, family) {
			best, found = e, true
		}
	}
	return best, found
}

func rank(e Entry, family string) int {
	name := strings.ToLower(strings.TrimSpace(e.Name))
	fam := strings.ToLower(family)
	switch name {
	case fam, fam + " regular", fam + " book", fam + " roman":
		return 0
	}
	return 1 + len(name)
}
