// Package manifest holds the resource manifest document and the assembler
// that builds it from inspected files.
package manifest

import (
	"fmt"
	"time"
)

const (
	// Version is the manifest format version.
	Version = "1.0.0"

	// BaseURL is where clients fetch resources, joined with the resource path.
	BaseURL = "https://raw.githubusercontent.com/MediaRoulette/MediaRoulette/main/resources/"

	// TimestampLayout matches a naive ISO-8601 local time with microseconds.
	TimestampLayout = "2006-01-02T15:04:05.000000"
)

// Resource describes one tracked file.
type Resource struct {
	Path     string `json:"-"`
	SHA256   string `json:"sha256"`
	Size     int64  `json:"size"`
	Required bool   `json:"required"`
	Category string `json:"-"`
}

type Summary struct {
	TotalFiles int              `json:"totalFiles"`
	TotalSize  int64            `json:"totalSize"`
	Categories *OrderedMap[int] `json:"categories"`
}

type Document struct {
	Version     string                `json:"version"`
	LastUpdated int64                 `json:"lastUpdated"`
	GeneratedAt string                `json:"generatedAt"`
	BaseURL     string                `json:"baseUrl"`
	Resources   *OrderedMap[Resource] `json:"resources"`
	Summary     Summary               `json:"summary"`
}

// Assembler accumulates resources in the order they are added and keeps
// the summary totals in step with them.
type Assembler struct {
	// Now supplies the generation time, time.Now unless replaced.
	Now func() time.Time

	resources  *OrderedMap[Resource]
	categories *OrderedMap[int]
	totalSize  int64
}

func NewAssembler() *Assembler {
	return &Assembler{
		Now:        time.Now,
		resources:  NewOrderedMap[Resource](),
		categories: NewOrderedMap[int](),
	}
}

// Add records r. Paths must be unique.
func (a *Assembler) Add(r Resource) error {
	if a.resources.Has(r.Path) {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
	}
	a.resources.Set(r.Path, r)
	a.totalSize += r.Size
	n, _ := a.categories.Get(r.Category)
	a.categories.Set(r.Category, n+1)
	return nil
}

// Summary returns the totals over everything added so far.
func (a *Assembler) Summary() Summary {
	cats := NewOrderedMap[int]()
	a.categories.Each(func(k string, v int) { cats.Set(k, v) })
	return Summary{
		TotalFiles: a.resources.Len(),
		TotalSize:  a.totalSize,
		Categories: cats,
	}
}

// Finish stamps the metadata and returns the completed document. The
// assembler should not be used afterwards.
func (a *Assembler) Finish() *Document {
	now := a.Now()
	return &Document{
		Version:     Version,
		LastUpdated: now.UnixMilli(),
		GeneratedAt: now.Format(TimestampLayout),
		BaseURL:     BaseURL,
		Resources:   a.resources,
		Summary:     a.Summary(),
	}
}
