// Package builder runs the manifest pipeline: walk the resource root, filter,
// inspect each kept file and assemble the document. Files are processed one
// at a time in walk order.
package builder

import (
	"path/filepath"
	"time"

	"github.com/mediaroulette/resmanifest/inspect"
	"github.com/mediaroulette/resmanifest/logger"
	"github.com/mediaroulette/resmanifest/manifest"
	"github.com/mediaroulette/resmanifest/rules"
	"github.com/mediaroulette/resmanifest/walk"
)

type EventKind int

const (
	EventScanStart EventKind = iota
	EventResource
	EventDone
)

// Event is a progress notification. Root is set on every event, Resource
// on EventResource and Summary on EventDone.
type Event struct {
	Kind     EventKind
	Root     string
	Resource manifest.Resource
	Summary  manifest.Summary
}

type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

type Builder struct {
	Root string
	// Skip lists file paths left out of the walk, typically the output
	// file when it lives inside Root.
	Skip     []string
	Reporter Reporter
	// Now stamps the document, time.Now when nil.
	Now func() time.Time
}

func New(root string, reporter Reporter) *Builder {
	if reporter == nil {
		reporter = ReporterFunc(func(Event) {})
	}
	return &Builder{Root: root, Reporter: reporter}
}

// Build returns the finished document. Any walk or inspection error aborts
// the build and no document is returned. Each call scans the tree afresh.
func (b *Builder) Build() (*manifest.Document, error) {
	if err := walk.CheckRoot(b.Root); err != nil {
		return nil, err
	}
	assembler := manifest.NewAssembler()
	if b.Now != nil {
		assembler.Now = b.Now
	}

	skip := map[string]bool{}
	for _, s := range b.Skip {
		if a, err := filepath.Abs(s); err == nil {
			skip[a] = true
		}
	}

	b.Reporter.Report(Event{Kind: EventScanStart, Root: b.Root})

	err := walk.Walk(b.Root, rules.Exclude, func(path string) error {
		if len(skip) > 0 {
			if a, err := filepath.Abs(path); err == nil && skip[a] {
				logger.Warn("Skipping output file inside resources directory", "path", path)
				return nil
			}
		}
		rel, err := walk.Rel(b.Root, path)
		if err != nil {
			return err
		}
		if !rules.Include(path, rel) {
			logger.Debug("Excluded", "path", rel)
			return nil
		}
		res, err := inspect.File(path, rel)
		if err != nil {
			return err
		}
		if err := assembler.Add(res); err != nil {
			return err
		}
		b.Reporter.Report(Event{Kind: EventResource, Root: b.Root, Resource: res})
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc := assembler.Finish()
	b.Reporter.Report(Event{Kind: EventDone, Root: b.Root, Summary: doc.Summary})
	return doc, nil
}
