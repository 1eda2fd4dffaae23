// Package report renders builder progress for people watching a run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mediaroulette/resmanifest/builder"
	"github.com/mediaroulette/resmanifest/manifest"
)

const (
	MarkerRequired = "★"
	MarkerOptional = "○"
)

var rule = strings.Repeat("─", 50)

// Console prints one line per resource and a closing summary.
type Console struct {
	Out     io.Writer
	NoColor bool
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) Report(e builder.Event) {
	switch e.Kind {
	case builder.EventScanStart:
		fmt.Fprintf(c.Out, "\n🔍 Scanning: %s\n", e.Root)
		fmt.Fprintln(c.Out, rule)
	case builder.EventResource:
		fmt.Fprintf(c.Out, "  %s %-45s %10s\n", c.marker(e.Resource.Required), e.Resource.Path, FormatSize(e.Resource.Size))
	case builder.EventDone:
		fmt.Fprintln(c.Out, rule)
	}
}

// Banner prints the tool header.
func (c *Console) Banner() {
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, "╔════════════════════════════════════════════════════╗")
	fmt.Fprintln(c.Out, "║     📋 MediaRoulette Manifest Creator              ║")
	fmt.Fprintln(c.Out, "╚════════════════════════════════════════════════════╝")
}

// Written prints the summary block once the manifest is on disk.
func (c *Console) Written(path string, s manifest.Summary) {
	fmt.Fprintf(c.Out, "\n✅ Manifest created: %s\n", path)
	fmt.Fprintf(c.Out, "   📁 Files: %d\n", s.TotalFiles)
	fmt.Fprintf(c.Out, "   📦 Total size: %s\n", FormatSize(s.TotalSize))
	fmt.Fprintf(c.Out, "   📂 Categories: %s\n", FormatCategories(s.Categories))
	fmt.Fprintln(c.Out)
}

func (c *Console) marker(required bool) string {
	if !required {
		return MarkerOptional
	}
	y := color.New(color.FgYellow)
	if c.NoColor {
		y.DisableColor()
	}
	return y.Sprint(MarkerRequired)
}

// FormatSize renders n bytes with binary units.
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// FormatCategories renders the tally in insertion order, e.g. "image=2 font=1".
func FormatCategories(m *manifest.OrderedMap[int]) string {
	if m == nil || m.Len() == 0 {
		return "none"
	}
	parts := []string{}
	m.Each(func(k string, v int) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v))
	})
	return strings.Join(parts, " ")
}

// Nop discards every event.
type Nop struct{}

func (Nop) Report(builder.Event) {}
