package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mediaroulette/resmanifest/util"
	"sigs.k8s.io/yaml"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}

// JSON encodes the document with two space indentation, leaving non-ASCII
// and HTML characters unescaped. There is no trailing newline.
func (d *Document) JSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// YAML encodes the document as YAML. Map keys come out sorted.
func (d *Document) YAML() ([]byte, error) {
	j, err := d.JSON()
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(j)
}

func (d *Document) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return d.JSON()
	case FormatYAML:
		return d.YAML()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Write encodes the document and replaces path with it in one step.
func (d *Document) Write(path string, f Format) error {
	data, err := d.Encode(f)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}

// Load reads a JSON manifest, keeping resource order.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := &Document{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse manifest at path %s: %w", path, err)
	}
	if d.Resources != nil {
		d.Resources.Each(func(k string, r Resource) {
			r.Path = k
			d.Resources.Set(k, r)
		})
	}
	return d, nil
}
