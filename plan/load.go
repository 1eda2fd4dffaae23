package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

const (
	DefaultRoot   = "."
	DefaultOutput = "manifest.json"
	DefaultFormat = "json"
)

// Plan says which resource directory to scan and where the manifest goes.
// Relative paths in a plan file are resolved against the file's directory.
type Plan struct {
	Root   string `json:"root"`
	Output string `json:"output"`
	Format string `json:"format"`
	path   string
}

func Default() Plan {
	return Plan{Root: DefaultRoot, Format: DefaultFormat}
}

// OutputPath is Output, or manifest.json inside Root when unset.
func (p *Plan) OutputPath() string {
	if p.Output == "" {
		return filepath.Join(p.Root, DefaultOutput)
	}
	return p.Output
}

// Path returns the file the plan was read from, empty for defaults.
func (p *Plan) Path() string {
	return p.path
}

// Override replaces fields with the non-empty values given.
func (p *Plan) Override(root, output, format string) {
	if root != "" {
		p.Root = root
	}
	if output != "" {
		p.Output = output
	}
	if format != "" {
		p.Format = format
	}
}

// Parse parses a YAML doc into the given Plan instance.
func parse(raw []byte, conf *Plan) error {
	return yaml.UnmarshalStrict(raw, conf)
}

// ParseFile reads a plan file, formatted in YAML or JSON, on top of the
// defaults.
func ParseFile(relpath string, conf *Plan) error {
	if relpath == "" {
		return nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(relpath)
	if abserr != nil {
		path = relpath
	}

	// Read file
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config at path %s: %w", path, err)
	}

	// Parse file
	err = parse(source, conf)
	if err != nil {
		return fmt.Errorf("failed to parse config at path %s: %w", path, err)
	}

	conf.path = path
	base := filepath.Dir(path)
	if conf.Root != "" && !filepath.IsAbs(conf.Root) {
		conf.Root = filepath.Join(base, conf.Root)
	}
	if conf.Output != "" && !filepath.IsAbs(conf.Output) {
		conf.Output = filepath.Join(base, conf.Output)
	}

	return nil
}
