// Package rules holds the fixed tables that decide which files belong in a
// resource manifest, which category they fall into and whether clients must
// download them.
package rules

import "strings"

// CategoryRule maps a top-level resource folder to its category label.
type CategoryRule struct {
	Folder string `json:"folder"`
	Label  string `json:"label"`
}

// DefaultCategory is used for files outside every category folder.
const DefaultCategory = "other"

// Categories is evaluated in order, first match wins.
var Categories = []CategoryRule{
	{Folder: "images", Label: "image"},
	{Folder: "fonts", Label: "font"},
	{Folder: "config", Label: "config"},
	{Folder: "locales", Label: "locale"},
	{Folder: "data", Label: "data"},
}

// Extensions are lowercase and include the leading dot.
var Extensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg",
	".ttf", ".otf", ".woff", ".woff2",
	".json", ".yaml", ".yml",
	".properties",
	".txt", ".csv",
}

// ExplicitFiles are included regardless of extension or folder.
var ExplicitFiles = []string{"subreddits.txt", "basic_dictionary.txt", "themes.json"}

// Exclude lists directory names pruned by the walker. The filter also rejects
// any path whose text contains one of them.
var Exclude = []string{"__pycache__", ".DS_Store", "Thumbs.db", ".git"}

// RequiredPatterns are matched as plain substrings of the relative path, so
// an unrelated path that happens to contain one is flagged as well.
var RequiredPatterns = []string{
	"config/themes.json",
	"locales/messages",
	"fonts/",
}

var (
	extensionSet = toSet(Extensions)
	explicitSet  = toSet(ExplicitFiles)
)

func toSet(s []string) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for _, v := range s {
		out[v] = struct{}{}
	}
	return out
}

// IsCategoryFolder reports whether name is one of the top-level resource folders.
func IsCategoryFolder(name string) bool {
	for _, c := range Categories {
		if c.Folder == name {
			return true
		}
	}
	return false
}

// IsExplicit reports whether filename is always included.
func IsExplicit(filename string) bool {
	_, ok := explicitSet[filename]
	return ok
}

// HasExtension reports whether the lowercased extension of filename is tracked.
func HasExtension(filename string) bool {
	ext := strings.ToLower(Suffix(filename))
	if ext == "" {
		return false
	}
	_, ok := extensionSet[ext]
	return ok
}

// Suffix returns the extension of filename including the dot. Unlike
// filepath.Ext a leading dot does not start an extension, so ".txt" and
// "notes." have none.
func Suffix(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i <= 0 || i == len(filename)-1 {
		return ""
	}
	return filename[i:]
}

// Excluded reports whether path contains any exclusion token.
func Excluded(path string) bool {
	for _, e := range Exclude {
		if strings.Contains(path, e) {
			return true
		}
	}
	return false
}

// Include decides whether a walked file belongs in the manifest. path is
// the filesystem path as walked, relPath the slash separated path relative
// to the resource root.
//
// Files nested under a folder that is not a category folder only get in by
// exact filename. Everything else is kept when it is named explicitly or
// carries a tracked extension.
func Include(path, relPath string) bool {
	if Excluded(path) {
		return false
	}
	filename := relPath[strings.LastIndex(relPath, "/")+1:]

	parts := strings.Split(relPath, "/")
	if len(parts) > 1 && !IsCategoryFolder(parts[0]) {
		return IsExplicit(filename)
	}
	if IsExplicit(filename) {
		return true
	}
	return HasExtension(filename)
}

// Category returns the label for relPath, DefaultCategory when no folder prefix matches.
func Category(relPath string) string {
	for _, c := range Categories {
		if strings.HasPrefix(relPath, c.Folder+"/") {
			return c.Label
		}
	}
	return DefaultCategory
}

// Required reports whether relPath matches any required pattern.
func Required(relPath string) bool {
	for _, p := range RequiredPatterns {
		if strings.Contains(relPath, p) {
			return true
		}
	}
	return false
}

// Table is a serializable snapshot of every rule, used for diagnostics.
type Table struct {
	Categories       []CategoryRule `json:"categories"`
	DefaultCategory  string         `json:"defaultCategory"`
	Extensions       []string       `json:"extensions"`
	ExplicitFiles    []string       `json:"explicitFiles"`
	Exclude          []string       `json:"exclude"`
	RequiredPatterns []string       `json:"requiredPatterns"`
}

// Current returns the rule tables in effect.
func Current() Table {
	return Table{
		Categories:       Categories,
		DefaultCategory:  DefaultCategory,
		Extensions:       Extensions,
		ExplicitFiles:    ExplicitFiles,
		Exclude:          Exclude,
		RequiredPatterns: RequiredPatterns,
	}
}
