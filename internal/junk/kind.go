// Package junk defines the domain types shared by the scan and clean
// engines: the junk-directory catalog, scan configuration, scan and clean
// results, and the error types they produce.
package junk

// Kind identifies a category of development junk directory. Each kind has
// a stable string identifier, a display name, and one or more literal
// directory-name patterns it matches. The identifier is part of the
// external contract (JSON output, config files) and must never change.
type Kind string

const (
	PythonVenv  Kind = "python_venv"
	PythonTox   Kind = "python_tox"
	PythonCache Kind = "python_cache"
	MypyCache   Kind = "mypy_cache"
	PytestCache Kind = "pytest_cache"
	NodeModules Kind = "node_modules"
	RustTarget  Kind = "rust_target"
	BuildDir    Kind = "build_dir"
	DistDir     Kind = "dist_dir"
	OutDir      Kind = "out_dir"
	GoVendor    Kind = "go_vendor"
	NextDir     Kind = "next_dir"
	NuxtDir     Kind = "nuxt_dir"
)

type kindInfo struct {
	display  string
	patterns []string
}

// catalogOrder fixes the iteration order for AllKinds and Classify.
// Classification is first-match-wins, so the order matters if patterns
// ever overlap.
var catalogOrder = []Kind{
	PythonVenv,
	PythonTox,
	PythonCache,
	MypyCache,
	PytestCache,
	NodeModules,
	RustTarget,
	BuildDir,
	DistDir,
	OutDir,
	GoVendor,
	NextDir,
	NuxtDir,
}

var catalog = map[Kind]kindInfo{
	PythonVenv:  {"Python Venv", []string{".venv", "venv"}},
	PythonTox:   {"Python Tox", []string{".tox"}},
	PythonCache: {"Python Cache", []string{"__pycache__"}},
	MypyCache:   {"Mypy Cache", []string{".mypy_cache"}},
	PytestCache: {"Pytest Cache", []string{".pytest_cache"}},
	NodeModules: {"Node Modules", []string{"node_modules"}},
	RustTarget:  {"Rust Target", []string{"target"}},
	BuildDir:    {"Build Dir", []string{"build"}},
	DistDir:     {"Dist Dir", []string{"dist"}},
	OutDir:      {"Out Dir", []string{"out"}},
	GoVendor:    {"Go Vendor", []string{"vendor"}},
	NextDir:     {"Next.js", []string{".next"}},
	NuxtDir:     {"Nuxt.js", []string{".nuxt"}},
}

// AllKinds returns every known kind in stable catalog order.
func AllKinds() []Kind {
	out := make([]Kind, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// Valid reports whether k is a known catalog entry.
func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// DisplayName returns the human-readable name for the kind.
func (k Kind) DisplayName() string {
	return catalog[k].display
}

// Patterns returns the literal directory names the kind matches.
func (k Kind) Patterns() []string {
	info := catalog[k]
	out := make([]string, len(info.patterns))
	copy(out, info.patterns)
	return out
}

// Matches reports whether name is one of the kind's patterns. Matching is
// an exact string comparison: no globbing, no case folding.
func (k Kind) Matches(name string) bool {
	for _, p := range catalog[k].patterns {
		if p == name {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return k.DisplayName()
}

// Classify returns the first catalog entry whose patterns match name.
func Classify(name string) (Kind, bool) {
	return ClassifyIn(name, catalogOrder)
}

// ClassifyIn returns the first of the given kinds whose patterns match
// name.
func ClassifyIn(name string, kinds []Kind) (Kind, bool) {
	for _, k := range kinds {
		if k.Matches(name) {
			return k, true
		}
	}
	return "", false
}

// ParseKind resolves an identifier to a catalog kind.
func ParseKind(id string) (Kind, bool) {
	k := Kind(id)
	if k.Valid() {
		return k, true
	}
	return "", false
}
