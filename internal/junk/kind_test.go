package junk

import "testing"

func TestKindMatches(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		want bool
	}{
		{NodeModules, "node_modules", true},
		{PythonVenv, ".venv", true},
		{PythonVenv, "venv", true},
		{RustTarget, "target", true},
		{PythonCache, "__pycache__", true},
		{NextDir, ".next", true},
		{NodeModules, "node-modules", false},
		{NodeModules, "NODE_MODULES", false}, // no case folding
		{RustTarget, "targets", false},
		{PythonVenv, ".venv/", false}, // exact match only
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.name, func(t *testing.T) {
			if got := tt.kind.Matches(tt.name); got != tt.want {
				t.Errorf("%s.Matches(%q) = %v, want %v", tt.kind, tt.name, got, tt.want)
			}
		})
	}
}

func TestAllKindsStableAndComplete(t *testing.T) {
	all := AllKinds()
	if len(all) != 13 {
		t.Fatalf("AllKinds() returned %d kinds, want 13", len(all))
	}

	seen := make(map[Kind]bool)
	for _, k := range all {
		if seen[k] {
			t.Errorf("duplicate kind %q in AllKinds()", k)
		}
		seen[k] = true
		if !k.Valid() {
			t.Errorf("kind %q is not in the catalog", k)
		}
		if k.DisplayName() == "" {
			t.Errorf("kind %q has no display name", k)
		}
		if len(k.Patterns()) == 0 {
			t.Errorf("kind %q has no patterns", k)
		}
	}

	// Order is part of the contract (deterministic listing, first-match
	// classification).
	again := AllKinds()
	for i := range all {
		if all[i] != again[i] {
			t.Fatalf("AllKinds() order not stable: %v vs %v", all, again)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		want  Kind
		found bool
	}{
		{"node_modules", NodeModules, true},
		{".venv", PythonVenv, true},
		{"venv", PythonVenv, true},
		{"target", RustTarget, true},
		{"__pycache__", PythonCache, true},
		{".mypy_cache", MypyCache, true},
		{"dist", DistDir, true},
		{"vendor", GoVendor, true},
		{"src", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.name)
			if ok != tt.found || got != tt.want {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestClassifyInRestrictsKinds(t *testing.T) {
	// node_modules is not in the active set, so it must not classify.
	if _, ok := ClassifyIn("node_modules", []Kind{RustTarget}); ok {
		t.Error("ClassifyIn matched a kind outside the active set")
	}
	if k, ok := ClassifyIn("target", []Kind{RustTarget}); !ok || k != RustTarget {
		t.Errorf("ClassifyIn(target) = (%q, %v), want (%q, true)", k, ok, RustTarget)
	}
}

func TestParseKind(t *testing.T) {
	if k, ok := ParseKind("node_modules"); !ok || k != NodeModules {
		t.Errorf("ParseKind(node_modules) = (%q, %v)", k, ok)
	}
	if _, ok := ParseKind("no_such_kind"); ok {
		t.Error("ParseKind accepted an unknown identifier")
	}
}
