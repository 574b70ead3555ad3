package playground

import (
	"strings"
	"testing"
)

func TestPresets_Order(t *testing.T) {
	want := []string{"helloWorld", "fibonacci", "collections", "asyncAwait", "modules"}
	got := Presets()
	if len(got) != len(want) {
		t.Fatalf("got %d presets", len(got))
	}
	for i, p := range got {
		if p.Key != want[i] {
			t.Errorf("preset %d = %q, want %q", i, p.Key, want[i])
		}
		if strings.TrimSpace(p.Code) == "" {
			t.Errorf("preset %q has no code", p.Key)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"helloWorld":  "Hello World",
		"asyncAwait":  "Async Await",
		"modules":     "Modules",
		"collections": "Collections",
	}
	for key, want := range tests {
		if got := DisplayName(key); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("modules")
	if !ok || !strings.HasPrefix(p.Code, "use std.math;") {
		t.Fatalf("got %+v, %v", p, ok)
	}
	if _, ok := LookupPreset("nope"); ok {
		t.Fatal("unknown preset found")
	}
}

func TestPresets_ReturnsCopy(t *testing.T) {
	Presets()[0].Code = "changed"
	if DefaultCode() == "changed" {
		t.Fatal("Presets() exposed internal slice")
	}
}
