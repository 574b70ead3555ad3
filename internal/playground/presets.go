package playground

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Preset is a ready-made example program offered in the editor.
type Preset struct {
	Key  string `json:"key"`  // camelCase identifier, e.g. "asyncAwait"
	Name string `json:"name"` // display name, e.g. "Async Await"
	Code string `json:"code"`
}

var presetSources = []struct{ key, code string }{
	{"helloWorld", `func main() {
    // ProXPL: Clean and simple
    print("Hello, World!");

    let name = "Developer";
    print("Welcome " + name);
}`},
	{"fibonacci", `func fibonacci(n) {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}

func main() {
    print("Fibonacci sequence:");
    for (let i = 0; i < 10; i = i + 1) {
        print(to_string(fibonacci(i)));
    }
}`},
	{"collections", `func main() {
    // Lists
    let items = [10, 20, 30];
    push(items, 40);

    // Dictionaries
    let user = {"id": 1, "role": "admin"};
    user["active"] = true;

    print("User Role: " + user["role"]);
}`},
	{"asyncAwait", `async func fetchData(id) {
    // Simulate network delay
    return "Data for " + to_string(id);
}

async func main() {
    print("Fetching...");
    let data = await fetchData(100);
    print("Received: " + data);
}`},
	{"modules", `use std.math;

func main() {
    let r = std.math.sqrt(16);
    let p = std.math.pow(2, 5);

    print("Sqrt: " + to_string(r));
    print("Pow: " + to_string(p));
}`},
}

var presets = buildPresets()

func buildPresets() []Preset {
	out := make([]Preset, len(presetSources))
	for i, p := range presetSources {
		out[i] = Preset{Key: p.key, Name: DisplayName(p.key), Code: p.code}
	}
	return out
}

var upperRe = regexp.MustCompile(`([A-Z])`)

// DisplayName turns a camelCase key into title-cased words.
func DisplayName(key string) string {
	spaced := upperRe.ReplaceAllString(key, " $1")
	return cases.Title(language.English).String(spaced)
}

// Presets returns the example programs in display order. The first one is
// the editor's initial content.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by key.
func LookupPreset(key string) (Preset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// DefaultCode is the program shown in a fresh editor.
func DefaultCode() string {
	return presets[0].Code
}
