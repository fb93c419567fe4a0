package evaluator

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGoldenPrograms runs every fixture under testdata/*.txtar end to
// end and compares captured stdout against the fixture's stdout.txt
// section.
func TestGoldenPrograms(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("globbing testdata: %s", err)
	}
	if len(paths) == 0 {
		t.Fatal("no .txtar fixtures found under testdata/")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			arc, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parsing %s: %s", path, err)
			}
			var input, want []byte
			for _, f := range arc.Files {
				switch f.Name {
				case "input.coal":
					input = f.Data
				case "stdout.txt":
					want = f.Data
				}
			}
			if input == nil {
				t.Fatalf("%s: missing input.coal section", path)
			}
			if want == nil {
				t.Fatalf("%s: missing stdout.txt section", path)
			}

			_, res, out := run(t, string(input))
			if isError(res) {
				t.Fatalf("%s: program errored: %s", path, res.Inspect())
			}
			if out != string(want) {
				t.Errorf("%s: stdout mismatch\ngot:\n%s\nwant:\n%s", path, out, want)
			}
		})
	}
}
