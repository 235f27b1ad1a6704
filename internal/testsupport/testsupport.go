// Package testsupport implements golden-file comparison for the
// quaternion and low-level IR generators, adapted from the teacher's
// internal/filetest package: a generator's textual dump is compared
// against a ".want" file checked into testdata/, with an update flag to
// regenerate the golden file when the format intentionally changes.
package testsupport

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var updateGolden = flag.Bool("test.update-golden", false, "If set, rewrites golden files with the actual output instead of comparing.")

// DiffGolden compares output against the contents of testdata/<name> and
// fails the test on any difference. With -test.update-golden, it writes
// output to that path instead.
func DiffGolden(t *testing.T, dir, name, output string) {
	t.Helper()

	goldFile := filepath.Join(dir, name)
	if *updateGolden {
		if err := os.WriteFile(goldFile, []byte(output), 0o600); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if testing.Verbose() {
		t.Logf("got %s:\n%s\n", name, output)
	}
	if patch := diff.Diff(want, output); patch != "" {
		t.Errorf("diff %s:\n%s\n", name, patch)
	}
}
