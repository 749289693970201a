package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestProperCaseCorrectsExistingComponents(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Images", "Plate01"), 0755); err != nil {
		t.Fatal(err)
	}

	got := properCase(filepath.Join(root, "images", "PLATE01"))
	want := filepath.Join(root, "Images", "Plate01")
	if got != want {
		t.Errorf("properCase() = %q, want %q", got, want)
	}
}

func TestProperCaseKeepsMissingTail(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "Output"), 0755); err != nil {
		t.Fatal(err)
	}

	got := properCase(filepath.Join(root, "output", "NotYet", "file.CSV"))
	want := filepath.Join(root, "Output", "NotYet", "file.CSV")
	if got != want {
		t.Errorf("properCase() = %q, want %q", got, want)
	}
}

func TestProperCasePrefersExactMatch(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"DATA", "data"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Skipf("file system is case-insensitive: %v", err)
		}
	}

	if got, want := properCase(filepath.Join(root, "data")), filepath.Join(root, "data"); got != want {
		t.Errorf("properCase() = %q, want %q", got, want)
	}
}

func TestProperCaseRelativePath(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "Pipelines"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(root)

	if got := properCase("pipelines"); got != "Pipelines" {
		t.Errorf("properCase() = %q, want Pipelines", got)
	}
}

func TestProperCaseRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("root has a volume name on Windows")
	}
	if got := properCase("/"); got != "/" {
		t.Errorf("properCase(\"/\") = %q, want \"/\"", got)
	}
}
