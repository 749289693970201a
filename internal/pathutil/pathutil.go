// Package pathutil corrects the letter case of filesystem paths.
//
// Windows and macOS file systems are case-insensitive but case-preserving,
// so a directory typed as "c:\images" may be stored as "C:\Images". The
// preferences store records directories in the case the file system uses.
package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// caseInsensitive reports whether the platform's default file system
// ignores case.
var caseInsensitive = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// ProperCase returns path with every existing component spelled the way
// the file system stores it. On case-sensitive platforms the cleaned path
// is returned unchanged.
func ProperCase(path string) string {
	if !caseInsensitive {
		return filepath.Clean(path)
	}
	return properCase(path)
}

// properCase walks path from its root, replacing each component by the
// directory entry that matches it case-insensitively. Components past the
// first one that can't be matched are kept as given.
func properCase(path string) string {
	clean := filepath.Clean(path)
	volume := filepath.VolumeName(clean)
	rest := clean[len(volume):]

	var current string
	switch {
	case strings.HasPrefix(rest, string(filepath.Separator)):
		current = strings.ToUpper(volume) + string(filepath.Separator)
		rest = rest[1:]
	case volume != "":
		current = strings.ToUpper(volume)
	default:
		current = ""
	}

	if rest == "" {
		return current
	}

	parts := strings.Split(rest, string(filepath.Separator))
	for i, part := range parts {
		dir := current
		if dir == "" {
			dir = "."
		}
		match, ok := matchEntry(dir, part)
		if !ok {
			return filepath.Join(append([]string{current}, parts[i:]...)...)
		}
		current = filepath.Join(current, match)
	}
	return current
}

// matchEntry finds name in dir, preferring an exact match.
func matchEntry(dir, name string) (string, bool) {
	if name == "." || name == ".." {
		return name, true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	found := ""
	for _, e := range entries {
		if e.Name() == name {
			return name, true
		}
		if found == "" && strings.EqualFold(e.Name(), name) {
			found = e.Name()
		}
	}
	return found, found != ""
}
