package prefs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/muurk/cellprefs/internal/pathutil"
)

// PathMode selects which folder "." refers to in AbsolutePath.
type PathMode string

const (
	// AbsPathOutput treats "./" as the Default Output Folder and "&/" as
	// the Default Input Folder.
	AbsPathOutput PathMode = "abspath_output"
	// AbsPathImage treats "&/" as the Default Output Folder and "./" as
	// the Default Input Folder.
	AbsPathImage PathMode = "abspath_image"
)

// AbsolutePath converts path into an absolute path using the folder
// conventions of saved pipelines:
//   - http:, https: and ftp: URLs are returned unchanged;
//   - a path starting with the output marker and a separator is relative
//     to the Default Output Folder;
//   - a path starting with the input marker and a separator is relative
//     to the Default Input Folder;
//   - a bare file name is relative to the Default Output Folder;
//   - anything else is made absolute and case-corrected.
//
// The markers depend on mode; see AbsPathOutput and AbsPathImage.
func (p *Preferences) AbsolutePath(path string, mode PathMode) (string, error) {
	var osep, isep byte
	switch mode {
	case AbsPathOutput:
		osep, isep = '.', '&'
	case AbsPathImage:
		osep, isep = '&', '.'
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPathMode, mode)
	}

	if IsURLPath(path) {
		return path, nil
	}
	if hasFolderPrefix(path, osep) {
		return filepath.Join(p.DefaultOutputDirectory(), path[2:]), nil
	}
	if hasFolderPrefix(path, isep) {
		return filepath.Join(p.DefaultImageDirectory(), path[2:]), nil
	}
	if dir, _ := filepath.Split(path); dir == "" {
		return filepath.Join(p.DefaultOutputDirectory(), path), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return pathutil.ProperCase(abs), nil
}

// hasFolderPrefix reports whether path starts with marker followed by the
// platform separator or, where there is one, the alternate separator '/'.
func hasFolderPrefix(path string, marker byte) bool {
	if len(path) < 2 || path[0] != marker {
		return false
	}
	return path[1] == filepath.Separator || (filepath.Separator != '/' && path[1] == '/')
}

// IsURLPath reports whether path should be treated as a URL.
func IsURLPath(path string) bool {
	lower := strings.ToLower(path)
	for _, scheme := range []string{"http:", "https:", "ftp:"} {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}
