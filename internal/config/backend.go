package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrKeyNotFound is returned when reading a key that has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the key/value store behind the preferences facade.
//
// Implementations store every value as a string; the typed variants only
// differ in how the value is encoded. A backend is selected once at startup
// (see Open) and used for the lifetime of the process.
type Backend interface {
	// Exists reports whether key has a stored value.
	Exists(key string) bool

	// Read returns the stored value for key, or ErrKeyNotFound.
	Read(key string) (string, error)
	// Write stores value under key.
	Write(key, value string) error

	ReadBool(key string) (bool, error)
	WriteBool(key string, value bool) error
	ReadInt(key string) (int, error)
	WriteInt(key string, value int) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys lists every stored key in unspecified order.
	Keys() ([]string, error)

	// Location describes where values are persisted (file path, registry
	// key, defaults domain, or "memory").
	Location() string
}

// Options selects a backend in Open.
type Options struct {
	// Headless selects the in-memory store. Nothing is persisted.
	Headless bool
	// Path selects a file store at an explicit location. The codec is
	// chosen from the extension (.toml for TOML, YAML otherwise).
	Path string
}

// Open returns the backend described by opts. With neither Headless nor
// Path set, the platform-native store is used:
//   - Windows: HKEY_CURRENT_USER\Software\BroadInstitute\CellProfiler
//   - macOS: user defaults domain org.cellprofiler.CellProfiler
//   - others: $XDG_CONFIG_HOME/cellprofiler/config.yaml
func Open(opts Options) (Backend, error) {
	switch {
	case opts.Headless:
		return NewMemory(), nil
	case opts.Path != "":
		return OpenFile(opts.Path)
	default:
		return newPlatformBackend()
	}
}

// formatBool encodes booleans the way the desktop config store does.
func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func parseBool(key, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean for %s: %q", key, s)
}

func parseInt(key, s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return i, nil
}

func notFound(key string) error {
	return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}
