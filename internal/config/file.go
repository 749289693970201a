package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/muurk/cellprefs/internal/logging"
)

const (
	appName    = "cellprofiler"
	configFile = "config.yaml"
)

// GetConfigDir returns the per-user directory for cellprofiler files:
// %LOCALAPPDATA%\cellprofiler on Windows, ~/.config/cellprofiler on macOS
// and $XDG_CONFIG_HOME/cellprofiler (default ~/.config) elsewhere.
func GetConfigDir() (string, error) {
	base, err := configBase(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// configBase picks the parent of the application directory for goos.
func configBase(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	if goos == "windows" {
		if dir := getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
		if profile := getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Local"), nil
		}
		return "", errors.New("cannot determine config directory: LOCALAPPDATA and USERPROFILE are unset")
	}
	if goos != "darwin" {
		if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
	}
	h, err := home()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(h, ".config"), nil
}

// GetConfigPath returns the full path to the default settings file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// File is a settings store persisted to a single YAML or TOML file.
//
// Every write is flushed immediately. A write takes an exclusive lock on
// "<path>.lock", re-reads the file, applies the change and atomically
// replaces the file, so processes sharing the file keep each other's keys.
type File struct {
	mem   *Memory
	path  string
	codec codec
	lock  *flock.Flock

	// Serialises saves within this process.
	mu sync.Mutex
}

// OpenFile loads the store at path. A missing file yields an empty store;
// the file is created on first write.
func OpenFile(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}

	f := &File{
		mem:   NewMemory(),
		path:  abs,
		codec: codecFor(abs),
		lock:  flock.New(abs + ".lock"),
	}

	doc, err := f.readDocument()
	if err != nil {
		return nil, err
	}
	f.mem.values = doc.Values

	logging.Debug("Settings file loaded",
		zap.String("path", abs),
		zap.Int("keys", len(doc.Values)),
	)
	return f, nil
}

// readDocument reads the file from disk. A missing file is an empty document.
func (f *File) readDocument() (*document, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return &document{Version: documentVersion, Values: make(map[string]string)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	return decodeDocument(f.codec, data)
}

// update applies mutate to the on-disk document and writes the file if
// mutate reports a change. Either way the in-memory view is refreshed from
// the document.
func (f *File) update(mutate func(values map[string]string) bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings file: %w", err)
	}
	defer func() { _ = f.lock.Unlock() }()

	doc, err := f.readDocument()
	if err != nil {
		// Don't lose the caller's change to a corrupt file; rewrite it
		// from the in-memory view.
		logging.Warn("Settings file unreadable, rewriting from memory",
			zap.String("path", f.path),
			zap.Error(err),
		)
		doc = &document{Version: documentVersion, Values: f.mem.snapshot()}
	}

	if mutate(doc.Values) {
		if err := f.save(doc); err != nil {
			return err
		}
	}

	// Adopt the merged view, including keys written by other processes.
	f.mem.values = make(map[string]string, len(doc.Values))
	for k, v := range doc.Values {
		f.mem.values[k] = v
	}
	return nil
}

// save performs an atomic write of doc to prevent corruption on crash.
func (f *File) save(doc *document) error {
	doc.Version = documentVersion

	data, err := f.codec.marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	header := []byte(`# CellProfiler preferences
# Written by cellprefs; values are stored as strings.
#
# Location: ` + f.path + `

`)
	data = append(header, data...)

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary settings file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings file: %w", err)
	}
	return nil
}

func (f *File) Exists(key string) bool { return f.mem.Exists(key) }

func (f *File) Read(key string) (string, error) { return f.mem.Read(key) }

func (f *File) Write(key, value string) error {
	return f.update(func(values map[string]string) bool {
		values[key] = value
		return true
	})
}

func (f *File) ReadBool(key string) (bool, error) { return f.mem.ReadBool(key) }

func (f *File) WriteBool(key string, value bool) error {
	return f.Write(key, formatBool(value))
}

func (f *File) ReadInt(key string) (int, error) { return f.mem.ReadInt(key) }

func (f *File) WriteInt(key string, value int) error {
	return f.Write(key, strconv.Itoa(value))
}

// Delete removes key from the file, including a value another process
// wrote after this one loaded it. The file is only rewritten if the key
// was there.
func (f *File) Delete(key string) error {
	return f.update(func(values map[string]string) bool {
		if _, ok := values[key]; !ok {
			return false
		}
		delete(values, key)
		return true
	})
}

func (f *File) Keys() ([]string, error) { return f.mem.Keys() }

// Location returns the absolute path of the settings file.
func (f *File) Location() string { return f.path }
