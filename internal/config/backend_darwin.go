//go:build darwin

package config

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/cellprefs/internal/logging"
)

const defaultsDomain = "org.cellprofiler.CellProfiler"

// defaultsBackend stores settings in macOS user defaults via the
// `defaults` CLI.
type defaultsBackend struct {
	domain string
}

func newPlatformBackend() (Backend, error) {
	return &defaultsBackend{domain: defaultsDomain}, nil
}

// read returns ok=false when the key is missing; `defaults` exits 1 then.
func (b *defaultsBackend) read(key string) (string, bool, error) {
	out, err := exec.Command("defaults", "read", b.domain, key).CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading default for key '%s': %w, output: %s", key, err, s)
	}
	return s, true, nil
}

func (b *defaultsBackend) write(key, typeFlag, value string) error {
	out, err := exec.Command("defaults", "write", b.domain, key, typeFlag, value).CombinedOutput()
	if err != nil {
		return fmt.Errorf("writing default for key '%s': %w, output: %s", key, err, strings.TrimSpace(string(out)))
	}
	logging.Debug("Default written", zap.String("domain", b.domain), zap.String("key", key))
	return nil
}

func (b *defaultsBackend) Exists(key string) bool {
	_, ok, err := b.read(key)
	return ok && err == nil
}

func (b *defaultsBackend) Read(key string) (string, error) {
	s, ok, err := b.read(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound(key)
	}
	return s, nil
}

func (b *defaultsBackend) Write(key, value string) error {
	return b.write(key, "-string", value)
}

func (b *defaultsBackend) ReadBool(key string) (bool, error) {
	s, err := b.Read(key)
	if err != nil {
		return false, err
	}
	return parseBool(key, s)
}

func (b *defaultsBackend) WriteBool(key string, value bool) error {
	return b.write(key, "-bool", strconv.FormatBool(value))
}

func (b *defaultsBackend) ReadInt(key string) (int, error) {
	s, err := b.Read(key)
	if err != nil {
		return 0, err
	}
	return parseInt(key, s)
}

func (b *defaultsBackend) WriteInt(key string, value int) error {
	return b.write(key, "-int", strconv.Itoa(value))
}

func (b *defaultsBackend) Delete(key string) error {
	err := exec.Command("defaults", "delete", b.domain, key).Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil
	}
	return err
}

// Keys lists the entries of the defaults domain.
func (b *defaultsBackend) Keys() ([]string, error) {
	out, err := exec.Command("defaults", "read", b.domain).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("reading defaults domain %s: %w", b.domain, err)
	}
	return parseDefaultsKeys(string(out)), nil
}

// parseDefaultsKeys extracts the top-level keys from `defaults read`
// output, an old-style plist dictionary with four-space indented entries.
// Keys containing spaces or punctuation are quoted.
func parseDefaultsKeys(out string) []string {
	var keys []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "     ") {
			continue
		}
		name, _, ok := strings.Cut(strings.TrimSpace(line), " = ")
		if !ok {
			continue
		}
		keys = append(keys, strings.Trim(name, `"`))
	}
	return keys
}

func (b *defaultsBackend) Location() string {
	return "defaults:" + b.domain
}
