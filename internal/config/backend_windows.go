//go:build windows

package config

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"

	"github.com/muurk/cellprefs/internal/logging"
)

const registryPath = `Software\BroadInstitute\CellProfiler`

// registryBackend stores settings as values under a HKEY_CURRENT_USER key.
// Strings are REG_SZ; typed writes use REG_DWORD.
type registryBackend struct {
	path string
}

func newPlatformBackend() (Backend, error) {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, registryPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry key: %w", err)
	}
	_ = k.Close()
	return &registryBackend{path: registryPath}, nil
}

func (b *registryBackend) open(access uint32) (registry.Key, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, b.path, access)
	if err != nil {
		return 0, fmt.Errorf("failed to open registry key: %w", err)
	}
	return k, nil
}

func (b *registryBackend) Exists(key string) bool {
	k, err := b.open(registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()
	_, _, err = k.GetValue(key, nil)
	return err == nil
}

func (b *registryBackend) Read(key string) (string, error) {
	k, err := b.open(registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	s, _, err := k.GetStringValue(key)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, registry.ErrNotExist) {
		return "", notFound(key)
	}
	if errors.Is(err, registry.ErrUnexpectedType) {
		n, _, ierr := k.GetIntegerValue(key)
		if ierr != nil {
			return "", fmt.Errorf("reading registry value %s: %w", key, ierr)
		}
		return strconv.FormatUint(n, 10), nil
	}
	return "", fmt.Errorf("reading registry value %s: %w", key, err)
}

func (b *registryBackend) Write(key, value string) error {
	k, err := b.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	if err := k.SetStringValue(key, value); err != nil {
		return fmt.Errorf("writing registry value %s: %w", key, err)
	}
	logging.Debug("Registry value written", zap.String("key", key))
	return nil
}

func (b *registryBackend) ReadBool(key string) (bool, error) {
	s, err := b.Read(key)
	if err != nil {
		return false, err
	}
	return parseBool(key, s)
}

func (b *registryBackend) WriteBool(key string, value bool) error {
	var n uint32
	if value {
		n = 1
	}
	return b.writeDWord(key, n)
}

func (b *registryBackend) ReadInt(key string) (int, error) {
	s, err := b.Read(key)
	if err != nil {
		return 0, err
	}
	return parseInt(key, s)
}

// WriteInt stores value as a REG_DWORD; negative values fall back to a
// string since DWORDs are unsigned.
func (b *registryBackend) WriteInt(key string, value int) error {
	if value < 0 || int64(value) > int64(^uint32(0)) {
		return b.Write(key, strconv.Itoa(value))
	}
	return b.writeDWord(key, uint32(value))
}

func (b *registryBackend) writeDWord(key string, value uint32) error {
	k, err := b.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	if err := k.SetDWordValue(key, value); err != nil {
		return fmt.Errorf("writing registry value %s: %w", key, err)
	}
	return nil
}

func (b *registryBackend) Delete(key string) error {
	k, err := b.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	if err := k.DeleteValue(key); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("deleting registry value %s: %w", key, err)
	}
	return nil
}

func (b *registryBackend) Keys() ([]string, error) {
	k, err := b.open(registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("listing registry values: %w", err)
	}
	return names, nil
}

func (b *registryBackend) Location() string {
	return `HKEY_CURRENT_USER\` + b.path
}
