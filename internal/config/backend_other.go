//go:build !darwin && !windows

package config

import "fmt"

// newPlatformBackend opens the YAML settings file at GetConfigPath. This is
// the native store for Linux and other Unix-like platforms.
func newPlatformBackend() (Backend, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return OpenFile(path)
}
