// Package config provides the key/value stores behind the CellProfiler
// preferences.
//
// Every store implements Backend: string values addressed by string keys,
// with boolean and integer helpers. The store is chosen once at startup with
// Open and stays fixed for the lifetime of the process.
//
// # Stores
//
//   - Memory: headless mode. Values live in a map and are never persisted.
//   - File: a YAML (or TOML, for ".toml" paths) document on disk.
//   - Platform-native, selected by build target:
//   - Windows: HKEY_CURRENT_USER\Software\BroadInstitute\CellProfiler
//   - macOS: user defaults domain org.cellprofiler.CellProfiler
//   - Linux and others: File at $XDG_CONFIG_HOME/cellprofiler/config.yaml
//
// # File Format
//
//	# CellProfiler preferences
//	version: 1
//	values:
//	  DefaultImageDirectory: /data/images
//	  RecentFile1: /data/pipelines/nuclei.cppipe
//
// # Usage Example
//
//	backend, err := config.Open(config.Options{Headless: headless})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if backend.Exists("PixelSize") {
//	    v, _ := backend.Read("PixelSize")
//	    fmt.Println(v)
//	}
//
// # Thread Safety
//
// Memory is not safe for concurrent use. File serialises its writes with a
// mutex and, across processes, with an flock on "<path>.lock".
package config
