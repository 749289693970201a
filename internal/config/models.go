package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// documentVersion is the on-disk format version written by the file store.
const documentVersion = 1

// document represents the entire settings file.
type document struct {
	Version int               `yaml:"version" toml:"version"`
	Values  map[string]string `yaml:"values,omitempty" toml:"values,omitempty"`
}

// rawDocument is a document as read from disk. Hand-edited files may hold
// unquoted numbers and booleans, so values are decoded untyped and
// converted to their stored string form.
type rawDocument struct {
	Version int            `yaml:"version" toml:"version"`
	Values  map[string]any `yaml:"values" toml:"values"`
}

// codec encodes a document for one file format.
type codec interface {
	marshal(doc *document) ([]byte, error)
	unmarshal(data []byte, doc *rawDocument) error
}

type yamlCodec struct{}

func (yamlCodec) marshal(doc *document) ([]byte, error) { return yaml.Marshal(doc) }

func (yamlCodec) unmarshal(data []byte, doc *rawDocument) error { return yaml.Unmarshal(data, doc) }

type tomlCodec struct{}

func (tomlCodec) marshal(doc *document) ([]byte, error) { return toml.Marshal(doc) }

func (tomlCodec) unmarshal(data []byte, doc *rawDocument) error { return toml.Unmarshal(data, doc) }

// codecFor picks the codec from the file extension.
func codecFor(path string) codec {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlCodec{}
	}
	return yamlCodec{}
}

// decodeDocument parses data and checks the format version. An empty file
// decodes to an empty document.
func decodeDocument(c codec, data []byte) (*document, error) {
	doc := &document{Version: documentVersion, Values: make(map[string]string)}
	if len(strings.TrimSpace(string(data))) == 0 {
		return doc, nil
	}

	raw := rawDocument{Version: documentVersion}
	if err := c.unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if raw.Version != documentVersion {
		return nil, fmt.Errorf("unsupported settings version: %d (expected %d)", raw.Version, documentVersion)
	}

	for key, v := range raw.Values {
		s, err := scalarString(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse settings file: value of %s: %w", key, err)
		}
		doc.Values[key] = s
	}
	return doc, nil
}

// scalarString converts a decoded value to the form the stores write:
// booleans as "1"/"0", floats in shortest form.
func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return formatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case map[string]any, []any:
		return "", fmt.Errorf("expected a single value, got %T", v)
	default:
		return fmt.Sprint(x), nil
	}
}
